// Package mail implements outbound email delivery over SMTP.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"strconv"
	"strings"

	"go.uber.org/fx"

	"passport/config"
	"passport/internal/domain/service"
	"passport/internal/errors"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// smtpSender delivers mail through a plain SMTP endpoint. When no transport
// is configured it degrades to a logged no-op so registration never depends
// on a mail server being reachable.
type smtpSender struct {
	cfg    *config.SMTPConfig
	logger *slog.Logger
}

// NewSMTPSender builds the mail sender from configuration.
func NewSMTPSender(params Params) service.EmailSender {
	return &smtpSender{
		cfg:    params.Config.SMTP,
		logger: params.Logger,
	}
}

// SendWelcome sends the post-registration greeting to a new account.
func (s *smtpSender) SendWelcome(ctx context.Context, to, name string) error {
	if s.cfg == nil || s.cfg.Host == "" {
		s.logger.LogAttrs(ctx, slog.LevelDebug, "mail transport not configured, skipping welcome email",
			slog.String("to", to),
		)

		return nil
	}

	subject := "Welcome aboard!"
	body := fmt.Sprintf("Hi %s,\r\n\r\nYour account has been created. Welcome!\r\n", name)

	return s.send(to, subject, body)
}

func (s *smtpSender) send(to, subject, body string) error {
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))

	var msg strings.Builder
	msg.WriteString("From: " + s.cfg.From + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg.String())); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}
