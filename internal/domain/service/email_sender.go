package service

import "context"

// EmailSender defines the interface for outbound transactional mail.
// Implementations are constructed explicitly and injected; there is no
// process-wide lazily-initialized transporter.
type EmailSender interface {
	// SendWelcome delivers a welcome message to a newly registered account.
	SendWelcome(ctx context.Context, to, name string) error
}
