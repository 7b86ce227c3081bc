package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"passport/config"
	"passport/internal/domain/entity"
	"passport/internal/domain/service"
)

func newTestJWTService(t *testing.T, secret string, ttl time.Duration) service.TokenService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Secret = secret
	cfg.SecretKey.TTL = ttl

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := &config.Config{}

	_, err := NewJWTService(cfg)
	assert.Error(t, err)
}

func TestNewJWTService_DefaultTTL(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", 0)
	assert.Equal(t, time.Hour*24*7, svc.TTL())
}

func TestJWTService_IssueAndVerify(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	identity := entity.Identity{
		ID:    uuid.New(),
		Email: "alice@example.com",
		Role:  entity.RoleAdmin,
	}

	token, err := svc.Issue(identity)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, identity.ID, got.ID)
	assert.Equal(t, identity.Email, got.Email)
	assert.Equal(t, identity.Role, got.Role)
}

func TestJWTService_Verify_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(t, "secret-one", time.Hour)
	verifier := newTestJWTService(t, "secret-two", time.Hour)

	token, err := issuer.Issue(entity.Identity{ID: uuid.New(), Email: "a@b.co", Role: entity.RoleUser})
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenSignatureInvalid)
}

func TestJWTService_Verify_Expired(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", -time.Hour)

	token, err := svc.Issue(entity.Identity{ID: uuid.New(), Email: "a@b.co", Role: entity.RoleUser})
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_Verify_Malformed(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	cases := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not-a-jwt"},
		{name: "truncated", token: "eyJhbGciOiJIUzI1NiJ9"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Verify(tc.token)
			assert.ErrorIs(t, err, service.ErrTokenMalformed)
		})
	}
}

func TestJWTService_Verify_TamperedPayload(t *testing.T) {
	svc := newTestJWTService(t, "test-secret", time.Hour)

	token, err := svc.Issue(entity.Identity{ID: uuid.New(), Email: "a@b.co", Role: entity.RoleUser})
	require.NoError(t, err)

	// Flip a character in the payload segment so the signature no longer matches.
	tampered := []byte(token)
	mid := len(tampered) / 2
	if tampered[mid] == 'A' {
		tampered[mid] = 'B'
	} else {
		tampered[mid] = 'A'
	}

	_, err = svc.Verify(string(tampered))
	assert.Error(t, err)
}
