package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/copa-nordeste/copa-api/internal/domain/adminsession"
	"github.com/copa-nordeste/copa-api/internal/platform/id"
)

// AuthService issues and verifies server-held admin sessions. The
// client only ever holds the opaque token.
type AuthService struct {
	sessionRepo adminsession.Repository
	username    string
	password    string
	sessionTTL  time.Duration
	newToken    func() (string, error)
	now         func() time.Time
}

func NewAuthService(
	sessionRepo adminsession.Repository,
	username, password string,
	sessionTTL time.Duration,
	now func() time.Time,
) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 8 * time.Hour
	}
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		sessionRepo: sessionRepo,
		username:    username,
		password:    password,
		sessionTTL:  sessionTTL,
		newToken:    id.NewToken,
		now:         now,
	}
}

// Login checks the configured credentials in constant time and mints a
// fresh session on success.
func (s *AuthService) Login(ctx context.Context, username, password string) (adminsession.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password))
	if userOK&passOK != 1 {
		return adminsession.Session{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	token, err := s.newToken()
	if err != nil {
		return adminsession.Session{}, fmt.Errorf("generate session token: %w", err)
	}

	now := s.now().UTC()
	session := adminsession.Session{
		Token:     token,
		Username:  username,
		LoginTime: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return adminsession.Session{}, fmt.Errorf("save session: %w", err)
	}

	return session, nil
}

// Authenticate resolves a bearer token. Expired sessions are purged on
// sight so the store never accumulates stale logins.
func (s *AuthService) Authenticate(ctx context.Context, token string) (adminsession.Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Authenticate")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return adminsession.Session{}, fmt.Errorf("%w: missing session token", ErrUnauthorized)
	}

	session, exists, err := s.sessionRepo.Get(ctx, token)
	if err != nil {
		return adminsession.Session{}, fmt.Errorf("get session: %w", err)
	}
	if !exists {
		return adminsession.Session{}, fmt.Errorf("%w: unknown session token", ErrUnauthorized)
	}
	if session.ExpiredAt(s.now()) {
		if _, err := s.sessionRepo.Delete(ctx, token); err != nil {
			return adminsession.Session{}, fmt.Errorf("purge expired session: %w", err)
		}
		return adminsession.Session{}, fmt.Errorf("%w: session expired", ErrUnauthorized)
	}

	return session, nil
}

// Logout drops the session; logging out twice is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Logout")
	defer span.End()

	token = strings.TrimSpace(token)
	if token == "" {
		return fmt.Errorf("%w: missing session token", ErrUnauthorized)
	}

	if _, err := s.sessionRepo.Delete(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}
