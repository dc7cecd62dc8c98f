package usecase

import (
	"errors"
	"testing"
	"time"

	"github.com/copa-nordeste/copa-api/internal/infrastructure/repository/memory"
)

func newAuthFixture(ttl time.Duration) (*AuthService, *fakeClock) {
	clock := &fakeClock{current: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewAuthService(memory.NewSessionRepository(), "admin", "s3cret", ttl, clock.Now)
	return svc, clock
}

func TestAuthService_Login_ValidCredentials(t *testing.T) {
	svc, _ := newAuthFixture(time.Hour)

	session, err := svc.Login(t.Context(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if session.Token == "" {
		t.Fatal("expected a session token")
	}
	if !session.ExpiresAt.Equal(session.LoginTime.Add(time.Hour)) {
		t.Fatalf("unexpected expiry: %v vs login %v", session.ExpiresAt, session.LoginTime)
	}
}

func TestAuthService_Login_RejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture(time.Hour)

	for _, tc := range []struct {
		name     string
		username string
		password string
	}{
		{"wrong password", "admin", "nope"},
		{"wrong username", "root", "s3cret"},
		{"both wrong", "root", "nope"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Login(t.Context(), tc.username, tc.password)
			if !errors.Is(err, ErrUnauthorized) {
				t.Fatalf("expected ErrUnauthorized, got %v", err)
			}
		})
	}
}

func TestAuthService_Authenticate_RoundTrip(t *testing.T) {
	svc, _ := newAuthFixture(time.Hour)

	session, err := svc.Login(t.Context(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	got, err := svc.Authenticate(t.Context(), session.Token)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if got.Username != "admin" {
		t.Fatalf("unexpected session user: %s", got.Username)
	}
}

func TestAuthService_Authenticate_ExpiredSessionIsPurged(t *testing.T) {
	svc, clock := newAuthFixture(time.Hour)

	session, err := svc.Login(t.Context(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	clock.Advance(2 * time.Hour)
	_, err = svc.Authenticate(t.Context(), session.Token)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for expired session, got %v", err)
	}

	// Once purged the token stays dead even if the clock rewinds.
	clock.Advance(-2 * time.Hour)
	_, err = svc.Authenticate(t.Context(), session.Token)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected purge to be permanent, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownToken(t *testing.T) {
	svc, _ := newAuthFixture(time.Hour)

	_, err := svc.Authenticate(t.Context(), "deadbeef")
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	svc, _ := newAuthFixture(time.Hour)

	session, err := svc.Login(t.Context(), "admin", "s3cret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	if err := svc.Logout(t.Context(), session.Token); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if err := svc.Logout(t.Context(), session.Token); err != nil {
		t.Fatalf("second logout should be a no-op: %v", err)
	}

	_, err = svc.Authenticate(t.Context(), session.Token)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized after logout, got %v", err)
	}
}
