package adminsession

import "time"

// Session is a server-held admin login. The token is the only thing the
// client keeps; everything else lives server-side so a session can be
// revoked at any time.
type Session struct {
	Token     string
	Username  string
	LoginTime time.Time
	ExpiresAt time.Time
}

func (s Session) ExpiredAt(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
