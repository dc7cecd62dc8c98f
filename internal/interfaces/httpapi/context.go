package httpapi

import (
	"context"

	"github.com/copa-nordeste/copa-api/internal/domain/adminsession"
)

type contextKey string

const sessionContextKey contextKey = "admin_session"

func withSession(ctx context.Context, s adminsession.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

func sessionFromContext(ctx context.Context) (adminsession.Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(adminsession.Session)
	return s, ok
}
