package middleware

import (
	"context"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/todoer/backend/domain"
)

// UserIDHeader carries the resolved user id to downstream handlers for the
// remainder of the request. It is stripped from every incoming request so a
// client can never smuggle an identity past the middleware.
const UserIDHeader = "X-User-ID"

// SessionResolver maps a session id from the cookie to the owning user.
type SessionResolver interface {
	ResolveSession(ctx context.Context, sessionID string) (*domain.User, error)
}

// SessionAuth rejects requests without a valid session cookie and propagates
// the resolved user id via the internal request header.
func SessionAuth(resolver SessionResolver, cookieName string, logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			ctx.Request.Header.Del(UserIDHeader)

			sessionID := string(ctx.Request.Header.Cookie(cookieName))
			if sessionID == "" {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			user, err := resolver.ResolveSession(ctx, sessionID)
			if err != nil {
				logger.Warn("session rejected", zap.Error(err))
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				return
			}

			ctx.Request.Header.Set(UserIDHeader, user.ID)
			next(ctx)
		}
	}
}
