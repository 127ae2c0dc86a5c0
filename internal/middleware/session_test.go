package middleware_test

import (
	"context"
	"testing"

	"github.com/valyala/fasthttp"

	"github.com/todoer/backend/domain"
	"github.com/todoer/backend/internal/middleware"
)

type staticResolver struct {
	sessionID string
	user      *domain.User
}

func (r *staticResolver) ResolveSession(ctx context.Context, sessionID string) (*domain.User, error) {
	if r.user != nil && sessionID == r.sessionID {
		return r.user, nil
	}
	return nil, domain.ErrUnauthorized
}

func runMiddleware(resolver middleware.SessionResolver, cookie string) (*fasthttp.RequestCtx, bool) {
	var reached bool
	handler := middleware.SessionAuth(resolver, "todoer_session", nil)(func(ctx *fasthttp.RequestCtx) {
		reached = true
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/api/v1/todos")
	if cookie != "" {
		ctx.Request.Header.SetCookie("todoer_session", cookie)
	}
	handler(ctx)
	return ctx, reached
}

func TestSessionAuthPassesValidSession(t *testing.T) {
	resolver := &staticResolver{
		sessionID: "sess-1",
		user:      &domain.User{ID: "user-1"},
	}

	ctx, reached := runMiddleware(resolver, "sess-1")
	if !reached {
		t.Fatal("handler was not invoked for a valid session")
	}
	if got := string(ctx.Request.Header.Peek(middleware.UserIDHeader)); got != "user-1" {
		t.Errorf("expected user id header %q, got %q", "user-1", got)
	}
}

func TestSessionAuthRejectsMissingCookie(t *testing.T) {
	ctx, reached := runMiddleware(&staticResolver{}, "")
	if reached {
		t.Fatal("handler must not run without a session cookie")
	}
	if ctx.Response.StatusCode() != fasthttp.StatusUnauthorized {
		t.Errorf("expected 401, got %d", ctx.Response.StatusCode())
	}
}

func TestSessionAuthRejectsUnknownSession(t *testing.T) {
	resolver := &staticResolver{sessionID: "sess-1", user: &domain.User{ID: "user-1"}}

	ctx, reached := runMiddleware(resolver, "sess-2")
	if reached {
		t.Fatal("handler must not run for an unknown session")
	}
	if ctx.Response.StatusCode() != fasthttp.StatusUnauthorized {
		t.Errorf("expected 401, got %d", ctx.Response.StatusCode())
	}
}

func TestSessionAuthStripsSpoofedHeader(t *testing.T) {
	var seen string
	handler := middleware.SessionAuth(&staticResolver{}, "todoer_session", nil)(func(ctx *fasthttp.RequestCtx) {
		seen = string(ctx.Request.Header.Peek(middleware.UserIDHeader))
	})

	ctx := &fasthttp.RequestCtx{}
	ctx.Request.SetRequestURI("/api/v1/todos")
	ctx.Request.Header.Set(middleware.UserIDHeader, "victim")
	handler(ctx)

	if ctx.Response.StatusCode() != fasthttp.StatusUnauthorized {
		t.Errorf("spoofed identity without a session must be rejected, got %d", ctx.Response.StatusCode())
	}
	if seen != "" {
		t.Errorf("spoofed header leaked through: %q", seen)
	}
}
