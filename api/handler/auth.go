package handler

import (
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/todoer/backend/domain"
	"github.com/todoer/backend/pkg/httpcontext"
	authUC "github.com/todoer/backend/usecase/auth"
)

type AuthHandler struct {
	baseHandler
	uc         *authUC.UseCase
	cookieName string
}

func NewAuthHandler(uc *authUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger, cookieName string) *AuthHandler {
	return &AuthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
		cookieName:  cookieName,
	}
}

// @Summary Redirect to the identity provider
// @Tags auth
// @Router /auth/google [get]
func (h *AuthHandler) Login(ctx *fasthttp.RequestCtx) {
	url, err := h.uc.LoginURL()
	if err != nil {
		h.logger.Error("failed to build login url", zap.Error(err))
		ctx.Redirect("/login", fasthttp.StatusFound)
		return
	}
	ctx.Redirect(url, fasthttp.StatusFound)
}

// @Summary Provider callback: exchange the assertion for a session
// @Tags auth
// @Router /auth/google/callback [get]
func (h *AuthHandler) Callback(ctx *fasthttp.RequestCtx) {
	code := string(ctx.QueryArgs().Peek("code"))
	state := string(ctx.QueryArgs().Peek("state"))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	session, err := h.uc.HandleCallback(stdCtx, code, state)
	if err != nil {
		h.logger.Warn("sign-in rejected", zap.Error(err))
		ctx.Redirect("/login", fasthttp.StatusFound)
		return
	}

	h.setSessionCookie(ctx, session)
	ctx.Redirect("/", fasthttp.StatusFound)
}

// @Summary End the session
// @Tags auth
// @Router /logout [post]
func (h *AuthHandler) Logout(ctx *fasthttp.RequestCtx) {
	sessionID := string(ctx.Request.Header.Cookie(h.cookieName))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	if err := h.uc.Logout(stdCtx, sessionID); err != nil {
		h.logger.Warn("session delete failed", zap.Error(err))
	}

	h.clearSessionCookie(ctx)
	ctx.Redirect("/login", fasthttp.StatusFound)
}

func (h *AuthHandler) setSessionCookie(ctx *fasthttp.RequestCtx, session *domain.Session) {
	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)

	cookie.SetKey(h.cookieName)
	cookie.SetValue(session.ID)
	cookie.SetPath("/")
	cookie.SetExpire(session.ExpiresAt)
	cookie.SetHTTPOnly(true)
	cookie.SetSameSite(fasthttp.CookieSameSiteLaxMode)
	ctx.Response.Header.SetCookie(cookie)
}

func (h *AuthHandler) clearSessionCookie(ctx *fasthttp.RequestCtx) {
	cookie := fasthttp.AcquireCookie()
	defer fasthttp.ReleaseCookie(cookie)

	cookie.SetKey(h.cookieName)
	cookie.SetValue("")
	cookie.SetPath("/")
	cookie.SetExpire(time.Unix(0, 0))
	cookie.SetHTTPOnly(true)
	ctx.Response.Header.SetCookie(cookie)
}
