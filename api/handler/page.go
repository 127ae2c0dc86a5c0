package handler

import (
	"html/template"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/todoer/backend/pkg/httpcontext"
	authUC "github.com/todoer/backend/usecase/auth"
	"github.com/todoer/backend/web"
)

// PageHandler serves the HTML shell. The pages carry no item data; the list
// is fetched as JSON and rendered client-side.
type PageHandler struct {
	baseHandler
	auth       *authUC.UseCase
	cookieName string
	templates  *template.Template
}

func NewPageHandler(auth *authUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger, cookieName string) (*PageHandler, error) {
	templates, err := template.ParseFS(web.Templates, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &PageHandler{
		baseHandler: newBaseHandler(adapter, logger),
		auth:        auth,
		cookieName:  cookieName,
		templates:   templates,
	}, nil
}

// @Summary List view shell
// @Tags pages
// @Router / [get]
func (h *PageHandler) Index(ctx *fasthttp.RequestCtx) {
	sessionID := string(ctx.Request.Header.Cookie(h.cookieName))

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	user, err := h.auth.ResolveSession(stdCtx, sessionID)
	if err != nil {
		ctx.Redirect("/login", fasthttp.StatusFound)
		return
	}

	name := user.Name
	if name == "" {
		name = user.Email
	}

	h.render(ctx, "index.html", map[string]interface{}{
		"UserName": name,
	})
}

// @Summary Sign-in page
// @Tags pages
// @Router /login [get]
func (h *PageHandler) Login(ctx *fasthttp.RequestCtx) {
	h.render(ctx, "login.html", nil)
}

func (h *PageHandler) render(ctx *fasthttp.RequestCtx, name string, data interface{}) {
	ctx.Response.Header.SetContentType("text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(ctx, name, data); err != nil {
		h.logger.Error("template render failed", zap.String("template", name), zap.Error(err))
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
	}
}
