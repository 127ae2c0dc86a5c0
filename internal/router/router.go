package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/todoer/backend/api/handler"
)

type Handlers struct {
	Page   *apiHandler.PageHandler
	Auth   *apiHandler.AuthHandler
	Me     *apiHandler.MeHandler
	Todo   *apiHandler.TodoHandler
	Health *apiHandler.HealthHandler
}

func New(handlers Handlers, authMiddleware func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	// Pages
	r.GET("/", handlers.Page.Index)
	r.GET("/login", handlers.Page.Login)

	// Auth flow
	r.GET("/auth/google", handlers.Auth.Login)
	r.GET("/auth/google/callback", handlers.Auth.Callback)
	r.POST("/logout", handlers.Auth.Logout)

	// Protected API
	r.GET("/api/v1/me", authMiddleware(handlers.Me.Get))

	r.GET("/api/v1/todos", authMiddleware(handlers.Todo.List))
	r.POST("/api/v1/todos", authMiddleware(handlers.Todo.Create))
	r.POST("/api/v1/todos/{id}/done", authMiddleware(handlers.Todo.MarkDone))
	r.POST("/api/v1/todos/{id}/undone", authMiddleware(handlers.Todo.MarkUndone))
	r.PUT("/api/v1/todos/{id}", authMiddleware(handlers.Todo.Update))
	r.DELETE("/api/v1/todos/{id}", authMiddleware(handlers.Todo.Delete))

	return r
}
