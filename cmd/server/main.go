package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/todoer/backend/api/handler"
	"github.com/todoer/backend/internal/config"
	"github.com/todoer/backend/internal/identity"
	"github.com/todoer/backend/internal/infrastructure/monitor"
	pgInfra "github.com/todoer/backend/internal/infrastructure/postgres"
	redisInfra "github.com/todoer/backend/internal/infrastructure/redis"
	"github.com/todoer/backend/internal/middleware"
	"github.com/todoer/backend/internal/router"
	"github.com/todoer/backend/internal/services/lifecycle"
	"github.com/todoer/backend/pkg/httpcontext"
	"github.com/todoer/backend/pkg/logger"
	"github.com/todoer/backend/repository/postgres"
	redisRepo "github.com/todoer/backend/repository/redis"
	authUC "github.com/todoer/backend/usecase/auth"
	todoUC "github.com/todoer/backend/usecase/todo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	if err := pgInfra.RunMigrations(cfg, zapLogger); err != nil {
		zapLogger.Fatal("migrations failed", zap.Error(err))
	}

	pool, err := pgInfra.NewPool(appCtx, cfg.Database, zapLogger)
	if err != nil {
		zapLogger.Fatal("postgres connection failed", zap.Error(err))
	}
	manager.Register("postgres", func(ctx context.Context) error {
		pool.Close()
		return nil
	})

	redisClient, err := redisInfra.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("redis connection failed", zap.Error(err))
	}
	manager.Register("redis", func(ctx context.Context) error {
		return redisClient.Close()
	})

	mon := monitor.New(pool, redisClient, 10*time.Second, zapLogger)
	mon.Start()
	manager.Register("monitor", func(ctx context.Context) error {
		mon.Stop()
		return nil
	})

	userRepo := postgres.NewUserRepository(pool)
	todoRepo := postgres.NewTodoRepository(pool)
	sessionRepo := redisRepo.NewSessionRepository(redisClient, cfg.Session.TTL)

	google := identity.NewGoogle(identity.GoogleConfig{
		ClientID:     cfg.Google.ClientID,
		ClientSecret: cfg.Google.ClientSecret,
		RedirectURL:  cfg.Google.RedirectURL,
	})

	authUseCase := authUC.New(google, userRepo, sessionRepo, authUC.Config{
		StateSecret: []byte(cfg.Session.StateSecret),
		StateTTL:    cfg.Session.StateTTL,
		SessionTTL:  cfg.Session.TTL,
	}, zapLogger)
	todoUseCase := todoUC.New(todoRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	pageHandler, err := apiHandler.NewPageHandler(authUseCase, ctxAdapter, zapLogger, cfg.Session.CookieName)
	if err != nil {
		zapLogger.Fatal("template parse failed", zap.Error(err))
	}

	handlers := router.Handlers{
		Page:   pageHandler,
		Auth:   apiHandler.NewAuthHandler(authUseCase, ctxAdapter, zapLogger, cfg.Session.CookieName),
		Me:     apiHandler.NewMeHandler(authUseCase, ctxAdapter, zapLogger),
		Todo:   apiHandler.NewTodoHandler(todoUseCase, ctxAdapter, zapLogger),
		Health: apiHandler.NewHealthHandler(mon, ctxAdapter, zapLogger),
	}

	authMiddleware := middleware.SessionAuth(authUseCase, cfg.Session.CookieName, zapLogger)
	r := router.New(handlers, authMiddleware)

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started", zap.String("address", cfg.Address()))
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}
