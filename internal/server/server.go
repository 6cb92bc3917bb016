package server

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"velocity-proxy/cmd/app"
	"velocity-proxy/internal/api/v1/handler"
	"velocity-proxy/internal/api/v1/middleware"
	"velocity-proxy/internal/common"
	"velocity-proxy/internal/features/tools"
	"velocity-proxy/internal/features/velocity"
	"velocity-proxy/internal/features/velocity/domain"
	"velocity-proxy/internal/features/velocity/usecase"
)

// Run starts the proxy server and blocks until shutdown
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := common.NewLogger(common.LoggerConfig{
		Level:  common.LogLevel(cfg.App.LogLevel),
		Output: os.Stdout,
	})
	slog.SetDefault(logger)

	services, err := velocity.NewServices(velocity.Config{
		Credentials: domain.Credentials{
			BaseURL:   cfg.Velocity.BaseURL,
			Username:  cfg.Velocity.Username,
			Password:  cfg.Velocity.Password,
			PortalURL: cfg.Velocity.PortalURL,
		},
		Timeout:            cfg.Velocity.Timeout,
		InsecureSkipVerify: cfg.Velocity.InsecureSkipVerify,
	})
	if err != nil {
		log.Fatalf("failed to initialize velocity services: %v", err)
	}
	defer services.Close()

	services.Metrics.Register()

	router := buildRouter(services.API)

	srv := &http.Server{
		Addr:    cfg.Server.Port,
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		return
	}
	slog.Info("server stopped")
}

// buildRouter assembles the gin engine with all routes attached
func buildRouter(api *usecase.API) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), middleware.Logging())

	dispatcher := tools.NewDispatcher(tools.NewRegistry(api))

	handler.NewHealthHandler().RegisterRoutes(router)
	handler.NewToolsHandler(dispatcher).RegisterRoutes(router.Group("/api/v1"))

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
