package admin

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ragnar-alan/coffeStoreAPI/internal/admin/handlers"
	"github.com/ragnar-alan/coffeStoreAPI/internal/admin/repository"
	"github.com/ragnar-alan/coffeStoreAPI/internal/admin/service"
	"github.com/ragnar-alan/coffeStoreAPI/internal/config"
	"github.com/ragnar-alan/coffeStoreAPI/internal/connections/database"
	"github.com/ragnar-alan/coffeStoreAPI/internal/connections/rabbitmq"
	"github.com/ragnar-alan/coffeStoreAPI/pkg/logger"
)

// Run starts the admin API and blocks until ctx is canceled.
func Run(ctx context.Context, cfg *config.Config, lg logger.Logger) error {
	pool, err := database.Connect(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer pool.Close()

	rmq, err := rabbitmq.Dial(cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	defer rmq.Close()

	if err := rmq.DeclareTopology(); err != nil {
		return fmt.Errorf("failed to declare rabbitmq topology: %w", err)
	}

	svc := service.New(
		repository.NewOrderRepository(pool),
		repository.NewProductRepository(pool),
		rmq,
		cfg.Discounts,
		lg,
	)

	if cfg.App.Env == "production" || cfg.App.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()
	engine.Use(gin.Recovery(), handlers.RequestID(), handlers.AccessLog(lg))
	handlers.RegisterRoutes(engine, handlers.New(svc))

	srv := &http.Server{Addr: cfg.Server.Address(), Handler: engine}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	lg.Info("admin api listening", logger.String("addr", cfg.Server.Address()))

	select {
	case <-ctx.Done():
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(sctx)
		return nil
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}
