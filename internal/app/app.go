package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/revisaquest-backend/internal/adapter/postgres"
	planrepo "github.com/heartmarshall/revisaquest-backend/internal/adapter/postgres/plan"
	reviewlogrepo "github.com/heartmarshall/revisaquest-backend/internal/adapter/postgres/reviewlog"
	settingsrepo "github.com/heartmarshall/revisaquest-backend/internal/adapter/postgres/settings"
	subjectrepo "github.com/heartmarshall/revisaquest-backend/internal/adapter/postgres/subject"
	topicrepo "github.com/heartmarshall/revisaquest-backend/internal/adapter/postgres/topic"
	"github.com/heartmarshall/revisaquest-backend/internal/config"
	plansvc "github.com/heartmarshall/revisaquest-backend/internal/service/plan"
	subjectsvc "github.com/heartmarshall/revisaquest-backend/internal/service/subject"
	topicsvc "github.com/heartmarshall/revisaquest-backend/internal/service/topic"
	"github.com/heartmarshall/revisaquest-backend/internal/transport/middleware"
	"github.com/heartmarshall/revisaquest-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, runs migrations, wires repositories, services, and the HTTP
// transport, then serves until ctx is cancelled and shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, pool); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
		logger.Info("migrations applied")
	}

	txm := postgres.NewTxManager(pool)

	topics := topicrepo.New(pool)
	subjects := subjectrepo.New(pool)
	plans := planrepo.New(pool)
	reviews := reviewlogrepo.New(pool)
	settings := settingsrepo.New(pool, cfg.Study.DefaultTopicsPerDay)

	planService := plansvc.NewService(logger, topics, subjects, plans, reviews, settings, txm)
	subjectService := subjectsvc.NewService(logger, subjects, topics, reviews, txm)
	topicService := topicsvc.NewService(logger, topics, subjects, reviews, txm)

	loc := cfg.Study.Location()

	var limiter *middleware.RateLimiter
	if cfg.Server.RateLimitPerMinute > 0 {
		limiter = middleware.NewRateLimiter(time.Minute)
		defer limiter.Stop()
	}

	router := rest.NewRouter(cfg, logger, rest.RouterDeps{
		Health:  rest.NewHealthHandler(pool, BuildVersion()),
		Plan:    rest.NewPlanHandler(planService, logger, loc),
		Subject: rest.NewSubjectHandler(subjectService, logger),
		Topic:   rest.NewTopicHandler(topicService, logger, loc),
		Limiter: limiter,
	})

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("stopped")
	return nil
}
