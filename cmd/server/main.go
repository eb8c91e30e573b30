package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stockview-be/internal/backend"
	"stockview-be/internal/config"
	"stockview-be/internal/db"
	"stockview-be/internal/httpapi"
	"stockview-be/internal/inventory"
	"stockview-be/internal/logger"
	"stockview-be/internal/middleware"
	"stockview-be/internal/notify"
	"stockview-be/internal/product"
	"stockview-be/internal/session"
	"stockview-be/internal/user"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Overridable in tests.
var (
	initDBFunc      = db.InitDB
	startServerFunc = func(ctx context.Context, srv *http.Server) error {
		errCh := make(chan error, 1)
		go func() { errCh <- srv.ListenAndServe() }()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}
	}
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.L().Fatal("server stopped", zap.Error(err))
	}
}

func run(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	var database *sql.DB
	if cfg.DBURL != "" {
		database = initDBFunc(cfg)
		defer database.Close()
	}

	handler, limiter, err := newServer(ctx, cfg, database)
	if err != nil {
		return err
	}
	go limiter.Run(ctx, time.Minute)

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.L().Info("server running",
		zap.String("addr", srv.Addr),
		zap.String("env", cfg.AppEnv),
		zap.Bool("postgres", database != nil),
		zap.Bool("redis_sessions", cfg.RedisAddr != ""),
	)
	return startServerFunc(ctx, srv)
}

// newServer wires the services. A nil database selects the seeded
// in-memory catalogue.
func newServer(ctx context.Context, cfg *config.Config, database *sql.DB) (http.Handler, *middleware.RateLimiter, error) {
	var repo product.Repository
	if database != nil {
		repo = product.NewPostgresRepository(database)
	} else {
		repo = product.NewMemoryRepository(product.SeedProducts())
	}

	mock, err := backend.NewMock(repo,
		backend.WithDelay(cfg.MockDelay),
		backend.WithFailure(cfg.MockFail),
	)
	if err != nil {
		return nil, nil, err
	}

	feed := notify.NewRecorder(notify.DefaultRecorderCapacity)
	sink := notify.Multi(feed, notify.LogSink{})

	inv := inventory.NewService(repo, mock, sink, cfg.PageSize)
	if err := inv.Load(ctx); err != nil {
		return nil, nil, err
	}

	sess := session.New(newSessionStore(cfg))
	if err := sess.Init(ctx); err != nil {
		logger.L().Warn("starting with an empty session", zap.Error(err))
	}
	users := user.NewService(mock, sess, sink, cfg.JWTSecret)

	limiter := middleware.NewRateLimiter(cfg.InternalSecretKey)
	router := httpapi.NewRouter(httpapi.RouterParams{
		Handler:    httpapi.NewHandler(inv, users, feed, cfg.IsProduction()),
		Limiter:    limiter,
		JWTSecret:  cfg.JWTSecret,
		CORSOrigin: cfg.CORSOrigin,
	})
	return router, limiter, nil
}

func newSessionStore(cfg *config.Config) session.Store {
	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		return session.NewRedisStore(client, cfg.SessionKey)
	}
	return session.NewFileStore(cfg.SessionFile)
}
