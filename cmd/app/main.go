package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fastblog/internal/adapters/csvfeed"
	dbadapter "fastblog/internal/adapters/database"
	"fastblog/internal/adapters/filestore"
	"fastblog/internal/adapters/httpapi"
	redisadapter "fastblog/internal/adapters/redis"
	"fastblog/internal/config"
	authEntity "fastblog/internal/core/auth"
	authapp "fastblog/internal/core/auth/service"
	eventapp "fastblog/internal/core/event/service"
	postapp "fastblog/internal/core/post/service"
	postPort "fastblog/internal/ports/post"

	"go.uber.org/zap"
)

func main() {
	envErr := config.LoadDotEnv()
	logger := config.InitLogger(os.Getenv("APP_ENV"))
	if envErr != nil {
		logger.Info("No .env file found, using system environment variables")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, logger)
	stop()
	if err != nil {
		logger.Error("App stopped", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

// run serves until ctx is cancelled or the server fails. Every opened
// connection is closed before it returns.
func run(ctx context.Context, logger *zap.Logger) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	defer closeResources(logger)
	store, err := newPostStore(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("opening %s post store: %w", cfg.PostStore, err)
	}

	authSvc := authapp.NewAuthService(
		authEntity.Credentials{
			Username:     cfg.BasicUsername,
			Password:     cfg.BasicPassword,
			PasswordHash: []byte(cfg.BasicPasswordHash),
			BearerToken:  cfg.BearerToken,
		},
		authEntity.TokenSettings{Secret: cfg.JWTSecret, Issuer: cfg.JWTIssuer, TTL: cfg.JWTTTL},
	)
	postSvc := postapp.NewPostService(store, postPort.DefaultLocator, logger)
	eventSvc := eventapp.NewEventService(csvfeed.NewClient(cfg.EventsCSVURL, cfg.EventsTimeout), logger)

	r, err := httpapi.SetupRoutes(authSvc, postSvc, eventSvc, logger)
	if err != nil {
		return fmt.Errorf("building router: %w", err)
	}

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("App is running...", zap.String("addr", srv.Addr), zap.String("store", cfg.PostStore))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

// newPostStore opens the backend selected by POST_STORE.
func newPostStore(ctx context.Context, cfg config.Config, logger *zap.Logger) (postPort.PostStore, error) {
	switch cfg.PostStore {
	case config.StoreRedis:
		client, err := config.InitRedis(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return redisadapter.NewPostRepositoryRedis(client, postPort.DefaultLocator, logger), nil
	case config.StoreMySQL:
		db, err := config.InitDB(cfg.DBDSN)
		if err != nil {
			return nil, err
		}
		repo := dbadapter.NewPostRepositoryDatabase(db)
		if err := repo.Migrate(); err != nil {
			return nil, err
		}
		logger.Info("Database migrations completed")
		return repo, nil
	default:
		repo, err := filestore.NewPostRepositoryFile(cfg.PostDir, postPort.DefaultLocator, logger)
		if err != nil {
			return nil, err
		}
		return repo, nil
	}
}

// closeResources closes whichever Redis or database connection was opened.
func closeResources(logger *zap.Logger) {
	if config.RedisClient != nil {
		if err := config.RedisClient.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
		config.RedisClient = nil
	}

	if config.DB != nil {
		sqlDB, err := config.DB.DB()
		config.DB = nil
		if err != nil {
			logger.Error("Error getting raw DB", zap.Error(err))
			return
		}
		if err := sqlDB.Close(); err != nil {
			logger.Error("Error closing database connection", zap.Error(err))
		}
	}
}
