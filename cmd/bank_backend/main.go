package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/adapters/messaging/kafka"
	"github.com/SscSPs/bank_ledger_app/internal/adapters/messaging/rabbitmq"
	"github.com/SscSPs/bank_ledger_app/internal/core/ports/events"
	portsrepo "github.com/SscSPs/bank_ledger_app/internal/core/ports/repositories"
	"github.com/SscSPs/bank_ledger_app/internal/core/services"
	"github.com/SscSPs/bank_ledger_app/internal/handlers"
	"github.com/SscSPs/bank_ledger_app/internal/middleware"
	"github.com/SscSPs/bank_ledger_app/internal/platform/config"
	"github.com/SscSPs/bank_ledger_app/internal/repositories/cache"
	"github.com/SscSPs/bank_ledger_app/internal/repositories/database/boltdb"
	"github.com/SscSPs/bank_ledger_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/bank_ledger_app/internal/utils"
	"github.com/SscSPs/bank_ledger_app/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

// @title Bank Ledger API
// @version 1.0
// @description Accounts, deposits, withdrawals, transfers and bank statements over an append-only ledger.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := run(logger); err != nil {
		logger.Error("Server stopped with error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if repos.Close == nil {
			return
		}
		if cerr := repos.Close(); cerr != nil {
			logger.Error("Error closing store", slog.String("error", cerr.Error()))
		}
	}()

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer redisClient.Close()
		repos.AccountRepo = cache.NewAccountRepository(repos.AccountRepo, redisClient, cfg.AccountCacheTTL)
		logger.Info("Account cache enabled", slog.Duration("ttl", cfg.AccountCacheTTL))
	}

	publisher, err := setupPublisher(cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := publisher.Close(); cerr != nil {
			logger.Error("Error closing event publisher", slog.String("error", cerr.Error()))
		}
	}()

	rateLimiter, err := setupRateLimiter(cfg, redisClient)
	if err != nil {
		return err
	}

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer posthogClient.Close()

	serviceContainer := services.NewServiceContainer(repos, publisher)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware: logging, recovery, CORS, rate limit, analytics
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(corsConfig(cfg)),
		middleware.RateLimit(rateLimiter),
		middleware.PosthogMiddleware(posthogClient),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		return fmt.Errorf("failed to set trusted proxies: %w", err)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// setupRepositories opens the configured store. Postgres migrations run before the pool is handed out.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverBolt:
		store, err := boltdb.Open(cfg.BoltPath)
		if err != nil {
			return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to open bolt store: %w", err)
		}
		logger.Info("Using bolt store", slog.String("path", cfg.BoltPath))
		return boltdb.NewRepositoryProvider(store), nil
	default:
		logger.Info("Running database migrations...")
		if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
			return portsrepo.RepositoryProvider{}, err
		}
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return portsrepo.RepositoryProvider{}, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		logger.Info("Database connection pool established.")
		return pgsql.NewRepositoryProvider(dbPool), nil
	}
}

// setupPublisher returns the broker publisher for committed ledger entries.
func setupPublisher(cfg *config.Config, logger *slog.Logger) (events.LedgerEventPublisher, error) {
	switch cfg.EventsDriver {
	case config.EventsDriverRabbitMQ:
		producer, err := rabbitmq.NewEventProducer(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			return nil, fmt.Errorf("failed to create rabbitmq producer: %w", err)
		}
		logger.Info("Publishing ledger events to rabbitmq", slog.String("exchange", cfg.RabbitMQExchange))
		return producer, nil
	case config.EventsDriverKafka:
		publisher, err := kafka.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
		}
		logger.Info("Publishing ledger events to kafka", slog.String("topic", cfg.KafkaTopic))
		return publisher, nil
	default:
		return events.NoopPublisher{}, nil
	}
}

// setupRateLimiter keeps counters in redis when available so replicas share them.
func setupRateLimiter(cfg *config.Config, redisClient *redis.Client) (*limiter.Limiter, error) {
	store := memory.NewStore()
	if redisClient != nil {
		redisStore, err := sredis.NewStoreWithOptions(redisClient, limiter.StoreOptions{Prefix: "bank_ledger_limiter"})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis rate limit store: %w", err)
		}
		store = redisStore
	}
	return middleware.NewRateLimiter(cfg.RateLimit, store)
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "X-Request-ID")
	corsCfg.ExposeHeaders = []string{"Location", "X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	return corsCfg
}
