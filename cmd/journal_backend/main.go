package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SscSPs/journal_engine/internal/core/ports/repositories"
	"github.com/SscSPs/journal_engine/internal/core/services"
	"github.com/SscSPs/journal_engine/internal/dto"
	"github.com/SscSPs/journal_engine/internal/handlers"
	"github.com/SscSPs/journal_engine/internal/middleware"
	"github.com/SscSPs/journal_engine/internal/platform/config"
	auditmongo "github.com/SscSPs/journal_engine/internal/repositories/audit/mongo"
	"github.com/SscSPs/journal_engine/internal/repositories/database/memory"
	"github.com/SscSPs/journal_engine/internal/repositories/database/pgsql"
	"github.com/SscSPs/journal_engine/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	limitermemory "github.com/ulule/limiter/v3/drivers/store/memory"
	limiterredis "github.com/ulule/limiter/v3/drivers/store/redis"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

const shutdownTimeout = 10 * time.Second

// @title Journal Engine API
// @version 1.0
// @description Double-entry journal entries with an approval workflow, ledger posting and an audit trail.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, cleanup, err := setupRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to set up storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	serviceContainer := services.NewServiceContainer(repos)

	rateLimiter, err := newRateLimiter(cfg)
	if err != nil {
		logger.Error("Failed to set up rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := dto.RegisterValidators(v); err != nil {
			logger.Error("Failed to register validators", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, rateLimiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shut down", slog.String("error", err.Error()))
	}
}

// setupRepositories builds the primary store and, when configured, the mongo audit sink.
// The returned cleanup closes every connection that was opened.
func setupRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (repositories.RepositoryProvider, func(), error) {
	var (
		repos   repositories.RepositoryProvider
		closers []func()
	)
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
	fail := func(err error) (repositories.RepositoryProvider, func(), error) {
		cleanup()
		return repositories.RepositoryProvider{}, func() {}, err
	}

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		accounts := demoAccounts()
		store := memory.NewStore()
		store.SeedAccounts(accounts...)
		repos = store.Provider()
		logger.Info("In-memory store ready", slog.Int("accounts", len(accounts)))
	default:
		dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return fail(err)
		}
		closers = append(closers, func() { database.ClosePgxPool(dbPool) })
		logger.Info("Database connection pool established.")

		if err := runMigrations(cfg, logger); err != nil {
			return fail(err)
		}
		if cfg.EnableDBCheck {
			if err := checkSchema(ctx, dbPool); err != nil {
				return fail(err)
			}
			logger.Info("Database schema check passed.")
		}
		repos = pgsql.NewRepositoryProvider(dbPool)
	}

	if cfg.AuditSink == config.AuditSinkMongo {
		client, err := database.NewMongoClient(ctx, cfg.MongoURL)
		if err != nil {
			return fail(err)
		}
		closers = append(closers, func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			database.CloseMongoClient(closeCtx, client)
		})

		eventLogs := auditmongo.NewEventLogRepository(client.Database(cfg.MongoDatabase))
		if err := eventLogs.EnsureIndexes(ctx); err != nil {
			return fail(err)
		}
		repos.AuditRepo = eventLogs
		logger.Info("Audit events go to MongoDB", slog.String("database", cfg.MongoDatabase))
	}

	return repos, cleanup, nil
}

func runMigrations(cfg *config.Config, logger *slog.Logger) error {
	logger.Info("Running database migrations...")
	// Using pgx/v5/stdlib driver to be compatible with the main pool
	migrationDB, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()
	if err := migrationDB.Ping(); err != nil {
		return err
	}

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(cfg.MigrationsPath, "postgres", driver)
	if err != nil {
		return err
	}

	upErr := m.Up()
	if upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
		return upErr
	}
	if sourceErr, dbErr := m.Close(); sourceErr != nil || dbErr != nil {
		return errors.Join(sourceErr, dbErr)
	}

	if errors.Is(upErr, migrate.ErrNoChange) {
		logger.Info("No new migrations to apply.")
	} else {
		logger.Info("Database migrations applied successfully.")
	}
	return nil
}

// checkSchema confirms the entry-number counter the posting workflow relies on exists.
func checkSchema(ctx context.Context, pool *pgxpool.Pool) error {
	var n int64
	return pool.QueryRow(ctx, `SELECT value FROM counters WHERE name = 'journal_entry'`).Scan(&n)
}

// newRateLimiter uses redis when REDIS_URL is set so that limits are shared between instances.
func newRateLimiter(cfg *config.Config) (*limiter.Limiter, error) {
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		return nil, err
	}

	if cfg.RedisURL == "" {
		return limiter.New(limitermemory.NewStore(), rate), nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	store, err := limiterredis.NewStoreWithOptions(redis.NewClient(opts), limiter.StoreOptions{
		Prefix: "journal_engine_limiter",
	})
	if err != nil {
		return nil, err
	}
	return limiter.New(store, rate), nil
}
