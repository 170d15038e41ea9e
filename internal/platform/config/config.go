package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"

	AuditSinkPostgres = "postgres"
	AuditSinkMongo    = "mongo"

	defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool
	JWTSecret     string
	JWTIssuer     string

	// StorageDriver selects the primary store: postgres or memory.
	StorageDriver string
	// AuditSink selects where audit events go: the primary store (postgres) or mongo.
	AuditSink     string
	MongoURL      string
	MongoDatabase string

	// RateLimit is in ulule/limiter format, e.g. "100-M".
	RateLimit string
	// RedisURL switches the rate limiter to a shared redis store when set.
	RedisURL string

	CORSAllowedOrigins []string
	MigrationsPath     string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_ISSUER", "journal-engine")
	viper.SetDefault("STORAGE_DRIVER", StorageDriverPostgres)
	viper.SetDefault("AUDIT_SINK", AuditSinkPostgres)
	viper.SetDefault("MONGO_URL", "")
	viper.SetDefault("MONGO_DATABASE", "journal_engine")
	viper.SetDefault("RATE_LIMIT", "300-M")
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("MIGRATIONS_PATH", "file://migrations")

	viper.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:    viper.GetString("PGSQL_URL"),
		Port:           viper.GetString("PORT"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  viper.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:      viper.GetString("JWT_SECRET"),
		JWTIssuer:      viper.GetString("JWT_ISSUER"),
		StorageDriver:  strings.ToLower(strings.TrimSpace(viper.GetString("STORAGE_DRIVER"))),
		AuditSink:      strings.ToLower(strings.TrimSpace(viper.GetString("AUDIT_SINK"))),
		MongoURL:       viper.GetString("MONGO_URL"),
		MongoDatabase:  viper.GetString("MONGO_DATABASE"),
		RateLimit:      viper.GetString("RATE_LIMIT"),
		RedisURL:       viper.GetString("REDIS_URL"),
		MigrationsPath: viper.GetString("MIGRATIONS_PATH"),
	}
	cfg.CORSAllowedOrigins = splitList(viper.GetString("CORS_ALLOWED_ORIGINS"))

	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set. Defaulting.", "port", cfg.Port)
	}

	switch cfg.StorageDriver {
	case StorageDriverPostgres:
		if cfg.DatabaseURL == "" {
			return nil, fmt.Errorf("PGSQL_URL is required when STORAGE_DRIVER is %s", StorageDriverPostgres)
		}
	case StorageDriverMemory:
		slog.Warn("Using the in-memory store. Nothing will survive a restart.")
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q", cfg.StorageDriver)
	}

	switch cfg.AuditSink {
	case AuditSinkPostgres:
	case AuditSinkMongo:
		if cfg.MongoURL == "" {
			return nil, fmt.Errorf("MONGO_URL is required when AUDIT_SINK is %s", AuditSinkMongo)
		}
	default:
		return nil, fmt.Errorf("unknown AUDIT_SINK %q", cfg.AuditSink)
	}

	if cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
