package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("memory store needs no database", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "Memory")
		t.Setenv("AUDIT_SINK", "postgres")
		t.Setenv("PGSQL_URL", "")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example,")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, StorageDriverMemory, cfg.StorageDriver)
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
		assert.Equal(t, "300-M", cfg.RateLimit)
	})

	t.Run("postgres requires PGSQL_URL", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "postgres")
		t.Setenv("PGSQL_URL", "")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "PGSQL_URL")
	})

	t.Run("mongo sink requires MONGO_URL", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "memory")
		t.Setenv("AUDIT_SINK", "mongo")
		t.Setenv("MONGO_URL", "")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "MONGO_URL")
	})

	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "sqlite")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "STORAGE_DRIVER")
	})

	t.Run("production refuses the default secret", func(t *testing.T) {
		t.Setenv("STORAGE_DRIVER", "memory")
		t.Setenv("AUDIT_SINK", "postgres")
		t.Setenv("IS_PRODUCTION", "true")
		t.Setenv("JWT_SECRET", "")

		_, err := LoadConfig()
		assert.ErrorContains(t, err, "JWT_SECRET")
	})
}
