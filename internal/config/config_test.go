package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "STORE_DRIVER", "NEWS_HTTP_TIMEOUT", "AI_RATE_LIMIT_RPS", "AI_RATE_LIMIT_BURST", "CORS_ALLOW_ORIGINS", "GEMINI_MODEL"} {
		t.Setenv(k, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "memory", cfg.StoreDriver)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, 10*time.Second, cfg.NewsHTTPTimeout)
	assert.Equal(t, 2.0, cfg.AIRateLimitRPS)
	assert.Equal(t, 5, cfg.AIRateLimitBurst)
	assert.True(t, cfg.AllowAllOrigins())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_DRIVER", "Postgres")
	t.Setenv("DATABASE_DSN", "host=localhost dbname=jobtracker")
	t.Setenv("NEWS_HTTP_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:3000, https://tracker.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "postgres", cfg.StoreDriver)
	assert.Equal(t, 3*time.Second, cfg.NewsHTTPTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://tracker.example"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.AllowAllOrigins())
}

func TestLoad_BlankOriginsAllowAll(t *testing.T) {
	t.Setenv("STORE_DRIVER", "")
	t.Setenv("CORS_ALLOW_ORIGINS", " , ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.CORSAllowOrigins)
	assert.True(t, cfg.AllowAllOrigins())
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("postgres without dsn", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "postgres")
		t.Setenv("DATABASE_DSN", "")
		_, err := Load()
		assert.ErrorContains(t, err, "DATABASE_DSN")
	})
	t.Run("unknown driver", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "mongo")
		_, err := Load()
		assert.ErrorContains(t, err, "STORE_DRIVER")
	})
	t.Run("bad timeout", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "")
		t.Setenv("NEWS_HTTP_TIMEOUT", "soon")
		_, err := Load()
		assert.ErrorContains(t, err, "NEWS_HTTP_TIMEOUT")
	})
	t.Run("bad burst", func(t *testing.T) {
		t.Setenv("STORE_DRIVER", "")
		t.Setenv("NEWS_HTTP_TIMEOUT", "")
		t.Setenv("AI_RATE_LIMIT_BURST", "0")
		_, err := Load()
		assert.ErrorContains(t, err, "rate limit")
	})
}
