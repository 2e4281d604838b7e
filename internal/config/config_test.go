package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validProdConfig() *Config {
	return &Config{
		Env:        "production",
		Port:       "8460",
		JWTSecret:  "a-real-secret-with-enough-entropy!!",
		DBPassword: "not-the-default",
		DBSSLMode:  "require",
	}
}

func TestValidate(t *testing.T) {
	t.Run("valid production config", func(t *testing.T) {
		assert.NoError(t, validProdConfig().Validate())
	})

	t.Run("missing port", func(t *testing.T) {
		cfg := validProdConfig()
		cfg.Port = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := validProdConfig()
		cfg.JWTSecret = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("default jwt secret rejected in production", func(t *testing.T) {
		cfg := validProdConfig()
		cfg.JWTSecret = "your-secret-key-change-in-production"
		assert.Error(t, cfg.Validate())
	})

	t.Run("short jwt secret rejected in production", func(t *testing.T) {
		cfg := validProdConfig()
		cfg.JWTSecret = "short"
		assert.Error(t, cfg.Validate())
	})

	t.Run("default db password rejected in production", func(t *testing.T) {
		cfg := validProdConfig()
		cfg.DBPassword = "password"
		assert.Error(t, cfg.Validate())
	})

	t.Run("development tolerates weak settings", func(t *testing.T) {
		cfg := &Config{
			Env:       "development",
			Port:      "8460",
			JWTSecret: "dev-secret",
		}
		assert.NoError(t, cfg.Validate())
	})
}
