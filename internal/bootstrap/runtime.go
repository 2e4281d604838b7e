// Package bootstrap wires runtime dependencies for the application binaries.
package bootstrap

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"quill/internal/cache"
	"quill/internal/config"
	"quill/internal/database"
	"quill/internal/models"
	"quill/internal/seed"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedBuiltIns bool
}

// InitRuntime connects to DB and Redis and optionally creates the built-in
// groups. The Redis client may be nil when the cache is unreachable; the
// application runs without it.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if err := ensureDevAdmin(cfg, db); err != nil {
		return nil, nil, fmt.Errorf("failed to bootstrap development admin: %w", err)
	}

	if opts.SeedBuiltIns {
		if err := seed.Groups(db); err != nil {
			return nil, nil, fmt.Errorf("failed to seed built-in groups: %w", err)
		}
	}

	return db, r, nil
}

// ensureDevAdmin guarantees a usable admin account in development so the
// group management endpoints work on a fresh database.
func ensureDevAdmin(cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	if !strings.EqualFold(cfg.Env, "development") {
		return nil
	}

	var admin models.User
	findErr := db.Where("username = ?", "admin").First(&admin).Error
	switch {
	case errors.Is(findErr, gorm.ErrRecordNotFound):
		hash, err := bcrypt.GenerateFromPassword([]byte("Local-Admin-Pass-1!"), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash admin password: %w", err)
		}
		admin = models.User{
			Username: "admin",
			Email:    "admin@quill.local",
			Password: string(hash),
			IsAdmin:  true,
		}
		if err := db.Create(&admin).Error; err != nil {
			return err
		}
		log.Println("development admin account created (admin@quill.local)")
	case findErr != nil:
		return findErr
	default:
		if !admin.IsAdmin {
			if err := db.Model(&admin).Update("is_admin", true).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
