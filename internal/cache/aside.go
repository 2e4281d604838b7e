package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"quill/internal/middleware"

	"github.com/redis/go-redis/v9"
)

// Aside implements the cache-aside pattern: on a hit, dest is populated from
// Redis; on a miss, fetch is invoked and its result (already written into
// dest by the caller's closure) is stored with the given TTL.
//
// A nil or unreachable client degrades to calling fetch directly, so the
// application keeps working without Redis.
func Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) error {
	if client == nil {
		return fetch()
	}

	raw, err := client.Get(ctx, key).Bytes()
	if err == nil {
		if unmarshalErr := json.Unmarshal(raw, dest); unmarshalErr == nil {
			middleware.PageCacheHits.WithLabelValues("hit").Inc()
			return nil
		}
		// Corrupt entry: drop it and fall through to fetch.
		client.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		middleware.Logger.WarnContext(ctx, "cache read failed, falling back to store",
			slog.String("key", key), slog.String("error", err.Error()))
	}

	middleware.PageCacheHits.WithLabelValues("miss").Inc()
	if err := fetch(); err != nil {
		return err
	}

	if raw, marshalErr := json.Marshal(dest); marshalErr == nil {
		client.Set(ctx, key, raw, ttl)
	}
	return nil
}
