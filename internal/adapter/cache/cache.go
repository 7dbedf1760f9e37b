// Package cache stores rendered per-user views in Redis.
//
// Every view of one user lives in a single hash so a mutation can drop all
// of them with one DEL. A per-user generation counter guards fills: Get
// reports the generation it saw and Set stores only while it is unchanged,
// so a page read before an invalidation is never written after it.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"github.com/heartmarshall/dreamjournal-backend/internal/config"
)

// View names.
const (
	ViewDreamList = "dreams"
	ViewDashboard = "dashboard"
)

const (
	keyPrefix = "dreamjournal:views:"
	genPrefix = "dreamjournal:viewgen:"

	// generationTTL outlives any request; an expired counter reads as 0.
	generationTTL = 24 * time.Hour
)

// Stamp is the cache generation of one user as observed by Get.
type Stamp int64

var errStale = errors.New("view generation changed")

type recorder interface {
	CacheHit(view string)
	CacheMiss(view string)
}

// Redis is a view cache backed by a Redis hash per user.
type Redis struct {
	client  redis.UniversalClient
	ttl     time.Duration
	metrics recorder
	log     *slog.Logger
}

// NewRedis connects to Redis and verifies the connection. metrics may be nil.
func NewRedis(ctx context.Context, cfg config.CacheConfig, metrics recorder, logger *slog.Logger) (*Redis, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return newRedis(client, cfg.TTL, metrics, logger), nil
}

func newRedis(client redis.UniversalClient, ttl time.Duration, metrics recorder, logger *slog.Logger) *Redis {
	return &Redis{
		client:  client,
		ttl:     ttl,
		metrics: metrics,
		log:     logger.With("adapter", "redis_cache"),
	}
}

func userKey(userID uuid.UUID) string {
	return keyPrefix + userID.String()
}

func genKey(userID uuid.UUID) string {
	return genPrefix + userID.String()
}

// Get decodes the cached view into dst. It reports false on a miss. The
// returned stamp must be passed to the Set that fills the miss.
func (r *Redis) Get(ctx context.Context, userID uuid.UUID, view string, dst any) (bool, Stamp, error) {
	pipe := r.client.Pipeline()
	genCmd := pipe.Get(ctx, genKey(userID))
	viewCmd := pipe.HGet(ctx, userKey(userID), view)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return false, 0, fmt.Errorf("cache get %s: %w", view, err)
	}

	gen, err := readGeneration(genCmd)
	if err != nil {
		return false, 0, fmt.Errorf("cache get %s: %w", view, err)
	}

	raw, err := viewCmd.Bytes()
	if errors.Is(err, redis.Nil) {
		r.miss(view)
		return false, gen, nil
	}
	if err != nil {
		return false, 0, fmt.Errorf("cache get %s: %w", view, err)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		// A stale or foreign payload is treated as a miss and overwritten later.
		r.log.WarnContext(ctx, "undecodable cache entry", slog.String("view", view), slog.String("error", err.Error()))
		r.miss(view)
		return false, gen, nil
	}

	if r.metrics != nil {
		r.metrics.CacheHit(view)
	}
	return true, gen, nil
}

// Set stores a view and refreshes the expiry of the user's hash. It is a
// no-op when the user's views were invalidated after the Get that produced
// stamp.
func (r *Redis) Set(ctx context.Context, userID uuid.UUID, view string, stamp Stamp, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cache set %s: encode: %w", view, err)
	}

	key, gk := userKey(userID), genKey(userID)
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		gen, err := readGeneration(tx.Get(ctx, gk))
		if err != nil {
			return err
		}
		if gen != stamp {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, key, view, raw)
			pipe.Expire(ctx, key, r.ttl)
			return nil
		})
		return err
	}, gk)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, errStale), errors.Is(err, redis.TxFailedErr):
		r.log.DebugContext(ctx, "skipped stale cache fill", slog.String("view", view))
		return nil
	default:
		return fmt.Errorf("cache set %s: %w", view, err)
	}
}

// Invalidate drops every cached view of the user.
func (r *Redis) Invalidate(ctx context.Context, userID uuid.UUID) error {
	key, gk := userKey(userID), genKey(userID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, gk)
		pipe.Expire(ctx, gk, max(generationTTL, r.ttl))
		pipe.Del(ctx, key)
		return nil
	})
	if err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// Ping checks the connection for readiness probes.
func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the connection pool.
func (r *Redis) Close() error {
	return r.client.Close()
}

func readGeneration(cmd *redis.StringCmd) (Stamp, error) {
	n, err := cmd.Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read generation: %w", err)
	}
	return Stamp(n), nil
}

func (r *Redis) miss(view string) {
	if r.metrics != nil {
		r.metrics.CacheMiss(view)
	}
}

// Noop is used when no Redis address is configured. Every Get is a miss.
type Noop struct{}

func (Noop) Get(context.Context, uuid.UUID, string, any) (bool, Stamp, error) { return false, 0, nil }
func (Noop) Set(context.Context, uuid.UUID, string, Stamp, any) error        { return nil }
func (Noop) Invalidate(context.Context, uuid.UUID) error                     { return nil }
func (Noop) Ping(context.Context) error                                      { return nil }
func (Noop) Close() error                                                    { return nil }
