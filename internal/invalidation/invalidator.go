package invalidation

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Invalidator signals external rendering/caching layers that the data under a
// path may have changed. Fire-and-forget: callers never block on delivery and
// a lost event only means a stale cache until the next one.
type Invalidator interface {
	Invalidate(paths ...string)
	Close() error
}

// Event is the message published on the invalidation channel.
type Event struct {
	Path string    `json:"path"`
	At   time.Time `json:"at"`
}

const channel = "skillswap:invalidate"

// RedisInvalidator publishes invalidation events over redis pub/sub.
type RedisInvalidator struct {
	client *redis.Client
	log    *slog.Logger
}

func NewRedisInvalidator(addr, password string, log *slog.Logger) (*RedisInvalidator, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     password,
		DB:           0,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisInvalidator{client: rdb, log: log}, nil
}

// Invalidate publishes one event per path, asynchronously. Publish failures
// are logged and swallowed - the mutation that triggered them already
// committed and must not be affected.
func (i *RedisInvalidator) Invalidate(paths ...string) {
	if i == nil || i.client == nil {
		return
	}
	for _, path := range paths {
		event := Event{Path: path, At: time.Now()}
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()

			payload, err := json.Marshal(event)
			if err != nil {
				i.log.Warn("failed to marshal invalidation event", "path", event.Path, "error", err)
				return
			}
			if err := i.client.Publish(ctx, channel, payload).Err(); err != nil {
				i.log.Warn("failed to publish invalidation event", "path", event.Path, "error", err)
			}
		}()
	}
}

func (i *RedisInvalidator) Close() error {
	if i == nil || i.client == nil {
		return nil
	}
	return i.client.Close()
}

// Noop satisfies Invalidator for tests and redis-less development.
type Noop struct{}

func (Noop) Invalidate(paths ...string) {}
func (Noop) Close() error               { return nil }
