package rdx

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"devhub/models"
	"devhub/store"

	"github.com/redis/go-redis/v9"
)

const (
	EventsKey   = "listings:events"
	ProjectsKey = "listings:projects"
)

// Cache keeps a JSON copy of the wrapped provider's collections in Redis.
// Redis failures are logged and the wrapped provider is used instead.
type Cache struct {
	Conn redis.Cmdable
	Next store.Provider
	TTL  time.Duration
}

func NewCache(conn redis.Cmdable, next store.Provider, ttl time.Duration) *Cache {
	return &Cache{Conn: conn, Next: next, TTL: ttl}
}

func (c *Cache) FetchEvents(ctx context.Context) ([]models.Event, error) {
	return cached(ctx, c, EventsKey, c.Next.FetchEvents)
}

func (c *Cache) FetchProjects(ctx context.Context) ([]models.Project, error) {
	return cached(ctx, c, ProjectsKey, c.Next.FetchProjects)
}

// Invalidate drops both cached collections.
func (c *Cache) Invalidate(ctx context.Context) error {
	return c.Conn.Del(ctx, EventsKey, ProjectsKey).Err()
}

func cached[T any](ctx context.Context, c *Cache, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	raw, err := c.Conn.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var out []T
		decErr := json.Unmarshal(raw, &out)
		if decErr == nil {
			return out, nil
		}
		log.Println("Redis cache decode error for", key, ":", decErr)
	case errors.Is(err, redis.Nil):
	default:
		log.Println("Redis Get error for", key, ":", err)
	}

	out, err := load(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(out)
	if err != nil {
		log.Println("Redis cache encode error for", key, ":", err)
		return out, nil
	}
	if err := c.Conn.Set(ctx, key, data, c.TTL).Err(); err != nil {
		log.Println("Redis Set error for", key, ":", err)
	}
	return out, nil
}
