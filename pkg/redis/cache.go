package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/savioruz/geoapi/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mock/cache.go -package=mock github.com/savioruz/geoapi/pkg/redis Cache

// ErrCacheMiss is returned by Get when the key does not exist.
var ErrCacheMiss = redis.Nil

type Cache interface {
	Save(ctx context.Context, key string, value any, duration int) (err error)
	Get(ctx context.Context, key string, value any) (err error)
	Delete(ctx context.Context, keys ...string) error
	Clear(ctx context.Context, pattern string) error
}

type cache struct {
	client *redis.Client
	log    logger.Interface
}

func NewCache(client *redis.Client, log logger.Interface) Cache {
	return &cache{
		client: client,
		log:    log,
	}
}

// IsMiss reports whether err means the key was absent.
func IsMiss(err error) bool {
	return errors.Is(err, ErrCacheMiss)
}

// Clear deletes every key matching pattern.
func (c *cache) Clear(ctx context.Context, pattern string) error {
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()

	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			c.log.Error("redis - clear - failed to delete cache: %v", err)

			return err
		}
	}

	if err := iter.Err(); err != nil {
		c.log.Error("redis - clear - failed to scan keys: %v", err)

		return err
	}

	return nil
}

func (c *cache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Error("redis - delete - failed to delete cache: %v", err)

		return err
	}

	return nil
}

// Get decodes the JSON stored under key into value.
func (c *cache) Get(ctx context.Context, key string, value any) error {
	cacheValue, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	if v, ok := value.(*string); ok {
		*v = cacheValue

		return nil
	}

	if err := json.Unmarshal([]byte(cacheValue), value); err != nil {
		c.log.Error("redis - get - failed to unmarshal value: %v", err)

		return err
	}

	return nil
}

// Save stores value as JSON for duration seconds.
func (c *cache) Save(ctx context.Context, key string, value any, duration int) (err error) {
	var strValue []byte

	switch v := value.(type) {
	case string:
		strValue = []byte(v)
	default:
		strValue, err = json.Marshal(v)
		if err != nil {
			c.log.Error("redis - save - failed to marshal value: %v", err)

			return err
		}
	}

	if err = c.client.Set(ctx, key, strValue, time.Second*time.Duration(duration)).Err(); err != nil {
		c.log.Error("redis - save - failed to save value: %v", err)

		return err
	}

	c.log.Debug("redis - save - saved value %s", key)

	return nil
}
