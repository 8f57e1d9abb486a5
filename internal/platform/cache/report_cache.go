package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	portsrepo "github.com/SscSPs/affiliate_ledger/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

const (
	versionKeyPrefix = "ledger:version:"
	// BumpChannel receives "<workplaceID>:<version>" whenever a workplace's reports are invalidated.
	BumpChannel = "ledger.bump"
)

// ReportCache is a Redis backed JSON cache whose keys embed per-workplace versions.
type ReportCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewReportCache instantiates the cache helper.
func NewReportCache(client *redis.Client, ttl time.Duration) *ReportCache {
	return &ReportCache{client: client, ttl: ttl}
}

var _ portsrepo.ReportCache = (*ReportCache)(nil)

func versionKey(workplaceID string) string {
	return versionKeyPrefix + workplaceID
}

// Version returns the current cache version of a workplace, initialising it when missing.
func (c *ReportCache) Version(ctx context.Context, workplaceID string) (int64, error) {
	if c == nil || c.client == nil {
		return 0, nil
	}
	key := versionKey(workplaceID)
	ver, err := c.client.Get(ctx, key).Int64()
	if errors.Is(err, redis.Nil) {
		// SETNX so a concurrent Bump is never overwritten.
		if err := c.client.SetNX(ctx, key, 1, 0).Err(); err != nil {
			return 0, err
		}
		return c.client.Get(ctx, key).Int64()
	}
	if err != nil {
		return 0, err
	}
	if ver <= 0 {
		ver = 1
		if err := c.client.Set(ctx, key, ver, 0).Err(); err != nil {
			return 0, err
		}
	}
	return ver, nil
}

// FetchJSON loads a cached value or populates it using the loader.
func (c *ReportCache) FetchJSON(ctx context.Context, key string, dest any, loader func(context.Context) (any, error)) error {
	if loader == nil {
		return errors.New("cache: loader required")
	}
	if c == nil || c.client == nil {
		value, err := loader(ctx)
		if err != nil {
			return err
		}
		raw, err := json.Marshal(value)
		if err != nil {
			return err
		}
		return json.Unmarshal(raw, dest)
	}
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		return json.Unmarshal(payload, dest)
	}
	if !errors.Is(err, redis.Nil) {
		return err
	}
	value, err := loader(ctx)
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}

// Bump invalidates a workplace's cached reports by incrementing its version and publishing an event.
func (c *ReportCache) Bump(ctx context.Context, workplaceID string) error {
	if c == nil || c.client == nil {
		return nil
	}
	ver, err := c.client.Incr(ctx, versionKey(workplaceID)).Result()
	if err != nil {
		return err
	}
	return c.client.Publish(ctx, BumpChannel, workplaceID+":"+strconv.FormatInt(ver, 10)).Err()
}
