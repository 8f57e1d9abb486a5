package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*ReportCache, *miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewReportCache(client, time.Minute), mr, client
}

type report struct {
	Revenue string `json:"revenue"`
}

func TestVersionInitialisesAndBumps(t *testing.T) {
	c, _, _ := newTestCache(t)
	ctx := context.Background()

	ver, err := c.Version(ctx, "wp1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), ver)

	require.NoError(t, c.Bump(ctx, "wp1"))
	ver, err = c.Version(ctx, "wp1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), ver)

	other, err := c.Version(ctx, "wp2")
	require.NoError(t, err)
	assert.Equal(t, int64(1), other, "versions are tracked per workplace")
}

func TestFetchJSONCachesLoaderResult(t *testing.T) {
	c, mr, _ := newTestCache(t)
	ctx := context.Background()
	calls := 0
	loader := func(context.Context) (any, error) {
		calls++
		return report{Revenue: "1000"}, nil
	}

	var first, second report
	require.NoError(t, c.FetchJSON(ctx, "ledger:financials:2024-05:wp1@1", &first, loader))
	require.NoError(t, c.FetchJSON(ctx, "ledger:financials:2024-05:wp1@1", &second, loader))
	assert.Equal(t, 1, calls)
	assert.Equal(t, "1000", second.Revenue)
	assert.True(t, mr.Exists("ledger:financials:2024-05:wp1@1"))

	ttl := mr.TTL("ledger:financials:2024-05:wp1@1")
	assert.Equal(t, time.Minute, ttl)
}

func TestFetchJSONPropagatesLoaderError(t *testing.T) {
	c, mr, _ := newTestCache(t)
	boom := errors.New("boom")

	var out report
	err := c.FetchJSON(context.Background(), "k", &out, func(context.Context) (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("k"), "failures are not cached")
}

func TestBumpPublishesEvent(t *testing.T) {
	c, _, client := newTestCache(t)
	ctx := context.Background()

	sub := client.Subscribe(ctx, BumpChannel)
	defer sub.Close()
	_, err := sub.Receive(ctx)
	require.NoError(t, err)

	require.NoError(t, c.Bump(ctx, "wp9"))

	msg, err := sub.ReceiveMessage(ctx)
	require.NoError(t, err)
	assert.Equal(t, "wp9:1", msg.Payload)
}

func TestNilCacheFallsBackToLoader(t *testing.T) {
	var c *ReportCache
	ctx := context.Background()

	ver, err := c.Version(ctx, "wp1")
	require.NoError(t, err)
	assert.Zero(t, ver)
	require.NoError(t, c.Bump(ctx, "wp1"))

	var out report
	require.NoError(t, c.FetchJSON(ctx, "k", &out, func(context.Context) (any, error) {
		return report{Revenue: "5"}, nil
	}))
	assert.Equal(t, "5", out.Revenue)
}
