package cache

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyck/property-admin/internal/domain/daterange"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func mustRange(t *testing.T, start, end string) daterange.Range {
	t.Helper()
	r, err := daterange.Parse(start, end)
	require.NoError(t, err)
	return r
}

// ── ReportCache ───────────────────────────────────────────────────────────────

func TestReportCache_BumpCambiaLaClave(t *testing.T) {
	_, client := newRedis(t)
	rc := NewReportCache(client, time.Minute)
	ctx := context.Background()

	k1, err := rc.BuildKey(ctx, "listing", "all")
	require.NoError(t, err)
	assert.Equal(t, "zyck:reports:listing:all:v1", k1)

	require.NoError(t, rc.Bump(ctx))
	k2, err := rc.BuildKey(ctx, "listing", "all")
	require.NoError(t, err)
	assert.Equal(t, "zyck:reports:listing:all:v2", k2)
}

func TestReportCache_FetchJSONGuardaYLee(t *testing.T) {
	mr, client := newRedis(t)
	rc := NewReportCache(client, time.Minute)
	ctx := context.Background()

	var calls int
	loader := func(context.Context) (any, error) {
		calls++
		return map[string]int{"users": 3}, nil
	}
	var out map[string]int
	require.NoError(t, rc.FetchJSON(ctx, "k", &out, loader))
	require.NoError(t, rc.FetchJSON(ctx, "k", &out, loader))
	assert.Equal(t, 3, out["users"])
	assert.Equal(t, 1, calls)
	assert.True(t, mr.Exists("k"))
	assert.Equal(t, time.Minute, mr.TTL("k"))
}

func TestReportCache_CargasConcurrentesSeDeduplican(t *testing.T) {
	rc := NewReportCache(nil, time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return 7, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 5)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = rc.FetchJSON(context.Background(), "same", &results[i], loader)
		}(i)
	}
	// Da tiempo a que todas las lecturas se unan al vuelo en curso.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.EqualValues(t, 1, calls.Load())
	for _, v := range results {
		assert.Equal(t, 7, v)
	}
}

func TestReportCache_CancelarAlPrimeroNoAfectaAlResto(t *testing.T) {
	rc := NewReportCache(nil, time.Minute)
	started := make(chan struct{})
	release := make(chan struct{})
	loader := func(ctx context.Context) (any, error) {
		close(started)
		<-release
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return map[string]int{"users": 3}, nil
	}

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		var out map[string]int
		leaderErr <- rc.FetchJSON(leaderCtx, "shared", &out, loader)
	}()
	<-started

	var out map[string]int
	followerErr := make(chan error, 1)
	go func() {
		followerErr <- rc.FetchJSON(context.Background(), "shared", &out, loader)
	}()
	// Da tiempo a que el segundo llamador se una a la carga en curso.
	time.Sleep(50 * time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-leaderErr, context.Canceled)
	close(release)

	require.NoError(t, <-followerErr)
	assert.Equal(t, map[string]int{"users": 3}, out)
}

func TestReportCache_SinClienteVersionCero(t *testing.T) {
	rc := NewReportCache(nil, time.Minute)
	ver, err := rc.Version(context.Background())
	require.NoError(t, err)
	assert.Zero(t, ver)
	assert.NoError(t, rc.Bump(context.Background()))
}

// ── Rango de fechas ───────────────────────────────────────────────────────────

func TestRedisDateRangeStore_PutGetDelete(t *testing.T) {
	mr, client := newRedis(t)
	store := NewRedisDateRangeStore(client)
	ctx := context.Background()
	r := mustRange(t, "2025-03-01", "2025-03-31")

	require.NoError(t, store.Put(ctx, "sid-1", r, time.Hour))
	assert.Equal(t, time.Hour, mr.TTL("zyck:daterange:sid-1"))

	got, ok, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, r, got)

	_, ok, err = store.Get(ctx, "otra")
	require.NoError(t, err)
	assert.False(t, ok, "las sesiones no comparten rango")

	require.NoError(t, store.Delete(ctx, "sid-1"))
	_, ok, err = store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryDateRangeStore_Expira(t *testing.T) {
	store := NewMemoryDateRangeStore()
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()
	r := mustRange(t, "2025-01-01", "2025-01-02")

	require.NoError(t, store.Put(ctx, "sid", r, time.Minute))
	got, ok, err := store.Get(ctx, "sid")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, r, got)

	now = now.Add(2 * time.Minute)
	_, ok, err = store.Get(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, ok)
}

// ── Revocación ────────────────────────────────────────────────────────────────

func TestRedisRevocationStore_RevocaHastaExpirar(t *testing.T) {
	mr, client := newRedis(t)
	store := NewRedisRevocationStore(client)
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "sid", time.Now().Add(time.Hour)))
	revoked, err := store.IsRevoked(ctx, "sid")
	require.NoError(t, err)
	assert.True(t, revoked)

	mr.FastForward(2 * time.Hour)
	revoked, err = store.IsRevoked(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevocationStore_TokenYaExpiradoNoSeGuarda(t *testing.T) {
	mr, client := newRedis(t)
	store := NewRedisRevocationStore(client)

	require.NoError(t, store.Revoke(context.Background(), "sid", time.Now().Add(-time.Minute)))
	assert.False(t, mr.Exists("zyck:revoked:sid"))
}

func TestMemoryRevocationStore_BarreExpiradas(t *testing.T) {
	store := NewMemoryRevocationStore()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }
	ctx := context.Background()

	require.NoError(t, store.Revoke(ctx, "a", now.Add(time.Minute)))
	now = now.Add(5 * time.Minute)
	require.NoError(t, store.Revoke(ctx, "b", now.Add(time.Minute)))

	assert.Equal(t, 1, store.m.Size(), "la entrada vencida se descarta al revocar otra")
	revoked, err := store.IsRevoked(ctx, "b")
	require.NoError(t, err)
	assert.True(t, revoked)
}
