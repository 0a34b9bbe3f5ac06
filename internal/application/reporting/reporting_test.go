package reporting_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zyck/property-admin/internal/application/reporting"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/daterange"
	"github.com/zyck/property-admin/internal/domain/entity"
	"github.com/zyck/property-admin/internal/domain/repository"
	"github.com/zyck/property-admin/internal/infrastructure/cache"
)

// ── Fakes ─────────────────────────────────────────────────────────────────────

type fakeStats struct {
	calls    atomic.Int32
	users    int64
	props    int64
	details  []repository.UserDetail
	err      error
	lastFrom *time.Time
	lastTo   *time.Time
}

func (f *fakeStats) CountUsers(_ context.Context, from, to *time.Time) (int64, error) {
	f.calls.Add(1)
	f.lastFrom, f.lastTo = from, to
	return f.users, f.err
}

func (f *fakeStats) CountProperties(_ context.Context, _, _ *time.Time) (int64, error) {
	return f.props, nil
}

func (f *fakeStats) ListUserDetails(_ context.Context, _, _ time.Time) ([]repository.UserDetail, error) {
	return f.details, nil
}

type fakeLocations struct {
	rows     []entity.LocationWithProperty
	from, to time.Time
}

func (f *fakeLocations) ListCreatedBetween(_ context.Context, from, to time.Time) ([]entity.LocationWithProperty, error) {
	f.from, f.to = from, to
	return f.rows, nil
}

func mustRange(t *testing.T, s, e string) daterange.Range {
	t.Helper()
	r, err := daterange.Parse(s, e)
	require.NoError(t, err)
	return r
}

// ── Listing ───────────────────────────────────────────────────────────────────

func TestListing_ConteosYDetalle(t *testing.T) {
	stats := &fakeStats{users: 3, props: 7, details: []repository.UserDetail{
		{ID: "u1", FirstName: "Nazia", LastName: "Majid", Email: "nazia@example.com"},
	}}
	uc := reporting.NewListingUseCase(stats, nil)

	out, err := uc.Listing(context.Background(), mustRange(t, "2025-01-01", "2025-01-28"))
	require.NoError(t, err)
	assert.EqualValues(t, 3, out.Users)
	assert.EqualValues(t, 7, out.Listings)
	require.Len(t, out.UsersDetails, 1)
	assert.Equal(t, "Nazia", out.UsersDetails[0].FirstName)
	require.NotNil(t, stats.lastTo)
	assert.Equal(t, 28, stats.lastTo.Day())
	assert.Equal(t, 23, stats.lastTo.Hour(), "la fecha fin cubre el día completo")
}

func TestListing_ErrorDelRepositorio(t *testing.T) {
	stats := &fakeStats{err: errors.New("db caída")}
	uc := reporting.NewListingUseCase(stats, nil)

	_, err := uc.Listing(context.Background(), mustRange(t, "2025-01-01", "2025-01-02"))
	assert.Error(t, err)
}

func TestListing_UsaCacheRedis(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	rc := cache.NewReportCache(client, time.Minute)

	stats := &fakeStats{users: 1, props: 2}
	uc := reporting.NewListingUseCase(stats, rc)
	r := mustRange(t, "2025-01-01", "2025-01-31")

	_, err := uc.Listing(context.Background(), r)
	require.NoError(t, err)
	stats.users = 99
	out, err := uc.Listing(context.Background(), r)
	require.NoError(t, err)
	assert.EqualValues(t, 1, out.Users, "segunda lectura servida desde caché")
	assert.EqualValues(t, 1, stats.calls.Load())

	require.NoError(t, rc.Bump(context.Background()))
	out, err = uc.Listing(context.Background(), r)
	require.NoError(t, err)
	assert.EqualValues(t, 99, out.Users, "Bump invalida la versión anterior")
}

func TestTotals_SinRango(t *testing.T) {
	stats := &fakeStats{users: 10, props: 4}
	uc := reporting.NewListingUseCase(stats, nil)

	out, err := uc.Totals(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 10, out.Users)
	assert.EqualValues(t, 4, out.Listings)
	assert.Nil(t, stats.lastFrom)
}

// ── Provinces ─────────────────────────────────────────────────────────────────

func TestParsePeriod(t *testing.T) {
	now := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)

	p, err := reporting.ParsePeriod("", "", now)
	require.NoError(t, err)
	assert.Equal(t, reporting.Period{Month: 0, Year: 2026}, p)

	p, err = reporting.ParsePeriod("11", "2025", now)
	require.NoError(t, err)
	from, to := p.Bounds()
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), from)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), to)

	for _, bad := range [][2]string{{"13", "2025"}, {"12", "2025"}, {"-1", "2025"}, {"1", "999"}, {"x", "2025"}, {"1", "abc"}} {
		_, err := reporting.ParsePeriod(bad[0], bad[1], now)
		assert.ErrorIs(t, err, domain.ErrInvalidPeriod, "%v", bad)
	}
}

func TestProvinces_ListaYResumen(t *testing.T) {
	locs := &fakeLocations{rows: []entity.LocationWithProperty{
		{PropertyLocation: entity.PropertyLocation{ID: 1, PropertyID: 10, State: entity.Region{ID: 1, Value: "Punjab"}}, Price: decimal.NewFromInt(1000)},
		{PropertyLocation: entity.PropertyLocation{ID: 2, PropertyID: 11, State: entity.Region{ID: 1, Value: "Punjab"}}},
		{PropertyLocation: entity.PropertyLocation{ID: 3, PropertyID: 12, State: entity.Region{ID: 2, Value: "Sindh"}}},
	}}
	uc := reporting.NewProvinceUseCase(locs, nil)
	p := reporting.Period{Month: 1, Year: 2025}

	rows, err := uc.List(context.Background(), p)
	require.NoError(t, err)
	assert.Len(t, rows, 3)
	assert.Equal(t, int64(10), rows[0].PropertyID)
	assert.True(t, rows[0].Price.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, time.February, locs.from.Month())
	assert.Equal(t, time.March, locs.to.Month())

	sum, err := uc.Summary(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 3, sum.Total)
	assert.EqualValues(t, 2, sum.Provinces["Punjab"])
	assert.EqualValues(t, 1, sum.Provinces["Sindh"])
}

func TestProvinces_MesVacio(t *testing.T) {
	uc := reporting.NewProvinceUseCase(&fakeLocations{}, nil)
	p := reporting.Period{Month: 3, Year: 2025}

	_, err := uc.List(context.Background(), p)
	assert.ErrorIs(t, err, domain.ErrNoResults)

	sum, err := uc.Summary(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, 0, sum.Total)
}
