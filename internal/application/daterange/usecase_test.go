package daterange_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdaterange "github.com/zyck/property-admin/internal/application/daterange"
	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/infrastructure/cache"
)

func TestDateRange_SetGetReset(t *testing.T) {
	uc := appdaterange.NewUseCase(cache.NewMemoryDateRangeStore(), time.Hour)
	ctx := context.Background()

	out, err := uc.Get(ctx, "sid")
	require.NoError(t, err)
	assert.False(t, out.Selected)

	out, err = uc.Set(ctx, "sid", dto.DateRangeRequest{StartDate: "2025-01-05", EndDate: "2025-01-28"})
	require.NoError(t, err)
	require.True(t, out.Selected)
	assert.Equal(t, 4, out.Range.End.Week)

	r, err := uc.Current(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-05", r.StartDate)
	from, _ := r.Bounds()
	assert.Equal(t, 5, from.Day(), "los derivados se recalculan al leer")

	require.NoError(t, uc.Reset(ctx, "sid"))
	r, err = uc.Current(ctx, "sid")
	require.NoError(t, err)
	assert.True(t, r.IsZero())
}

func TestDateRange_InvalidoConservaAnterior(t *testing.T) {
	uc := appdaterange.NewUseCase(cache.NewMemoryDateRangeStore(), time.Hour)
	ctx := context.Background()
	_, err := uc.Set(ctx, "sid", dto.DateRangeRequest{StartDate: "2025-01-01", EndDate: "2025-01-31"})
	require.NoError(t, err)

	_, err = uc.Set(ctx, "sid", dto.DateRangeRequest{StartDate: "2025-02-10", EndDate: "2025-02-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)
	_, err = uc.Set(ctx, "sid", dto.DateRangeRequest{StartDate: "ayer", EndDate: "2025-02-01"})
	assert.ErrorIs(t, err, domain.ErrInvalidDateRange)

	r, err := uc.Current(ctx, "sid")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-31", r.EndDate)
}

func TestDateRange_SesionesIndependientes(t *testing.T) {
	uc := appdaterange.NewUseCase(cache.NewMemoryDateRangeStore(), time.Hour)
	ctx := context.Background()
	_, err := uc.Set(ctx, "a", dto.DateRangeRequest{StartDate: "2025-01-01", EndDate: "2025-01-31"})
	require.NoError(t, err)

	r, err := uc.Current(ctx, "b")
	require.NoError(t, err)
	assert.True(t, r.IsZero())
}
