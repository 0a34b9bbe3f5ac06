package reporting

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/repository"
)

// Period mes (0 = enero) y año del reporte de provincias.
type Period struct {
	Month int
	Year  int
}

// ParsePeriod valida month (0..11) y year (1000..9999).
// Vacíos: enero y el año de now.
func ParsePeriod(month, year string, now time.Time) (Period, error) {
	p := Period{Month: 0, Year: now.Year()}
	if s := strings.TrimSpace(month); s != "" {
		m, err := strconv.Atoi(s)
		if err != nil {
			return Period{}, domain.ErrInvalidPeriod
		}
		p.Month = m
	}
	if s := strings.TrimSpace(year); s != "" {
		y, err := strconv.Atoi(s)
		if err != nil {
			return Period{}, domain.ErrInvalidPeriod
		}
		p.Year = y
	}
	if p.Month < 0 || p.Month > 11 || p.Year < 1000 || p.Year > 9999 {
		return Period{}, domain.ErrInvalidPeriod
	}
	return p, nil
}

// Bounds [primer día del mes, primer día del mes siguiente) en UTC.
func (p Period) Bounds() (time.Time, time.Time) {
	from := time.Date(p.Year, time.Month(p.Month+1), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// ProvinceUseCase ubicaciones de propiedades publicadas en un mes.
type ProvinceUseCase struct {
	locationRepo repository.LocationRepository
	cache        ReportCache
}

// NewProvinceUseCase construye el caso de uso. cache nil = sin caché.
func NewProvinceUseCase(locationRepo repository.LocationRepository, cache ReportCache) *ProvinceUseCase {
	if cache == nil {
		cache = noCache{}
	}
	return &ProvinceUseCase{locationRepo: locationRepo, cache: cache}
}

// List filas del mes. domain.ErrNoResults si no hay ninguna.
func (uc *ProvinceUseCase) List(ctx context.Context, p Period) ([]dto.ProvinceRow, error) {
	rows, err := uc.rows(ctx, p)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, domain.ErrNoResults
	}
	return rows, nil
}

// Summary conteo por provincia del mes. Un mes vacío devuelve total 0.
func (uc *ProvinceUseCase) Summary(ctx context.Context, p Period) (*dto.ProvinceSummary, error) {
	rows, err := uc.rows(ctx, p)
	if err != nil {
		return nil, err
	}
	out := &dto.ProvinceSummary{Month: p.Month, Year: p.Year, Total: len(rows), Provinces: map[string]int64{}}
	for _, r := range rows {
		out.Provinces[r.State.Value]++
	}
	return out, nil
}

func (uc *ProvinceUseCase) rows(ctx context.Context, p Period) ([]dto.ProvinceRow, error) {
	key, err := uc.cache.BuildKey(ctx, "provinces", fmt.Sprintf("%04d-%02d", p.Year, p.Month+1))
	if err != nil {
		return nil, fmt.Errorf("provinces: clave de caché: %w", err)
	}
	var out []dto.ProvinceRow
	err = uc.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (any, error) {
		from, to := p.Bounds()
		locs, err := uc.locationRepo.ListCreatedBetween(ctx, from, to)
		if err != nil {
			return nil, fmt.Errorf("provinces: listar ubicaciones: %w", err)
		}
		rows := make([]dto.ProvinceRow, 0, len(locs))
		for _, l := range locs {
			rows = append(rows, dto.ProvinceRow{
				ID:            l.ID,
				PropertyID:    l.PropertyID,
				StreetAddress: l.StreetAddress,
				City:          dto.RegionResponse{ID: l.City.ID, Value: l.City.Value},
				State:         dto.RegionResponse{ID: l.State.ID, Value: l.State.Value},
				CreatedAt:     l.CreatedAt,
				Price:         l.Price,
				Description:   l.Description,
			})
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
