package reporting

import (
	"context"
	"encoding/json"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/domain/daterange"
	"github.com/zyck/property-admin/internal/domain/repository"
)

// ListingUseCase conteos de usuarios y propiedades del dashboard.
//
// Fuente de datos: StatsRepository (consultas read-only).
type ListingUseCase struct {
	statsRepo repository.StatsRepository
	cache     ReportCache
}

// NewListingUseCase construye el caso de uso. cache nil = sin caché.
func NewListingUseCase(statsRepo repository.StatsRepository, cache ReportCache) *ListingUseCase {
	if cache == nil {
		cache = noCache{}
	}
	return &ListingUseCase{statsRepo: statsRepo, cache: cache}
}

// Listing conteos del rango inclusivo y detalle de los usuarios creados en él.
//
// Tres consultas en paralelo:
//  1. CountUsers(rango)
//  2. CountProperties(rango)
//  3. ListUserDetails(rango)
func (uc *ListingUseCase) Listing(ctx context.Context, r daterange.Range) (*dto.ListingResponse, error) {
	key, err := uc.cache.BuildKey(ctx, "listing", r.Key())
	if err != nil {
		return nil, fmt.Errorf("listing: clave de caché: %w", err)
	}
	var out dto.ListingResponse
	err = uc.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (any, error) {
		return uc.loadListing(ctx, r)
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (uc *ListingUseCase) loadListing(ctx context.Context, r daterange.Range) (*dto.ListingResponse, error) {
	from, to := r.Bounds()

	var (
		out     dto.ListingResponse
		details []repository.UserDetail
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := uc.statsRepo.CountUsers(gctx, &from, &to)
		if err != nil {
			return fmt.Errorf("listing: contar usuarios: %w", err)
		}
		out.Users = n
		return nil
	})
	g.Go(func() error {
		n, err := uc.statsRepo.CountProperties(gctx, &from, &to)
		if err != nil {
			return fmt.Errorf("listing: contar propiedades: %w", err)
		}
		out.Listings = n
		return nil
	})
	g.Go(func() error {
		rows, err := uc.statsRepo.ListUserDetails(gctx, from, to)
		if err != nil {
			return fmt.Errorf("listing: detalle de usuarios: %w", err)
		}
		details = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out.UsersDetails = make([]dto.UserDetailResponse, 0, len(details))
	for _, d := range details {
		out.UsersDetails = append(out.UsersDetails, dto.UserDetailResponse{
			ID:        d.ID,
			FirstName: d.FirstName,
			LastName:  d.LastName,
			Email:     d.Email,
			CreatedAt: d.CreatedAt,
		})
	}
	return &out, nil
}

// Totals conteos globales, sin filtro de fechas.
func (uc *ListingUseCase) Totals(ctx context.Context) (*dto.TotalsResponse, error) {
	key, err := uc.cache.BuildKey(ctx, "totals")
	if err != nil {
		return nil, fmt.Errorf("totals: clave de caché: %w", err)
	}
	var out dto.TotalsResponse
	err = uc.cache.FetchJSON(ctx, key, &out, func(ctx context.Context) (any, error) {
		var t dto.TotalsResponse
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			t.Users, err = uc.statsRepo.CountUsers(gctx, nil, nil)
			return err
		})
		g.Go(func() (err error) {
			t.Listings, err = uc.statsRepo.CountProperties(gctx, nil, nil)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("totals: %w", err)
		}
		return &t, nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// assign copia v en dest pasando por JSON, igual que una lectura de caché.
func assign(dest, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, dest)
}
