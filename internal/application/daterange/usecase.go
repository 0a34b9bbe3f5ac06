// Package daterange guarda el rango de fechas elegido por cada sesión de administrador.
package daterange

import (
	"context"
	"fmt"
	"time"

	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/daterange"
)

// Store rango por sesión. Solo persiste las cadenas; Get vuelve a validarlas.
type Store interface {
	Get(ctx context.Context, sessionID string) (daterange.Range, bool, error)
	Put(ctx context.Context, sessionID string, r daterange.Range, ttl time.Duration) error
	Delete(ctx context.Context, sessionID string) error
}

// UseCase lectura y escritura del rango de la sesión.
type UseCase struct {
	store Store
	ttl   time.Duration
}

// NewUseCase construye el caso de uso. ttl = vida de la sesión.
func NewUseCase(store Store, ttl time.Duration) *UseCase {
	return &UseCase{store: store, ttl: ttl}
}

// Current rango vigente; cero si no hay selección.
func (uc *UseCase) Current(ctx context.Context, sessionID string) (daterange.Range, error) {
	r, ok, err := uc.store.Get(ctx, sessionID)
	if err != nil {
		return daterange.Range{}, fmt.Errorf("leer rango: %w", err)
	}
	if !ok {
		return daterange.Range{}, nil
	}
	return r, nil
}

// Get rango vigente en forma de respuesta.
func (uc *UseCase) Get(ctx context.Context, sessionID string) (*dto.DateRangeResponse, error) {
	r, err := uc.Current(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return toResponse(r), nil
}

// Set reemplaza el rango. Con entrada inválida el rango anterior se conserva.
func (uc *UseCase) Set(ctx context.Context, sessionID string, in dto.DateRangeRequest) (*dto.DateRangeResponse, error) {
	var sel daterange.Selection
	if err := sel.Set(in.StartDate, in.EndDate); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidDateRange, err)
	}
	if err := uc.store.Put(ctx, sessionID, sel.Current(), uc.ttl); err != nil {
		return nil, fmt.Errorf("guardar rango: %w", err)
	}
	return toResponse(sel.Current()), nil
}

// Reset limpia la selección.
func (uc *UseCase) Reset(ctx context.Context, sessionID string) error {
	return uc.store.Delete(ctx, sessionID)
}

func toResponse(r daterange.Range) *dto.DateRangeResponse {
	if r.IsZero() {
		return &dto.DateRangeResponse{}
	}
	return &dto.DateRangeResponse{Selected: true, Range: &r}
}
