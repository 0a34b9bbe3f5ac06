package repository

import (
	"context"
	"time"

	"github.com/zyck/property-admin/internal/domain/entity"
)

// PropertyRepository lectura de publicaciones y borrado por id.
type PropertyRepository interface {
	// ListByUser propiedades del usuario con ubicación, imágenes y contacto.
	ListByUser(ctx context.Context, userID string) ([]*entity.Property, error)
	// Delete domain.ErrNotFound si el id no existe.
	Delete(ctx context.Context, id int64) error
}

// LocationRepository consultas del reporte de provincias.
type LocationRepository interface {
	// ListCreatedBetween ubicaciones con created_at en [from, to) unidas a su propiedad.
	ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entity.LocationWithProperty, error)
}
