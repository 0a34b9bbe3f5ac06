package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/entity"
	"github.com/zyck/property-admin/internal/domain/repository"
)

var (
	_ repository.PropertyRepository = (*PropertyRepo)(nil)
	_ repository.LocationRepository = (*PropertyRepo)(nil)
)

// PropertyRepo publicaciones, ubicaciones e imágenes.
type PropertyRepo struct {
	q Querier
}

// NewPropertyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPropertyRepository(q Querier) *PropertyRepo {
	return &PropertyRepo{q: q}
}

// ListByUser propiedades del usuario con ubicación, contacto e imágenes.
// Dos consultas: cabeceras (con LEFT JOIN a ubicación y contacto) e imágenes por lote.
func (r *PropertyRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Property, error) {
	rows, err := r.q.Query(ctx, `
		SELECT p.id, p.user_id, p.description, p.price, p.created_at,
		       l.id, l.street_address, l.created_at, c.id, c.value, s.id, s.value,
		       k.id, k.name, k.phone, k.email, k.created_at
		FROM properties p
		LEFT JOIN property_locations l ON l.property_id = p.id
		LEFT JOIN cities c ON c.id = l.city_id
		LEFT JOIN states s ON s.id = l.state_id
		LEFT JOIN property_contacts k ON k.property_id = p.id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.Property, 0)
	byID := map[int64]*entity.Property{}
	ids := make([]int64, 0)
	for rows.Next() {
		var (
			p                             entity.Property
			locID, cityID, stateID, cntID *int64
			street, cityVal, stateVal     *string
			cntName, cntPhone, cntEmail   *string
			locAt, cntAt                  *time.Time
		)
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Description, &p.Price, &p.CreatedAt,
			&locID, &street, &locAt, &cityID, &cityVal, &stateID, &stateVal,
			&cntID, &cntName, &cntPhone, &cntEmail, &cntAt,
		); err != nil {
			return nil, fmt.Errorf("scan property: %w", err)
		}
		if locID != nil {
			p.Location = &entity.PropertyLocation{
				ID:            *locID,
				PropertyID:    p.ID,
				StreetAddress: derefString(street),
				City:          entity.Region{ID: derefInt(cityID), Value: derefString(cityVal)},
				State:         entity.Region{ID: derefInt(stateID), Value: derefString(stateVal)},
				CreatedAt:     derefTime(locAt),
			}
		}
		if cntID != nil {
			p.Contact = &entity.PropertyContact{
				ID:         *cntID,
				Name:       derefString(cntName),
				Phone:      derefString(cntPhone),
				Email:      derefString(cntEmail),
				PropertyID: p.ID,
				CreatedAt:  derefTime(cntAt),
			}
		}
		p.Images = []entity.PropertyImage{}
		list = append(list, &p)
		byID[p.ID] = &p
		ids = append(ids, p.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return list, nil
	}

	imgRows, err := r.q.Query(ctx, `
		SELECT id, property_id, url, created_at FROM property_images
		WHERE property_id = ANY($1) ORDER BY id`, ids)
	if err != nil {
		return nil, fmt.Errorf("list property images: %w", err)
	}
	defer imgRows.Close()
	for imgRows.Next() {
		var img entity.PropertyImage
		if err := imgRows.Scan(&img.ID, &img.PropertyID, &img.URL, &img.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan property image: %w", err)
		}
		if p, ok := byID[img.PropertyID]; ok {
			p.Images = append(p.Images, img)
		}
	}
	return list, imgRows.Err()
}

// Delete elimina la propiedad; ubicación, imágenes y contacto caen en cascada.
func (r *PropertyRepo) Delete(ctx context.Context, id int64) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM properties WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListCreatedBetween ubicaciones creadas en [from, to) con ciudad, provincia y resumen de la propiedad.
func (r *PropertyRepo) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]entity.LocationWithProperty, error) {
	rows, err := r.q.Query(ctx, `
		SELECT l.id, l.property_id, l.street_address, l.created_at,
		       c.id, c.value, s.id, s.value,
		       p.price, p.description, p.created_at
		FROM property_locations l
		JOIN cities c ON c.id = l.city_id
		JOIN states s ON s.id = l.state_id
		JOIN properties p ON p.id = l.property_id
		WHERE l.created_at >= $1 AND l.created_at < $2
		ORDER BY l.created_at`, from, to)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()

	list := make([]entity.LocationWithProperty, 0)
	for rows.Next() {
		var l entity.LocationWithProperty
		if err := rows.Scan(
			&l.ID, &l.PropertyID, &l.StreetAddress, &l.CreatedAt,
			&l.City.ID, &l.City.Value, &l.State.ID, &l.State.Value,
			&l.Price, &l.Description, &l.PropertyAt,
		); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

func derefInt(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}

func derefTime(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}
