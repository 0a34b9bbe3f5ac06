package usecase

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/entity"
	"github.com/zyck/property-admin/internal/domain/repository"
)

// MessagePropertyDeleted texto de confirmación de DELETE /api/properties.
const MessagePropertyDeleted = "Property deleted successfully"

// PropertyUseCase publicaciones de un usuario.
type PropertyUseCase struct {
	repo         repository.PropertyRepository
	allowedHosts map[string]bool
	invalidator  Invalidator
}

// NewPropertyUseCase construye el caso de uso. allowedHosts vacío = se aceptan todas las imágenes.
func NewPropertyUseCase(repo repository.PropertyRepository, allowedHosts []string, invalidator Invalidator) *PropertyUseCase {
	hosts := make(map[string]bool, len(allowedHosts))
	for _, h := range allowedHosts {
		if h = strings.ToLower(strings.TrimSpace(h)); h != "" {
			hosts[h] = true
		}
	}
	return &PropertyUseCase{repo: repo, allowedHosts: hosts, invalidator: invalidator}
}

// ListByUser propiedades del usuario; las imágenes de hosts no permitidos se descartan.
func (uc *PropertyUseCase) ListByUser(ctx context.Context, userID string) (*dto.PropertiesResponse, error) {
	if userID == "" {
		return nil, domain.ErrInvalidInput
	}
	props, err := uc.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("listar propiedades: %w", err)
	}
	out := &dto.PropertiesResponse{UserProeperties: make([]dto.PropertyResponse, 0, len(props))}
	for _, p := range props {
		out.UserProeperties = append(out.UserProeperties, uc.toResponse(p))
	}
	return out, nil
}

// Delete elimina la propiedad por id numérico.
func (uc *PropertyUseCase) Delete(ctx context.Context, rawID string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(rawID), 10, 64)
	if err != nil || id <= 0 {
		return domain.ErrInvalidInput
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	if uc.invalidator != nil {
		_ = uc.invalidator.Bump(ctx)
	}
	return nil
}

// ImageAllowed indica si la URL apunta a un host de la lista (https o http).
func (uc *PropertyUseCase) ImageAllowed(raw string) bool {
	if len(uc.allowedHosts) == 0 {
		return true
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") {
		return false
	}
	return uc.allowedHosts[strings.ToLower(u.Hostname())]
}

func (uc *PropertyUseCase) toResponse(p *entity.Property) dto.PropertyResponse {
	r := dto.PropertyResponse{
		ID:          p.ID,
		Description: p.Description,
		Price:       p.Price,
		CreatedAt:   p.CreatedAt,
		Images:      make([]dto.PropertyImageResponse, 0, len(p.Images)),
	}
	for _, img := range p.Images {
		if uc.ImageAllowed(img.URL) {
			r.Images = append(r.Images, dto.PropertyImageResponse{ID: img.ID, URL: img.URL})
		}
	}
	if p.Location != nil {
		r.Location = &dto.PropertyLocationResponse{
			City:          dto.RegionResponse{ID: p.Location.City.ID, Value: p.Location.City.Value},
			State:         dto.RegionResponse{ID: p.Location.State.ID, Value: p.Location.State.Value},
			StreetAddress: p.Location.StreetAddress,
		}
	}
	if p.Contact != nil {
		r.Contact = &dto.PropertyContactResponse{
			ID:    p.Contact.ID,
			Name:  p.Contact.Name,
			Phone: p.Contact.Phone,
			Email: p.Contact.Email,
		}
	}
	return r
}
