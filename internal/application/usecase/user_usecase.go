package usecase

import (
	"context"
	"fmt"

	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/daterange"
	"github.com/zyck/property-admin/internal/domain/entity"
	"github.com/zyck/property-admin/internal/domain/listing"
	"github.com/zyck/property-admin/internal/domain/repository"
)

// Mensajes de confirmación de /api/users.
const (
	MessageUserDeleted  = "User deleted successfully"
	MessageUserActive   = "User active Successfully"
	MessageUserInactive = "User Inactive Successfully"
)

// Invalidator invalida reportes cacheados tras una escritura.
type Invalidator interface {
	Bump(ctx context.Context) error
}

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo        repository.UserRepository
	invalidator Invalidator
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia. invalidator puede ser nil.
func NewUserUseCase(repo repository.UserRepository, invalidator Invalidator) *UserUseCase {
	return &UserUseCase{repo: repo, invalidator: invalidator}
}

// ListInRange usuarios no administradores creados en el rango, con búsqueda,
// orden y paginación opcionales.
func (uc *UserUseCase) ListInRange(ctx context.Context, r daterange.Range, q dto.UserListQuery) (*dto.UsersResponse, error) {
	if err := dto.Validate(q); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	from, to := r.Bounds()
	users, err := uc.repo.ListNonAdminCreatedBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("listar usuarios: %w", err)
	}
	users = listing.FilterUsers(users, q.Search)
	if q.SortField != "" || q.SortDir != "" {
		users, err = listing.SortUsers(users, q.SortField, q.SortDir == "asc")
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
		}
	}

	out := &dto.UsersResponse{}
	if q.Paged() {
		page := listing.Paginate(users, q.Page, q.PageSize)
		users = page.Items
		out.Page = &dto.PageMeta{
			Page:       page.Page,
			PageSize:   page.PageSize,
			Total:      page.Total,
			TotalPages: page.TotalPages,
			From:       page.From,
			To:         page.To,
			Pages:      page.Pages,
		}
	}
	out.AllUsers = make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		out.AllUsers = append(out.AllUsers, *entityToUserResponse(u))
	}
	return out, nil
}

// Delete elimina el usuario; sus ventas y propiedades caen en cascada.
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	if id == "" {
		return domain.ErrInvalidInput
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.bump(ctx)
	return nil
}

// SetActiveStatus acepta "active" o "inactive"; cualquier otro valor no modifica nada.
// Devuelve el mensaje de confirmación.
func (uc *UserUseCase) SetActiveStatus(ctx context.Context, id, status string) (string, error) {
	if id == "" {
		return "", domain.ErrInvalidInput
	}
	var active bool
	switch status {
	case entity.StatusActive:
		active = true
	case entity.StatusInactive:
	default:
		return "", domain.ErrInvalidStatus
	}
	if err := uc.repo.SetActive(ctx, id, active); err != nil {
		return "", err
	}
	if active {
		return MessageUserActive, nil
	}
	return MessageUserInactive, nil
}

func (uc *UserUseCase) bump(ctx context.Context) {
	if uc.invalidator != nil {
		_ = uc.invalidator.Bump(ctx)
	}
}

func entityToUserResponse(u *entity.User) *dto.UserResponse {
	if u == nil {
		return nil
	}
	return &dto.UserResponse{
		ID:            u.ID,
		FirstName:     u.FirstName,
		LastName:      u.LastName,
		Email:         u.Email,
		IsAdmin:       u.IsAdmin,
		IsActive:      u.IsActive,
		Image:         u.AvatarURL,
		PhoneNumber:   u.PhoneNumber,
		City:          u.City,
		Province:      u.Province,
		StreetAddress: u.StreetAddress,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}
