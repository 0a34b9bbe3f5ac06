package dto

import "time"

// UserResponse usuario de la plataforma (sin hash de contraseña).
type UserResponse struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	IsAdmin       bool      `json:"isAdmin"`
	IsActive      bool      `json:"isActive"`
	Image         string    `json:"image,omitempty"`
	PhoneNumber   string    `json:"phoneNumber,omitempty"`
	City          string    `json:"city,omitempty"`
	Province      string    `json:"province,omitempty"`
	StreetAddress string    `json:"streetAddress,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UserListQuery filtros opcionales de GET /api/users (además del rango).
type UserListQuery struct {
	Search    string `query:"search"`
	SortField string `query:"sortField" validate:"omitempty,oneof=createdAt firstName email"`
	SortDir   string `query:"sortDir" validate:"omitempty,oneof=asc desc"`
	Page      int    `query:"page" validate:"min=0"`
	PageSize  int    `query:"pageSize" validate:"omitempty,pagesize"`
}

// Paged indica que el cliente pidió paginación.
func (q UserListQuery) Paged() bool {
	return q.Page > 0 || q.PageSize > 0
}

// UsersResponse respuesta de GET /api/users.
type UsersResponse struct {
	AllUsers []UserResponse `json:"allUsers"`
	Page     *PageMeta      `json:"page,omitempty"`
}
