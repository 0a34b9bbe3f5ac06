package entity

import "time"

// Estados válidos para el toggle de actividad.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// User representa un usuario de la plataforma (cliente o administrador).
type User struct {
	ID            string
	FirstName     string
	LastName      string
	Email         string
	PasswordHash  string // solo administradores; vacío para clientes
	IsAdmin       bool
	IsActive      bool
	AvatarURL     string
	PhoneNumber   string
	City          string
	Province      string
	StreetAddress string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// FullName nombre y apellido separados por un espacio.
func (u *User) FullName() string {
	switch {
	case u.FirstName == "":
		return u.LastName
	case u.LastName == "":
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
