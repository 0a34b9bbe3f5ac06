package dto

import "time"

// SignInRequest credenciales del administrador.
type SignInRequest struct {
	Email       string `json:"email" form:"email" validate:"required,email"`
	Password    string `json:"password" form:"password" validate:"required"`
	CallbackURL string `json:"callbackUrl" form:"callbackUrl"`
}

// SessionResponse datos de la sesión del administrador.
type SessionResponse struct {
	UserID    string    `json:"userId"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	Image     string    `json:"image,omitempty"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// SignInResponse token emitido y sesión.
type SignInResponse struct {
	Token   string          `json:"token"`
	Session SessionResponse `json:"session"`
}
