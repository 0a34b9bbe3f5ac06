package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNotAdmin el token es válido pero no pertenece a un administrador.
var ErrNotAdmin = errors.New("jwt: la sesión no es de administrador")

// Session datos de la sesión de administrador transportados en el token.
type Session struct {
	SessionID string `json:"sid"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	IsAdmin   bool   `json:"is_admin"`
	Image     string `json:"image,omitempty"`
}

// Claims incluye los claims estándar JWT más los datos de la sesión.
type Claims struct {
	jwt.RegisteredClaims
	Session
}

// Generate genera un token HS256 firmado con los datos de la sesión.
func Generate(secret, issuer string, s Session, ttl time.Duration) (string, time.Time, error) {
	if secret == "" {
		return "", time.Time{}, fmt.Errorf("jwt: secret vacío")
	}
	now := time.Now()
	exp := now.Add(ttl)
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        s.SessionID,
			Issuer:    issuer,
			Subject:   s.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Session: s,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, exp, nil
}

// Parse valida firma y expiración y devuelve la sesión junto con su expiración.
// Retorna ErrNotAdmin si el claim is_admin es falso.
func Parse(secret, tokenString string) (*Session, time.Time, error) {
	if secret == "" {
		return nil, time.Time{}, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, time.Time{}, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, time.Time{}, fmt.Errorf("claims inválidos")
	}
	if !claims.IsAdmin {
		return nil, time.Time{}, ErrNotAdmin
	}
	var exp time.Time
	if claims.ExpiresAt != nil {
		exp = claims.ExpiresAt.Time
	}
	s := claims.Session
	return &s, exp, nil
}
