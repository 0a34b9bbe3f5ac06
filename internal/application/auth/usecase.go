package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/zyck/property-admin/internal/application/dto"
	"github.com/zyck/property-admin/internal/domain"
	"github.com/zyck/property-admin/internal/domain/repository"
	"github.com/zyck/property-admin/pkg/jwt"
)

// Errores de sesión. Todos envuelven domain.ErrUnauthorized.
// ErrNotAdmin cubre email desconocido, no administrador y contraseña incorrecta.
var (
	ErrNotAdmin       = fmt.Errorf("%w: You are not an Admin", domain.ErrUnauthorized)
	ErrSessionRevoked = fmt.Errorf("%w: sesión cerrada", domain.ErrUnauthorized)
)

// dummyHash se compara cuando no hay hash real, para que el tiempo de respuesta
// no distinga emails de administradores.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("zyck-admin-placeholder"), bcrypt.DefaultCost)

// RevocationStore sesiones cerradas antes de expirar.
type RevocationStore interface {
	Revoke(ctx context.Context, sessionID string, until time.Time) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// SessionConfig configuración para generación de tokens de sesión.
type SessionConfig struct {
	Secret string
	Issuer string
	TTL    time.Duration
}

// AuthUseCase inicio y cierre de sesión de administradores.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	revocations RevocationStore
	cfg         SessionConfig
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, revocations RevocationStore, cfg SessionConfig) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, revocations: revocations, cfg: cfg}
}

// SignIn verifica que el email pertenezca a un administrador activo con contraseña
// bcrypt válida y emite el token de sesión.
func (uc *AuthUseCase) SignIn(ctx context.Context, in dto.SignInRequest) (*dto.SignInResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	user, err := uc.userRepo.GetAdminByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return nil, err
	}
	hash := dummyHash
	if user != nil && user.PasswordHash != "" {
		hash = []byte(user.PasswordHash)
	}
	if err := bcrypt.CompareHashAndPassword(hash, []byte(in.Password)); err != nil || user == nil || user.PasswordHash == "" {
		return nil, ErrNotAdmin
	}
	if !user.IsActive {
		return nil, domain.ErrForbidden
	}

	session := jwt.Session{
		SessionID: uuid.New().String(),
		UserID:    user.ID,
		Name:      user.FullName(),
		Email:     user.Email,
		IsAdmin:   true,
		Image:     user.AvatarURL,
	}
	token, exp, err := jwt.Generate(uc.cfg.Secret, uc.cfg.Issuer, session, uc.cfg.TTL)
	if err != nil {
		return nil, err
	}
	return &dto.SignInResponse{Token: token, Session: toSessionResponse(&session, exp)}, nil
}

// Authenticate valida el token y que la sesión no haya sido cerrada.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*jwt.Session, time.Time, error) {
	if token == "" {
		return nil, time.Time{}, domain.ErrUnauthorized
	}
	s, exp, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		if errors.Is(err, jwt.ErrNotAdmin) {
			return nil, time.Time{}, ErrNotAdmin
		}
		return nil, time.Time{}, fmt.Errorf("%w: %v", domain.ErrUnauthorized, err)
	}
	revoked, err := uc.revocations.IsRevoked(ctx, s.SessionID)
	if err != nil {
		return nil, time.Time{}, err
	}
	if revoked {
		return nil, time.Time{}, ErrSessionRevoked
	}
	return s, exp, nil
}

// SignOut revoca la sesión hasta su expiración. Un token inválido no es error.
func (uc *AuthUseCase) SignOut(ctx context.Context, token string) error {
	s, exp, err := jwt.Parse(uc.cfg.Secret, token)
	if err != nil {
		return nil
	}
	return uc.revocations.Revoke(ctx, s.SessionID, exp)
}

// Session vista pública de la sesión.
func (uc *AuthUseCase) Session(s *jwt.Session, exp time.Time) dto.SessionResponse {
	return toSessionResponse(s, exp)
}

// TTL duración configurada de la sesión.
func (uc *AuthUseCase) TTL() time.Duration { return uc.cfg.TTL }

func toSessionResponse(s *jwt.Session, exp time.Time) dto.SessionResponse {
	return dto.SessionResponse{
		UserID:    s.UserID,
		Name:      s.Name,
		Email:     s.Email,
		IsAdmin:   s.IsAdmin,
		Image:     s.Image,
		ExpiresAt: exp,
	}
}
