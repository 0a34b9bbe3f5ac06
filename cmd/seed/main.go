// seed crea o actualiza un administrador con contraseña bcrypt.
//
// Uso: go run ./cmd/seed -email admin@zyck.com -password secreto [-first Zyck] [-last Admin]
// Lee la conexión a PostgreSQL de las mismas variables que la API (DB_HOST, DB_NAME, ...).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/zyck/property-admin/internal/domain/entity"
	"github.com/zyck/property-admin/internal/infrastructure/postgres"
	"github.com/zyck/property-admin/pkg/config"
	"github.com/zyck/property-admin/pkg/logger"
)

func main() {
	email := flag.String("email", "", "email del administrador (obligatorio)")
	password := flag.String("password", "", "contraseña en claro (obligatoria, mínimo 8 caracteres)")
	first := flag.String("first", "Admin", "nombre")
	last := flag.String("last", "", "apellido")
	avatar := flag.String("avatar", "", "URL de la imagen de perfil")
	flag.Parse()

	if strings.TrimSpace(*email) == "" || len(*password) < 8 {
		fmt.Fprintln(os.Stderr, "uso: seed -email <email> -password <mínimo 8 caracteres>")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuración: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel}).Component("seed")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.RunMigrations {
		if _, err := postgres.RunMigrations(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}

	admin := &entity.User{
		ID:           uuid.New().String(),
		FirstName:    strings.TrimSpace(*first),
		LastName:     strings.TrimSpace(*last),
		Email:        strings.TrimSpace(*email),
		PasswordHash: string(hash),
		IsAdmin:      true,
		IsActive:     true,
		AvatarURL:    strings.TrimSpace(*avatar),
		UpdatedAt:    time.Now().UTC(),
	}
	if err := postgres.NewUserRepository(pool).UpsertAdmin(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("guardar administrador")
	}
	log.Info().Str("email", admin.Email).Msg("administrador listo")
}
