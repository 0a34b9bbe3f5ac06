package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrUserNotFound     = errors.New("usuario no encontrado")
	ErrInvalidInput     = errors.New("entrada inválida")
	ErrDuplicate        = errors.New("recurso duplicado")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
	ErrInvalidDateRange = errors.New("rango de fechas inválido")
	ErrInvalidStatus    = errors.New("estado inválido")
	ErrInvalidPeriod    = errors.New("mes o año inválido")
	ErrNoResults        = errors.New("sin resultados para el periodo")
)
