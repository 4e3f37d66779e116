package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrUserNotFound  = errors.New("usuario no encontrado")
	ErrEmailExists   = errors.New("el email ya está registrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrDuplicate     = errors.New("recurso duplicado")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrConflict      = errors.New("conflicto con el estado actual")
	ErrMissingToken  = errors.New("token de acceso requerido")
	ErrInvalidToken  = errors.New("token inválido o expirado")
	ErrInvalidRole   = errors.New("rol no reconocido")
	ErrInvalidStatus = errors.New("transición de estado no permitida")
)
