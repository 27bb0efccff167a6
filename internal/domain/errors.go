package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrClienteNotFound = errors.New("cliente no encontrado")
	ErrUserNotFound    = errors.New("usuario no encontrado")
	ErrUsernameExists  = errors.New("el nombre de usuario ya existe")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrUnauthorized    = errors.New("credenciales inválidas")
	ErrForbidden       = errors.New("acceso denegado")
	ErrAdminProtegido  = errors.New("no se puede eliminar al usuario administrador principal")

	// Conflictos al eliminar categorías con registros asociados.
	ErrCategoriaConArticulos = errors.New("no se puede eliminar la categoría porque hay artículos asociados")
	ErrCategoriaConVentas    = errors.New("no se puede eliminar la categoría porque hay ventas asociadas")
)
