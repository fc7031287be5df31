package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")

	// ErrInvalidMovement: el evento es rechazado por el estado del actor
	// (miembro inactivo, tope de préstamos alcanzado).
	ErrInvalidMovement = errors.New("movimiento no permitido")

	// ErrIllegalTransition: la transición de estado solicitada no existe
	// en la máquina de estados de circulación.
	ErrIllegalTransition = errors.New("transición de estado no permitida")

	// ErrReferencedEntity: la entidad tiene movimientos asociados y no puede
	// eliminarse (el historial es inmutable).
	ErrReferencedEntity = errors.New("la entidad tiene movimientos asociados")
)
