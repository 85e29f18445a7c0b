package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")

	// ErrImportFormat indica que un documento de respaldo no tiene las
	// colecciones mínimas (products, transactions, warehouses). La
	// restauración lo reporta y deja el estado actual intacto.
	ErrImportFormat = errors.New("formato de respaldo inválido")
)
