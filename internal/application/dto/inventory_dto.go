package dto

import (
	"github.com/shopspring/decimal"

	"github.com/smartstock/smartstock-api/internal/domain/entity"
)

// RegisterMovementRequest body para POST /api/inventory/movements.
// Según type: incoming/outgoing usan product_id y quantity; sale agrega
// customer_id y total_price; transfer agrega from/to_warehouse_id.
type RegisterMovementRequest struct {
	Type            string          `json:"type"`
	ProductID       string          `json:"product_id"`
	Quantity        int             `json:"quantity"`
	CustomerID      string          `json:"customer_id,omitempty"`
	FromWarehouseID string          `json:"from_warehouse_id,omitempty"`
	ToWarehouseID   string          `json:"to_warehouse_id,omitempty"`
	TotalPrice      decimal.Decimal `json:"total_price,omitempty"`
	User            string          `json:"user,omitempty"`
	Notes           string          `json:"notes,omitempty"`
}

// MovementResponse respuesta de un movimiento aplicado.
type MovementResponse struct {
	Transaction entity.Transaction `json:"transaction"`
	Invoice     *entity.Invoice    `json:"invoice,omitempty"`
	Warnings    []string           `json:"warnings,omitempty"`
}
