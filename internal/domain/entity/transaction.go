package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de movimiento de inventario.
const (
	MovementTypeIncoming = "incoming" // entrada de mercancía
	MovementTypeOutgoing = "outgoing" // salida sin venta (merma, devolución a proveedor)
	MovementTypeSale     = "sale"     // venta a un cliente (puede generar factura)
	MovementTypeTransfer = "transfer" // traslado entre bodegas
)

// Transaction es una entrada del libro de movimientos (append-only, más
// reciente primero). ProductName es una copia tomada al momento de crear la
// transacción: renombrar el producto después no la modifica.
type Transaction struct {
	ID              string          `json:"id"`
	ProductID       string          `json:"productId"`
	ProductName     string          `json:"productName"`
	Type            string          `json:"type"`
	Quantity        int             `json:"quantity"`
	Date            time.Time       `json:"date"`
	User            string          `json:"user"`
	CustomerID      string          `json:"customerId,omitempty"`
	FromWarehouseID string          `json:"fromWarehouseId,omitempty"`
	ToWarehouseID   string          `json:"toWarehouseId,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	TotalPrice      decimal.Decimal `json:"totalPrice"`
	InvoiceID       string          `json:"invoiceId,omitempty"`
}
