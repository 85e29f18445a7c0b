package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/smartstock/smartstock-api/internal/domain/entity"
)

// Movement es la unión sellada de los cuatro tipos de movimiento. Cada
// variante lleva solo los campos que su tipo necesita, eliminando la
// ambigüedad de campos opcionales del request plano de la API.
type Movement interface {
	// Type devuelve el tipo de movimiento (entity.MovementType*).
	Type() string
}

// Incoming registra una entrada de mercancía a la bodega del producto.
type Incoming struct {
	ProductID string
	Quantity  int
	User      string
	Notes     string
}

// Outgoing registra una salida sin venta (merma, devolución a proveedor).
type Outgoing struct {
	ProductID string
	Quantity  int
	User      string
	Notes     string
}

// Sale registra una venta a un cliente. Si el cliente y el producto
// resuelven, genera además una factura con una línea de detalle.
type Sale struct {
	ProductID  string
	Quantity   int
	CustomerID string
	TotalPrice decimal.Decimal
	User       string
	Notes      string
}

// Transfer traslada existencia entre dos bodegas. Si el SKU no existe en la
// bodega destino, se crea allí una fila nueva clonada del origen.
type Transfer struct {
	ProductID       string
	Quantity        int
	FromWarehouseID string
	ToWarehouseID   string
	User            string
	Notes           string
}

func (Incoming) Type() string { return entity.MovementTypeIncoming }
func (Outgoing) Type() string { return entity.MovementTypeOutgoing }
func (Sale) Type() string     { return entity.MovementTypeSale }
func (Transfer) Type() string { return entity.MovementTypeTransfer }
