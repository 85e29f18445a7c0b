package inventory

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/smartstock/smartstock-api/internal/domain"
	"github.com/smartstock/smartstock-api/internal/domain/entity"
	"github.com/smartstock/smartstock-api/internal/domain/store"
)

// RegisterMovementUseCase es el procesador de movimientos de inventario.
// Apply aplica un movimiento sobre el Store recibido como un paso atómico:
// muta cantidades de producto, antepone la transacción al libro y, para
// ventas, materializa la factura. La persistencia es un paso posterior del
// caller, no responsabilidad de este caso de uso.
type RegisterMovementUseCase struct{}

// NewRegisterMovementUseCase construye el procesador.
func NewRegisterMovementUseCase() *RegisterMovementUseCase {
	return &RegisterMovementUseCase{}
}

// MovementResult es el resultado de aplicar un movimiento. Invoice es nil
// salvo para ventas con cliente y producto resolubles. Warnings reporta las
// desviaciones blandas (stock insuficiente saturado en 0, factura omitida);
// nunca abortan el movimiento.
type MovementResult struct {
	Transaction entity.Transaction
	Invoice     *entity.Invoice
	Warnings    []string
}

// Apply valida el movimiento y lo aplica sobre st.
//
// Política de fallos blandos (comportamiento heredado, confirmado con
// stakeholders): una deducción mayor al stock satura en 0 en lugar de fallar;
// una venta cuyo cliente o producto no resuelve omite la factura pero
// registra igual la transacción. Solo la entrada malformada (cantidad no
// positiva, traslado sin bodegas o con bodegas iguales) es error duro.
func (uc *RegisterMovementUseCase) Apply(st *store.Store, mv Movement) (*MovementResult, error) {
	if err := validate(mv); err != nil {
		return nil, err
	}

	now := time.Now()
	res := &MovementResult{}

	tx := entity.Transaction{
		ID:   uuid.New().String(),
		Type: mv.Type(),
		Date: now,
	}

	switch m := mv.(type) {
	case Incoming:
		tx.ProductID = m.ProductID
		tx.Quantity = m.Quantity
		tx.User = m.User
		tx.Notes = m.Notes
	case Outgoing:
		tx.ProductID = m.ProductID
		tx.Quantity = m.Quantity
		tx.User = m.User
		tx.Notes = m.Notes
	case Sale:
		tx.ProductID = m.ProductID
		tx.Quantity = m.Quantity
		tx.User = m.User
		tx.Notes = m.Notes
		tx.CustomerID = m.CustomerID
		tx.TotalPrice = m.TotalPrice
		if inv := uc.buildInvoice(st, m, now, res); inv != nil {
			st.PrependInvoice(*inv)
			tx.InvoiceID = inv.ID
			res.Invoice = inv
		}
	case Transfer:
		tx.ProductID = m.ProductID
		tx.Quantity = m.Quantity
		tx.User = m.User
		tx.Notes = m.Notes
		tx.FromWarehouseID = m.FromWarehouseID
		tx.ToWarehouseID = m.ToWarehouseID
	}

	// Copia del nombre al momento de crear la transacción (auditoría estable).
	if p := st.FindProduct(tx.ProductID); p != nil {
		tx.ProductName = p.Name
	}

	st.PrependTransaction(tx)
	uc.mutateProducts(st, mv, now, res)

	res.Transaction = tx
	return res, nil
}

// validate verifica las precondiciones del caller. Todo lo demás se degrada
// de forma blanda dentro de Apply.
func validate(mv Movement) error {
	quantity := 0
	switch m := mv.(type) {
	case Incoming:
		quantity = m.Quantity
	case Outgoing:
		quantity = m.Quantity
	case Sale:
		quantity = m.Quantity
	case Transfer:
		quantity = m.Quantity
		if m.FromWarehouseID == "" || m.ToWarehouseID == "" {
			return domain.ErrInvalidInput
		}
		if m.FromWarehouseID == m.ToWarehouseID {
			return domain.ErrInvalidInput
		}
	default:
		return domain.ErrInvalidInput
	}
	if quantity <= 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// buildInvoice materializa la factura de una venta si cliente y producto
// resuelven; si alguno falta devuelve nil y deja la advertencia en res.
// La numeración se deriva del tamaño actual de la colección: INV-{101+count}.
func (uc *RegisterMovementUseCase) buildInvoice(st *store.Store, m Sale, now time.Time, res *MovementResult) *entity.Invoice {
	customer := st.FindCustomer(m.CustomerID)
	product := st.FindProduct(m.ProductID)
	if customer == nil || product == nil {
		res.Warnings = append(res.Warnings,
			"venta sin cliente o producto resoluble: se omite la factura")
		return nil
	}
	return &entity.Invoice{
		ID:           uuid.New().String(),
		Number:       fmt.Sprintf("INV-%d", 101+len(st.Invoices)),
		Date:         now,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		WarehouseID:  product.WarehouseID,
		TotalAmount:  m.TotalPrice,
		Items: []entity.InvoiceItem{{
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    m.Quantity,
			Price:       product.UnitSalePrice(),
			Total:       m.TotalPrice,
		}},
	}
}

// mutateProducts aplica el efecto del movimiento sobre el catálogo.
// Invariante: ninguna cantidad queda negativa; toda mutación refresca
// UpdatedAt.
func (uc *RegisterMovementUseCase) mutateProducts(st *store.Store, mv Movement, now time.Time, res *MovementResult) {
	switch m := mv.(type) {
	case Incoming:
		p := st.FindProduct(m.ProductID)
		if p == nil {
			res.Warnings = append(res.Warnings, "producto no encontrado: stock sin cambios")
			return
		}
		p.Quantity += m.Quantity
		p.UpdatedAt = now

	case Outgoing:
		uc.deduct(st, m.ProductID, m.Quantity, now, res)

	case Sale:
		uc.deduct(st, m.ProductID, m.Quantity, now, res)

	case Transfer:
		source := st.FindProduct(m.ProductID)
		if source == nil {
			res.Warnings = append(res.Warnings, "producto no encontrado: traslado sin efecto sobre stock")
			return
		}
		if m.Quantity > source.Quantity {
			res.Warnings = append(res.Warnings, "stock insuficiente en bodega origen: se satura en 0")
		}
		source.Quantity = clampFloor(source.Quantity - m.Quantity)
		source.UpdatedAt = now

		if target := st.FindProductBySKUAndWarehouse(source.SKU, m.ToWarehouseID); target != nil {
			target.Quantity += m.Quantity
			target.UpdatedAt = now
			return
		}
		// El SKU no existe en la bodega destino: propagación implícita.
		clone := *source
		clone.ID = uuid.New().String()
		clone.Quantity = m.Quantity
		clone.WarehouseID = m.ToWarehouseID
		clone.UpdatedAt = now
		if source.SalePrice != nil {
			sp := *source.SalePrice
			clone.SalePrice = &sp
		}
		st.AppendProduct(clone)
	}
}

// deduct resta cantidad con saturación en 0. El clamp es una salvaguarda de
// idempotencia, no una regla de negocio validada: no se verifica stock antes
// de intentar la deducción.
func (uc *RegisterMovementUseCase) deduct(st *store.Store, productID string, quantity int, now time.Time, res *MovementResult) {
	p := st.FindProduct(productID)
	if p == nil {
		res.Warnings = append(res.Warnings, "producto no encontrado: stock sin cambios")
		return
	}
	if quantity > p.Quantity {
		res.Warnings = append(res.Warnings, "stock insuficiente: se satura en 0")
	}
	p.Quantity = clampFloor(p.Quantity - quantity)
	p.UpdatedAt = now
}

func clampFloor(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
