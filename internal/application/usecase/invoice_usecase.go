package usecase

import (
	"context"

	"github.com/smartstock/smartstock-api/internal/application/state"
	"github.com/smartstock/smartstock-api/internal/domain"
	"github.com/smartstock/smartstock-api/internal/domain/entity"
)

// InvoicePDFGenerator puerto de salida para la representación gráfica de la
// factura. La bodega puede ser nil si fue eliminada de un respaldo.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, invoice *entity.Invoice, warehouse *entity.Warehouse) ([]byte, error)
}

// InvoiceUseCase consulta de facturas emitidas. Las facturas se crean
// únicamente como efecto de una venta en el procesador de movimientos.
type InvoiceUseCase struct {
	manager *state.Manager
	pdf     InvoicePDFGenerator
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(manager *state.Manager, pdf InvoicePDFGenerator) *InvoiceUseCase {
	return &InvoiceUseCase{manager: manager, pdf: pdf}
}

// List devuelve las facturas, más reciente primero.
func (uc *InvoiceUseCase) List() []entity.Invoice {
	return uc.manager.Snapshot().Invoices
}

// GetByID obtiene una factura por ID.
func (uc *InvoiceUseCase) GetByID(id string) (*entity.Invoice, error) {
	inv := uc.manager.Snapshot().FindInvoice(id)
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	return inv, nil
}

// RenderPDF genera la representación gráfica de la factura.
func (uc *InvoiceUseCase) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	st := uc.manager.Snapshot()
	inv := st.FindInvoice(id)
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	warehouse := st.FindWarehouse(inv.WarehouseID)
	return uc.pdf.GenerateInvoicePDF(ctx, inv, warehouse)
}
