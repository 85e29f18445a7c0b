package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/smartstock-api/internal/application/dto"
	"github.com/smartstock/smartstock-api/internal/application/inventory"
	"github.com/smartstock/smartstock-api/internal/domain"
	"github.com/smartstock/smartstock-api/internal/domain/entity"
	"github.com/smartstock/smartstock-api/internal/domain/store"
)

// ──────────────────────────────────────────────────────────────────────────────
// Tests del procesador de movimientos: el corazón del sistema. Cada Apply debe
// dejar el Store consistente: cantidades nunca negativas, libro más reciente
// primero, factura solo cuando cliente y producto resuelven.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testWarehouse1 = "w1"
	testWarehouse2 = "w2"
	testCustomer1  = "c1"
	testProduct1   = "p1"
)

// buildTestStore arma el escenario base: un producto con SKU "TORN-001" y
// 10 unidades en la bodega 1, dos bodegas y un cliente.
func buildTestStore() *store.Store {
	st := store.New()
	st.Warehouses = []entity.Warehouse{
		{ID: testWarehouse1, Name: "Bodega Central", Location: "Bogotá"},
		{ID: testWarehouse2, Name: "Sucursal Norte", Location: "Medellín"},
	}
	st.Customers = []entity.Customer{
		{ID: testCustomer1, Name: "Comercializadora El Águila"},
	}
	st.Products = []entity.Product{
		{
			ID:           testProduct1,
			Name:         "Tornillo 3/8",
			SKU:          "TORN-001",
			Quantity:     10,
			MinThreshold: 3,
			Price:        decimal.NewFromInt(500),
			WarehouseID:  testWarehouse1,
		},
	}
	return st
}

// ── Entradas y salidas ────────────────────────────────────────────────────────

func TestApply_EntradaSumaStock(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()

	res, err := uc.Apply(st, inventory.Incoming{ProductID: testProduct1, Quantity: 5, User: "ana"})

	require.NoError(t, err)
	assert.Equal(t, 15, st.FindProduct(testProduct1).Quantity)
	assert.Empty(t, res.Warnings)
	assert.Equal(t, entity.MovementTypeIncoming, res.Transaction.Type)
	assert.Equal(t, "Tornillo 3/8", res.Transaction.ProductName,
		"la transacción debe copiar el nombre del producto")
}

func TestApply_SalidaRestaStock(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()

	_, err := uc.Apply(st, inventory.Outgoing{ProductID: testProduct1, Quantity: 4})

	require.NoError(t, err)
	assert.Equal(t, 6, st.FindProduct(testProduct1).Quantity)
}

func TestApply_EntradaYSalidaSonInversas(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()

	_, err := uc.Apply(st, inventory.Incoming{ProductID: testProduct1, Quantity: 7})
	require.NoError(t, err)
	_, err = uc.Apply(st, inventory.Outgoing{ProductID: testProduct1, Quantity: 7})
	require.NoError(t, err)

	assert.Equal(t, 10, st.FindProduct(testProduct1).Quantity,
		"entrada seguida de salida de la misma cantidad debe dejar el stock igual")
}

// TestApply_DeduccionMayorAlStockSaturaEnCero: deducir más de lo que hay no es
// error; el stock queda en 0 y la desviación llega como warning.
func TestApply_DeduccionMayorAlStockSaturaEnCero(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()

	res, err := uc.Apply(st, inventory.Outgoing{ProductID: testProduct1, Quantity: 25})

	require.NoError(t, err, "la sobrededucción no debe abortar el movimiento")
	assert.Equal(t, 0, st.FindProduct(testProduct1).Quantity)
	assert.NotEmpty(t, res.Warnings, "debe reportar la saturación como warning")
	assert.Equal(t, 25, res.Transaction.Quantity,
		"la transacción registra la cantidad solicitada, no la deducida")
}

func TestApply_ProductoInexistenteRegistraTransaccionSinStock(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()

	res, err := uc.Apply(st, inventory.Outgoing{ProductID: "no-existe", Quantity: 2})

	require.NoError(t, err)
	assert.NotEmpty(t, res.Warnings)
	assert.Len(t, st.Transactions, 1, "la transacción se registra igual")
	assert.Equal(t, 10, st.FindProduct(testProduct1).Quantity, "ningún stock cambia")
}

// ── Ventas y facturación ──────────────────────────────────────────────────────

func TestApply_VentaGeneraFacturaConUnaLinea(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()

	res, err := uc.Apply(st, inventory.Sale{
		ProductID:  testProduct1,
		Quantity:   3,
		CustomerID: testCustomer1,
		TotalPrice: decimal.NewFromInt(1500),
	})

	require.NoError(t, err)
	require.NotNil(t, res.Invoice)
	require.Len(t, st.Invoices, 1)

	inv := res.Invoice
	assert.Equal(t, "INV-101", inv.Number, "la primera factura arranca en 101")
	assert.Equal(t, "Comercializadora El Águila", inv.CustomerName)
	assert.Equal(t, testWarehouse1, inv.WarehouseID)
	require.Len(t, inv.Items, 1, "una venta produce exactamente una línea")
	assert.True(t, decimal.NewFromInt(1500).Equal(inv.TotalAmount))
	assert.True(t, decimal.NewFromInt(1500).Equal(inv.Items[0].Total))
	assert.Equal(t, inv.ID, res.Transaction.InvoiceID,
		"la transacción debe enlazar la factura generada")
	assert.Equal(t, 7, st.FindProduct(testProduct1).Quantity)
}

func TestApply_VentaUsaSalePriceSiEstaDefinido(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()
	sp := decimal.NewFromInt(750)
	st.FindProduct(testProduct1).SalePrice = &sp

	res, err := uc.Apply(st, inventory.Sale{
		ProductID:  testProduct1,
		Quantity:   1,
		CustomerID: testCustomer1,
		TotalPrice: decimal.NewFromInt(750),
	})

	require.NoError(t, err)
	require.NotNil(t, res.Invoice)
	assert.True(t, sp.Equal(res.Invoice.Items[0].Price))
}

func TestApply_SalePriceCeroCaeAlPrecioBase(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()
	zero := decimal.Zero
	st.FindProduct(testProduct1).SalePrice = &zero

	res, err := uc.Apply(st, inventory.Sale{
		ProductID:  testProduct1,
		Quantity:   1,
		CustomerID: testCustomer1,
		TotalPrice: decimal.NewFromInt(500),
	})

	require.NoError(t, err)
	require.NotNil(t, res.Invoice)
	assert.True(t, decimal.NewFromInt(500).Equal(res.Invoice.Items[0].Price),
		"un SalePrice en cero no cuenta como precio de venta")
}

// TestApply_VentaSinClienteResolubleOmiteFactura: la venta se registra en el
// libro y descuenta stock, pero no materializa factura.
func TestApply_VentaSinClienteResolubleOmiteFactura(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()

	res, err := uc.Apply(st, inventory.Sale{
		ProductID:  testProduct1,
		Quantity:   2,
		CustomerID: "cliente-fantasma",
		TotalPrice: decimal.NewFromInt(1000),
	})

	require.NoError(t, err)
	assert.Nil(t, res.Invoice)
	assert.Empty(t, st.Invoices)
	assert.NotEmpty(t, res.Warnings)
	assert.Len(t, st.Transactions, 1, "la transacción se registra aunque no haya factura")
	assert.Equal(t, 8, st.FindProduct(testProduct1).Quantity, "el stock se descuenta igual")
	assert.Empty(t, res.Transaction.InvoiceID)
}

func TestApply_NumeracionDeFacturasEsConsecutivaPorConteo(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()

	sale := inventory.Sale{
		ProductID:  testProduct1,
		Quantity:   1,
		CustomerID: testCustomer1,
		TotalPrice: decimal.NewFromInt(500),
	}
	res1, err := uc.Apply(st, sale)
	require.NoError(t, err)
	res2, err := uc.Apply(st, sale)
	require.NoError(t, err)

	assert.Equal(t, "INV-101", res1.Invoice.Number)
	assert.Equal(t, "INV-102", res2.Invoice.Number)
}

// ── Traslados ─────────────────────────────────────────────────────────────────

// TestApply_TrasladoCreaFilaEnBodegaDestino reproduce el escenario canónico:
// 10 unidades en bodega 1, traslado de 4 a bodega 2 → origen queda en 6 y
// aparece una fila nueva con 4 unidades y el mismo SKU en destino.
func TestApply_TrasladoCreaFilaEnBodegaDestino(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()

	res, err := uc.Apply(st, inventory.Transfer{
		ProductID:       testProduct1,
		Quantity:        4,
		FromWarehouseID: testWarehouse1,
		ToWarehouseID:   testWarehouse2,
	})

	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	require.Len(t, st.Products, 2, "debe aparecer exactamente una fila nueva")

	source := st.FindProductBySKUAndWarehouse("TORN-001", testWarehouse1)
	target := st.FindProductBySKUAndWarehouse("TORN-001", testWarehouse2)
	require.NotNil(t, source)
	require.NotNil(t, target)
	assert.Equal(t, 6, source.Quantity)
	assert.Equal(t, 4, target.Quantity)
	assert.NotEqual(t, source.ID, target.ID, "la fila destino tiene ID propio")
	assert.Equal(t, source.Name, target.Name)
	assert.True(t, source.Price.Equal(target.Price))
}

func TestApply_TrasladoAFilaExistenteIncrementaSinDuplicar(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()
	st.AppendProduct(entity.Product{
		ID:          "p2",
		Name:        "Tornillo 3/8",
		SKU:         "TORN-001",
		Quantity:    2,
		Price:       decimal.NewFromInt(500),
		WarehouseID: testWarehouse2,
	})

	_, err := uc.Apply(st, inventory.Transfer{
		ProductID:       testProduct1,
		Quantity:        3,
		FromWarehouseID: testWarehouse1,
		ToWarehouseID:   testWarehouse2,
	})

	require.NoError(t, err)
	assert.Len(t, st.Products, 2, "no debe duplicar la fila del SKU en destino")
	assert.Equal(t, 7, st.FindProduct(testProduct1).Quantity)
	assert.Equal(t, 5, st.FindProduct("p2").Quantity)
}

// TestApply_TrasladoMayorAlStockSaturaOrigenPeroEntregaCompleto: el origen
// satura en 0 con warning; la fila destino recibe la cantidad solicitada
// completa (comportamiento heredado).
func TestApply_TrasladoMayorAlStockSaturaOrigenPeroEntregaCompleto(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()

	res, err := uc.Apply(st, inventory.Transfer{
		ProductID:       testProduct1,
		Quantity:        15,
		FromWarehouseID: testWarehouse1,
		ToWarehouseID:   testWarehouse2,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, res.Warnings)
	assert.Equal(t, 0, st.FindProduct(testProduct1).Quantity)
	target := st.FindProductBySKUAndWarehouse("TORN-001", testWarehouse2)
	require.NotNil(t, target)
	assert.Equal(t, 15, target.Quantity)
}

func TestApply_TrasladoCopiaSalePricePorValor(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()
	sp := decimal.NewFromInt(800)
	st.FindProduct(testProduct1).SalePrice = &sp

	_, err := uc.Apply(st, inventory.Transfer{
		ProductID:       testProduct1,
		Quantity:        4,
		FromWarehouseID: testWarehouse1,
		ToWarehouseID:   testWarehouse2,
	})

	require.NoError(t, err)
	target := st.FindProductBySKUAndWarehouse("TORN-001", testWarehouse2)
	require.NotNil(t, target)
	require.NotNil(t, target.SalePrice)
	assert.True(t, sp.Equal(*target.SalePrice))
	assert.NotSame(t, st.FindProduct(testProduct1).SalePrice, target.SalePrice,
		"el puntero no debe compartirse entre filas")
}

// ── Libro de movimientos ──────────────────────────────────────────────────────

func TestApply_LibroQuedaMasRecientePrimero(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()

	_, err := uc.Apply(st, inventory.Incoming{ProductID: testProduct1, Quantity: 1})
	require.NoError(t, err)
	_, err = uc.Apply(st, inventory.Outgoing{ProductID: testProduct1, Quantity: 1})
	require.NoError(t, err)

	require.Len(t, st.Transactions, 2)
	assert.Equal(t, entity.MovementTypeOutgoing, st.Transactions[0].Type,
		"el movimiento más reciente va primero")
	assert.Equal(t, entity.MovementTypeIncoming, st.Transactions[1].Type)
}

// ── Errores de validación ─────────────────────────────────────────────────────

func TestApply_CantidadNoPositivaEsError(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()

	for _, quantity := range []int{0, -3} {
		st := buildTestStore()
		_, err := uc.Apply(st, inventory.Incoming{ProductID: testProduct1, Quantity: quantity})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, st.Transactions, "un movimiento inválido no toca el estado")
		assert.Equal(t, 10, st.FindProduct(testProduct1).Quantity)
	}
}

func TestApply_TrasladoSinBodegasEsError(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()

	_, err := uc.Apply(st, inventory.Transfer{ProductID: testProduct1, Quantity: 2, ToWarehouseID: testWarehouse2})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Apply(st, inventory.Transfer{ProductID: testProduct1, Quantity: 2, FromWarehouseID: testWarehouse1})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestApply_TrasladoAMismaBodegaEsError(t *testing.T) {
	uc := inventory.NewRegisterMovementUseCase()
	st := buildTestStore()

	_, err := uc.Apply(st, inventory.Transfer{
		ProductID:       testProduct1,
		Quantity:        2,
		FromWarehouseID: testWarehouse1,
		ToWarehouseID:   testWarehouse1,
	})

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, st.Transactions)
}

// ── Adaptación del request ────────────────────────────────────────────────────

func TestMovementFromRequest_TipoDesconocidoEsError(t *testing.T) {
	_, err := inventory.MovementFromRequest(dtoMovement("ajuste"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMovementFromRequest_MapeaCadaTipo(t *testing.T) {
	for _, typ := range []string{"incoming", "outgoing", "sale", "transfer"} {
		mv, err := inventory.MovementFromRequest(dtoMovement(typ))
		require.NoError(t, err, typ)
		assert.Equal(t, typ, mv.Type())
	}
}

// ── helper ────────────────────────────────────────────────────────────────────

func dtoMovement(typ string) dto.RegisterMovementRequest {
	return dto.RegisterMovementRequest{
		Type:            typ,
		ProductID:       testProduct1,
		Quantity:        1,
		CustomerID:      testCustomer1,
		FromWarehouseID: testWarehouse1,
		ToWarehouseID:   testWarehouse2,
		TotalPrice:      decimal.NewFromInt(500),
	}
}
