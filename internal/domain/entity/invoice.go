package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem es una línea de detalle de la factura. Total llega del request
// de venta, no se recalcula desde Quantity*Price.
type InvoiceItem struct {
	ProductID   string          `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Total       decimal.Decimal `json:"total"`
}

// Invoice representa una factura de venta generada por una transacción de
// tipo sale. Inmutable una vez creada. CustomerName es copia al momento de
// emisión. Number es una etiqueta secuencial derivada del tamaño actual de la
// colección (INV-{101+count}); no es un consecutivo durable si se restauran
// respaldos con menos facturas.
type Invoice struct {
	ID           string          `json:"id"`
	Number       string          `json:"number"`
	Date         time.Time       `json:"date"`
	CustomerID   string          `json:"customerId"`
	CustomerName string          `json:"customerName"`
	WarehouseID  string          `json:"warehouseId"`
	Items        []InvoiceItem   `json:"items"`
	TotalAmount  decimal.Decimal `json:"totalAmount"`
}
