package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa la existencia de un SKU en una bodega concreta.
// El mismo SKU presente en dos bodegas son dos filas distintas que comparten
// SKU pero difieren en ID, WarehouseID y Quantity.
// Invariante: Quantity nunca es negativa (las deducciones saturan en 0).
type Product struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	SKU          string           `json:"sku"`
	Category     string           `json:"category"`
	Quantity     int              `json:"quantity"`
	MinThreshold int              `json:"minThreshold"`
	Price        decimal.Decimal  `json:"price"`
	SalePrice    *decimal.Decimal `json:"salePrice,omitempty"`
	WarehouseID  string           `json:"warehouseId"`
	UpdatedAt    time.Time        `json:"updatedAt"`
	ImageURL     string           `json:"imageUrl,omitempty"`
}

// UnitSalePrice devuelve el precio unitario de venta: SalePrice si está
// definido y es distinto de cero, si no Price.
func (p *Product) UnitSalePrice() decimal.Decimal {
	if p.SalePrice != nil && !p.SalePrice.IsZero() {
		return *p.SalePrice
	}
	return p.Price
}

// LowStock indica si la existencia está en o por debajo del umbral mínimo.
func (p *Product) LowStock() bool {
	return p.Quantity <= p.MinThreshold
}
