package dto

import "github.com/shopspring/decimal"

// CreateProductRequest body para POST /api/products.
type CreateProductRequest struct {
	Name         string           `json:"name"`
	SKU          string           `json:"sku"`
	Category     string           `json:"category"`
	Quantity     int              `json:"quantity"`
	MinThreshold int              `json:"min_threshold"`
	Price        decimal.Decimal  `json:"price"`
	SalePrice    *decimal.Decimal `json:"sale_price,omitempty"`
	WarehouseID  string           `json:"warehouse_id"`
	ImageURL     string           `json:"image_url,omitempty"`
}

// UpdateProductRequest body para PUT /api/products/:id. La cantidad no se
// modifica por esta vía: el stock cambia solo a través de movimientos.
type UpdateProductRequest struct {
	Name         string           `json:"name"`
	SKU          string           `json:"sku"`
	Category     string           `json:"category"`
	MinThreshold int              `json:"min_threshold"`
	Price        decimal.Decimal  `json:"price"`
	SalePrice    *decimal.Decimal `json:"sale_price,omitempty"`
	ImageURL     string           `json:"image_url,omitempty"`
}
