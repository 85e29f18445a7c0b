package dto

import "github.com/shopspring/decimal"

// DashboardStats métricas agregadas para el tablero principal.
type DashboardStats struct {
	TotalInventoryValue decimal.Decimal      `json:"total_inventory_value"` // Σ price * quantity
	TotalSales          decimal.Decimal      `json:"total_sales"`           // Σ total_price de ventas
	LowStockCount       int                  `json:"low_stock_count"`       // productos con quantity <= min_threshold
	TransferCount       int                  `json:"transfer_count"`
	RecentMovement      []DailyMovementPoint `json:"recent_movement"` // últimos 7 días, ascendente
}

// DailyMovementPoint un punto de la serie de movimiento diario.
type DailyMovementPoint struct {
	Date     string          `json:"date"` // YYYY-MM-DD
	Sales    decimal.Decimal `json:"sales"`
	Incoming int             `json:"incoming"`
}
