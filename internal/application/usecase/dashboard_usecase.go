package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/smartstock/smartstock-api/internal/application/dto"
	"github.com/smartstock/smartstock-api/internal/application/state"
	"github.com/smartstock/smartstock-api/internal/domain/entity"
)

// DashboardUseCase calcula las métricas agregadas del tablero a partir de la
// instantánea actual. Solo lectura.
type DashboardUseCase struct {
	manager *state.Manager
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(manager *state.Manager) *DashboardUseCase {
	return &DashboardUseCase{manager: manager}
}

// Stats devuelve valor total de inventario, ventas acumuladas, productos en
// umbral mínimo, traslados y la serie de movimiento de los últimos 7 días.
func (uc *DashboardUseCase) Stats() dto.DashboardStats {
	st := uc.manager.Snapshot()

	totalValue := decimal.Zero
	lowStock := 0
	for i := range st.Products {
		p := &st.Products[i]
		totalValue = totalValue.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
		if p.LowStock() {
			lowStock++
		}
	}

	totalSales := decimal.Zero
	transfers := 0
	for i := range st.Transactions {
		switch st.Transactions[i].Type {
		case entity.MovementTypeSale:
			totalSales = totalSales.Add(st.Transactions[i].TotalPrice)
		case entity.MovementTypeTransfer:
			transfers++
		}
	}

	return dto.DashboardStats{
		TotalInventoryValue: totalValue,
		TotalSales:          totalSales,
		LowStockCount:       lowStock,
		TransferCount:       transfers,
		RecentMovement:      recentMovement(st.Transactions, time.Now()),
	}
}

// recentMovement arma la serie diaria de los últimos 7 días (ascendente):
// monto vendido y número de entradas por día.
func recentMovement(transactions []entity.Transaction, now time.Time) []dto.DailyMovementPoint {
	points := make([]dto.DailyMovementPoint, 0, 7)
	for offset := 6; offset >= 0; offset-- {
		day := now.AddDate(0, 0, -offset).Format("2006-01-02")
		point := dto.DailyMovementPoint{Date: day, Sales: decimal.Zero}
		for i := range transactions {
			tx := &transactions[i]
			if tx.Date.Format("2006-01-02") != day {
				continue
			}
			switch tx.Type {
			case entity.MovementTypeSale:
				point.Sales = point.Sales.Add(tx.TotalPrice)
			case entity.MovementTypeIncoming:
				point.Incoming++
			}
		}
		points = append(points, point)
	}
	return points
}
