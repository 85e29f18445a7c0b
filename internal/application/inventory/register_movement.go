package inventory

import (
	"github.com/smartstock/smartstock-api/internal/application/dto"
	"github.com/smartstock/smartstock-api/internal/domain"
)

// MovementFromRequest adapta el request HTTP plano (campo type + opcionales)
// a la variante de Movement correspondiente. Usar desde handlers HTTP.
func MovementFromRequest(in dto.RegisterMovementRequest) (Movement, error) {
	switch in.Type {
	case "incoming":
		return Incoming{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			User:      in.User,
			Notes:     in.Notes,
		}, nil
	case "outgoing":
		return Outgoing{
			ProductID: in.ProductID,
			Quantity:  in.Quantity,
			User:      in.User,
			Notes:     in.Notes,
		}, nil
	case "sale":
		return Sale{
			ProductID:  in.ProductID,
			Quantity:   in.Quantity,
			CustomerID: in.CustomerID,
			TotalPrice: in.TotalPrice,
			User:       in.User,
			Notes:      in.Notes,
		}, nil
	case "transfer":
		return Transfer{
			ProductID:       in.ProductID,
			Quantity:        in.Quantity,
			FromWarehouseID: in.FromWarehouseID,
			ToWarehouseID:   in.ToWarehouseID,
			User:            in.User,
			Notes:           in.Notes,
		}, nil
	default:
		return nil, domain.ErrInvalidInput
	}
}
