package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/smartstock/smartstock-api/internal/application/dto"
	"github.com/smartstock/smartstock-api/internal/application/state"
	"github.com/smartstock/smartstock-api/internal/domain"
	"github.com/smartstock/smartstock-api/internal/domain/entity"
	"github.com/smartstock/smartstock-api/internal/domain/store"
)

// WarehouseUseCase casos de uso de bodegas. Las bodegas no tienen ruta de
// actualización ni borrado: son referenciadas por productos y facturas.
type WarehouseUseCase struct {
	manager *state.Manager
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(manager *state.Manager) *WarehouseUseCase {
	return &WarehouseUseCase{manager: manager}
}

// Create registra una bodega nueva.
func (uc *WarehouseUseCase) Create(ctx context.Context, in dto.CreateWarehouseRequest) (*entity.Warehouse, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	warehouse := entity.Warehouse{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Location: in.Location,
	}
	err := uc.manager.Update(ctx, func(st *store.Store) error {
		st.Warehouses = append(st.Warehouses, warehouse)
		return nil
	}, store.CollectionWarehouses)
	if err != nil {
		return nil, err
	}
	return &warehouse, nil
}

// List devuelve todas las bodegas.
func (uc *WarehouseUseCase) List() []entity.Warehouse {
	return uc.manager.Snapshot().Warehouses
}
