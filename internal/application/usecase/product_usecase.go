package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/smartstock/smartstock-api/internal/application/dto"
	"github.com/smartstock/smartstock-api/internal/application/state"
	"github.com/smartstock/smartstock-api/internal/domain"
	"github.com/smartstock/smartstock-api/internal/domain/entity"
	"github.com/smartstock/smartstock-api/internal/domain/store"
)

// ProductUseCase casos de uso CRUD del catálogo. El stock posterior a la
// creación cambia únicamente a través de movimientos.
type ProductUseCase struct {
	manager *state.Manager
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(manager *state.Manager) *ProductUseCase {
	return &ProductUseCase{manager: manager}
}

// Create agrega una fila de producto (SKU en una bodega). Rechaza duplicar
// el mismo SKU en la misma bodega: esa fila ya representa la existencia allí.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.SKU == "" || in.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}

	product := entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		SKU:          in.SKU,
		Category:     in.Category,
		Quantity:     in.Quantity,
		MinThreshold: in.MinThreshold,
		Price:        in.Price,
		SalePrice:    in.SalePrice,
		WarehouseID:  in.WarehouseID,
		UpdatedAt:    time.Now(),
		ImageURL:     in.ImageURL,
	}

	err := uc.manager.Update(ctx, func(st *store.Store) error {
		if st.FindProductBySKUAndWarehouse(in.SKU, in.WarehouseID) != nil {
			return domain.ErrDuplicate
		}
		st.AppendProduct(product)
		return nil
	}, store.CollectionProducts)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// List devuelve el catálogo, opcionalmente filtrado por bodega.
func (uc *ProductUseCase) List(warehouseID string) []entity.Product {
	products := uc.manager.Snapshot().Products
	if warehouseID == "" {
		return products
	}
	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if p.WarehouseID == warehouseID {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*entity.Product, error) {
	p := uc.manager.Snapshot().FindProduct(id)
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// Update modifica los campos de catálogo de un producto. La cantidad no se
// toca por esta vía.
func (uc *ProductUseCase) Update(ctx context.Context, id string, in dto.UpdateProductRequest) (*entity.Product, error) {
	if in.Name == "" || in.SKU == "" {
		return nil, domain.ErrInvalidInput
	}
	var updated entity.Product
	err := uc.manager.Update(ctx, func(st *store.Store) error {
		p := st.FindProduct(id)
		if p == nil {
			return domain.ErrNotFound
		}
		p.Name = in.Name
		p.SKU = in.SKU
		p.Category = in.Category
		p.MinThreshold = in.MinThreshold
		p.Price = in.Price
		p.SalePrice = in.SalePrice
		p.ImageURL = in.ImageURL
		p.UpdatedAt = time.Now()
		updated = *p
		return nil
	}, store.CollectionProducts)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete elimina la fila del producto. El libro de movimientos conserva las
// transacciones históricas con el nombre copiado.
func (uc *ProductUseCase) Delete(ctx context.Context, id string) error {
	return uc.manager.Update(ctx, func(st *store.Store) error {
		if !st.RemoveProduct(id) {
			return domain.ErrNotFound
		}
		return nil
	}, store.CollectionProducts)
}
