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

// CustomerUseCase casos de uso de clientes (facturación).
type CustomerUseCase struct {
	manager *state.Manager
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(manager *state.Manager) *CustomerUseCase {
	return &CustomerUseCase{manager: manager}
}

// Create registra un cliente nuevo.
func (uc *CustomerUseCase) Create(ctx context.Context, in dto.CreateCustomerRequest) (*entity.Customer, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	customer := entity.Customer{
		ID:      uuid.New().String(),
		Name:    in.Name,
		Phone:   in.Phone,
		Email:   in.Email,
		Address: in.Address,
	}
	err := uc.manager.Update(ctx, func(st *store.Store) error {
		st.Customers = append(st.Customers, customer)
		return nil
	}, store.CollectionCustomers)
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

// List devuelve todos los clientes.
func (uc *CustomerUseCase) List() []entity.Customer {
	return uc.manager.Snapshot().Customers
}
