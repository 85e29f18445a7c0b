package inventory

import (
	"context"

	"github.com/smartstock/smartstock-api/internal/application/dto"
	"github.com/smartstock/smartstock-api/internal/application/state"
	"github.com/smartstock/smartstock-api/internal/domain/entity"
	"github.com/smartstock/smartstock-api/internal/domain/store"
	"github.com/smartstock/smartstock-api/pkg/logger"
)

// Service orquesta el procesador de movimientos sobre el estado gestionado:
// adapta el request, aplica el movimiento como paso atómico y deja que el
// manager persista las colecciones cambiadas.
type Service struct {
	proc    *RegisterMovementUseCase
	manager *state.Manager
	log     *logger.Logger
}

// NewService construye el servicio.
func NewService(manager *state.Manager, log *logger.Logger) *Service {
	return &Service{
		proc:    NewRegisterMovementUseCase(),
		manager: manager,
		log:     log,
	}
}

// Register aplica un movimiento solicitado por la API. Las desviaciones
// blandas llegan como warnings en la respuesta y se registran en el log;
// no abortan el movimiento.
func (s *Service) Register(ctx context.Context, in dto.RegisterMovementRequest) (*dto.MovementResponse, error) {
	mv, err := MovementFromRequest(in)
	if err != nil {
		return nil, err
	}

	var res *MovementResult
	err = s.manager.Update(ctx, func(st *store.Store) error {
		r, err := s.proc.Apply(st, mv)
		if err != nil {
			return err
		}
		res = r
		return nil
	}, store.CollectionProducts, store.CollectionTransactions, store.CollectionInvoices)
	if err != nil {
		return nil, err
	}

	for _, w := range res.Warnings {
		s.log.Warn().
			Str("type", res.Transaction.Type).
			Str("product_id", res.Transaction.ProductID).
			Msg(w)
	}

	return &dto.MovementResponse{
		Transaction: res.Transaction,
		Invoice:     res.Invoice,
		Warnings:    res.Warnings,
	}, nil
}

// ListTransactions devuelve el libro de movimientos, más reciente primero.
func (s *Service) ListTransactions() []entity.Transaction {
	return s.manager.Snapshot().Transactions
}
