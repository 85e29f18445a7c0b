package usecase

import (
	"context"
	"time"

	"github.com/smartstock/smartstock-api/internal/application/dto"
	"github.com/smartstock/smartstock-api/internal/application/ports"
	"github.com/smartstock/smartstock-api/internal/application/state"
	"github.com/smartstock/smartstock-api/pkg/logger"
)

// chatFallback respuesta fija cuando el asistente no está disponible.
const chatFallback = "Lo sentimos, ocurrió un error al procesar tu consulta. Intenta de nuevo más tarde."

// AIUseCase orquesta el análisis y el chat sobre el inventario. Toda falla
// del servicio externo se degrada: Analyze devuelve "no disponible" y Chat
// una disculpa fija. Ninguna llamada toca el estado ni bloquea el libro de
// movimientos.
type AIUseCase struct {
	advisory ports.AdvisoryService
	manager  *state.Manager
	log      *logger.Logger
	timeout  time.Duration
}

// NewAIUseCase construye el caso de uso. El timeout acota cada llamada al
// LLM para no bloquear los goroutines del servidor.
func NewAIUseCase(advisory ports.AdvisoryService, manager *state.Manager, log *logger.Logger) *AIUseCase {
	return &AIUseCase{
		advisory: advisory,
		manager:  manager,
		log:      log,
		timeout:  20 * time.Second,
	}
}

// Analyze pide al LLM el análisis del inventario y la historia de
// movimientos. Nunca devuelve error: cualquier falla produce Available=false.
func (uc *AIUseCase) Analyze(ctx context.Context) dto.InsightsResponse {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	st := uc.manager.Snapshot()
	insights, err := uc.advisory.Analyze(ctx, st.Products, st.Transactions)
	if err != nil {
		uc.log.Warn().Err(err).Msg("análisis IA no disponible")
		return dto.InsightsResponse{Available: false}
	}
	return dto.InsightsResponse{Available: true, Insights: insights}
}

// Chat responde una pregunta libre sobre el inventario actual. Ante falla
// devuelve la disculpa fija en lugar de propagar el error.
func (uc *AIUseCase) Chat(ctx context.Context, query string) string {
	ctx, cancel := context.WithTimeout(ctx, uc.timeout)
	defer cancel()

	reply, err := uc.advisory.Chat(ctx, query, uc.manager.Snapshot().Products)
	if err != nil {
		uc.log.Warn().Err(err).Msg("chat IA falló")
		return chatFallback
	}
	return reply
}
