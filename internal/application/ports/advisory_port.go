package ports

import (
	"context"

	"github.com/smartstock/smartstock-api/internal/application/dto"
	"github.com/smartstock/smartstock-api/internal/domain/entity"
)

// AdvisoryService define el puerto de salida hacia el servicio de lenguaje
// natural. Recibe instantáneas de solo lectura y nunca toca el estado del
// inventario. Cualquier adaptador (Gemini, OpenAI, mock) debe implementar
// esta interfaz.
type AdvisoryService interface {
	// Analyze produce un análisis estructurado del inventario y su historia.
	// El contexto debe llevar timeout: las llamadas a LLMs pueden demorar.
	Analyze(ctx context.Context, products []entity.Product, transactions []entity.Transaction) (*dto.InventoryInsights, error)
	// Chat responde una pregunta libre sobre el inventario actual.
	Chat(ctx context.Context, query string, products []entity.Product) (string, error)
}
