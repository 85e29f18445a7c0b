package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/smartstock-api/internal/application/dto"
	"github.com/smartstock/smartstock-api/internal/application/usecase"
)

// AIHandler expone el análisis y el chat del asistente. Ninguna ruta devuelve
// error cuando el LLM falla: la degradación viaja en el cuerpo de la
// respuesta.
type AIHandler struct {
	uc *usecase.AIUseCase
}

// NewAIHandler construye el handler.
func NewAIHandler(uc *usecase.AIUseCase) *AIHandler {
	return &AIHandler{uc: uc}
}

// Insights GET /api/ai/insights
func (h *AIHandler) Insights(c *fiber.Ctx) error {
	return c.JSON(h.uc.Analyze(c.Context()))
}

// Chat POST /api/ai/chat
func (h *AIHandler) Chat(c *fiber.Ctx) error {
	var in dto.ChatRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "query es requerido"})
	}
	return c.JSON(dto.ChatResponse{Reply: h.uc.Chat(c.Context(), in.Query)})
}
