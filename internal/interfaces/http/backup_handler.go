package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/smartstock/smartstock-api/internal/application/backup"
	"github.com/smartstock/smartstock-api/internal/application/dto"
	"github.com/smartstock/smartstock-api/internal/domain"
)

// BackupHandler maneja la exportación e importación del respaldo completo.
type BackupHandler struct {
	uc *backup.UseCase
}

// NewBackupHandler construye el handler.
func NewBackupHandler(uc *backup.UseCase) *BackupHandler {
	return &BackupHandler{uc: uc}
}

// Export godoc
// @Summary      Exportar respaldo completo
// @Description  Descarga las cinco colecciones como un único JSON versionado.
// @Tags         backup
// @Produce      json
// @Success      200  {object}  entity.BackupData
// @Router       /api/backup/export [get]
func (h *BackupHandler) Export(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, h.uc.FileName()))
	return c.JSON(h.uc.Export())
}

// Import godoc
// @Summary      Restaurar desde respaldo
// @Description  Reemplaza el estado completo con el documento recibido. Un documento inválido deja el estado intacto.
// @Tags         backup
// @Accept       json
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/backup/import [post]
func (h *BackupHandler) Import(c *fiber.Ctx) error {
	if err := h.uc.Restore(c.Context(), c.Body()); err != nil {
		if errors.Is(err, domain.ErrImportFormat) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "IMPORT_FORMAT", Message: "formato de respaldo inválido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(fiber.Map{"message": "respaldo restaurado"})
}
