// Package backup implementa la exportación e importación de la base completa
// como un único documento JSON versionado, equivalente al archivo que el
// usuario descarga y vuelve a subir.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/smartstock/smartstock-api/internal/application/state"
	"github.com/smartstock/smartstock-api/internal/domain"
	"github.com/smartstock/smartstock-api/internal/domain/entity"
	"github.com/smartstock/smartstock-api/internal/domain/store"
	"github.com/smartstock/smartstock-api/pkg/logger"
)

// UseCase casos de uso de respaldo y restauración.
type UseCase struct {
	manager *state.Manager
	log     *logger.Logger
}

// NewUseCase construye el caso de uso.
func NewUseCase(manager *state.Manager, log *logger.Logger) *UseCase {
	return &UseCase{manager: manager, log: log}
}

// Export proyecta las cinco colecciones a un BackupData con fecha de
// exportación y etiqueta de versión. Sin filtrado ni redacción.
func (uc *UseCase) Export() entity.BackupData {
	st := uc.manager.Snapshot()
	return entity.BackupData{
		Products:     st.Products,
		Transactions: st.Transactions,
		Warehouses:   st.Warehouses,
		Customers:    st.Customers,
		Invoices:     st.Invoices,
		ExportDate:   time.Now(),
		Version:      entity.BackupVersion,
	}
}

// FileName devuelve el nombre de descarga con la fecha actual embebida.
func (uc *UseCase) FileName() string {
	return fmt.Sprintf("SmartStock_Backup_%s.json", time.Now().Format("2006-01-02"))
}

// backupEnvelope usa slices puntero para distinguir "clave ausente" de
// "colección vacía" al validar el documento.
type backupEnvelope struct {
	Products     *[]entity.Product     `json:"products"`
	Transactions *[]entity.Transaction `json:"transactions"`
	Warehouses   *[]entity.Warehouse   `json:"warehouses"`
	Customers    *[]entity.Customer    `json:"customers"`
	Invoices     *[]entity.Invoice     `json:"invoices"`
	ExportDate   time.Time             `json:"exportDate"`
	Version      string                `json:"version"`
}

// Restore valida el documento y reemplaza el estado completo (nunca merge).
// products, transactions y warehouses son obligatorios; customers e invoices
// se asumen vacíos si faltan. Ante documento inválido devuelve
// domain.ErrImportFormat y el estado actual queda intacto.
func (uc *UseCase) Restore(ctx context.Context, raw []byte) error {
	var doc backupEnvelope
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrImportFormat, err)
	}
	if doc.Products == nil || doc.Transactions == nil || doc.Warehouses == nil {
		return domain.ErrImportFormat
	}
	if doc.Version != "" && doc.Version != entity.BackupVersion {
		// Versiones anteriores comparten el esquema de colecciones; se acepta
		// la importación y se deja constancia.
		uc.log.Warn().Str("version", doc.Version).Msg("respaldo de versión distinta")
	}

	replacement := &store.Store{
		Products:     *doc.Products,
		Transactions: *doc.Transactions,
		Warehouses:   *doc.Warehouses,
	}
	if doc.Customers != nil {
		replacement.Customers = *doc.Customers
	} else {
		replacement.Customers = []entity.Customer{}
	}
	if doc.Invoices != nil {
		replacement.Invoices = *doc.Invoices
	} else {
		replacement.Invoices = []entity.Invoice{}
	}

	err := uc.manager.Update(ctx, func(st *store.Store) error {
		st.Replace(replacement)
		return nil
	}, store.Collections...)
	if err != nil {
		return err
	}

	uc.log.Info().
		Int("products", len(replacement.Products)).
		Int("transactions", len(replacement.Transactions)).
		Msg("estado restaurado desde respaldo")
	return nil
}
