// Package state mantiene el Store en memoria detrás de un único escritor
// lógico y coordina el paso de persistencia posterior a cada mutación. El
// procesador de movimientos no sabe nada del sustrato de almacenamiento:
// recibe el Store, lo muta, y este manager guarda las colecciones cambiadas.
package state

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/smartstock/smartstock-api/internal/application/ports"
	"github.com/smartstock/smartstock-api/internal/domain/entity"
	"github.com/smartstock/smartstock-api/internal/domain/store"
	"github.com/smartstock/smartstock-api/pkg/logger"
)

// Manager serializa todo acceso al Store con un mutex: hay exactamente un
// hilo mutador lógico aunque el servidor HTTP sea concurrente. Cada Update es
// un paso atómico; ningún lector observa aplicaciones parciales.
type Manager struct {
	mu  sync.Mutex
	st  *store.Store
	kv  ports.KVStore
	log *logger.Logger
}

// NewManager construye el manager sobre un sustrato clave/valor.
func NewManager(kv ports.KVStore, log *logger.Logger) *Manager {
	return &Manager{st: store.New(), kv: kv, log: log}
}

// Load carga las cinco colecciones desde el sustrato. Las claves ausentes
// dejan la colección vacía. Si tras cargar no hay bodegas ni clientes, se
// siembran los valores iniciales.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := loadCollection(ctx, m.kv, store.CollectionProducts, &m.st.Products); err != nil {
		return err
	}
	if err := loadCollection(ctx, m.kv, store.CollectionTransactions, &m.st.Transactions); err != nil {
		return err
	}
	if err := loadCollection(ctx, m.kv, store.CollectionWarehouses, &m.st.Warehouses); err != nil {
		return err
	}
	if err := loadCollection(ctx, m.kv, store.CollectionCustomers, &m.st.Customers); err != nil {
		return err
	}
	if err := loadCollection(ctx, m.kv, store.CollectionInvoices, &m.st.Invoices); err != nil {
		return err
	}

	if len(m.st.Warehouses) == 0 && len(m.st.Customers) == 0 {
		m.seedLocked()
		m.persistLocked(ctx, store.CollectionWarehouses, store.CollectionCustomers)
	}

	m.log.Info().
		Int("products", len(m.st.Products)).
		Int("transactions", len(m.st.Transactions)).
		Int("warehouses", len(m.st.Warehouses)).
		Int("customers", len(m.st.Customers)).
		Int("invoices", len(m.st.Invoices)).
		Msg("estado cargado")
	return nil
}

// Snapshot devuelve una copia del estado para lecturas sin bloquear a los
// escritores más allá del tiempo de copia.
func (m *Manager) Snapshot() *store.Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.Clone()
}

// Update ejecuta fn sobre el Store con el lock tomado. Si fn devuelve error
// el estado puede haber quedado parcialmente mutado por fn, por lo que fn
// debe fallar antes de mutar o no fallar; los casos de uso de este módulo
// cumplen ese contrato. Tras un fn exitoso se persisten las colecciones
// indicadas; un fallo de persistencia se registra y no propaga (el guardado
// es un efecto posterior, no parte de la operación).
func (m *Manager) Update(ctx context.Context, fn func(st *store.Store) error, changed ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := fn(m.st); err != nil {
		return err
	}
	m.persistLocked(ctx, changed...)
	return nil
}

// persistLocked serializa y guarda cada colección indicada. Requiere el lock.
func (m *Manager) persistLocked(ctx context.Context, collections ...string) {
	for _, name := range collections {
		payload, err := m.marshalLocked(name)
		if err != nil {
			m.log.Error().Err(err).Str("collection", name).Msg("serializar colección")
			continue
		}
		if err := m.kv.Save(ctx, name, payload); err != nil {
			m.log.Error().Err(err).Str("collection", name).Msg("guardar colección")
		}
	}
}

func (m *Manager) marshalLocked(name string) ([]byte, error) {
	switch name {
	case store.CollectionProducts:
		return json.Marshal(m.st.Products)
	case store.CollectionTransactions:
		return json.Marshal(m.st.Transactions)
	case store.CollectionWarehouses:
		return json.Marshal(m.st.Warehouses)
	case store.CollectionCustomers:
		return json.Marshal(m.st.Customers)
	case store.CollectionInvoices:
		return json.Marshal(m.st.Invoices)
	}
	return nil, fmt.Errorf("colección desconocida: %s", name)
}

func loadCollection[T any](ctx context.Context, kv ports.KVStore, key string, dst *[]T) error {
	payload, found, err := kv.Load(ctx, key)
	if err != nil {
		return fmt.Errorf("cargar %s: %w", key, err)
	}
	if !found || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, dst); err != nil {
		return fmt.Errorf("decodificar %s: %w", key, err)
	}
	return nil
}

// seedLocked siembra bodegas y clientes iniciales para una instalación nueva.
func (m *Manager) seedLocked() {
	m.st.Warehouses = []entity.Warehouse{
		{ID: uuid.New().String(), Name: "Bodega Central", Location: "Bogotá"},
		{ID: uuid.New().String(), Name: "Sucursal Norte", Location: "Medellín"},
	}
	m.st.Customers = []entity.Customer{
		{ID: uuid.New().String(), Name: "Comercializadora El Águila", Phone: "+57 301 111 2233", Email: "compras@elaguila.co", Address: "Cra 15 #82-40, Bogotá"},
		{ID: uuid.New().String(), Name: "Distribuciones Koval", Phone: "+57 304 444 5566", Email: "koval@gmail.com", Address: "Av. El Poblado 5-21, Medellín"},
	}
	m.log.Info().Msg("instalación nueva: datos iniciales sembrados")
}
