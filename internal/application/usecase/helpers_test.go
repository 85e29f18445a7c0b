package usecase_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smartstock/smartstock-api/internal/application/state"
	"github.com/smartstock/smartstock-api/internal/domain/store"
	"github.com/smartstock/smartstock-api/pkg/logger"
)

// memKV sustrato clave/valor en memoria para los tests de casos de uso.
type memKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemKV() *memKV { return &memKV{data: map[string][]byte{}} }

func (m *memKV) Save(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Load(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memKV) Close() error { return nil }

// newManager arma un manager vacío y le aplica seed como mutación inicial.
func newManager(t *testing.T, seed func(st *store.Store)) *state.Manager {
	t.Helper()
	manager := state.NewManager(newMemKV(), logger.Nop())
	if seed != nil {
		err := manager.Update(context.Background(), func(st *store.Store) error {
			seed(st)
			return nil
		}, store.Collections...)
		require.NoError(t, err)
	}
	return manager
}
