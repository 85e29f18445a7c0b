package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/smartstock/smartstock-api/internal/application/ports"
)

// Verificar en tiempo de compilación que KVStore implementa el puerto.
var _ ports.KVStore = (*KVStore)(nil)

// KVStore adaptador de persistencia sobre PostgreSQL. Igual que el adaptador
// SQLite, guarda cada colección completa como JSON bajo su nombre; la base
// solo actúa como sustrato clave/valor duradero.
type KVStore struct {
	pool *pgxpool.Pool
}

// NewKVStore crea el pool de conexiones, verifica conectividad y prepara la
// tabla de estado.
func NewKVStore(ctx context.Context, databaseURL string) (*KVStore, error) {
	poolConfig, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("postgres: parse DSN: %w", err)
	}

	poolConfig.MaxConns = 10
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = 30 * time.Minute
	poolConfig.HealthCheckPeriod = time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: crear pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: ping: %w", err)
	}
	if _, err := pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BYTEA NOT NULL
	)`); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres: crear tabla state: %w", err)
	}
	return &KVStore{pool: pool}, nil
}

// Save reemplaza el valor completo de la clave.
func (s *KVStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO state(bucket, payload) VALUES($1, $2)
		 ON CONFLICT (bucket) DO UPDATE SET payload = EXCLUDED.payload`,
		key, value)
	if err != nil {
		return fmt.Errorf("postgres: guardar %s: %w", key, err)
	}
	return nil
}

// Load devuelve el último valor guardado bajo la clave.
func (s *KVStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM state WHERE bucket = $1`, key).Scan(&payload)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("postgres: leer %s: %w", key, err)
	}
	return payload, true, nil
}

// Close cierra el pool.
func (s *KVStore) Close() error {
	s.pool.Close()
	return nil
}
