package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // driver sqlite en Go puro, sin cgo

	"github.com/smartstock/smartstock-api/internal/application/ports"
)

// Verificar en tiempo de compilación que KVStore implementa el puerto.
var _ ports.KVStore = (*KVStore)(nil)

// KVStore adaptador de persistencia local sobre un archivo SQLite. Cada
// colección se guarda completa como JSON bajo su nombre en una sola tabla.
type KVStore struct {
	db   *sql.DB
	path string
}

// NewKVStore abre (o crea) el archivo y prepara la tabla de estado.
func NewKVStore(path string) (*KVStore, error) {
	if path == "" {
		path = "smartstock.db"
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
			return nil, fmt.Errorf("sqlite: crear directorio: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite: abrir %s: %w", path, err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS state (
		bucket TEXT PRIMARY KEY,
		payload BLOB NOT NULL
	)`); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("sqlite: crear tabla state: %w", err)
	}
	return &KVStore{db: db, path: path}, nil
}

// Save reemplaza el valor completo de la clave.
func (s *KVStore) Save(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO state(bucket, payload) VALUES(?, ?)
		 ON CONFLICT(bucket) DO UPDATE SET payload = excluded.payload`,
		key, value)
	if err != nil {
		return fmt.Errorf("sqlite: guardar %s: %w", key, err)
	}
	return nil
}

// Load devuelve el último valor guardado bajo la clave.
func (s *KVStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM state WHERE bucket = ?`, key).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("sqlite: leer %s: %w", key, err)
	}
	return payload, true, nil
}

// Close cierra el archivo.
func (s *KVStore) Close() error {
	return s.db.Close()
}

// Path devuelve la ruta configurada del archivo de base de datos.
func (s *KVStore) Path() string { return s.path }
