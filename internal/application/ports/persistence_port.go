package ports

import "context"

// KVStore define el puerto de salida de persistencia: un sustrato
// clave/valor donde cada colección se guarda completa como JSON bajo su
// nombre. Cualquier adaptador (SQLite local, PostgreSQL, mock) debe
// implementar esta interfaz; el núcleo solo conoce "dame la última colección
// completa" / "aquí está la colección nueva".
type KVStore interface {
	// Save reemplaza el valor completo de la clave.
	Save(ctx context.Context, key string, value []byte) error
	// Load devuelve el último valor guardado; found es false si la clave
	// nunca se escribió.
	Load(ctx context.Context, key string) (value []byte, found bool, err error)
	// Close libera recursos del sustrato.
	Close() error
}
