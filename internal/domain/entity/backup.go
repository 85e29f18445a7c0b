package entity

import "time"

// BackupVersion es la etiqueta de esquema escrita en cada respaldo exportado.
const BackupVersion = "2.0"

// BackupData es la instantánea completa de las cinco colecciones, usada por
// exportación/restauración. El formato JSON (claves camelCase) se conserva
// para poder importar respaldos generados por versiones anteriores de la
// aplicación.
type BackupData struct {
	Products     []Product     `json:"products"`
	Transactions []Transaction `json:"transactions"`
	Warehouses   []Warehouse   `json:"warehouses"`
	Customers    []Customer    `json:"customers"`
	Invoices     []Invoice     `json:"invoices"`
	ExportDate   time.Time     `json:"exportDate"`
	Version      string        `json:"version"`
}
