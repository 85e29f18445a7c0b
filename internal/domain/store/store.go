// Package store define la instantánea en memoria de las cinco colecciones
// del inventario. Es un contenedor de datos puro: las reglas de negocio viven
// en los casos de uso y la serialización en la capa de persistencia.
package store

import "github.com/smartstock/smartstock-api/internal/domain/entity"

// Nombres de colección, usados también como claves de persistencia.
const (
	CollectionProducts     = "products"
	CollectionTransactions = "transactions"
	CollectionWarehouses   = "warehouses"
	CollectionCustomers    = "customers"
	CollectionInvoices     = "invoices"
)

// Collections lista las cinco colecciones en el orden canónico.
var Collections = []string{
	CollectionProducts,
	CollectionTransactions,
	CollectionWarehouses,
	CollectionCustomers,
	CollectionInvoices,
}

// Store contiene el estado completo del inventario. Transactions e Invoices
// se mantienen ordenadas con la entrada más reciente primero.
type Store struct {
	Warehouses   []entity.Warehouse
	Customers    []entity.Customer
	Products     []entity.Product
	Transactions []entity.Transaction
	Invoices     []entity.Invoice
}

// New crea un Store vacío.
func New() *Store {
	return &Store{}
}

// FindProduct devuelve un puntero a la fila del producto, o nil si no existe.
// El puntero apunta al slice interno: mutarlo modifica el estado.
func (s *Store) FindProduct(id string) *entity.Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}

// FindProductBySKUAndWarehouse localiza la fila de un SKU en una bodega
// concreta (el mismo SKU puede existir como filas distintas por bodega).
func (s *Store) FindProductBySKUAndWarehouse(sku, warehouseID string) *entity.Product {
	for i := range s.Products {
		if s.Products[i].SKU == sku && s.Products[i].WarehouseID == warehouseID {
			return &s.Products[i]
		}
	}
	return nil
}

// FindCustomer devuelve el cliente por ID, o nil si no existe.
func (s *Store) FindCustomer(id string) *entity.Customer {
	for i := range s.Customers {
		if s.Customers[i].ID == id {
			return &s.Customers[i]
		}
	}
	return nil
}

// FindWarehouse devuelve la bodega por ID, o nil si no existe.
func (s *Store) FindWarehouse(id string) *entity.Warehouse {
	for i := range s.Warehouses {
		if s.Warehouses[i].ID == id {
			return &s.Warehouses[i]
		}
	}
	return nil
}

// FindInvoice devuelve la factura por ID, o nil si no existe.
func (s *Store) FindInvoice(id string) *entity.Invoice {
	for i := range s.Invoices {
		if s.Invoices[i].ID == id {
			return &s.Invoices[i]
		}
	}
	return nil
}

// AppendProduct agrega una fila de producto al final del catálogo.
func (s *Store) AppendProduct(p entity.Product) {
	s.Products = append(s.Products, p)
}

// RemoveProduct elimina la fila del producto. Devuelve false si no existía.
func (s *Store) RemoveProduct(id string) bool {
	for i := range s.Products {
		if s.Products[i].ID == id {
			s.Products = append(s.Products[:i], s.Products[i+1:]...)
			return true
		}
	}
	return false
}

// PrependTransaction inserta la transacción al inicio del libro
// (invariante: más reciente primero).
func (s *Store) PrependTransaction(tx entity.Transaction) {
	s.Transactions = append([]entity.Transaction{tx}, s.Transactions...)
}

// PrependInvoice inserta la factura al inicio de la colección
// (invariante: más reciente primero).
func (s *Store) PrependInvoice(inv entity.Invoice) {
	s.Invoices = append([]entity.Invoice{inv}, s.Invoices...)
}

// Clone devuelve una copia profunda a nivel de slices. Las entidades se
// copian por valor; los Items de cada factura se duplican para que la copia
// no comparta memoria con el original.
func (s *Store) Clone() *Store {
	c := &Store{
		Warehouses:   append([]entity.Warehouse(nil), s.Warehouses...),
		Customers:    append([]entity.Customer(nil), s.Customers...),
		Products:     append([]entity.Product(nil), s.Products...),
		Transactions: append([]entity.Transaction(nil), s.Transactions...),
		Invoices:     append([]entity.Invoice(nil), s.Invoices...),
	}
	for i := range c.Invoices {
		c.Invoices[i].Items = append([]entity.InvoiceItem(nil), c.Invoices[i].Items...)
	}
	return c
}

// Replace sustituye el contenido completo del Store por el de other
// (restauración de respaldo: reemplazo total, nunca merge).
func (s *Store) Replace(other *Store) {
	s.Warehouses = other.Warehouses
	s.Customers = other.Customers
	s.Products = other.Products
	s.Transactions = other.Transactions
	s.Invoices = other.Invoices
}
