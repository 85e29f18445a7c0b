package entity

// Warehouse representa una bodega o sucursal donde se almacena inventario (multi-bodega).
// Inmutable en la práctica: no existe ruta de actualización una vez creada.
type Warehouse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}
