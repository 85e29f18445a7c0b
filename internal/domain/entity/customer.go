package entity

// Customer representa un cliente al que se le emiten facturas de venta.
// El nombre se desnormaliza en la factura al momento de crearla; cambios
// posteriores del cliente no se propagan a facturas ya emitidas.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}
