package entity

import "github.com/shopspring/decimal"

// Producto representa un producto del inventario.
// Precio no se valida (se espera no negativo).
type Producto struct {
	ID     int64
	Nombre string
	Precio decimal.Decimal
	Stock  int
}

// EnStock indica si quedan unidades disponibles.
func (p *Producto) EnStock() bool {
	return p.Stock > 0
}
