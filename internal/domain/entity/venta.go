package entity

import "github.com/shopspring/decimal"

// Venta vincula un cliente con uno o más productos.
// Total se calcula al crear la venta como suma de los precios vigentes de
// Productos y no se recalcula cuando los productos cambian después.
type Venta struct {
	ID        int64
	ClienteID int64
	Cliente   *Cliente
	Productos []*Producto
	Total     decimal.Decimal
}

// ProductoIDs devuelve los IDs de los productos en el orden de la venta.
func (v *Venta) ProductoIDs() []int64 {
	ids := make([]int64, 0, len(v.Productos))
	for _, p := range v.Productos {
		ids = append(ids, p.ID)
	}
	return ids
}

// CalcularTotal suma los precios de los productos (incluye repetidos).
func CalcularTotal(productos []*Producto) decimal.Decimal {
	total := decimal.Zero
	for _, p := range productos {
		total = total.Add(p.Precio)
	}
	return total
}
