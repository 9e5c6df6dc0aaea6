package memory

import (
	"context"

	"github.com/mfigueroa/ventas-api/internal/domain"
	"github.com/mfigueroa/ventas-api/internal/domain/entity"
	"github.com/mfigueroa/ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.VentaRepository = (*VentaRepo)(nil)

// VentaRepo implementación en memoria de VentaRepository.
type VentaRepo struct {
	s  *Store
	tx bool // dentro de RunVenta: el mutex ya está tomado
}

// Create valida las claves foráneas como lo haría el store relacional.
func (r *VentaRepo) Create(_ context.Context, venta *entity.Venta) error {
	defer r.s.lock(r.tx)()
	if _, ok := r.s.st.clientes[venta.ClienteID]; !ok {
		return domain.ErrNotFound
	}
	ids := venta.ProductoIDs()
	for _, id := range ids {
		if _, ok := r.s.st.productos[id]; !ok {
			return domain.ErrNotFound
		}
	}
	r.s.st.seqVenta++
	venta.ID = r.s.st.seqVenta
	r.s.st.ventas[venta.ID] = ventaRow{clienteID: venta.ClienteID, productoIDs: ids, total: venta.Total}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *VentaRepo) GetByID(_ context.Context, id int64) (*entity.Venta, error) {
	defer r.s.rlock(r.tx)()
	row, ok := r.s.st.ventas[id]
	if !ok {
		return nil, nil
	}
	return toVenta(id, row), nil
}

// List todas las ventas ordenadas por ID.
func (r *VentaRepo) List(_ context.Context) ([]*entity.Venta, error) {
	return r.filter(func(ventaRow) bool { return true }), nil
}

// ListByCliente ventas de un cliente.
func (r *VentaRepo) ListByCliente(_ context.Context, clienteID int64) ([]*entity.Venta, error) {
	return r.filter(func(v ventaRow) bool { return v.clienteID == clienteID }), nil
}

// ListByProducto ventas que incluyen el producto.
func (r *VentaRepo) ListByProducto(_ context.Context, productoID int64) ([]*entity.Venta, error) {
	return r.filter(func(v ventaRow) bool {
		for _, id := range v.productoIDs {
			if id == productoID {
				return true
			}
		}
		return false
	}), nil
}

// TotalByCliente suma de totales del cliente.
func (r *VentaRepo) TotalByCliente(_ context.Context, clienteID int64) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, v := range r.filter(func(v ventaRow) bool { return v.clienteID == clienteID }) {
		total = total.Add(v.Total)
	}
	return total, nil
}

func (r *VentaRepo) filter(keep func(ventaRow) bool) []*entity.Venta {
	defer r.s.rlock(r.tx)()
	list := make([]*entity.Venta, 0)
	for _, id := range sortedIDs(r.s.st.ventas) {
		if row := r.s.st.ventas[id]; keep(row) {
			list = append(list, toVenta(id, row))
		}
	}
	return list
}

// Delete elimina la venta y sus líneas.
func (r *VentaRepo) Delete(_ context.Context, id int64) (int64, error) {
	defer r.s.lock(r.tx)()
	if _, ok := r.s.st.ventas[id]; !ok {
		return 0, nil
	}
	delete(r.s.st.ventas, id)
	return 1, nil
}

// UpdateCliente no hace nada si la venta no existe; un cliente inexistente viola la FK.
func (r *VentaRepo) UpdateCliente(_ context.Context, ventaID, clienteID int64) error {
	defer r.s.lock(r.tx)()
	row, ok := r.s.st.ventas[ventaID]
	if !ok {
		return nil
	}
	if _, ok := r.s.st.clientes[clienteID]; !ok {
		return domain.ErrNotFound
	}
	row.clienteID = clienteID
	r.s.st.ventas[ventaID] = row
	return nil
}

func toVenta(id int64, row ventaRow) *entity.Venta {
	productos := make([]*entity.Producto, 0, len(row.productoIDs))
	for _, pid := range row.productoIDs {
		productos = append(productos, &entity.Producto{ID: pid})
	}
	return &entity.Venta{ID: id, ClienteID: row.clienteID, Productos: productos, Total: row.total}
}
