package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mfigueroa/ventas-api/internal/domain"
	"github.com/mfigueroa/ventas-api/internal/domain/entity"
	"github.com/mfigueroa/ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

// ProductoRepo implementación en memoria de ProductoRepository.
type ProductoRepo struct {
	s  *Store
	tx bool // dentro de RunVenta: el mutex ya está tomado
}

// Create asigna el siguiente ID.
func (r *ProductoRepo) Create(_ context.Context, producto *entity.Producto) error {
	defer r.s.lock(r.tx)()
	r.s.st.seqProducto++
	producto.ID = r.s.st.seqProducto
	r.s.st.productos[producto.ID] = *producto
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(_ context.Context, id int64) (*entity.Producto, error) {
	defer r.s.rlock(r.tx)()
	p, ok := r.s.st.productos[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

// List todos los productos ordenados por ID.
func (r *ProductoRepo) List(_ context.Context) ([]*entity.Producto, error) {
	return r.filter(func(entity.Producto) bool { return true }), nil
}

// ListByPrecioMax productos con precio <= max.
func (r *ProductoRepo) ListByPrecioMax(_ context.Context, max decimal.Decimal) ([]*entity.Producto, error) {
	return r.filter(func(p entity.Producto) bool { return p.Precio.LessThanOrEqual(max) }), nil
}

// ListEnStock productos con stock > 0.
func (r *ProductoRepo) ListEnStock(_ context.Context) ([]*entity.Producto, error) {
	return r.filter(func(p entity.Producto) bool { return p.EnStock() }), nil
}

func (r *ProductoRepo) filter(keep func(entity.Producto) bool) []*entity.Producto {
	defer r.s.rlock(r.tx)()
	list := make([]*entity.Producto, 0)
	for _, id := range sortedIDs(r.s.st.productos) {
		p := r.s.st.productos[id]
		if keep(p) {
			list = append(list, &p)
		}
	}
	return list
}

// Update reemplaza nombre, precio y stock.
func (r *ProductoRepo) Update(_ context.Context, producto *entity.Producto) error {
	defer r.s.lock(r.tx)()
	if _, ok := r.s.st.productos[producto.ID]; !ok {
		return domain.ErrNotFound
	}
	r.s.st.productos[producto.ID] = *producto
	return nil
}

// UpdatePrecio actualiza solo el precio.
func (r *ProductoRepo) UpdatePrecio(_ context.Context, id int64, precio decimal.Decimal) (int64, error) {
	defer r.s.lock(r.tx)()
	p, ok := r.s.st.productos[id]
	if !ok {
		return 0, nil
	}
	p.Precio = precio
	r.s.st.productos[id] = p
	return 1, nil
}

// Delete falla con domain.ErrConflict si alguna venta referencia al producto.
func (r *ProductoRepo) Delete(_ context.Context, id int64) (*entity.Producto, error) {
	defer r.s.lock(r.tx)()
	p, ok := r.s.st.productos[id]
	if !ok {
		return nil, nil
	}
	for _, v := range r.s.st.ventas {
		for _, pid := range v.productoIDs {
			if pid == id {
				return nil, domain.ErrConflict
			}
		}
	}
	delete(r.s.st.productos, id)
	return &p, nil
}

// ListPaged todos los productos paginados.
func (r *ProductoRepo) ListPaged(_ context.Context, page repository.PageRequest) (repository.Page[*entity.Producto], error) {
	return r.paged(page, func(entity.Producto) bool { return true })
}

// ListByPrecioRange productos con min <= precio <= max, paginados.
func (r *ProductoRepo) ListByPrecioRange(_ context.Context, min, max decimal.Decimal, page repository.PageRequest) (repository.Page[*entity.Producto], error) {
	return r.paged(page, func(p entity.Producto) bool {
		return p.Precio.GreaterThanOrEqual(min) && p.Precio.LessThanOrEqual(max)
	})
}

// SearchByNombre coincidencia parcial sin distinguir mayúsculas, paginada.
func (r *ProductoRepo) SearchByNombre(_ context.Context, nombre string, page repository.PageRequest) (repository.Page[*entity.Producto], error) {
	return r.paged(page, func(p entity.Producto) bool { return containsFold(p.Nombre, nombre) })
}

func (r *ProductoRepo) paged(page repository.PageRequest, keep func(entity.Producto) bool) (repository.Page[*entity.Producto], error) {
	less, err := productoLess(page.Sort)
	if err != nil {
		return repository.Page[*entity.Producto]{}, err
	}
	all := r.filter(keep)
	sort.SliceStable(all, func(i, j int) bool { return less(all[i], all[j]) })

	out := repository.Page[*entity.Producto]{Pagina: page.Pagina, Tamano: page.Tamano, Total: int64(len(all))}
	start := page.Offset()
	if start < 0 || start >= len(all) {
		out.Items = []*entity.Producto{}
		return out, nil
	}
	end := start + page.Tamano
	if end > len(all) || end < start {
		end = len(all)
	}
	out.Items = all[start:end]
	return out, nil
}

// productoLess resuelve el campo de orden; el ID desempata.
func productoLess(s repository.Sort) (func(a, b *entity.Producto) bool, error) {
	var cmp func(a, b *entity.Producto) int
	switch strings.ToLower(s.Campo) {
	case "id", "":
		cmp = func(a, b *entity.Producto) int { return compareInt64(a.ID, b.ID) }
	case "nombre":
		cmp = func(a, b *entity.Producto) int { return strings.Compare(a.Nombre, b.Nombre) }
	case "precio":
		cmp = func(a, b *entity.Producto) int { return a.Precio.Cmp(b.Precio) }
	case "stock":
		cmp = func(a, b *entity.Producto) int { return compareInt64(int64(a.Stock), int64(b.Stock)) }
	default:
		return nil, fmt.Errorf("campo de orden %q: %w", s.Campo, domain.ErrInvalidInput)
	}
	return func(a, b *entity.Producto) bool {
		c := cmp(a, b)
		if s.Desc {
			c = -c
		}
		if c == 0 {
			return a.ID < b.ID
		}
		return c < 0
	}, nil
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
