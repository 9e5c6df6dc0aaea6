package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mfigueroa/ventas-api/internal/domain"
	"github.com/mfigueroa/ventas-api/internal/domain/entity"
	"github.com/mfigueroa/ventas-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductoRepository = (*ProductoRepo)(nil)

const productoSelect = `SELECT id, nombre, precio, stock FROM productos`

// ProductoRepo implementación de ProductoRepository sobre PostgreSQL (usable con pool o tx).
type ProductoRepo struct {
	q Querier
}

// NewProductoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewProductoRepository(q Querier) *ProductoRepo {
	return &ProductoRepo{q: q}
}

func scanProducto(row pgx.Row) (*entity.Producto, error) {
	var p entity.Producto
	if err := row.Scan(&p.ID, &p.Nombre, &p.Precio, &p.Stock); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductoRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Producto, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.Producto, 0)
	for rows.Next() {
		p, err := scanProducto(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Create persiste un nuevo producto y asigna el ID generado.
func (r *ProductoRepo) Create(ctx context.Context, producto *entity.Producto) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO productos (nombre, precio, stock) VALUES ($1, $2, $3) RETURNING id`,
		producto.Nombre, producto.Precio, producto.Stock,
	).Scan(&producto.ID)
	if err != nil {
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByID obtiene un producto por ID.
func (r *ProductoRepo) GetByID(ctx context.Context, id int64) (*entity.Producto, error) {
	p, err := scanProducto(r.q.QueryRow(ctx, productoSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// List lista todos los productos.
func (r *ProductoRepo) List(ctx context.Context) ([]*entity.Producto, error) {
	return r.list(ctx, "list productos", productoSelect+` ORDER BY id`)
}

// ListByPrecioMax productos con precio <= max.
func (r *ProductoRepo) ListByPrecioMax(ctx context.Context, max decimal.Decimal) ([]*entity.Producto, error) {
	return r.list(ctx, "list productos by precio", productoSelect+` WHERE precio <= $1 ORDER BY id`, max)
}

// ListEnStock productos con stock > 0.
func (r *ProductoRepo) ListEnStock(ctx context.Context) ([]*entity.Producto, error) {
	return r.list(ctx, "list productos en stock", productoSelect+` WHERE stock > 0 ORDER BY id`)
}

// Update actualiza nombre, precio y stock.
func (r *ProductoRepo) Update(ctx context.Context, producto *entity.Producto) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE productos SET nombre = $2, precio = $3, stock = $4 WHERE id = $1`,
		producto.ID, producto.Nombre, producto.Precio, producto.Stock,
	)
	if err != nil {
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdatePrecio actualiza solo el precio del producto.
func (r *ProductoRepo) UpdatePrecio(ctx context.Context, id int64, precio decimal.Decimal) (int64, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE productos SET precio = $2 WHERE id = $1`, id, precio)
	if err != nil {
		return 0, fmt.Errorf("update producto precio: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina y devuelve el producto. Si está en alguna venta devuelve domain.ErrConflict.
func (r *ProductoRepo) Delete(ctx context.Context, id int64) (*entity.Producto, error) {
	p, err := scanProducto(r.q.QueryRow(ctx,
		`DELETE FROM productos WHERE id = $1 RETURNING id, nombre, precio, stock`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("delete producto: %w", err)
	}
	return p, nil
}

// ListPaged todos los productos paginados.
func (r *ProductoRepo) ListPaged(ctx context.Context, page repository.PageRequest) (repository.Page[*entity.Producto], error) {
	return r.paged(ctx, page, "", nil)
}

// ListByPrecioRange productos con min <= precio <= max, paginados.
func (r *ProductoRepo) ListByPrecioRange(ctx context.Context, min, max decimal.Decimal, page repository.PageRequest) (repository.Page[*entity.Producto], error) {
	return r.paged(ctx, page, `WHERE precio BETWEEN $1 AND $2`, []any{min, max})
}

// SearchByNombre coincidencia parcial sin distinguir mayúsculas, paginada.
func (r *ProductoRepo) SearchByNombre(ctx context.Context, nombre string, page repository.PageRequest) (repository.Page[*entity.Producto], error) {
	return r.paged(ctx, page, `WHERE nombre ILIKE $1`, []any{likePattern(nombre)})
}

// paged ejecuta el conteo y la página con el mismo filtro. where usa $1..$n de args;
// LIMIT y OFFSET van a continuación.
func (r *ProductoRepo) paged(ctx context.Context, page repository.PageRequest, where string, args []any) (repository.Page[*entity.Producto], error) {
	out := repository.Page[*entity.Producto]{Pagina: page.Pagina, Tamano: page.Tamano}

	order, err := orderBy(productoColumns, page.Sort)
	if err != nil {
		return out, err
	}

	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM productos `+where, args...).Scan(&out.Total); err != nil {
		return out, fmt.Errorf("count productos: %w", err)
	}

	n := len(args)
	query := fmt.Sprintf("%s %s %s LIMIT $%d OFFSET $%d", productoSelect, where, order, n+1, n+2)
	pageArgs := append(append([]any{}, args...), page.Tamano, page.Offset())
	items, err := r.list(ctx, "page productos", query, pageArgs...)
	if err != nil {
		return out, err
	}
	out.Items = items
	return out, nil
}
