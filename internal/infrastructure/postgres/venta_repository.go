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

var _ repository.VentaRepository = (*VentaRepo)(nil)

// ventaSelect agrega los productos de cada venta en el orden en que se registraron.
const ventaSelect = `
	SELECT v.id, v.cliente_id, v.total,
	       COALESCE(array_agg(vp.producto_id ORDER BY vp.posicion)
	                FILTER (WHERE vp.producto_id IS NOT NULL), '{}')::BIGINT[]
	FROM ventas v
	LEFT JOIN venta_productos vp ON vp.venta_id = v.id`

const ventaGroup = ` GROUP BY v.id, v.cliente_id, v.total ORDER BY v.id`

// VentaRepo implementación de VentaRepository (usable con pool o tx).
// Create inserta en dos tablas: usarlo dentro de TxRunner.RunVenta.
type VentaRepo struct {
	q Querier
}

// NewVentaRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVentaRepository(q Querier) *VentaRepo {
	return &VentaRepo{q: q}
}

func scanVenta(row pgx.Row) (*entity.Venta, error) {
	var (
		v   entity.Venta
		ids []int64
	)
	if err := row.Scan(&v.ID, &v.ClienteID, &v.Total, &ids); err != nil {
		return nil, err
	}
	v.Productos = make([]*entity.Producto, 0, len(ids))
	for _, id := range ids {
		v.Productos = append(v.Productos, &entity.Producto{ID: id})
	}
	return &v, nil
}

func (r *VentaRepo) list(ctx context.Context, op, where string, args ...any) ([]*entity.Venta, error) {
	rows, err := r.q.Query(ctx, ventaSelect+" "+where+ventaGroup, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.Venta, 0)
	for rows.Next() {
		v, err := scanVenta(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

// Create inserta la cabecera y las líneas (una por producto, con su posición).
func (r *VentaRepo) Create(ctx context.Context, venta *entity.Venta) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO ventas (cliente_id, total) VALUES ($1, $2) RETURNING id`,
		venta.ClienteID, venta.Total,
	).Scan(&venta.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("cliente %d: %w", venta.ClienteID, domain.ErrNotFound)
		}
		return fmt.Errorf("insert venta: %w", err)
	}

	if len(venta.Productos) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for i, p := range venta.Productos {
		batch.Queue(
			`INSERT INTO venta_productos (venta_id, posicion, producto_id) VALUES ($1, $2, $3)`,
			venta.ID, i, p.ID,
		)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range venta.Productos {
		if _, err := br.Exec(); err != nil {
			if isForeignKeyViolation(err) {
				return fmt.Errorf("producto: %w", domain.ErrNotFound)
			}
			return fmt.Errorf("insert venta_productos: %w", err)
		}
	}
	return nil
}

// GetByID obtiene una venta por ID.
func (r *VentaRepo) GetByID(ctx context.Context, id int64) (*entity.Venta, error) {
	v, err := scanVenta(r.q.QueryRow(ctx, ventaSelect+` WHERE v.id = $1`+ventaGroup, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}
	return v, nil
}

// List lista todas las ventas.
func (r *VentaRepo) List(ctx context.Context) ([]*entity.Venta, error) {
	return r.list(ctx, "list ventas", "")
}

// ListByCliente ventas de un cliente.
func (r *VentaRepo) ListByCliente(ctx context.Context, clienteID int64) ([]*entity.Venta, error) {
	return r.list(ctx, "list ventas by cliente", `WHERE v.cliente_id = $1`, clienteID)
}

// ListByProducto ventas que incluyen el producto.
func (r *VentaRepo) ListByProducto(ctx context.Context, productoID int64) ([]*entity.Venta, error) {
	return r.list(ctx, "list ventas by producto",
		`WHERE EXISTS (SELECT 1 FROM venta_productos x WHERE x.venta_id = v.id AND x.producto_id = $1)`,
		productoID)
}

// TotalByCliente suma de totales del cliente.
func (r *VentaRepo) TotalByCliente(ctx context.Context, clienteID int64) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total), 0) FROM ventas WHERE cliente_id = $1`, clienteID,
	).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total ventas by cliente: %w", err)
	}
	return total, nil
}

// Delete elimina la venta; las líneas se borran en cascada.
func (r *VentaRepo) Delete(ctx context.Context, id int64) (int64, error) {
	cmd, err := r.q.Exec(ctx, `DELETE FROM ventas WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete venta: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// UpdateCliente reasigna el cliente de la venta. Sin efecto si la venta no existe.
func (r *VentaRepo) UpdateCliente(ctx context.Context, ventaID, clienteID int64) error {
	_, err := r.q.Exec(ctx, `UPDATE ventas SET cliente_id = $1 WHERE id = $2`, clienteID, ventaID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("cliente %d: %w", clienteID, domain.ErrNotFound)
		}
		return fmt.Errorf("update venta cliente: %w", err)
	}
	return nil
}
