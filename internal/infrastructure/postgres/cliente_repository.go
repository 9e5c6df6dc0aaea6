package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/mfigueroa/ventas-api/internal/domain"
	"github.com/mfigueroa/ventas-api/internal/domain/entity"
	"github.com/mfigueroa/ventas-api/internal/domain/repository"
)

var _ repository.ClienteRepository = (*ClienteRepo)(nil)

const clienteColumns = `id, nombre, email`

// ClienteRepo implementación de ClienteRepository (usable con pool o tx).
type ClienteRepo struct {
	q Querier
}

// NewClienteRepository construye el adaptador. Pasar pool o tx (Querier).
func NewClienteRepository(q Querier) *ClienteRepo {
	return &ClienteRepo{q: q}
}

func scanCliente(row pgx.Row) (*entity.Cliente, error) {
	var c entity.Cliente
	if err := row.Scan(&c.ID, &c.Nombre, &c.Email); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *ClienteRepo) getOne(ctx context.Context, op, query string, args ...any) (*entity.Cliente, error) {
	c, err := scanCliente(r.q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return c, nil
}

func (r *ClienteRepo) list(ctx context.Context, op, query string, args ...any) ([]*entity.Cliente, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()
	list := make([]*entity.Cliente, 0)
	for rows.Next() {
		c, err := scanCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

// Create persiste un nuevo cliente y asigna el ID generado.
func (r *ClienteRepo) Create(ctx context.Context, cliente *entity.Cliente) error {
	err := r.q.QueryRow(ctx,
		`INSERT INTO clientes (nombre, email) VALUES ($1, $2) RETURNING id`,
		cliente.Nombre, cliente.Email,
	).Scan(&cliente.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente por ID.
func (r *ClienteRepo) GetByID(ctx context.Context, id int64) (*entity.Cliente, error) {
	return r.getOne(ctx, "get cliente",
		`SELECT `+clienteColumns+` FROM clientes WHERE id = $1`, id)
}

// GetByEmail búsqueda exacta por email.
func (r *ClienteRepo) GetByEmail(ctx context.Context, email string) (*entity.Cliente, error) {
	return r.getOne(ctx, "get cliente by email",
		`SELECT `+clienteColumns+` FROM clientes WHERE email = $1`, email)
}

// List lista todos los clientes.
func (r *ClienteRepo) List(ctx context.Context) ([]*entity.Cliente, error) {
	return r.list(ctx, "list clientes",
		`SELECT `+clienteColumns+` FROM clientes ORDER BY id`)
}

// SearchByNombre coincidencia parcial sin distinguir mayúsculas.
func (r *ClienteRepo) SearchByNombre(ctx context.Context, nombre string) ([]*entity.Cliente, error) {
	return r.list(ctx, "search clientes",
		`SELECT `+clienteColumns+` FROM clientes WHERE nombre ILIKE $1 ORDER BY id`, likePattern(nombre))
}

// Update actualiza nombre y email.
func (r *ClienteRepo) Update(ctx context.Context, cliente *entity.Cliente) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE clientes SET nombre = $2, email = $3 WHERE id = $1`,
		cliente.ID, cliente.Nombre, cliente.Email,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update cliente: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// UpdateNombre actualiza solo el nombre.
func (r *ClienteRepo) UpdateNombre(ctx context.Context, id int64, nombre string) (int64, error) {
	cmd, err := r.q.Exec(ctx, `UPDATE clientes SET nombre = $2 WHERE id = $1`, id, nombre)
	if err != nil {
		return 0, fmt.Errorf("update cliente nombre: %w", err)
	}
	return cmd.RowsAffected(), nil
}

// Delete elimina y devuelve el cliente. Si tiene ventas devuelve domain.ErrConflict.
func (r *ClienteRepo) Delete(ctx context.Context, id int64) (*entity.Cliente, error) {
	c, err := scanCliente(r.q.QueryRow(ctx,
		`DELETE FROM clientes WHERE id = $1 RETURNING `+clienteColumns, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if isForeignKeyViolation(err) {
			return nil, domain.ErrConflict
		}
		return nil, fmt.Errorf("delete cliente: %w", err)
	}
	return c, nil
}
