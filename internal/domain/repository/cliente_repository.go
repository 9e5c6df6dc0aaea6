package repository

import (
	"context"

	"github.com/mfigueroa/ventas-api/internal/domain/entity"
)

// ClienteRepository define el puerto de persistencia para Cliente.
// Los Get devuelven (nil, nil) cuando el registro no existe.
type ClienteRepository interface {
	Create(ctx context.Context, cliente *entity.Cliente) error
	GetByID(ctx context.Context, id int64) (*entity.Cliente, error)
	GetByEmail(ctx context.Context, email string) (*entity.Cliente, error)
	List(ctx context.Context) ([]*entity.Cliente, error)
	// SearchByNombre coincidencia parcial sin distinguir mayúsculas.
	SearchByNombre(ctx context.Context, nombre string) ([]*entity.Cliente, error)
	// Update devuelve domain.ErrNotFound si el ID no existe.
	Update(ctx context.Context, cliente *entity.Cliente) error
	// UpdateNombre devuelve la cantidad de filas afectadas.
	UpdateNombre(ctx context.Context, id int64, nombre string) (int64, error)
	// Delete elimina y devuelve el registro borrado, o (nil, nil) si no existía.
	Delete(ctx context.Context, id int64) (*entity.Cliente, error)
}
