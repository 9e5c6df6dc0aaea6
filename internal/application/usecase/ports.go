package usecase

import (
	"context"

	"github.com/mfigueroa/ventas-api/internal/domain/repository"
)

// VentaTxRunner ejecuta una función dentro de una transacción, pasando repositorios atados a ella.
// Garantiza que una venta con referencias inválidas no deje nada persistido.
type VentaTxRunner interface {
	RunVenta(ctx context.Context, fn func(
		clientes repository.ClienteRepository,
		productos repository.ProductoRepository,
		ventas repository.VentaRepository,
	) error) error
}
