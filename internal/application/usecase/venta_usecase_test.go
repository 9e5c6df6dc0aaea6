package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfigueroa/ventas-api/internal/application/dto"
	"github.com/mfigueroa/ventas-api/internal/application/usecase"
	"github.com/mfigueroa/ventas-api/internal/domain"
	"github.com/mfigueroa/ventas-api/internal/infrastructure/memory"
)

var _ usecase.VentaTxRunner = (*memory.Store)(nil)

func newStore() *memory.Store { return memory.NewStore() }

type ventaFixture struct {
	store     *memory.Store
	clientes  *usecase.ClienteUseCase
	productos *usecase.ProductoUseCase
	ventas    *usecase.VentaUseCase
}

// newVentaFixture crea 5 clientes (ids 1..5) y productos 1=100, 2=200, 3=50.
func newVentaFixture(t *testing.T) *ventaFixture {
	t.Helper()
	s := newStore()
	f := &ventaFixture{
		store:     s,
		clientes:  usecase.NewClienteUseCase(s.Clientes()),
		productos: usecase.NewProductoUseCase(s.Productos()),
		ventas:    usecase.NewVentaUseCase(s, s.Ventas()),
	}
	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		_, err := f.clientes.Create(ctx, dto.ClienteDTO{Nombre: fmt.Sprintf("Cliente %d", i), Email: fmt.Sprintf("c%d@mail.com", i)})
		require.NoError(t, err)
	}
	require.NoError(t, f.productos.CreateBatch(ctx, []dto.ProductoDTO{
		{Nombre: "P1", Precio: 100, Stock: 1},
		{Nombre: "P2", Precio: 200, Stock: 1},
		{Nombre: "P3", Precio: 50, Stock: 1},
	}))
	return f
}

func TestVentaCreate_CalculaTotalDesdeProductos(t *testing.T) {
	f := newVentaFixture(t)
	ctx := context.Background()

	out, err := f.ventas.Create(ctx, dto.VentaDTO{ClienteID: 5, ProductosID: []int64{1, 2}, Total: 1})
	require.NoError(t, err)
	assert.NotZero(t, out.ID)
	assert.Equal(t, 300.0, out.Total, "el total enviado se ignora")
	assert.Equal(t, int64(5), out.ClienteID)
	assert.Equal(t, []int64{1, 2}, out.ProductosID)

	porCliente, err := f.ventas.ListByCliente(ctx, 5)
	require.NoError(t, err)
	require.Len(t, porCliente, 1)
	assert.Equal(t, *out, porCliente[0], "la asociación con el cliente queda persistida")
}

func TestVentaCreate_ProductoRepetidoSumaDosVeces(t *testing.T) {
	f := newVentaFixture(t)
	out, err := f.ventas.Create(context.Background(), dto.VentaDTO{ClienteID: 1, ProductosID: []int64{3, 3, 1}})
	require.NoError(t, err)
	assert.Equal(t, 200.0, out.Total)
	assert.Equal(t, []int64{3, 3, 1}, out.ProductosID)
}

func TestVentaCreate_ProductoInexistente_NoPersisteNada(t *testing.T) {
	f := newVentaFixture(t)
	ctx := context.Background()

	_, err := f.ventas.Create(ctx, dto.VentaDTO{ClienteID: 1, ProductosID: []int64{1, 99}})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	all, err := f.ventas.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestVentaCreate_ClienteInexistente(t *testing.T) {
	f := newVentaFixture(t)
	_, err := f.ventas.Create(context.Background(), dto.VentaDTO{ClienteID: 42, ProductosID: []int64{1}})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestVentaTotal_NoSeRecalculaAlCambiarPrecio(t *testing.T) {
	f := newVentaFixture(t)
	ctx := context.Background()

	out, err := f.ventas.Create(ctx, dto.VentaDTO{ClienteID: 2, ProductosID: []int64{1}})
	require.NoError(t, err)

	ok, err := f.productos.UpdatePrecio(ctx, 1, 999)
	require.NoError(t, err)
	require.True(t, ok)

	all, err := f.ventas.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, out.Total, all[0].Total)
}

func TestVentaListByProductoYTotalByCliente(t *testing.T) {
	f := newVentaFixture(t)
	ctx := context.Background()

	_, err := f.ventas.Create(ctx, dto.VentaDTO{ClienteID: 3, ProductosID: []int64{1}})
	require.NoError(t, err)
	_, err = f.ventas.Create(ctx, dto.VentaDTO{ClienteID: 3, ProductosID: []int64{2, 3}})
	require.NoError(t, err)
	_, err = f.ventas.Create(ctx, dto.VentaDTO{ClienteID: 4, ProductosID: []int64{3}})
	require.NoError(t, err)

	conP3, err := f.ventas.ListByProducto(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, conP3, 2)

	total, err := f.ventas.TotalByCliente(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, 350.0, total.Total)

	total, err = f.ventas.TotalByCliente(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, total.Total)
}

func TestVentaDelete_DevuelveBool(t *testing.T) {
	f := newVentaFixture(t)
	ctx := context.Background()
	out, err := f.ventas.Create(ctx, dto.VentaDTO{ClienteID: 1, ProductosID: []int64{1}})
	require.NoError(t, err)

	ok, err := f.ventas.Delete(ctx, out.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.ventas.Delete(ctx, out.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVentaUpdateCliente(t *testing.T) {
	f := newVentaFixture(t)
	ctx := context.Background()
	out, err := f.ventas.Create(ctx, dto.VentaDTO{ClienteID: 1, ProductosID: []int64{1}})
	require.NoError(t, err)

	require.NoError(t, f.ventas.UpdateCliente(ctx, 2, out.ID))
	porCliente, err := f.ventas.ListByCliente(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, porCliente, 1)

	assert.NoError(t, f.ventas.UpdateCliente(ctx, 2, 9999), "venta inexistente: sin efecto ni error")
	assert.ErrorIs(t, f.ventas.UpdateCliente(ctx, 9999, out.ID), domain.ErrNotFound)
}

func TestDeleteReferenciado_Conflicto(t *testing.T) {
	f := newVentaFixture(t)
	ctx := context.Background()
	_, err := f.ventas.Create(ctx, dto.VentaDTO{ClienteID: 1, ProductosID: []int64{2}})
	require.NoError(t, err)

	_, err = f.clientes.Delete(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = f.productos.Delete(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrConflict)
}
