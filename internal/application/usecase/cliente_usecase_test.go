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

func newClienteUC() *usecase.ClienteUseCase {
	return usecase.NewClienteUseCase(memory.NewStore().Clientes())
}

func TestClienteCreate_GeneraIDYConservaCampos(t *testing.T) {
	uc := newClienteUC()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		in := dto.ClienteDTO{ID: 999, Nombre: fmt.Sprintf("Cliente %d", i), Email: fmt.Sprintf("c%d@mail.com", i)}
		out, err := uc.Create(ctx, in)
		require.NoError(t, err)
		assert.NotZero(t, out.ID, "el id debe generarse")
		assert.NotEqual(t, int64(999), out.ID, "el id de entrada se ignora")
		assert.Equal(t, in.Nombre, out.Nombre)
		assert.Equal(t, in.Email, out.Email)
	}
}

func TestClienteCreate_EmailDuplicadoFalla(t *testing.T) {
	uc := newClienteUC()
	ctx := context.Background()

	_, err := uc.Create(ctx, dto.ClienteDTO{Nombre: "Ana", Email: "ana@mail.com"})
	require.NoError(t, err)
	_, err = uc.Create(ctx, dto.ClienteDTO{Nombre: "Otra Ana", Email: "ana@mail.com"})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestClienteCreateBatch_SeDetieneEnPrimerErrorSinRevertir(t *testing.T) {
	uc := newClienteUC()
	ctx := context.Background()

	err := uc.CreateBatch(ctx, []dto.ClienteDTO{
		{Nombre: "A", Email: "a@mail.com"},
		{Nombre: "B", Email: "a@mail.com"},
		{Nombre: "C", Email: "c@mail.com"},
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1, "el primero queda persistido y el tercero no se intenta")
	assert.Equal(t, "A", list[0].Nombre)
}

func TestClienteGetByEmail(t *testing.T) {
	uc := newClienteUC()
	ctx := context.Background()
	creado, err := uc.Create(ctx, dto.ClienteDTO{Nombre: "Luis", Email: "luis@mail.com"})
	require.NoError(t, err)

	got, err := uc.GetByEmail(ctx, "luis@mail.com")
	require.NoError(t, err)
	assert.Equal(t, creado.ID, got.ID)

	_, err = uc.GetByEmail(ctx, "nadie@mail.com")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClienteSearchByNombre_SinDistinguirMayusculas(t *testing.T) {
	uc := newClienteUC()
	ctx := context.Background()
	for _, n := range []string{"María López", "MARIO Ruiz", "Pedro"} {
		_, err := uc.Create(ctx, dto.ClienteDTO{Nombre: n, Email: n + "@mail.com"})
		require.NoError(t, err)
	}

	got, err := uc.SearchByNombre(ctx, "mari")
	require.NoError(t, err)
	assert.Len(t, got, 2)

	got, err = uc.SearchByNombre(ctx, "zzz")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got, "sin coincidencias devuelve lista vacía")
}

func TestClienteUpdate(t *testing.T) {
	uc := newClienteUC()
	ctx := context.Background()
	creado, err := uc.Create(ctx, dto.ClienteDTO{Nombre: "Eva", Email: "eva@mail.com"})
	require.NoError(t, err)

	out, err := uc.Update(ctx, creado.ID, dto.ClienteDTO{Nombre: "Eva M.", Email: "evam@mail.com"})
	require.NoError(t, err)
	assert.Equal(t, creado.ID, out.ID)
	assert.Equal(t, "Eva M.", out.Nombre)
	assert.Equal(t, "evam@mail.com", out.Email)

	_, err = uc.Update(ctx, 404, dto.ClienteDTO{Nombre: "x", Email: "x@mail.com"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClienteUpdateNombre_DevuelveBool(t *testing.T) {
	uc := newClienteUC()
	ctx := context.Background()
	creado, err := uc.Create(ctx, dto.ClienteDTO{Nombre: "Sol", Email: "sol@mail.com"})
	require.NoError(t, err)

	ok, err := uc.UpdateNombre(ctx, creado.ID, "Soledad")
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := uc.GetByEmail(ctx, "sol@mail.com")
	require.NoError(t, err)
	assert.Equal(t, "Soledad", got.Nombre)

	ok, err = uc.UpdateNombre(ctx, 12345, "Nadie")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestClienteDelete(t *testing.T) {
	uc := newClienteUC()
	ctx := context.Background()
	creado, err := uc.Create(ctx, dto.ClienteDTO{Nombre: "Tom", Email: "tom@mail.com"})
	require.NoError(t, err)

	borrado, err := uc.Delete(ctx, creado.ID)
	require.NoError(t, err)
	assert.Equal(t, *creado, *borrado)

	_, err = uc.Delete(ctx, creado.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "borrar un id inexistente es error")
}
