package http_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfigueroa/ventas-api/internal/application/dto"
	"github.com/mfigueroa/ventas-api/internal/application/usecase"
	"github.com/mfigueroa/ventas-api/internal/infrastructure/memory"
	apphttp "github.com/mfigueroa/ventas-api/internal/interfaces/http"
	"github.com/mfigueroa/ventas-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// buildTestApp arma la API completa sobre un store en memoria vacío.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	return buildTestAppWithLog(t, logger.Nop())
}

// buildTestAppWithLog igual que buildTestApp pero con el logger indicado.
func buildTestAppWithLog(t *testing.T, log *logger.Logger) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	metrics, err := apphttp.NewMetrics(prometheus.NewRegistry())
	require.NoError(t, err)

	app := fiber.New(fiber.Config{Immutable: true})
	app.Use(apphttp.RequestID())
	apphttp.Router(app, apphttp.RouterDeps{
		ClienteUC:  usecase.NewClienteUseCase(store.Clientes()),
		ProductoUC: usecase.NewProductoUseCase(store.Productos()),
		VentaUC:    usecase.NewVentaUseCase(store, store.Ventas()),
		Log:        log,
		Metrics:    metrics,
	})
	return app
}

// do ejecuta la petición y devuelve status y cuerpo.
func do(t *testing.T, app *fiber.App, method, url string, body interface{}) (int, []byte) {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, url, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

func seedClientes(t *testing.T, app *fiber.App, n int) {
	t.Helper()
	list := make([]dto.ClienteDTO, 0, n)
	for i := 1; i <= n; i++ {
		list = append(list, dto.ClienteDTO{Nombre: fmt.Sprintf("Cliente %d", i), Email: fmt.Sprintf("c%d@mail.com", i)})
	}
	status, body := do(t, app, http.MethodPost, "/api/clientes/batch", list)
	require.Equal(t, fiber.StatusCreated, status, string(body))
}

func seedProductos(t *testing.T, app *fiber.App) {
	t.Helper()
	status, body := do(t, app, http.MethodPost, "/api/productos/batch", []dto.ProductoDTO{
		{Nombre: "Teclado", Precio: 50, Stock: 10},
		{Nombre: "Mouse", Precio: 20, Stock: 0},
		{Nombre: "Monitor", Precio: 300, Stock: 3},
		{Nombre: "Cable HDMI", Precio: 20, Stock: 25},
		{Nombre: "Silla", Precio: 150, Stock: 0},
		{Nombre: "Mousepad", Precio: 10, Stock: 7},
		{Nombre: "Escritorio", Precio: 1500000, Stock: 1},
	})
	require.Equal(t, fiber.StatusCreated, status, string(body))
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes
// ──────────────────────────────────────────────────────────────────────────────

func TestClientes_CreateYGetByEmail(t *testing.T) {
	app := buildTestApp(t)

	status, body := do(t, app, http.MethodPost, "/api/clientes/create", dto.ClienteDTO{Nombre: "Ana", Email: "ana@mail.com"})
	require.Equal(t, fiber.StatusCreated, status)
	created := decode[dto.ClienteDTO](t, body)
	assert.NotZero(t, created.ID)

	status, body = do(t, app, http.MethodGet, "/api/clientes/getByEmail?email=ana@mail.com", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, created, decode[dto.ClienteDTO](t, body))

	status, body = do(t, app, http.MethodGet, "/api/clientes/getByEmail?email=nadie@mail.com", nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, body).Code)
}

func TestClientes_Errores(t *testing.T) {
	app := buildTestApp(t)
	seedClientes(t, app, 1)

	status, body := do(t, app, http.MethodPost, "/api/clientes/create", dto.ClienteDTO{Nombre: "Otro", Email: "c1@mail.com"})
	assert.Equal(t, fiber.StatusConflict, status)
	assert.Equal(t, "DUPLICATE", decode[dto.ErrorResponse](t, body).Code)

	status, body = do(t, app, http.MethodPost, "/api/clientes/create", dto.ClienteDTO{Nombre: "Sin email"})
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)

	status, _ = do(t, app, http.MethodDelete, "/api/clientes/deleteById?id=99", nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, body = do(t, app, http.MethodDelete, "/api/clientes/deleteById?id=abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "INVALID_PARAM", decode[dto.ErrorResponse](t, body).Code)
}

func TestClientes_UpdateNameYDelete(t *testing.T) {
	app := buildTestApp(t)
	seedClientes(t, app, 2)

	status, body := do(t, app, http.MethodPut, "/api/clientes/updateName?id=1&nombre=Ana", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "true", string(body))

	status, body = do(t, app, http.MethodPut, "/api/clientes/updateName?id=50&nombre=Ana", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "false", string(body))

	status, body = do(t, app, http.MethodGet, "/api/clientes/getByName?nombre=an", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]dto.ClienteDTO](t, body), 1)

	status, body = do(t, app, http.MethodDelete, "/api/clientes/delete?id=1", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Ana", decode[dto.ClienteDTO](t, body).Nombre)

	status, _ = do(t, app, http.MethodDelete, "/api/clientes/deleteById?id=2", nil)
	assert.Equal(t, fiber.StatusNoContent, status)

	status, body = do(t, app, http.MethodGet, "/api/clientes/findAll", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "[]", string(body))
}

func TestClientes_UpdateNameSobreviveAPeticionesPosteriores(t *testing.T) {
	app := buildTestApp(t)
	seedClientes(t, app, 1)

	status, _ := do(t, app, http.MethodPut, "/api/clientes/updateName?id=1&nombre=Zacarias", nil)
	require.Equal(t, fiber.StatusOK, status)

	// otras query strings reutilizan los buffers de la petición anterior
	do(t, app, http.MethodGet, "/api/clientes/getByName?nombre=foobar", nil)
	do(t, app, http.MethodGet, "/api/productos/findByPrice?precio=10", nil)
	do(t, app, http.MethodGet, "/api/clientes/getByEmail?email=barbarbarbar@mail.com", nil)

	status, body := do(t, app, http.MethodGet, "/api/clientes/", nil)
	require.Equal(t, fiber.StatusOK, status)
	list := decode[[]dto.ClienteDTO](t, body)
	require.Len(t, list, 1)
	assert.Equal(t, "Zacarias", list[0].Nombre)
}

func TestClientes_ParametroInvalidoSeRegistra(t *testing.T) {
	var buf bytes.Buffer
	app := buildTestAppWithLog(t, logger.New(logger.Config{Env: "production", Level: "debug", Out: &buf}))

	status, _ := do(t, app, http.MethodDelete, "/api/clientes/delete?id=abc", nil)
	require.Equal(t, fiber.StatusBadRequest, status)

	out := buf.String()
	assert.Contains(t, out, `"level":"debug"`)
	assert.Contains(t, out, `"status":400`)
	assert.Contains(t, out, `"route":"/api/clientes/delete"`)
	assert.Contains(t, out, `"request_id"`)
}

// ──────────────────────────────────────────────────────────────────────────────
// Productos
// ──────────────────────────────────────────────────────────────────────────────

func TestProductos_GetPagedDefaults(t *testing.T) {
	app := buildTestApp(t)
	seedProductos(t, app)

	status, body := do(t, app, http.MethodGet, "/api/productos/getPaged", nil)
	require.Equal(t, fiber.StatusOK, status)
	page := decode[dto.PageResponse[dto.ProductoDTO]](t, body)
	assert.Equal(t, int64(7), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, 5, page.Size)
	assert.True(t, page.First)
	assert.False(t, page.Last)
	require.Len(t, page.Content, 5)
	assert.Equal(t, "Teclado", page.Content[0].Nombre)

	status, body = do(t, app, http.MethodGet, "/api/productos/getPaged?pagina=1&tamano=5&ordenarPor=nombre&orden=ASC", nil)
	require.Equal(t, fiber.StatusOK, status)
	page = decode[dto.PageResponse[dto.ProductoDTO]](t, body)
	assert.Equal(t, 2, page.NumberOfElements)
	assert.True(t, page.Last)
	assert.Equal(t, "Silla", page.Content[0].Nombre)
}

func TestProductos_PaginaEnormeDevuelvePaginaVacia(t *testing.T) {
	app := buildTestApp(t)
	seedProductos(t, app)

	status, body := do(t, app, http.MethodGet, "/api/productos/getPaged?pagina=4611686018427387904&tamano=2", nil)
	require.Equal(t, fiber.StatusOK, status, string(body))
	page := decode[dto.PageResponse[dto.ProductoDTO]](t, body)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(7), page.TotalElements)
	assert.True(t, page.Empty)
}

func TestProductos_OrdenInvalido(t *testing.T) {
	app := buildTestApp(t)
	status, body := do(t, app, http.MethodGet, "/api/productos/getPaged?ordenarPor=apellido", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION", decode[dto.ErrorResponse](t, body).Code)
}

func TestProductos_FiltrosPorPrecioYStock(t *testing.T) {
	app := buildTestApp(t)
	seedProductos(t, app)

	status, body := do(t, app, http.MethodGet, "/api/productos/precio?minPrecio=20&maxPrecio=50", nil)
	require.Equal(t, fiber.StatusOK, status)
	page := decode[dto.PageResponse[dto.ProductoDTO]](t, body)
	assert.Equal(t, int64(3), page.TotalElements)
	assert.Equal(t, []string{"Mouse", "Cable HDMI", "Teclado"}, nombres(page.Content))

	status, body = do(t, app, http.MethodGet, "/api/productos/findByPrice?precio=20", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]dto.ProductoDTO](t, body), 3)

	status, _ = do(t, app, http.MethodGet, "/api/productos/findByPrice", nil)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = do(t, app, http.MethodGet, "/api/productos/findByStock", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]dto.ProductoDTO](t, body), 5)

	status, body = do(t, app, http.MethodGet, "/api/productos/findByName?nombre=mouse&ordenarPor=nombre&orden=asc", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, []string{"Mouse", "Mousepad"}, nombres(decode[dto.PageResponse[dto.ProductoDTO]](t, body).Content))
}

func TestProductos_UpdatePrecio(t *testing.T) {
	app := buildTestApp(t)
	seedProductos(t, app)

	status, body := do(t, app, http.MethodPut, "/api/productos/updatePrecio?id=1&precioNuevo=55.5", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "true", string(body))

	status, body = do(t, app, http.MethodGet, "/api/productos/", nil)
	require.Equal(t, fiber.StatusOK, status)
	teclado := decode[[]dto.ProductoDTO](t, body)[0]
	assert.Equal(t, dto.ProductoDTO{ID: 1, Nombre: "Teclado", Precio: 55.5, Stock: 10}, teclado)
}

func nombres(list []dto.ProductoDTO) []string {
	out := make([]string, 0, len(list))
	for _, p := range list {
		out = append(out, p.Nombre)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Ventas
// ──────────────────────────────────────────────────────────────────────────────

func TestVentas_CreateYConsultas(t *testing.T) {
	app := buildTestApp(t)
	seedClientes(t, app, 5)
	status, _ := do(t, app, http.MethodPost, "/api/productos/batch", []dto.ProductoDTO{
		{Nombre: "A", Precio: 100, Stock: 1},
		{Nombre: "B", Precio: 200, Stock: 1},
	})
	require.Equal(t, fiber.StatusCreated, status)

	status, body := do(t, app, http.MethodPost, "/api/ventas/create", dto.VentaDTO{ClienteID: 5, ProductosID: []int64{1, 2}})
	require.Equal(t, fiber.StatusCreated, status, string(body))
	venta := decode[dto.VentaDTO](t, body)
	assert.Equal(t, 300.0, venta.Total)

	status, body = do(t, app, http.MethodGet, "/api/ventas/totalByCliente?id=5", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, dto.TotalClienteResponse{ClienteID: 5, Total: 300}, decode[dto.TotalClienteResponse](t, body))

	status, body = do(t, app, http.MethodGet, "/api/ventas/findByProducto?id=2", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]dto.VentaDTO](t, body), 1)

	status, _ = do(t, app, http.MethodPut, fmt.Sprintf("/api/ventas/updateClienteVenta?idCliente=3&idVenta=%d", venta.ID), nil)
	assert.Equal(t, fiber.StatusOK, status)
	status, body = do(t, app, http.MethodGet, "/api/ventas/findByCliente?id=3", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, decode[[]dto.VentaDTO](t, body), 1)

	status, _ = do(t, app, http.MethodPut, fmt.Sprintf("/api/ventas/updateClienteVenta?idCliente=77&idVenta=%d", venta.ID), nil)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = do(t, app, http.MethodDelete, "/api/productos/delete?id=1", nil)
	assert.Equal(t, fiber.StatusConflict, status)

	status, body = do(t, app, http.MethodDelete, fmt.Sprintf("/api/ventas/deleteById?id=%d", venta.ID), nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "true", string(body))
}

func TestVentas_ProductoInexistente(t *testing.T) {
	app := buildTestApp(t)
	seedClientes(t, app, 1)

	status, body := do(t, app, http.MethodPost, "/api/ventas/create", dto.VentaDTO{ClienteID: 1, ProductosID: []int64{42}})
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", decode[dto.ErrorResponse](t, body).Code)

	status, body = do(t, app, http.MethodGet, "/api/ventas/", nil)
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "[]", string(body))

	status, _ = do(t, app, http.MethodPost, "/api/ventas/create", dto.VentaDTO{ClienteID: 1})
	assert.Equal(t, fiber.StatusBadRequest, status)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ambiente
// ──────────────────────────────────────────────────────────────────────────────

func TestRequestIDYMetricas(t *testing.T) {
	app := buildTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/clientes/", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Header.Get(fiber.HeaderXRequestID))

	status, body := do(t, app, http.MethodGet, "/metrics", nil)
	require.Equal(t, fiber.StatusOK, status)
	assert.True(t, strings.Contains(string(body), "http_requests_total"))
}
