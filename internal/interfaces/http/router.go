package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mfigueroa/ventas-api/internal/application/usecase"
	"github.com/mfigueroa/ventas-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ClienteUC  *usecase.ClienteUseCase
	ProductoUC *usecase.ProductoUseCase
	VentaUC    *usecase.VentaUseCase
	Log        *logger.Logger
	Metrics    *Metrics // opcional; sin métricas no se expone /metrics
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Log
	if log == nil {
		log = logger.Nop()
	}
	if deps.Metrics != nil {
		app.Use(deps.Metrics.Middleware())
		app.Get("/metrics", deps.Metrics.Handler())
	}

	api := app.Group("/api")

	// Clientes
	clientes := api.Group("/clientes")
	clienteHandler := NewClienteHandler(deps.ClienteUC, log.Named("clientes"))
	clientes.Post("/create", clienteHandler.Create)
	clientes.Post("/batch", clienteHandler.CreateBatch)
	clientes.Get("/", clienteHandler.List)
	clientes.Get("/findAll", clienteHandler.List)
	clientes.Get("/getByEmail", clienteHandler.GetByEmail)
	clientes.Get("/getByName", clienteHandler.GetByName)
	clientes.Put("/update", clienteHandler.Update)
	clientes.Put("/updateName", clienteHandler.UpdateName)
	clientes.Delete("/deleteById", clienteHandler.DeleteByID)
	clientes.Delete("/delete", clienteHandler.Delete)

	// Productos
	productos := api.Group("/productos")
	productoHandler := NewProductoHandler(deps.ProductoUC, log.Named("productos"))
	productos.Post("/create", productoHandler.Create)
	productos.Post("/batch", productoHandler.CreateBatch)
	productos.Get("/", productoHandler.List)
	productos.Get("/findByPrice", productoHandler.FindByPrice)
	productos.Get("/findByStock", productoHandler.FindByStock)
	productos.Put("/update", productoHandler.Update)
	productos.Put("/updatePrecio", productoHandler.UpdatePrecio)
	productos.Delete("/delete", productoHandler.Delete)
	productos.Get("/getPaged", productoHandler.GetPaged)
	productos.Get("/precio", productoHandler.FindByPrecioRange)
	productos.Get("/findByName", productoHandler.FindByName)

	// Ventas
	ventas := api.Group("/ventas")
	ventaHandler := NewVentaHandler(deps.VentaUC, log.Named("ventas"))
	ventas.Post("/create", ventaHandler.Create)
	ventas.Get("/", ventaHandler.List)
	ventas.Get("/findByCliente", ventaHandler.FindByCliente)
	ventas.Get("/findByProducto", ventaHandler.FindByProducto)
	ventas.Get("/totalByCliente", ventaHandler.TotalByCliente)
	ventas.Delete("/deleteById", ventaHandler.DeleteByID)
	ventas.Put("/updateClienteVenta", ventaHandler.UpdateClienteVenta)
}
