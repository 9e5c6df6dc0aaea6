package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/mfigueroa/ventas-api/internal/application/dto"
	"github.com/mfigueroa/ventas-api/internal/application/usecase"
	"github.com/mfigueroa/ventas-api/pkg/logger"
)

// VentaHandler maneja las peticiones HTTP de ventas.
type VentaHandler struct {
	uc  *usecase.VentaUseCase
	log *logger.Logger
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *usecase.VentaUseCase, log *logger.Logger) *VentaHandler {
	return &VentaHandler{uc: uc, log: log}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Resuelve cliente y productos por ID y calcula el total; el total enviado se ignora.
// @Tags         ventas
// @Accept       json
// @Produce      json
// @Param        body  body  dto.VentaDTO  true  "clienteId y productosId"
// @Success      201   {object}  dto.VentaDTO
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/ventas/create [post]
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.VentaDTO
	if err := parseBody(c, &in); err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Tags         ventas
// @Produce      json
// @Success      200  {array}  dto.VentaDTO
// @Router       /api/ventas [get]
func (h *VentaHandler) List(c *fiber.Ctx) error {
	list, err := h.uc.List(c.UserContext())
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// FindByCliente godoc
// @Summary      Ventas de un cliente
// @Tags         ventas
// @Produce      json
// @Param        id  query  int  true  "ID del cliente"
// @Success      200  {array}  dto.VentaDTO
// @Router       /api/ventas/findByCliente [get]
func (h *VentaHandler) FindByCliente(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	list, err := h.uc.ListByCliente(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// FindByProducto godoc
// @Summary      Ventas que incluyen un producto
// @Tags         ventas
// @Produce      json
// @Param        id  query  int  true  "ID del producto"
// @Success      200  {array}  dto.VentaDTO
// @Router       /api/ventas/findByProducto [get]
func (h *VentaHandler) FindByProducto(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	list, err := h.uc.ListByProducto(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(list)
}

// TotalByCliente godoc
// @Summary      Total vendido a un cliente
// @Tags         ventas
// @Produce      json
// @Param        id  query  int  true  "ID del cliente"
// @Success      200  {object}  dto.TotalClienteResponse
// @Router       /api/ventas/totalByCliente [get]
func (h *VentaHandler) TotalByCliente(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	out, err := h.uc.TotalByCliente(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(out)
}

// DeleteByID godoc
// @Summary      Eliminar venta
// @Tags         ventas
// @Produce      json
// @Param        id  query  int  true  "ID de la venta"
// @Success      200  {boolean}  bool
// @Router       /api/ventas/deleteById [delete]
func (h *VentaHandler) DeleteByID(c *fiber.Ctx) error {
	id, err := queryID(c, "id")
	if err != nil {
		return respondError(c, h.log, err)
	}
	ok, err := h.uc.Delete(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(ok)
}

// UpdateClienteVenta godoc
// @Summary      Reasignar el cliente de una venta
// @Description  Sin efecto si la venta no existe; un cliente inexistente responde 404.
// @Tags         ventas
// @Param        idCliente  query  int  true  "Nuevo cliente"
// @Param        idVenta    query  int  true  "Venta"
// @Success      200
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/ventas/updateClienteVenta [put]
func (h *VentaHandler) UpdateClienteVenta(c *fiber.Ctx) error {
	clienteID, err := queryID(c, "idCliente")
	if err != nil {
		return respondError(c, h.log, err)
	}
	ventaID, err := queryID(c, "idVenta")
	if err != nil {
		return respondError(c, h.log, err)
	}
	if err := h.uc.UpdateCliente(c.UserContext(), clienteID, ventaID); err != nil {
		return respondError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusOK)
}
