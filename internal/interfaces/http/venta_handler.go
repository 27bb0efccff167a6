package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/application/ventas"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
)

// VentaHandler maneja las peticiones HTTP del libro de ventas (protegido).
type VentaHandler struct {
	uc *ventas.UseCase
}

// NewVentaHandler construye el handler.
func NewVentaHandler(uc *ventas.UseCase) *VentaHandler {
	return &VentaHandler{uc: uc}
}

// List GET /api/ventas
func (h *VentaHandler) List(c *fiber.Ctx) error {
	lista, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(lista)
}

// ListByCliente GET /api/ventas/cliente/:clienteId
func (h *VentaHandler) ListByCliente(c *fiber.Ctx) error {
	clienteID, _ := strconv.Atoi(c.Params("clienteId"))
	lista, err := h.uc.ListByCliente(GetUserID(c), clienteID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(lista)
}

// GetByID GET /api/ventas/:id
func (h *VentaHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	venta, err := h.uc.GetByID(GetUserID(c), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if venta == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Venta no encontrada"})
	}
	return c.JSON(venta)
}

// Create POST /api/ventas
func (h *VentaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.ClienteID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cliente_id es requerido"})
	}
	if len(in.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "La venta debe tener al menos un item"})
	}
	venta, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		if err == domain.ErrClienteNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Cliente no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(venta)
}

// Update PUT /api/ventas/:id
func (h *VentaHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var in dto.ActualizarVentaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	venta, err := h.uc.Update(GetUserID(c), id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if venta == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Venta no encontrada"})
	}
	return c.JSON(venta)
}

// Delete DELETE /api/ventas/:id
func (h *VentaHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.uc.Delete(GetUserID(c), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Venta no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Venta eliminada correctamente"})
}
