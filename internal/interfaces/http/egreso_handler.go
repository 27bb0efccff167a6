package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/application/usecase"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
)

// EgresoHandler maneja las peticiones HTTP de egresos (protegido).
type EgresoHandler struct {
	uc *usecase.EgresoUseCase
}

// NewEgresoHandler construye el handler.
func NewEgresoHandler(uc *usecase.EgresoUseCase) *EgresoHandler {
	return &EgresoHandler{uc: uc}
}

// List GET /api/egresos
func (h *EgresoHandler) List(c *fiber.Ctx) error {
	egresos, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(egresos)
}

// GetByID GET /api/egresos/:id
func (h *EgresoHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	egreso, err := h.uc.GetByID(GetUserID(c), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if egreso == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Egreso no encontrado"})
	}
	return c.JSON(egreso)
}

// Create POST /api/egresos
func (h *EgresoHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearEgresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Descripcion == "" || in.Monto.IsZero() {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Descripción y monto son requeridos"})
	}
	if in.MetodoPago == entity.MetodoTransferencia && in.CuentaTransferencia == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Debe especificar la cuenta de transferencia"})
	}
	egreso, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(egreso)
}

// Update PUT /api/egresos/:id
func (h *EgresoHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var in dto.ActualizarEgresoRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.MetodoPago != nil && *in.MetodoPago == entity.MetodoTransferencia &&
		(in.CuentaTransferencia == nil || *in.CuentaTransferencia == "") {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Debe especificar la cuenta de transferencia"})
	}
	egreso, err := h.uc.Update(GetUserID(c), id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if egreso == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Egreso no encontrado"})
	}
	return c.JSON(egreso)
}

// Delete DELETE /api/egresos/:id
func (h *EgresoHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.uc.Delete(GetUserID(c), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Egreso no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Egreso eliminado correctamente"})
}
