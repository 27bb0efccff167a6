package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/application/usecase"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
)

// CategoriaHandler maneja las peticiones HTTP de una taxonomía de categorías;
// sirve tanto a /api/categorias como a /api/categorias-venta según el caso de
// uso que reciba.
type CategoriaHandler struct {
	uc *usecase.CategoriaUseCase
}

// NewCategoriaHandler construye el handler.
func NewCategoriaHandler(uc *usecase.CategoriaUseCase) *CategoriaHandler {
	return &CategoriaHandler{uc: uc}
}

// List GET /
func (h *CategoriaHandler) List(c *fiber.Ctx) error {
	categorias, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(categorias)
}

// GetByID GET /:id
func (h *CategoriaHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	categoria, err := h.uc.GetByID(GetUserID(c), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if categoria == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Categoría no encontrada"})
	}
	return c.JSON(categoria)
}

// Create POST /
func (h *CategoriaHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "El nombre es requerido"})
	}
	categoria, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(categoria)
}

// Update PUT /:id
func (h *CategoriaHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var in dto.ActualizarCategoriaRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	categoria, err := h.uc.Update(GetUserID(c), id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if categoria == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Categoría no encontrada"})
	}
	return c.JSON(categoria)
}

// Delete DELETE /:id
// Una categoría con registros asociados no se elimina: 409 con el motivo.
func (h *CategoriaHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	switch err := h.uc.Delete(GetUserID(c), id); err {
	case nil:
		return c.JSON(dto.MessageResponse{Message: "Categoría eliminada correctamente"})
	case domain.ErrNotFound:
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Categoría no encontrada"})
	case domain.ErrCategoriaConArticulos, domain.ErrCategoriaConVentas:
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Error: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
}
