package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/application/usecase"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
)

// ArticuloHandler maneja las peticiones HTTP de artículos (protegido).
type ArticuloHandler struct {
	uc *usecase.ArticuloUseCase
}

// NewArticuloHandler construye el handler.
func NewArticuloHandler(uc *usecase.ArticuloUseCase) *ArticuloHandler {
	return &ArticuloHandler{uc: uc}
}

// List GET /api/articulos
func (h *ArticuloHandler) List(c *fiber.Ctx) error {
	articulos, err := h.uc.List(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(articulos)
}

// GetByID GET /api/articulos/:id
func (h *ArticuloHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	articulo, err := h.uc.GetByID(GetUserID(c), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if articulo == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Artículo no encontrado"})
	}
	return c.JSON(articulo)
}

// Create POST /api/articulos
// Costo, venta y stock son obligatorios pero pueden valer cero; la ausencia
// se distingue con punteros en el cuerpo crudo.
func (h *ArticuloHandler) Create(c *fiber.Ctx) error {
	var raw struct {
		dto.CrearArticuloRequest
		Costo *float64 `json:"costo"`
		Venta *float64 `json:"venta"`
		Stock *int     `json:"stock"`
	}
	if err := c.BodyParser(&raw); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if raw.Nombre == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "El nombre es requerido"})
	}
	if raw.Costo == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "El costo es requerido"})
	}
	if raw.Venta == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "El precio de venta es requerido"})
	}
	if raw.Stock == nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "El stock es requerido"})
	}
	in := raw.CrearArticuloRequest
	in.Costo = decimalDeFloat(*raw.Costo)
	in.Venta = decimalDeFloat(*raw.Venta)
	in.Stock = *raw.Stock
	articulo, err := h.uc.Create(GetUserID(c), in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(articulo)
}

// Update PUT /api/articulos/:id
func (h *ArticuloHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var in dto.ActualizarArticuloRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	articulo, err := h.uc.Update(GetUserID(c), id, in)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if articulo == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Artículo no encontrado"})
	}
	return c.JSON(articulo)
}

// Delete DELETE /api/articulos/:id
func (h *ArticuloHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.uc.Delete(GetUserID(c), id); err != nil {
		if err == domain.ErrNotFound {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Artículo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "Artículo eliminado correctamente"})
}

func decimalDeFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
