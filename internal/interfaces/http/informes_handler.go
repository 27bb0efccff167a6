package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/application/informes"
)

// InformesHandler maneja los reportes de tesorería e informes (protegido).
type InformesHandler struct {
	uc *informes.UseCase
}

// NewInformesHandler construye el handler.
func NewInformesHandler(uc *informes.UseCase) *InformesHandler {
	return &InformesHandler{uc: uc}
}

// Tesoreria GET /api/informes/tesoreria
func (h *InformesHandler) Tesoreria(c *fiber.Ctx) error {
	r, err := h.uc.Tesoreria(GetUserID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(r)
}

// Resumen GET /api/informes/resumen?meses=6
func (h *InformesHandler) Resumen(c *fiber.Ctx) error {
	meses, _ := strconv.Atoi(c.Query("meses", "0"))
	r, err := h.uc.Resumen(GetUserID(c), meses)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(r)
}
