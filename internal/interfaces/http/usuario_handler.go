package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/application/usecase"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
)

// UsuarioHandler maneja la administración de cuentas. Todas las rutas son de
// admin salvo GetByID, donde un usuario puede consultar su propio perfil.
type UsuarioHandler struct {
	uc *usecase.UsuarioUseCase
}

// NewUsuarioHandler construye el handler.
func NewUsuarioHandler(uc *usecase.UsuarioUseCase) *UsuarioHandler {
	return &UsuarioHandler{uc: uc}
}

// List GET /api/users (solo admin)
func (h *UsuarioHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.JSON(users)
}

// GetByID GET /api/users/:id (propio perfil, o cualquiera si es admin)
func (h *UsuarioHandler) GetByID(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if GetRole(c) != "admin" && GetUserID(c) != id {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Error: "No tienes permiso para ver este usuario"})
	}
	user, err := h.uc.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	if user == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
	}
	return c.JSON(user)
}

// Create POST /api/users (solo admin)
func (h *UsuarioHandler) Create(c *fiber.Ctx) error {
	var in dto.CrearUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	if in.Username == "" || in.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "Usuario y contraseña son requeridos"})
	}
	user, err := h.uc.Create(in)
	if err != nil {
		if err == domain.ErrUsernameExists {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// Update PUT /api/users/:id (solo admin)
func (h *UsuarioHandler) Update(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	var in dto.ActualizarUsuarioRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: "cuerpo inválido"})
	}
	// Contraseña vacía significa "no cambiarla".
	if in.Password != nil && *in.Password == "" {
		in.Password = nil
	}
	user, err := h.uc.Update(id, in)
	if err != nil {
		switch err {
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
		case domain.ErrUsernameExists:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
		}
	}
	return c.JSON(user)
}

// Delete DELETE /api/users/:id (solo admin)
func (h *UsuarioHandler) Delete(c *fiber.Ctx) error {
	id, _ := strconv.Atoi(c.Params("id"))
	if err := h.uc.Delete(id); err != nil {
		switch err {
		case domain.ErrUserNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: "Usuario no encontrado"})
		case domain.ErrAdminProtegido:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Error: err.Error()})
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: err.Error()})
		}
	}
	return c.SendStatus(fiber.StatusNoContent)
}
