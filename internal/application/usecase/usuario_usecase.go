package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/repository"
)

// UsuarioUseCase administración de cuentas (solo admin). Las respuestas nunca
// incluyen el hash de contraseña.
type UsuarioUseCase struct {
	users repository.UserStore
	docs  repository.DocumentStore
}

// NewUsuarioUseCase construye el caso de uso.
func NewUsuarioUseCase(users repository.UserStore, docs repository.DocumentStore) *UsuarioUseCase {
	return &UsuarioUseCase{users: users, docs: docs}
}

// List devuelve todos los usuarios sin contraseñas.
func (uc *UsuarioUseCase) List() ([]dto.UsuarioResponse, error) {
	archivo, err := uc.users.Load()
	if err != nil {
		return nil, err
	}
	out := make([]dto.UsuarioResponse, 0, len(archivo.Users))
	for _, u := range archivo.Users {
		out = append(out, toUsuarioResponse(u))
	}
	return out, nil
}

// GetByID devuelve el usuario o nil si no existe.
func (uc *UsuarioUseCase) GetByID(id int) (*dto.UsuarioResponse, error) {
	archivo, err := uc.users.Load()
	if err != nil {
		return nil, err
	}
	for _, u := range archivo.Users {
		if u.ID == id {
			r := toUsuarioResponse(u)
			return &r, nil
		}
	}
	return nil, nil
}

// Create crea un usuario con contraseña hasheada. El username debe ser único.
func (uc *UsuarioUseCase) Create(in dto.CrearUsuarioRequest) (*dto.UsuarioResponse, error) {
	archivo, err := uc.users.Load()
	if err != nil {
		return nil, err
	}
	for _, u := range archivo.Users {
		if u.Username == in.Username {
			return nil, domain.ErrUsernameExists
		}
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	role := in.Role
	if role == "" {
		role = entity.RolUser
	}
	nombre := in.Nombre
	if nombre == "" {
		nombre = in.Username
	}
	usuario := entity.Usuario{
		ID:            entity.NextID(archivo.Users),
		Username:      in.Username,
		Password:      string(hash),
		Role:          role,
		Nombre:        nombre,
		Email:         in.Email,
		FechaCreacion: entity.NowISO(),
	}
	archivo.Users = append(archivo.Users, usuario)
	if err := uc.users.Save(archivo); err != nil {
		return nil, err
	}
	// Inicializa el documento del usuario nuevo; si falla, el alta no se
	// revierte y el documento se creará en el primer acceso.
	_, _ = uc.docs.Load(usuario.ID)
	r := toUsuarioResponse(usuario)
	return &r, nil
}

// Update actualización parcial. Si viene contraseña se vuelve a hashear; el
// username nuevo no puede estar en uso por otro usuario.
func (uc *UsuarioUseCase) Update(id int, in dto.ActualizarUsuarioRequest) (*dto.UsuarioResponse, error) {
	archivo, err := uc.users.Load()
	if err != nil {
		return nil, err
	}
	idx := -1
	for i := range archivo.Users {
		if archivo.Users[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, domain.ErrUserNotFound
	}
	if in.Username != nil {
		for _, u := range archivo.Users {
			if u.Username == *in.Username && u.ID != id {
				return nil, domain.ErrUsernameExists
			}
		}
		archivo.Users[idx].Username = *in.Username
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		archivo.Users[idx].Password = string(hash)
	}
	if in.Role != nil {
		archivo.Users[idx].Role = *in.Role
	}
	if in.Nombre != nil {
		archivo.Users[idx].Nombre = *in.Nombre
	}
	if in.Email != nil {
		archivo.Users[idx].Email = *in.Email
	}
	if err := uc.users.Save(archivo); err != nil {
		return nil, err
	}
	r := toUsuarioResponse(archivo.Users[idx])
	return &r, nil
}

// Delete elimina un usuario. El administrador principal está protegido.
func (uc *UsuarioUseCase) Delete(id int) error {
	archivo, err := uc.users.Load()
	if err != nil {
		return err
	}
	for i := range archivo.Users {
		if archivo.Users[i].ID != id {
			continue
		}
		if archivo.Users[i].Role == entity.RolAdmin && archivo.Users[i].Username == "admin" {
			return domain.ErrAdminProtegido
		}
		archivo.Users = append(archivo.Users[:i], archivo.Users[i+1:]...)
		return uc.users.Save(archivo)
	}
	return domain.ErrUserNotFound
}

func toUsuarioResponse(u entity.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{
		ID:            u.ID,
		Username:      u.Username,
		Role:          u.Role,
		Nombre:        u.Nombre,
		Email:         u.Email,
		FechaCreacion: u.FechaCreacion,
	}
}
