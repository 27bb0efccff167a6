// Package auth implementa login y verificación de sesión sobre el archivo de
// usuarios.
package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/repository"
	"github.com/FDenisienia/Gestion-ventas/pkg/config"
	"github.com/FDenisienia/Gestion-ventas/pkg/jwt"
)

// UseCase autenticación por credenciales y emisión de tokens.
type UseCase struct {
	users repository.UserStore
	jwt   config.JWTConfig
}

// NewUseCase construye el caso de uso.
func NewUseCase(users repository.UserStore, jwtCfg config.JWTConfig) *UseCase {
	return &UseCase{users: users, jwt: jwtCfg}
}

// Login valida las credenciales y devuelve un token firmado junto al usuario.
// Usuario inexistente y contraseña incorrecta responden el mismo error.
func (uc *UseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	archivo, err := uc.users.Load()
	if err != nil {
		return nil, err
	}
	var usuario *entity.Usuario
	for i := range archivo.Users {
		if archivo.Users[i].Username == in.Username {
			usuario = &archivo.Users[i]
			break
		}
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.Password), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	token, err := jwt.Generate(uc.jwt.Secret, usuario.ID, usuario.Username, usuario.Role, uc.jwt.Issuer, uc.jwt.Expiration)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token: token,
		User: dto.UsuarioResponse{
			ID:       usuario.ID,
			Username: usuario.Username,
			Role:     usuario.Role,
			Nombre:   usuario.Nombre,
			Email:    usuario.Email,
		},
	}, nil
}

// Verify devuelve el usuario actual a partir de los claims de un token ya
// validado. Si la cuenta fue eliminada después de emitido el token se
// responde con los datos del propio token, sin error: la sesión sigue viva
// hasta que expire.
func (uc *UseCase) Verify(userID int, username, role string) (*dto.VerifyResponse, error) {
	archivo, err := uc.users.Load()
	if err != nil {
		return nil, err
	}
	for _, u := range archivo.Users {
		if u.ID == userID {
			return &dto.VerifyResponse{User: dto.UsuarioResponse{
				ID:       u.ID,
				Username: u.Username,
				Role:     u.Role,
				Nombre:   u.Nombre,
				Email:    u.Email,
			}}, nil
		}
	}
	return &dto.VerifyResponse{User: dto.UsuarioResponse{
		ID:       userID,
		Username: username,
		Role:     role,
	}}, nil
}
