package jsonstore

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/crypto/bcrypt"

	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
)

// UserStore almacén del archivo de usuarios (users.json).
type UserStore struct {
	fs   afero.Fs
	path string
}

// NewUserStore crea el almacén de usuarios en dir/users.json.
func NewUserStore(fs afero.Fs, dir string) *UserStore {
	return &UserStore{fs: fs, path: filepath.Join(dir, "users.json")}
}

// Load lee el archivo de usuarios. Si no existe o está corrupto devuelve un
// archivo vacío; SeedAdmin se encarga de reponer al administrador.
func (s *UserStore) Load() (*entity.ArchivoUsuarios, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return &entity.ArchivoUsuarios{Users: []entity.Usuario{}}, nil
	}
	var archivo entity.ArchivoUsuarios
	if err := json.Unmarshal(data, &archivo); err != nil {
		return &entity.ArchivoUsuarios{Users: []entity.Usuario{}}, nil
	}
	if archivo.Users == nil {
		archivo.Users = []entity.Usuario{}
	}
	return &archivo, nil
}

// Save sobreescribe el archivo de usuarios.
func (s *UserStore) Save(archivo *entity.ArchivoUsuarios) error {
	data, err := json.MarshalIndent(archivo, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: serializar usuarios: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, data, 0o600); err != nil {
		return fmt.Errorf("jsonstore: escribir usuarios: %w", err)
	}
	return nil
}

// SeedAdmin garantiza que exista el usuario admin con un hash bcrypt válido.
// Se invoca una vez al arranque. Un hash de menos de 50 caracteres se
// considera corrupto y se regenera, igual que hacía el sistema anterior.
func (s *UserStore) SeedAdmin(password string) error {
	archivo, err := s.Load()
	if err != nil {
		return err
	}
	var admin *entity.Usuario
	for i := range archivo.Users {
		if archivo.Users[i].Username == "admin" {
			admin = &archivo.Users[i]
			break
		}
	}
	if admin != nil && len(admin.Password) >= 50 {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("jsonstore: hash de admin: %w", err)
	}
	if admin == nil {
		archivo.Users = append(archivo.Users, entity.Usuario{
			ID:            entity.NextID(archivo.Users),
			Username:      "admin",
			Password:      string(hash),
			Role:          entity.RolAdmin,
			Nombre:        "Administrador",
			Email:         "admin@example.com",
			FechaCreacion: entity.NowISO(),
		})
	} else {
		admin.Password = string(hash)
	}
	return s.Save(archivo)
}
