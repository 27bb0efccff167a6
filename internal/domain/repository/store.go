// Package repository define los puertos de persistencia que consumen los
// casos de uso. La implementación vive en internal/infrastructure/jsonstore.
package repository

import "github.com/FDenisienia/Gestion-ventas/internal/domain/entity"

// DocumentStore persiste el documento completo de un usuario (las seis
// colecciones) como una unidad. userID 0 es el documento por defecto, herencia
// del sistema monousuario anterior.
//
// No hay bloqueo: dos mutaciones concurrentes sobre el mismo usuario son una
// carrera lectura-modificación-escritura donde gana el último Save.
type DocumentStore interface {
	// Load devuelve el documento del usuario. Si no existe, lo crea vacío y
	// lo persiste; nunca falla por usuario desconocido.
	Load(userID int) (*entity.Documento, error)
	// Save sobreescribe el documento completo. Los errores de E/S se
	// propagan al llamador, nunca se tragan.
	Save(userID int, doc *entity.Documento) error
}

// UserStore persiste el archivo de usuarios (users.json) como una unidad.
type UserStore interface {
	Load() (*entity.ArchivoUsuarios, error)
	Save(archivo *entity.ArchivoUsuarios) error
}
