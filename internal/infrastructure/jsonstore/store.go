// Package jsonstore implementa los puertos de persistencia sobre archivos
// JSON, uno por usuario, a través de afero (os.Fs en producción, memoria en
// tests). Cada operación es un ciclo completo leer-parsear-escribir; no hay
// bloqueo entre peticiones concurrentes.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
)

// Store almacén de documentos por usuario.
type Store struct {
	fs  afero.Fs
	dir string
}

// New crea el almacén asegurando que el directorio exista.
func New(fs afero.Fs, dir string) (*Store, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonstore: crear directorio %s: %w", dir, err)
	}
	return &Store{fs: fs, dir: dir}, nil
}

// path devuelve la ruta del documento. userID 0 es la base por defecto
// (database.json), heredada del sistema monousuario.
func (s *Store) path(userID int) string {
	if userID == 0 {
		return filepath.Join(s.dir, "database.json")
	}
	return filepath.Join(s.dir, fmt.Sprintf("database_%d.json", userID))
}

// Load devuelve el documento del usuario. Un usuario sin documento recibe uno
// vacío que se persiste en el acto; un documento ilegible se trata como vacío
// sin persistir, igual que hacía el sistema anterior.
func (s *Store) Load(userID int) (*entity.Documento, error) {
	path := s.path(userID)
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return nil, fmt.Errorf("jsonstore: comprobar %s: %w", path, err)
	}
	if !exists {
		doc := entity.NuevoDocumento()
		if err := s.write(path, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return entity.NuevoDocumento(), nil
	}
	doc := entity.NuevoDocumento()
	if err := json.Unmarshal(data, doc); err != nil {
		return entity.NuevoDocumento(), nil
	}
	normalizar(doc)
	return doc, nil
}

// Save sobreescribe el documento completo del usuario. Los errores de
// escritura se propagan: el llamador decide qué responder.
func (s *Store) Save(userID int, doc *entity.Documento) error {
	return s.write(s.path(userID), doc)
}

func (s *Store) write(path string, doc *entity.Documento) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: serializar %s: %w", path, err)
	}
	if err := afero.WriteFile(s.fs, path, data, 0o644); err != nil {
		return fmt.Errorf("jsonstore: escribir %s: %w", path, err)
	}
	return nil
}

// normalizar repone colecciones null como slices vacíos para que las
// respuestas y el siguiente Save conserven arrays JSON, nunca null.
func normalizar(doc *entity.Documento) {
	if doc.Clientes == nil {
		doc.Clientes = []entity.Cliente{}
	}
	if doc.Ventas == nil {
		doc.Ventas = []entity.Venta{}
	}
	if doc.Egresos == nil {
		doc.Egresos = []entity.Egreso{}
	}
	if doc.Articulos == nil {
		doc.Articulos = []entity.Articulo{}
	}
	if doc.Categorias == nil {
		doc.Categorias = []entity.Categoria{}
	}
	if doc.CategoriasVenta == nil {
		doc.CategoriasVenta = []entity.Categoria{}
	}
}
