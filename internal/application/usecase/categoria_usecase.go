package usecase

import (
	"sort"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/repository"
)

// CategoriaUseCase CRUD sobre las dos taxonomías de categorías. El parámetro
// de construcción decide sobre cuál colección opera y qué referencia bloquea
// el borrado: las categorías de artículos no se eliminan con artículos
// asociados y las de ventas no se eliminan con ventas asociadas.
type CategoriaUseCase struct {
	store    repository.DocumentStore
	deVentas bool
}

// NewCategoriaUseCase categorías de artículos (colección "categorias").
func NewCategoriaUseCase(store repository.DocumentStore) *CategoriaUseCase {
	return &CategoriaUseCase{store: store}
}

// NewCategoriaVentaUseCase categorías de ventas (colección "categoriasVenta").
func NewCategoriaVentaUseCase(store repository.DocumentStore) *CategoriaUseCase {
	return &CategoriaUseCase{store: store, deVentas: true}
}

func (uc *CategoriaUseCase) coleccion(doc *entity.Documento) *[]entity.Categoria {
	if uc.deVentas {
		return &doc.CategoriasVenta
	}
	return &doc.Categorias
}

// List devuelve las categorías ordenadas por fecha de creación descendente.
func (uc *CategoriaUseCase) List(userID int) ([]entity.Categoria, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	categorias := append([]entity.Categoria{}, *uc.coleccion(doc)...)
	sort.SliceStable(categorias, func(i, j int) bool {
		return entity.ParseFecha(categorias[i].FechaCreacion).After(entity.ParseFecha(categorias[j].FechaCreacion))
	})
	return categorias, nil
}

// GetByID devuelve la categoría o nil si no existe.
func (uc *CategoriaUseCase) GetByID(userID, id int) (*entity.Categoria, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	for _, c := range *uc.coleccion(doc) {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, nil
}

// Create crea una categoría con el próximo id de su colección.
func (uc *CategoriaUseCase) Create(userID int, in dto.CrearCategoriaRequest) (*entity.Categoria, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	col := uc.coleccion(doc)
	categoria := entity.Categoria{
		ID:            entity.NextID(*col),
		Nombre:        in.Nombre,
		FechaCreacion: entity.NowISO(),
	}
	*col = append(*col, categoria)
	if err := uc.store.Save(userID, doc); err != nil {
		return nil, err
	}
	return &categoria, nil
}

// Update renombra la categoría; nil si el id no existe.
func (uc *CategoriaUseCase) Update(userID, id int, in dto.ActualizarCategoriaRequest) (*entity.Categoria, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	col := uc.coleccion(doc)
	for i := range *col {
		if (*col)[i].ID != id {
			continue
		}
		if in.Nombre != nil {
			(*col)[i].Nombre = *in.Nombre
		}
		if err := uc.store.Save(userID, doc); err != nil {
			return nil, err
		}
		c := (*col)[i]
		return &c, nil
	}
	return nil, nil
}

// Delete elimina la categoría. Falla con un error de conflicto si existen
// registros que la referencian; el rechazo es explícito, nunca silencioso.
func (uc *CategoriaUseCase) Delete(userID, id int) error {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return err
	}
	col := uc.coleccion(doc)
	idx := -1
	for i := range *col {
		if (*col)[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return domain.ErrNotFound
	}
	if uc.deVentas {
		for _, v := range doc.Ventas {
			if v.CategoriaVentaID != nil && *v.CategoriaVentaID == id {
				return domain.ErrCategoriaConVentas
			}
		}
	} else {
		for _, a := range doc.Articulos {
			if a.CategoriaID != nil && *a.CategoriaID == id {
				return domain.ErrCategoriaConArticulos
			}
		}
	}
	*col = append((*col)[:idx], (*col)[idx+1:]...)
	return uc.store.Save(userID, doc)
}
