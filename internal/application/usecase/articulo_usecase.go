package usecase

import (
	"sort"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/repository"
)

// ArticuloUseCase CRUD de artículos de inventario. El stock también se
// modifica como efecto de crear/eliminar ventas (ver application/ventas).
type ArticuloUseCase struct {
	store repository.DocumentStore
}

// NewArticuloUseCase construye el caso de uso.
func NewArticuloUseCase(store repository.DocumentStore) *ArticuloUseCase {
	return &ArticuloUseCase{store: store}
}

// List devuelve los artículos con el nombre de categoría resuelto, ordenados
// por fecha de creación descendente.
func (uc *ArticuloUseCase) List(userID int) ([]dto.ArticuloResponse, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ArticuloResponse, 0, len(doc.Articulos))
	for _, a := range doc.Articulos {
		out = append(out, dto.ArticuloResponse{
			Articulo:        a,
			CategoriaNombre: nombreCategoria(doc.Categorias, a.CategoriaID),
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return entity.ParseFecha(out[i].FechaCreacion).After(entity.ParseFecha(out[j].FechaCreacion))
	})
	return out, nil
}

// GetByID devuelve el artículo con su categoría resuelta, o nil si no existe.
func (uc *ArticuloUseCase) GetByID(userID, id int) (*dto.ArticuloResponse, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	for _, a := range doc.Articulos {
		if a.ID == id {
			return &dto.ArticuloResponse{
				Articulo:        a,
				CategoriaNombre: nombreCategoria(doc.Categorias, a.CategoriaID),
			}, nil
		}
	}
	return nil, nil
}

// Create crea un artículo. Moneda vacía queda en ARS.
func (uc *ArticuloUseCase) Create(userID int, in dto.CrearArticuloRequest) (*dto.ArticuloResponse, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	moneda := in.Moneda
	if moneda == "" {
		moneda = entity.MonedaARS
	}
	articulo := entity.Articulo{
		ID:            entity.NextID(doc.Articulos),
		Marca:         in.Marca,
		Nombre:        in.Nombre,
		Costo:         in.Costo,
		Venta:         in.Venta,
		Stock:         in.Stock,
		CategoriaID:   normalizarCategoriaID(in.CategoriaID),
		Moneda:        moneda,
		FechaCreacion: entity.NowISO(),
	}
	doc.Articulos = append(doc.Articulos, articulo)
	if err := uc.store.Save(userID, doc); err != nil {
		return nil, err
	}
	return &dto.ArticuloResponse{
		Articulo:        articulo,
		CategoriaNombre: nombreCategoria(doc.Categorias, articulo.CategoriaID),
	}, nil
}

// Update aplica una actualización parcial. Un categoria_id en 0 desvincula
// la categoría.
func (uc *ArticuloUseCase) Update(userID, id int, in dto.ActualizarArticuloRequest) (*dto.ArticuloResponse, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	for i := range doc.Articulos {
		if doc.Articulos[i].ID != id {
			continue
		}
		a := &doc.Articulos[i]
		if in.Marca != nil {
			a.Marca = *in.Marca
		}
		if in.Nombre != nil {
			a.Nombre = *in.Nombre
		}
		if in.Costo != nil {
			a.Costo = *in.Costo
		}
		if in.Venta != nil {
			a.Venta = *in.Venta
		}
		if in.Stock != nil {
			a.Stock = *in.Stock
		}
		if in.CategoriaID != nil {
			a.CategoriaID = normalizarCategoriaID(in.CategoriaID)
		}
		if in.Moneda != nil {
			a.Moneda = *in.Moneda
		}
		if a.Moneda == "" {
			a.Moneda = entity.MonedaARS
		}
		if err := uc.store.Save(userID, doc); err != nil {
			return nil, err
		}
		return &dto.ArticuloResponse{
			Articulo:        *a,
			CategoriaNombre: nombreCategoria(doc.Categorias, a.CategoriaID),
		}, nil
	}
	return nil, nil
}

// Delete elimina el artículo por id.
func (uc *ArticuloUseCase) Delete(userID, id int) error {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return err
	}
	for i := range doc.Articulos {
		if doc.Articulos[i].ID == id {
			doc.Articulos = append(doc.Articulos[:i], doc.Articulos[i+1:]...)
			return uc.store.Save(userID, doc)
		}
	}
	return domain.ErrNotFound
}

// normalizarCategoriaID trata 0 como "sin categoría" (null persistido).
func normalizarCategoriaID(id *int) *int {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}

// nombreCategoria resuelve el nombre de la categoría referenciada; cadena
// vacía si no hay referencia o la categoría ya no existe.
func nombreCategoria(categorias []entity.Categoria, id *int) string {
	if id == nil {
		return ""
	}
	for _, c := range categorias {
		if c.ID == *id {
			return c.Nombre
		}
	}
	return ""
}
