package usecase

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
	"github.com/FDenisienia/Gestion-ventas/internal/infrastructure/jsonstore"
)

func nuevoStore(t *testing.T) *jsonstore.Store {
	t.Helper()
	store, err := jsonstore.New(afero.NewMemMapFs(), "data")
	require.NoError(t, err)
	return store
}

func TestCategoriasSonTaxonomiasIndependientes(t *testing.T) {
	store := nuevoStore(t)
	articulosUC := NewCategoriaUseCase(store)
	ventasUC := NewCategoriaVentaUseCase(store)

	_, err := articulosUC.Create(0, dto.CrearCategoriaRequest{Nombre: "Herramientas"})
	require.NoError(t, err)
	_, err = ventasUC.Create(0, dto.CrearCategoriaRequest{Nombre: "Mostrador"})
	require.NoError(t, err)

	deArticulos, err := articulosUC.List(0)
	require.NoError(t, err)
	deVentas, err := ventasUC.List(0)
	require.NoError(t, err)

	require.Len(t, deArticulos, 1)
	require.Len(t, deVentas, 1)
	assert.Equal(t, "Herramientas", deArticulos[0].Nombre)
	assert.Equal(t, "Mostrador", deVentas[0].Nombre)
	// Cada colección arranca su numeración en 1.
	assert.Equal(t, 1, deArticulos[0].ID)
	assert.Equal(t, 1, deVentas[0].ID)
}

func TestEliminarCategoriaConArticulosFalla(t *testing.T) {
	store := nuevoStore(t)
	uc := NewCategoriaUseCase(store)

	categoria, err := uc.Create(0, dto.CrearCategoriaRequest{Nombre: "Herramientas"})
	require.NoError(t, err)

	doc, err := store.Load(0)
	require.NoError(t, err)
	doc.Articulos = append(doc.Articulos, entity.Articulo{ID: 1, Nombre: "Taladro", CategoriaID: &categoria.ID})
	require.NoError(t, store.Save(0, doc))

	assert.ErrorIs(t, uc.Delete(0, categoria.ID), domain.ErrCategoriaConArticulos)

	// Sin referencias el borrado procede y la categoría desaparece.
	doc, err = store.Load(0)
	require.NoError(t, err)
	doc.Articulos = []entity.Articulo{}
	require.NoError(t, store.Save(0, doc))

	require.NoError(t, uc.Delete(0, categoria.ID))
	lista, err := uc.List(0)
	require.NoError(t, err)
	assert.Empty(t, lista)
}

func TestEliminarCategoriaVentaConVentasFalla(t *testing.T) {
	store := nuevoStore(t)
	uc := NewCategoriaVentaUseCase(store)

	categoria, err := uc.Create(0, dto.CrearCategoriaRequest{Nombre: "Mostrador"})
	require.NoError(t, err)

	doc, err := store.Load(0)
	require.NoError(t, err)
	doc.Ventas = append(doc.Ventas, entity.Venta{ID: 1, ClienteID: 1, CategoriaVentaID: &categoria.ID})
	require.NoError(t, store.Save(0, doc))

	assert.ErrorIs(t, uc.Delete(0, categoria.ID), domain.ErrCategoriaConVentas)
}

func TestEliminarCategoriaInexistente(t *testing.T) {
	store := nuevoStore(t)
	uc := NewCategoriaUseCase(store)
	assert.ErrorIs(t, uc.Delete(0, 99), domain.ErrNotFound)
}

func TestRenombrarCategoria(t *testing.T) {
	store := nuevoStore(t)
	uc := NewCategoriaUseCase(store)

	categoria, err := uc.Create(0, dto.CrearCategoriaRequest{Nombre: "Herramientas"})
	require.NoError(t, err)

	nombre := "Ferretería"
	actualizada, err := uc.Update(0, categoria.ID, dto.ActualizarCategoriaRequest{Nombre: &nombre})
	require.NoError(t, err)
	require.NotNil(t, actualizada)
	assert.Equal(t, "Ferretería", actualizada.Nombre)
	assert.Equal(t, categoria.FechaCreacion, actualizada.FechaCreacion)
}
