package usecase

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
)

func TestCrearArticuloConDefaults(t *testing.T) {
	store := nuevoStore(t)
	uc := NewArticuloUseCase(store)

	articulo, err := uc.Create(0, dto.CrearArticuloRequest{
		Nombre: "Widget",
		Costo:  decimal.NewFromInt(10),
		Venta:  decimal.NewFromInt(25),
		Stock:  5,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, articulo.ID)
	assert.Equal(t, entity.MonedaARS, articulo.Moneda)
	assert.Nil(t, articulo.CategoriaID)
	assert.Equal(t, "", articulo.CategoriaNombre)
	assert.NotEmpty(t, articulo.FechaCreacion)
}

func TestArticuloResuelveNombreDeCategoria(t *testing.T) {
	store := nuevoStore(t)
	uc := NewArticuloUseCase(store)

	doc, err := store.Load(0)
	require.NoError(t, err)
	doc.Categorias = append(doc.Categorias, entity.Categoria{ID: 4, Nombre: "Ferretería"})
	require.NoError(t, store.Save(0, doc))

	catID := 4
	articulo, err := uc.Create(0, dto.CrearArticuloRequest{
		Nombre: "Widget", Costo: decimal.NewFromInt(1), Venta: decimal.NewFromInt(2), CategoriaID: &catID,
	})
	require.NoError(t, err)
	assert.Equal(t, "Ferretería", articulo.CategoriaNombre)

	leido, err := uc.GetByID(0, articulo.ID)
	require.NoError(t, err)
	require.NotNil(t, leido)
	assert.Equal(t, "Ferretería", leido.CategoriaNombre)

	// Categoría eliminada después: la referencia queda, el nombre se vacía.
	doc, err = store.Load(0)
	require.NoError(t, err)
	doc.Categorias = []entity.Categoria{}
	require.NoError(t, store.Save(0, doc))

	leido, err = uc.GetByID(0, articulo.ID)
	require.NoError(t, err)
	require.NotNil(t, leido)
	assert.Equal(t, "", leido.CategoriaNombre)
	assert.NotNil(t, leido.CategoriaID)
}

func TestActualizarArticuloDesvinculaCategoria(t *testing.T) {
	store := nuevoStore(t)
	uc := NewArticuloUseCase(store)

	doc, err := store.Load(0)
	require.NoError(t, err)
	doc.Categorias = append(doc.Categorias, entity.Categoria{ID: 1, Nombre: "Ferretería"})
	require.NoError(t, store.Save(0, doc))

	catID := 1
	articulo, err := uc.Create(0, dto.CrearArticuloRequest{
		Nombre: "Widget", Costo: decimal.NewFromInt(1), Venta: decimal.NewFromInt(2), CategoriaID: &catID,
	})
	require.NoError(t, err)

	cero := 0
	actualizado, err := uc.Update(0, articulo.ID, dto.ActualizarArticuloRequest{CategoriaID: &cero})
	require.NoError(t, err)
	require.NotNil(t, actualizado)
	assert.Nil(t, actualizado.CategoriaID, "categoria_id en 0 desvincula (null persistido)")
	assert.Equal(t, "Widget", actualizado.Nombre, "los campos no enviados se conservan")
}

func TestActualizarArticuloParcial(t *testing.T) {
	store := nuevoStore(t)
	uc := NewArticuloUseCase(store)

	articulo, err := uc.Create(0, dto.CrearArticuloRequest{
		Nombre: "Widget", Costo: decimal.NewFromInt(10), Venta: decimal.NewFromInt(25), Stock: 5,
	})
	require.NoError(t, err)

	stock := 12
	actualizado, err := uc.Update(0, articulo.ID, dto.ActualizarArticuloRequest{Stock: &stock})
	require.NoError(t, err)
	require.NotNil(t, actualizado)
	assert.Equal(t, 12, actualizado.Stock)
	assert.True(t, actualizado.Costo.Equal(decimal.NewFromInt(10)))
	assert.True(t, actualizado.Venta.Equal(decimal.NewFromInt(25)))
}

func TestEliminarArticulo(t *testing.T) {
	store := nuevoStore(t)
	uc := NewArticuloUseCase(store)

	articulo, err := uc.Create(0, dto.CrearArticuloRequest{
		Nombre: "Widget", Costo: decimal.NewFromInt(1), Venta: decimal.NewFromInt(2),
	})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(0, articulo.ID))
	assert.ErrorIs(t, uc.Delete(0, articulo.ID), domain.ErrNotFound)

	leido, err := uc.GetByID(0, articulo.ID)
	require.NoError(t, err)
	assert.Nil(t, leido)
}
