package jsonstore

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
)

func nuevoStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(afero.NewMemMapFs(), "data")
	require.NoError(t, err)
	return store
}

func TestLoadInicializaDocumentoVacio(t *testing.T) {
	store := nuevoStore(t)

	doc, err := store.Load(0)
	require.NoError(t, err)
	assert.Empty(t, doc.Clientes)
	assert.Empty(t, doc.Ventas)
	assert.Empty(t, doc.Egresos)
	assert.Empty(t, doc.Articulos)
	assert.Empty(t, doc.Categorias)
	assert.Empty(t, doc.CategoriasVenta)

	// La primera lectura persiste el documento vacío; la segunda es idéntica.
	existe, err := afero.Exists(store.fs, "data/database.json")
	require.NoError(t, err)
	assert.True(t, existe)

	otra, err := store.Load(0)
	require.NoError(t, err)
	assert.Equal(t, doc, otra)
}

func TestDocumentosPorUsuario(t *testing.T) {
	store := nuevoStore(t)

	doc, err := store.Load(3)
	require.NoError(t, err)
	doc.Clientes = append(doc.Clientes, entity.Cliente{ID: 1, Nombre: "Ana"})
	require.NoError(t, store.Save(3, doc))

	existe, err := afero.Exists(store.fs, "data/database_3.json")
	require.NoError(t, err)
	assert.True(t, existe)

	// El documento por defecto no se ve afectado.
	base, err := store.Load(0)
	require.NoError(t, err)
	assert.Empty(t, base.Clientes)

	propio, err := store.Load(3)
	require.NoError(t, err)
	require.Len(t, propio.Clientes, 1)
	assert.Equal(t, "Ana", propio.Clientes[0].Nombre)
}

func TestSaveLoadConservaMontosComoNumeros(t *testing.T) {
	store := nuevoStore(t)

	doc, err := store.Load(0)
	require.NoError(t, err)
	doc.Articulos = append(doc.Articulos, entity.Articulo{
		ID: 1, Nombre: "Widget", Costo: decimal.NewFromFloat(10.5), Venta: decimal.NewFromInt(25), Stock: 5,
	})
	require.NoError(t, store.Save(0, doc))

	data, err := afero.ReadFile(store.fs, "data/database.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"costo": 10.5`, "los montos se escriben como números JSON, no strings")

	leido, err := store.Load(0)
	require.NoError(t, err)
	require.Len(t, leido.Articulos, 1)
	assert.True(t, leido.Articulos[0].Costo.Equal(decimal.NewFromFloat(10.5)))
}

func TestLoadDocumentoCorruptoDevuelveVacio(t *testing.T) {
	store := nuevoStore(t)
	require.NoError(t, afero.WriteFile(store.fs, "data/database.json", []byte("{no es json"), 0o644))

	doc, err := store.Load(0)
	require.NoError(t, err)
	assert.Empty(t, doc.Clientes)
	assert.NotNil(t, doc.Ventas)
}

func TestLoadReponeColeccionesNull(t *testing.T) {
	store := nuevoStore(t)
	require.NoError(t, afero.WriteFile(store.fs, "data/database.json",
		[]byte(`{"clientes": null, "ventas": [], "egresos": null, "articulos": null, "categorias": null, "categoriasVenta": null}`), 0o644))

	doc, err := store.Load(0)
	require.NoError(t, err)
	assert.NotNil(t, doc.Clientes)
	assert.NotNil(t, doc.Egresos)
	assert.NotNil(t, doc.CategoriasVenta)
}

func TestNextIDPropiedades(t *testing.T) {
	assert.Equal(t, 1, entity.NextID([]entity.Cliente{}))
	assert.Equal(t, 4, entity.NextID([]entity.Cliente{{ID: 3}, {ID: 1}}))
	// Tras borrar un id intermedio el máximo sigue mandando.
	assert.Equal(t, 6, entity.NextID([]entity.Cliente{{ID: 5}, {ID: 2}}))
}
