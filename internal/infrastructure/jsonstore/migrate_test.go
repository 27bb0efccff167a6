package jsonstore

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func migrar(t *testing.T, legado string) map[string]any {
	t.Helper()
	store := nuevoStore(t)
	require.NoError(t, afero.WriteFile(store.fs, "data/database.json", []byte(legado), 0o644))
	require.NoError(t, store.MigrarPorDefecto())

	data, err := afero.ReadFile(store.fs, "data/database.json")
	require.NoError(t, err)
	var db map[string]any
	require.NoError(t, json.Unmarshal(data, &db))
	return db
}

func TestMigrarCreaArchivoSiNoExiste(t *testing.T) {
	store := nuevoStore(t)
	require.NoError(t, store.MigrarPorDefecto())

	existe, err := afero.Exists(store.fs, "data/database.json")
	require.NoError(t, err)
	assert.True(t, existe)
}

func TestMigrarReponeColeccionesFaltantes(t *testing.T) {
	db := migrar(t, `{"clientes": []}`)
	for _, key := range []string{"clientes", "ventas", "egresos", "articulos", "categorias", "categoriasVenta"} {
		_, ok := db[key].([]any)
		assert.True(t, ok, "falta la colección %s", key)
	}
}

func TestMigrarArticuloConCategoriaTexto(t *testing.T) {
	db := migrar(t, `{
		"articulos": [{"id": 1, "nombre": "Taladro", "precio": 100, "categoria": "Herramientas", "descripcion": "vieja"}],
		"categorias": []
	}`)

	articulos := db["articulos"].([]any)
	art := articulos[0].(map[string]any)
	assert.Equal(t, float64(1), art["categoria_id"])
	assert.NotContains(t, art, "categoria")
	assert.NotContains(t, art, "descripcion")
	assert.NotContains(t, art, "precio")
	assert.Equal(t, float64(100), art["costo"])
	assert.Equal(t, float64(100), art["venta"])
	assert.Equal(t, "", art["marca"])

	categorias := db["categorias"].([]any)
	require.Len(t, categorias, 1)
	cat := categorias[0].(map[string]any)
	assert.Equal(t, "Herramientas", cat["nombre"])
}

func TestMigrarArticulosCompartenCategoria(t *testing.T) {
	db := migrar(t, `{
		"articulos": [
			{"id": 1, "nombre": "A", "categoria": "Varios"},
			{"id": 2, "nombre": "B", "categoria": "Varios"}
		]
	}`)

	categorias := db["categorias"].([]any)
	assert.Len(t, categorias, 1, "la misma categoría de texto no se duplica")
	a := db["articulos"].([]any)[0].(map[string]any)
	b := db["articulos"].([]any)[1].(map[string]any)
	assert.Equal(t, a["categoria_id"], b["categoria_id"])
}

func TestMigrarVentaDeMontoUnico(t *testing.T) {
	db := migrar(t, `{
		"ventas": [{"id": 1, "cliente_id": 1, "descripcion": "Arreglo persiana", "monto": 1500, "fecha_venta": "2024-05-01T10:00:00.000Z", "estado": "completada"}]
	}`)

	ventas := db["ventas"].([]any)
	venta := ventas[0].(map[string]any)

	items := venta["items"].([]any)
	require.Len(t, items, 1, "la venta heredada gana un item sintético")
	item := items[0].(map[string]any)
	assert.Equal(t, "Arreglo persiana", item["nombre"])
	assert.Equal(t, float64(1), item["cantidad"])
	assert.Equal(t, float64(1500), item["precio"])
	assert.Equal(t, float64(1500), item["total"])

	assert.Equal(t, "2024-05-01T10:00:00.000Z", venta["fecha_emision"])
	assert.Equal(t, venta["fecha_emision"], venta["fecha_vencimiento"])
	assert.Equal(t, "pagado", venta["estado_pago"], "estado completada implica pagada")
	assert.Equal(t, float64(0), venta["pendiente"])
	assert.Equal(t, float64(1500), venta["total_venta"])
	assert.Equal(t, "venta", venta["tipo"])
	assert.Equal(t, "ARS", venta["moneda"])
	assert.Equal(t, "efectivo", venta["metodo_pago"])
}

func TestMigrarEnriqueceItemsDesdeArticulo(t *testing.T) {
	db := migrar(t, `{
		"articulos": [{"id": 2, "nombre": "Widget", "marca": "Acme", "costo": 10, "venta": 25}],
		"ventas": [{"id": 1, "cliente_id": 1, "items": [{"articulo_id": 2, "cantidad": 3}], "monto": 75}]
	}`)

	venta := db["ventas"].([]any)[0].(map[string]any)
	item := venta["items"].([]any)[0].(map[string]any)
	assert.Equal(t, "Acme", item["marca"])
	assert.Equal(t, "Widget", item["producto"])
	assert.Equal(t, float64(10), item["costo_unit"])
	assert.Equal(t, float64(25), item["precio_venta"], "sin precio propio toma el precio de venta del artículo")
	assert.Equal(t, "pendiente", venta["estado_pago"])
	assert.Equal(t, float64(75), venta["pendiente"], "sin total la deuda cae al monto heredado")
}
