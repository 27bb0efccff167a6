package jsonstore

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/afero"

	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
)

// MigrarPorDefecto ejecuta la migración única sobre la base por defecto
// (database.json) al arranque: crea el archivo vacío si no existe y, si
// existe, completa los campos que versiones anteriores del sistema no
// escribían. Trabaja sobre el JSON crudo porque varios campos heredados
// (categoria como texto, precio, monto) ya no existen en los tipos actuales.
func (s *Store) MigrarPorDefecto() error {
	path := s.path(0)
	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return fmt.Errorf("jsonstore: comprobar %s: %w", path, err)
	}
	if !exists {
		return s.write(path, entity.NuevoDocumento())
	}

	data, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return fmt.Errorf("jsonstore: leer %s: %w", path, err)
	}
	var db map[string]any
	if err := json.Unmarshal(data, &db); err != nil {
		return fmt.Errorf("jsonstore: parsear %s: %w", path, err)
	}

	for _, key := range []string{"clientes", "ventas", "egresos", "articulos", "categorias", "categoriasVenta"} {
		if _, ok := db[key].([]any); !ok {
			db[key] = []any{}
		}
	}

	migrarArticulos(db)
	migrarVentas(db)

	out, err := json.MarshalIndent(db, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: serializar %s: %w", path, err)
	}
	if err := afero.WriteFile(s.fs, path, out, 0o644); err != nil {
		return fmt.Errorf("jsonstore: escribir %s: %w", path, err)
	}
	return nil
}

// migrarArticulos convierte la categoría como texto en una referencia
// (creando la categoría si hace falta), renombra precio a costo/venta y
// elimina la descripción.
func migrarArticulos(db map[string]any) {
	articulos, _ := db["articulos"].([]any)
	categorias, _ := db["categorias"].([]any)
	for _, raw := range articulos {
		art, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		if nombre, ok := art["categoria"].(string); ok && nombre != "" && falsy(art["categoria_id"]) {
			var cat map[string]any
			for _, c := range categorias {
				if m, ok := c.(map[string]any); ok && m["nombre"] == nombre {
					cat = m
					break
				}
			}
			if cat == nil {
				cat = map[string]any{
					"id":             float64(maxIDCrudo(categorias) + 1),
					"nombre":         nombre,
					"fecha_creacion": entity.NowISO(),
				}
				categorias = append(categorias, cat)
			}
			art["categoria_id"] = cat["id"]
			delete(art, "categoria")
		}
		if !falsy(art["precio"]) && falsy(art["costo"]) {
			art["costo"] = art["precio"]
			art["venta"] = art["precio"]
			delete(art, "precio")
		}
		if falsy(art["marca"]) {
			art["marca"] = ""
		}
		delete(art, "descripcion")
	}
	db["categorias"] = categorias
}

// migrarVentas sintetiza items para ventas de monto único, enriquece los
// items con los datos del artículo referenciado y completa los campos que el
// modelo actual da por presentes.
func migrarVentas(db map[string]any) {
	ventas, _ := db["ventas"].([]any)
	articulos, _ := db["articulos"].([]any)
	for _, raw := range ventas {
		venta, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		items, _ := venta["items"].([]any)
		if len(items) == 0 {
			nombre, _ := venta["descripcion"].(string)
			if nombre == "" {
				nombre = "Producto"
			}
			monto := numero(venta["monto"])
			items = []any{map[string]any{
				"articulo_id": nil,
				"nombre":      nombre,
				"cantidad":    float64(1),
				"precio":      monto,
				"descuento":   float64(0),
				"impuestos":   float64(0),
				"total":       monto,
			}}
		}
		for _, rawItem := range items {
			item, ok := rawItem.(map[string]any)
			if !ok {
				continue
			}
			if id := item["articulo_id"]; !falsy(id) {
				if art := buscarPorID(articulos, numero(id)); art != nil {
					item["marca"], _ = art["marca"].(string)
					item["producto"] = art["nombre"]
					item["categoria"] = ""
					item["costo_unit"] = numero(art["costo"])
					if falsy(item["precio"]) {
						item["precio_venta"] = numero(art["venta"])
					} else {
						item["precio_venta"] = item["precio"]
					}
				}
			}
			if falsy(item["marca"]) {
				item["marca"] = ""
			}
			if falsy(item["producto"]) {
				if !falsy(item["nombre"]) {
					item["producto"] = item["nombre"]
				} else {
					item["producto"] = "Producto"
				}
			}
			if falsy(item["categoria"]) {
				item["categoria"] = ""
			}
			if falsy(item["costo_unit"]) {
				item["costo_unit"] = float64(0)
			}
			if falsy(item["precio_venta"]) {
				item["precio_venta"] = numero(item["precio"])
			}
		}
		venta["items"] = items

		if falsy(venta["fecha_emision"]) {
			if !falsy(venta["fecha_venta"]) {
				venta["fecha_emision"] = venta["fecha_venta"]
			} else {
				venta["fecha_emision"] = entity.NowISO()
			}
		}
		if falsy(venta["fecha_vencimiento"]) {
			venta["fecha_vencimiento"] = venta["fecha_emision"]
		}
		if falsy(venta["categoria_venta_id"]) {
			venta["categoria_venta_id"] = nil
		}
		if falsy(venta["descuento_porcentaje"]) {
			venta["descuento_porcentaje"] = float64(0)
		}
		if falsy(venta["descuento_monto"]) {
			venta["descuento_monto"] = float64(0)
		}
		if falsy(venta["nota_cliente"]) {
			venta["nota_cliente"] = ""
		}
		if falsy(venta["tipo"]) {
			venta["tipo"] = "venta"
		}
		if falsy(venta["moneda"]) {
			venta["moneda"] = entity.MonedaARS
		}
		if falsy(venta["metodo_pago"]) {
			venta["metodo_pago"] = entity.MetodoEfectivo
		}
		if falsy(venta["estado_pago"]) {
			if venta["estado"] == "completada" {
				venta["estado_pago"] = entity.PagoPagado
			} else {
				venta["estado_pago"] = entity.PagoPendiente
			}
		}
		if falsy(venta["pendiente"]) {
			if venta["estado_pago"] == entity.PagoPagado {
				venta["pendiente"] = float64(0)
			} else if !falsy(venta["total_venta"]) {
				venta["pendiente"] = numero(venta["total_venta"])
			} else {
				venta["pendiente"] = numero(venta["monto"])
			}
		}
		if falsy(venta["subtotal"]) {
			venta["subtotal"] = numero(venta["monto"])
		}
		if falsy(venta["total_neto"]) {
			venta["total_neto"] = numero(venta["monto"])
		}
		if falsy(venta["total_venta"]) {
			venta["total_venta"] = numero(venta["monto"])
		}
		if falsy(venta["cuenta_transferencia"]) {
			venta["cuenta_transferencia"] = ""
		}
	}
	db["ventas"] = ventas
}

// falsy replica la noción de valor "ausente" del sistema anterior:
// nil, false, cero o cadena vacía.
func falsy(v any) bool {
	switch x := v.(type) {
	case nil:
		return true
	case bool:
		return !x
	case float64:
		return x == 0
	case string:
		return x == ""
	default:
		return false
	}
}

func numero(v any) float64 {
	if f, ok := v.(float64); ok {
		return f
	}
	return 0
}

func maxIDCrudo(items []any) int {
	max := 0
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			if id := int(numero(m["id"])); id > max {
				max = id
			}
		}
	}
	return max
}

func buscarPorID(items []any, id float64) map[string]any {
	for _, it := range items {
		if m, ok := it.(map[string]any); ok && numero(m["id"]) == id {
			return m
		}
	}
	return nil
}
