// Package entity define los registros persistidos en el documento JSON por
// usuario. Los nombres de campo JSON se conservan exactamente como los escribe
// la base heredada (database_<id>.json); cambiarlos rompe la compatibilidad.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// Los montos del documento heredado son números JSON planos, no strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Documento es el documento completo de un usuario: las seis colecciones.
type Documento struct {
	Clientes        []Cliente   `json:"clientes"`
	Ventas          []Venta     `json:"ventas"`
	Egresos         []Egreso    `json:"egresos"`
	Articulos       []Articulo  `json:"articulos"`
	Categorias      []Categoria `json:"categorias"`
	CategoriasVenta []Categoria `json:"categoriasVenta"`
}

// NuevoDocumento devuelve un documento con las seis colecciones vacías
// (arrays vacíos, nunca null, para conservar la forma del JSON heredado).
func NuevoDocumento() *Documento {
	return &Documento{
		Clientes:        []Cliente{},
		Ventas:          []Venta{},
		Egresos:         []Egreso{},
		Articulos:       []Articulo{},
		Categorias:      []Categoria{},
		CategoriasVenta: []Categoria{},
	}
}

// NextID calcula el próximo id de una colección: max(ids)+1, o 1 si está
// vacía. Los ids nunca se reutilizan tras un borrado porque el máximo solo
// baja si se elimina justamente el registro más nuevo.
func NextID[T interface{ GetID() int }](items []T) int {
	max := 0
	for _, it := range items {
		if it.GetID() > max {
			max = it.GetID()
		}
	}
	return max + 1
}

// NowISO devuelve la hora actual en el formato que escribía el sistema
// anterior (equivalente a Date.toISOString()).
func NowISO() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}

// ParseFecha interpreta las fechas tal como vienen en los documentos: ISO-8601
// completo o solo fecha. Devuelve el cero de time.Time si no se puede parsear,
// de modo que los registros sin fecha queden al final de los listados.
func ParseFecha(s string) time.Time {
	for _, layout := range []string{
		"2006-01-02T15:04:05.000Z",
		time.RFC3339Nano,
		time.RFC3339,
		"2006-01-02",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
