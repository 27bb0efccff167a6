package dto

import (
	"github.com/shopspring/decimal"

	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
)

// CrearArticuloRequest alta de artículo.
type CrearArticuloRequest struct {
	Marca       string          `json:"marca"`
	Nombre      string          `json:"nombre"`
	Costo       decimal.Decimal `json:"costo"`
	Venta       decimal.Decimal `json:"venta"`
	Stock       int             `json:"stock"`
	CategoriaID *int            `json:"categoria_id"`
	Moneda      string          `json:"moneda"`
}

// ActualizarArticuloRequest actualización parcial de artículo. Un
// categoria_id presente con valor 0 desvincula la categoría (null), igual
// que en el sistema anterior.
type ActualizarArticuloRequest struct {
	Marca       *string          `json:"marca"`
	Nombre      *string          `json:"nombre"`
	Costo       *decimal.Decimal `json:"costo"`
	Venta       *decimal.Decimal `json:"venta"`
	Stock       *int             `json:"stock"`
	CategoriaID *int             `json:"categoria_id"`
	Moneda      *string          `json:"moneda"`
}

// ArticuloResponse artículo con el nombre de su categoría resuelto en
// lectura (nunca persistido).
type ArticuloResponse struct {
	entity.Articulo
	CategoriaNombre string `json:"categoria_nombre"`
}
