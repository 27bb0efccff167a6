package entity

import "github.com/shopspring/decimal"

// Monedas soportadas. ARS es el valor por defecto en todo el sistema.
const (
	MonedaARS = "ARS"
	MonedaUSD = "USD"
)

// Articulo ítem de inventario. El stock se descuenta al crear ventas
// (con piso en cero) y se restaura al eliminarlas.
type Articulo struct {
	ID            int             `json:"id"`
	Marca         string          `json:"marca"`
	Nombre        string          `json:"nombre"`
	Costo         decimal.Decimal `json:"costo"`
	Venta         decimal.Decimal `json:"venta"` // precio de venta unitario
	Stock         int             `json:"stock"`
	CategoriaID   *int            `json:"categoria_id"` // null si no tiene categoría
	Moneda        string          `json:"moneda"`
	FechaCreacion string          `json:"fecha_creacion"`
}

func (a Articulo) GetID() int { return a.ID }
