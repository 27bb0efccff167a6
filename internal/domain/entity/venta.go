package entity

import "github.com/shopspring/decimal"

// Métodos de pago y estados de pago de una venta.
const (
	MetodoEfectivo      = "efectivo"
	MetodoTransferencia = "transferencia"
	MetodoTarjeta       = "tarjeta"

	PagoPagado    = "pagado"
	PagoParcial   = "parcial"
	PagoPendiente = "pendiente"
)

// ItemVenta línea de una venta. Es una foto del artículo al momento de la
// venta: precio, costo y marca quedan congelados aunque el artículo cambie.
type ItemVenta struct {
	ArticuloID  *int            `json:"articulo_id"` // null para ítems manuales
	Nombre      string          `json:"nombre"`
	Marca       string          `json:"marca"`
	Producto    string          `json:"producto"`
	Categoria   string          `json:"categoria"`
	Cantidad    int             `json:"cantidad"`
	Precio      decimal.Decimal `json:"precio"`
	CostoUnit   decimal.Decimal `json:"costo_unit"`
	PrecioVenta decimal.Decimal `json:"precio_venta"`
	Descuento   decimal.Decimal `json:"descuento"`
	Impuestos   decimal.Decimal `json:"impuestos"`
	Total       decimal.Decimal `json:"total"`
}

// Venta registro de venta. Los totales son una foto aportada por el llamador:
// editarlos no recalcula nada a partir de los items (contrato del sistema
// anterior; el cliente de la API es dueño de los valores derivados).
//
// EstadoPago vacío y Pendiente nil significan "sin valor explícito"; el lado
// de lectura deriva ambos a partir de la relación pendiente/total.
type Venta struct {
	ID                   int              `json:"id"`
	ClienteID            int              `json:"cliente_id"`
	Items                []ItemVenta      `json:"items"`
	CategoriaVentaID     *int             `json:"categoria_venta_id"`
	FechaEmision         string           `json:"fecha_emision"`
	FechaVencimiento     string           `json:"fecha_vencimiento"`
	DescuentoPorcentaje  decimal.Decimal  `json:"descuento_porcentaje"`
	DescuentoMonto       decimal.Decimal  `json:"descuento_monto"`
	Subtotal             decimal.Decimal  `json:"subtotal"`
	TotalNeto            decimal.Decimal  `json:"total_neto"`
	TotalVenta           decimal.Decimal  `json:"total_venta"`
	NotaCliente          string           `json:"nota_cliente"`
	Tipo                 string           `json:"tipo"`
	Estado               string           `json:"estado"`
	Moneda               string           `json:"moneda"`
	MetodoPago           string           `json:"metodo_pago"`
	CuentaTransferencia  string           `json:"cuenta_transferencia"`
	EstadoPago           string           `json:"estado_pago"`
	Pendiente            *decimal.Decimal `json:"pendiente"`
	FechaVenta           string           `json:"fecha_venta"`
	// Campos heredados, se siguen escribiendo por compatibilidad.
	Descripcion string          `json:"descripcion"`
	Monto       decimal.Decimal `json:"monto"`
}

func (v Venta) GetID() int { return v.ID }

// FechaEfectiva es la fecha usada para ordenar listados: fecha_emision con
// fallback a fecha_venta.
func (v Venta) FechaEfectiva() string {
	if v.FechaEmision != "" {
		return v.FechaEmision
	}
	return v.FechaVenta
}

// PendienteEfectivo devuelve el saldo pendiente: el valor almacenado si
// existe; si no, 0 para ventas pagadas y el total para el resto.
func (v Venta) PendienteEfectivo() decimal.Decimal {
	if v.Pendiente != nil {
		return *v.Pendiente
	}
	if v.EstadoPago == PagoPagado {
		return decimal.Zero
	}
	return v.TotalVenta
}

// EstadoPagoEfectivo devuelve el estado de pago almacenado si existe; si no,
// lo deriva del saldo: 0 → pagado, entre 0 y el total → parcial, resto →
// pendiente.
func (v Venta) EstadoPagoEfectivo() string {
	if v.EstadoPago != "" {
		return v.EstadoPago
	}
	pendiente := v.PendienteEfectivo()
	switch {
	case pendiente.IsZero():
		return PagoPagado
	case pendiente.IsPositive() && pendiente.LessThan(v.TotalVenta):
		return PagoParcial
	default:
		return PagoPendiente
	}
}
