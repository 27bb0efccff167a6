package dto

import (
	"github.com/shopspring/decimal"

	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
)

// ItemVentaRequest línea de venta tal como la envía el llamador. Los campos
// numéricos en cero se tratan como ausentes y caen al valor del artículo
// referenciado (o a cero), igual que hacía el sistema anterior.
type ItemVentaRequest struct {
	ArticuloID  *int            `json:"articulo_id"`
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

// CrearVentaRequest alta de venta. Los totales NO se derivan de los items:
// el llamador es dueño de subtotal/total_neto/total_venta y solo se aplican
// valores por defecto a lo ausente.
type CrearVentaRequest struct {
	ClienteID           int                `json:"cliente_id"`
	Items               []ItemVentaRequest `json:"items"`
	CategoriaVentaID    *int               `json:"categoria_venta_id"`
	FechaEmision        string             `json:"fecha_emision"`
	FechaVencimiento    string             `json:"fecha_vencimiento"`
	DescuentoPorcentaje decimal.Decimal    `json:"descuento_porcentaje"`
	DescuentoMonto      decimal.Decimal    `json:"descuento_monto"`
	Subtotal            decimal.Decimal    `json:"subtotal"`
	TotalNeto           decimal.Decimal    `json:"total_neto"`
	TotalVenta          decimal.Decimal    `json:"total_venta"`
	NotaCliente         string             `json:"nota_cliente"`
	Tipo                string             `json:"tipo"`
	Estado              string             `json:"estado"`
	Moneda              string             `json:"moneda"`
	MetodoPago          string             `json:"metodo_pago"`
	CuentaTransferencia string             `json:"cuenta_transferencia"`
	EstadoPago          string             `json:"estado_pago"`
	Pendiente           *decimal.Decimal   `json:"pendiente"`
	Descripcion         string             `json:"descripcion"`
}

// ActualizarVentaRequest actualización parcial de venta: coalesce campo a
// campo contra lo almacenado. No recalcula totales ni toca stock aunque se
// reemplacen los items; el llamador debe enviar valores consistentes.
type ActualizarVentaRequest struct {
	Items               []ItemVentaRequest `json:"items"`
	CategoriaVentaID    *int               `json:"categoria_venta_id"`
	FechaEmision        *string            `json:"fecha_emision"`
	FechaVencimiento    *string            `json:"fecha_vencimiento"`
	DescuentoPorcentaje *decimal.Decimal   `json:"descuento_porcentaje"`
	DescuentoMonto      *decimal.Decimal   `json:"descuento_monto"`
	Subtotal            *decimal.Decimal   `json:"subtotal"`
	TotalNeto           *decimal.Decimal   `json:"total_neto"`
	TotalVenta          *decimal.Decimal   `json:"total_venta"`
	NotaCliente         *string            `json:"nota_cliente"`
	Tipo                *string            `json:"tipo"`
	Estado              *string            `json:"estado"`
	EstadoPago          *string            `json:"estado_pago"`
	Pendiente           *decimal.Decimal   `json:"pendiente"`
	Moneda              *string            `json:"moneda"`
	MetodoPago          *string            `json:"metodo_pago"`
	CuentaTransferencia *string            `json:"cuenta_transferencia"`
}

// ItemDetalle línea lista para mostrar: nombre/marca/precios resueltos contra
// el artículo referenciado y moneda histórica del artículo.
type ItemDetalle struct {
	Nombre    string          `json:"nombre"`
	Marca     string          `json:"marca"`
	Cantidad  int             `json:"cantidad"`
	Precio    decimal.Decimal `json:"precio"`
	CostoUnit decimal.Decimal `json:"costo_unit"`
	Categoria string          `json:"categoria"`
	Moneda    string          `json:"moneda"`
}

// VentaResponse venta con los campos de lectura denormalizados. Nada de esto
// se persiste: cliente_nombre, items_detalle y compañía se recalculan en cada
// lectura contra el estado actual de las otras colecciones.
type VentaResponse struct {
	ID                   int                `json:"id"`
	VentaID              int                `json:"venta_id"`
	ClienteID            int                `json:"cliente_id"`
	ClienteNombre        string             `json:"cliente_nombre"`
	ClienteDNI           string             `json:"cliente_dni"`
	Items                []entity.ItemVenta `json:"items"`
	ItemsDetalle         []ItemDetalle      `json:"items_detalle"`
	CategoriaVentaID     *int               `json:"categoria_venta_id"`
	CategoriaVentaNombre string             `json:"categoria_venta_nombre"`
	FechaEmision         string             `json:"fecha_emision"`
	FechaVencimiento     string             `json:"fecha_vencimiento"`
	DescuentoPorcentaje  decimal.Decimal    `json:"descuento_porcentaje"`
	DescuentoMonto       decimal.Decimal    `json:"descuento_monto"`
	Subtotal             decimal.Decimal    `json:"subtotal"`
	TotalNeto            decimal.Decimal    `json:"total_neto"`
	TotalVenta           decimal.Decimal    `json:"total_venta"`
	NotaCliente          string             `json:"nota_cliente"`
	Tipo                 string             `json:"tipo"`
	Estado               string             `json:"estado"`
	Moneda               string             `json:"moneda"`
	MetodoPago           string             `json:"metodo_pago"`
	CuentaTransferencia  string             `json:"cuenta_transferencia"`
	EstadoPago           string             `json:"estado_pago"`
	Pendiente            decimal.Decimal    `json:"pendiente"`
	Fecha                string             `json:"fecha"`
	FechaVenta           string             `json:"fecha_venta"`
}
