// Package ventas implementa el libro de ventas: creación con descuento de
// stock, lecturas denormalizadas, actualización parcial y eliminación con
// restauración de stock. Crear o eliminar una venta muta las colecciones de
// ventas y artículos dentro de un único guardado del documento; nunca se
// aplica a medias.
package ventas

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/repository"
)

// UseCase casos de uso del libro de ventas.
type UseCase struct {
	store repository.DocumentStore
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.DocumentStore) *UseCase {
	return &UseCase{store: store}
}

// List devuelve todas las ventas denormalizadas, ordenadas por fecha efectiva
// (emisión con fallback a fecha de venta) descendente.
func (uc *UseCase) List(userID int) ([]dto.VentaResponse, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	return ordenar(denormalizarTodas(doc, doc.Ventas)), nil
}

// ListByCliente devuelve las ventas de un cliente, denormalizadas y ordenadas
// por fecha efectiva descendente. Un cliente sin ventas produce una lista
// vacía, no un error.
func (uc *UseCase) ListByCliente(userID, clienteID int) ([]dto.VentaResponse, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	propias := make([]entity.Venta, 0)
	for _, v := range doc.Ventas {
		if v.ClienteID == clienteID {
			propias = append(propias, v)
		}
	}
	return ordenar(denormalizarTodas(doc, propias)), nil
}

// GetByID devuelve la venta denormalizada o nil si no existe.
func (uc *UseCase) GetByID(userID, id int) (*dto.VentaResponse, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	for _, v := range doc.Ventas {
		if v.ID == id {
			r := denormalizar(doc, v)
			return &r, nil
		}
	}
	return nil, nil
}

// Create crea una venta. El cliente debe existir; cada item que referencia un
// artículo descuenta su stock (con piso en cero: el exceso de demanda se
// absorbe, no se rechaza) y completa costo/marca/nombre desde el artículo
// cuando el llamador no los envía. Los totales se toman del llamador tal
// cual, solo con defaults para lo ausente.
func (uc *UseCase) Create(userID int, in dto.CrearVentaRequest) (*dto.VentaResponse, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	if buscarCliente(doc, in.ClienteID) == nil {
		return nil, domain.ErrClienteNotFound
	}

	items := make([]entity.ItemVenta, 0, len(in.Items))
	nombres := make([]string, 0, len(in.Items))
	for _, it := range in.Items {
		nombres = append(nombres, it.Nombre)
		articulo := buscarArticuloMutable(doc, it.ArticuloID)

		cantidad := it.Cantidad
		if cantidad <= 0 {
			cantidad = 1
		}
		if articulo != nil {
			// Descuento de stock con piso en cero.
			articulo.Stock -= cantidad
			if articulo.Stock < 0 {
				articulo.Stock = 0
			}
		}

		item := entity.ItemVenta{
			ArticuloID: normalizarRef(it.ArticuloID),
			Categoria:  it.Categoria,
			Cantidad:   cantidad,
			Descuento:  it.Descuento,
			Impuestos:  it.Impuestos,
		}
		if articulo != nil {
			item.Nombre = primeraCadena(it.Nombre, articulo.Nombre)
			item.Marca = primeraCadena(it.Marca, articulo.Marca)
			item.Producto = primeraCadena(it.Producto, it.Nombre, articulo.Nombre)
			item.Precio = primerDecimal(it.Precio, articulo.Venta)
			item.CostoUnit = primerDecimal(it.CostoUnit, articulo.Costo)
			item.PrecioVenta = primerDecimal(it.PrecioVenta, it.Precio, articulo.Venta)
		} else {
			item.Nombre = primeraCadena(it.Nombre, "Producto")
			item.Marca = it.Marca
			item.Producto = primeraCadena(it.Producto, it.Nombre, "Producto")
			item.Precio = it.Precio
			item.CostoUnit = it.CostoUnit
			item.PrecioVenta = primerDecimal(it.PrecioVenta, it.Precio)
		}
		item.Total = primerDecimal(it.Total, item.Precio.Mul(decimal.NewFromInt(int64(cantidad))))
		items = append(items, item)
	}

	ahora := entity.NowISO()
	fechaEmision := primeraCadena(in.FechaEmision, ahora)
	estadoPago := in.EstadoPago
	if estadoPago == "" {
		if in.Estado == "completada" {
			estadoPago = entity.PagoPagado
		} else {
			estadoPago = entity.PagoPendiente
		}
	}
	// El fallback del saldo mira el estado_pago que envió el llamador, no el
	// derivado: así lo hacía el sistema anterior.
	pendiente := decimal.Zero
	if in.Pendiente != nil {
		pendiente = *in.Pendiente
	} else if in.EstadoPago != entity.PagoPagado {
		pendiente = in.TotalVenta
	}

	venta := entity.Venta{
		ID:                  entity.NextID(doc.Ventas),
		ClienteID:           in.ClienteID,
		Items:               items,
		CategoriaVentaID:    normalizarRef(in.CategoriaVentaID),
		FechaEmision:        fechaEmision,
		FechaVencimiento:    primeraCadena(in.FechaVencimiento, in.FechaEmision, ahora),
		DescuentoPorcentaje: in.DescuentoPorcentaje,
		DescuentoMonto:      in.DescuentoMonto,
		Subtotal:            in.Subtotal,
		TotalNeto:           in.TotalNeto,
		TotalVenta:          in.TotalVenta,
		NotaCliente:         in.NotaCliente,
		Tipo:                primeraCadena(in.Tipo, "venta"),
		Estado:              primeraCadena(in.Estado, "pendiente"),
		Moneda:              primeraCadena(in.Moneda, entity.MonedaARS),
		MetodoPago:          primeraCadena(in.MetodoPago, entity.MetodoEfectivo),
		CuentaTransferencia: in.CuentaTransferencia,
		EstadoPago:          estadoPago,
		Pendiente:           &pendiente,
		FechaVenta:          ahora,
		Descripcion:         strings.Join(nombres, ", "),
		Monto:               in.TotalVenta,
	}
	doc.Ventas = append(doc.Ventas, venta)
	if err := uc.store.Save(userID, doc); err != nil {
		return nil, err
	}
	r := denormalizar(doc, venta)
	return &r, nil
}

// Update aplica una actualización parcial campo a campo. No recalcula totales
// ni ajusta stock aunque cambien los items: el llamador es dueño de los
// valores derivados. Devuelve nil si el id no existe.
func (uc *UseCase) Update(userID, id int, in dto.ActualizarVentaRequest) (*dto.VentaResponse, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	for i := range doc.Ventas {
		if doc.Ventas[i].ID != id {
			continue
		}
		v := &doc.Ventas[i]
		if in.Items != nil {
			items := make([]entity.ItemVenta, 0, len(in.Items))
			for _, it := range in.Items {
				items = append(items, entity.ItemVenta{
					ArticuloID:  normalizarRef(it.ArticuloID),
					Nombre:      it.Nombre,
					Marca:       it.Marca,
					Producto:    it.Producto,
					Categoria:   it.Categoria,
					Cantidad:    it.Cantidad,
					Precio:      it.Precio,
					CostoUnit:   it.CostoUnit,
					PrecioVenta: it.PrecioVenta,
					Descuento:   it.Descuento,
					Impuestos:   it.Impuestos,
					Total:       it.Total,
				})
			}
			v.Items = items
		}
		if in.CategoriaVentaID != nil {
			v.CategoriaVentaID = normalizarRef(in.CategoriaVentaID)
		}
		if in.FechaEmision != nil {
			v.FechaEmision = *in.FechaEmision
		}
		if in.FechaVencimiento != nil {
			v.FechaVencimiento = *in.FechaVencimiento
		}
		if in.DescuentoPorcentaje != nil {
			v.DescuentoPorcentaje = *in.DescuentoPorcentaje
		}
		if in.DescuentoMonto != nil {
			v.DescuentoMonto = *in.DescuentoMonto
		}
		if in.Subtotal != nil {
			v.Subtotal = *in.Subtotal
		}
		if in.TotalNeto != nil {
			v.TotalNeto = *in.TotalNeto
		}
		if in.TotalVenta != nil {
			v.TotalVenta = *in.TotalVenta
			v.Monto = *in.TotalVenta
		}
		if in.NotaCliente != nil {
			v.NotaCliente = *in.NotaCliente
		}
		if in.Tipo != nil {
			v.Tipo = *in.Tipo
		}
		if in.Estado != nil {
			v.Estado = *in.Estado
		}
		if in.EstadoPago != nil {
			v.EstadoPago = *in.EstadoPago
		}
		if in.Pendiente != nil {
			p := *in.Pendiente
			v.Pendiente = &p
		}
		if in.Moneda != nil {
			v.Moneda = *in.Moneda
		}
		if in.MetodoPago != nil {
			v.MetodoPago = *in.MetodoPago
		}
		if in.CuentaTransferencia != nil {
			v.CuentaTransferencia = *in.CuentaTransferencia
		}
		if err := uc.store.Save(userID, doc); err != nil {
			return nil, err
		}
		r := denormalizar(doc, *v)
		return &r, nil
	}
	return nil, nil
}

// Delete elimina la venta y devuelve el stock de cada item a su artículo.
// La restauración es incondicional: se suma la cantidad registrada en el item
// aunque un update intermedio haya cambiado los items sin tocar stock, tal
// como lo hacía el sistema anterior.
func (uc *UseCase) Delete(userID, id int) error {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return err
	}
	for i := range doc.Ventas {
		if doc.Ventas[i].ID != id {
			continue
		}
		for _, item := range doc.Ventas[i].Items {
			articulo := buscarArticuloMutable(doc, item.ArticuloID)
			if articulo == nil {
				continue
			}
			cantidad := item.Cantidad
			if cantidad <= 0 {
				cantidad = 1
			}
			articulo.Stock += cantidad
		}
		doc.Ventas = append(doc.Ventas[:i], doc.Ventas[i+1:]...)
		return uc.store.Save(userID, doc)
	}
	return domain.ErrNotFound
}

// ── Denormalización de lectura ────────────────────────────────────────────────

func denormalizarTodas(doc *entity.Documento, ventas []entity.Venta) []dto.VentaResponse {
	out := make([]dto.VentaResponse, 0, len(ventas))
	for _, v := range ventas {
		out = append(out, denormalizar(doc, v))
	}
	return out
}

// denormalizar arma la vista de lectura de una venta contra el estado actual
// de las otras colecciones. No muta nada almacenado.
func denormalizar(doc *entity.Documento, v entity.Venta) dto.VentaResponse {
	clienteNombre := "Cliente eliminado"
	clienteDNI := ""
	if c := buscarCliente(doc, v.ClienteID); c != nil {
		clienteNombre = c.Nombre
		clienteDNI = c.DNI
	}

	detalle := make([]dto.ItemDetalle, 0, len(v.Items))
	for _, item := range v.Items {
		articulo := buscarArticulo(doc, item.ArticuloID)
		d := dto.ItemDetalle{
			Nombre:    primeraCadena(item.Producto, item.Nombre, "Producto"),
			Cantidad:  item.Cantidad,
			Precio:    primerDecimal(item.PrecioVenta, item.Precio),
			CostoUnit: item.CostoUnit,
			Categoria: item.Categoria,
		}
		if d.Cantidad <= 0 {
			d.Cantidad = 1
		}
		if articulo != nil {
			d.Marca = primeraCadena(item.Marca, articulo.Marca)
			d.CostoUnit = primerDecimal(item.CostoUnit, articulo.Costo)
			if d.Categoria == "" && articulo.CategoriaID != nil {
				d.Categoria = nombreCategoria(doc.Categorias, *articulo.CategoriaID)
			}
			// Moneda histórica: la del artículo manda sobre la de la venta.
			d.Moneda = primeraCadena(articulo.Moneda, entity.MonedaARS)
		} else {
			d.Marca = item.Marca
			d.Moneda = primeraCadena(v.Moneda, entity.MonedaARS)
		}
		detalle = append(detalle, d)
	}

	return dto.VentaResponse{
		ID:                   v.ID,
		VentaID:              v.ID,
		ClienteID:            v.ClienteID,
		ClienteNombre:        clienteNombre,
		ClienteDNI:           clienteDNI,
		Items:                v.Items,
		ItemsDetalle:         detalle,
		CategoriaVentaID:     v.CategoriaVentaID,
		CategoriaVentaNombre: nombreCategoriaRef(doc.CategoriasVenta, v.CategoriaVentaID),
		FechaEmision:         v.FechaEmision,
		FechaVencimiento:     v.FechaVencimiento,
		DescuentoPorcentaje:  v.DescuentoPorcentaje,
		DescuentoMonto:       v.DescuentoMonto,
		Subtotal:             v.Subtotal,
		TotalNeto:            v.TotalNeto,
		TotalVenta:           v.TotalVenta,
		NotaCliente:          v.NotaCliente,
		Tipo:                 v.Tipo,
		Estado:               v.Estado,
		Moneda:               primeraCadena(v.Moneda, entity.MonedaARS),
		MetodoPago:           primeraCadena(v.MetodoPago, entity.MetodoEfectivo),
		CuentaTransferencia:  v.CuentaTransferencia,
		EstadoPago:           v.EstadoPagoEfectivo(),
		Pendiente:            v.PendienteEfectivo(),
		Fecha:                v.FechaEfectiva(),
		FechaVenta:           v.FechaVenta,
	}
}

func ordenar(ventas []dto.VentaResponse) []dto.VentaResponse {
	sort.SliceStable(ventas, func(i, j int) bool {
		return entity.ParseFecha(ventas[i].Fecha).After(entity.ParseFecha(ventas[j].Fecha))
	})
	return ventas
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func buscarCliente(doc *entity.Documento, id int) *entity.Cliente {
	for i := range doc.Clientes {
		if doc.Clientes[i].ID == id {
			return &doc.Clientes[i]
		}
	}
	return nil
}

// buscarArticuloMutable devuelve un puntero al artículo dentro del documento
// para poder ajustar stock. Referencia nil o 0 significa item manual.
func buscarArticuloMutable(doc *entity.Documento, id *int) *entity.Articulo {
	if id == nil || *id == 0 {
		return nil
	}
	for i := range doc.Articulos {
		if doc.Articulos[i].ID == *id {
			return &doc.Articulos[i]
		}
	}
	return nil
}

func buscarArticulo(doc *entity.Documento, id *int) *entity.Articulo {
	return buscarArticuloMutable(doc, id)
}

func nombreCategoria(categorias []entity.Categoria, id int) string {
	for _, c := range categorias {
		if c.ID == id {
			return c.Nombre
		}
	}
	return ""
}

func nombreCategoriaRef(categorias []entity.Categoria, id *int) string {
	if id == nil {
		return ""
	}
	return nombreCategoria(categorias, *id)
}

func normalizarRef(id *int) *int {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}

// primeraCadena devuelve la primera cadena no vacía.
func primeraCadena(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// primerDecimal devuelve el primer valor distinto de cero, replicando el
// encadenado "|| " del sistema anterior (cero cuenta como ausente).
func primerDecimal(vals ...decimal.Decimal) decimal.Decimal {
	for _, v := range vals {
		if !v.IsZero() {
			return v
		}
	}
	return decimal.Zero
}
