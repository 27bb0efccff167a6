// Package informes agrega ventas y egresos en los reportes de tesorería y la
// serie mensual de informes. Los cálculos replican a los que hacía el cliente
// contra los listados crudos: ganancia por item en la moneda del artículo,
// saldos de caja con piso en cero.
package informes

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/repository"
)

// MesesResumenPorDefecto ventana del resumen mensual cuando el llamador no
// pide otra.
const MesesResumenPorDefecto = 6

// UseCase reportes de tesorería y resumen mensual.
type UseCase struct {
	store repository.DocumentStore
	ahora func() time.Time
}

// NewUseCase construye el caso de uso.
func NewUseCase(store repository.DocumentStore) *UseCase {
	return &UseCase{store: store, ahora: time.Now}
}

// Tesoreria calcula la posición de caja: ingresos de ventas pagadas por
// método de pago y por cuenta bancaria, menos egresos, más ganancia
// bruta/neta por moneda. Los saldos de efectivo y de cada cuenta nunca bajan
// de cero; los totales de ganancia neta sí pueden ser negativos.
func (uc *UseCase) Tesoreria(userID int) (*dto.TesoreriaResponse, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}

	r := &dto.TesoreriaResponse{Cuentas: map[string]*dto.CuentaTesoreria{}}

	for _, v := range doc.Ventas {
		if v.EstadoPagoEfectivo() != entity.PagoPagado {
			continue
		}
		moneda := monedaOArs(v.Moneda)
		switch metodoOEfectivo(v.MetodoPago) {
		case entity.MetodoEfectivo:
			sumar(&r.Efectivo, moneda, v.TotalVenta)
		case entity.MetodoTransferencia:
			sumar(&r.Transferencia, moneda, v.TotalVenta)
			cuenta := v.CuentaTransferencia
			if cuenta == "" {
				cuenta = "Sin cuenta especificada"
			}
			sumar(&uc.cuenta(r, cuenta).Total, moneda, v.TotalVenta)
		}
	}

	for _, v := range doc.Ventas {
		for _, item := range v.Items {
			moneda, ganancia := gananciaItem(doc, v, item)
			sumar(&r.GananciaBruta, moneda, ganancia)
		}
	}

	for _, e := range doc.Egresos {
		moneda := monedaOArs(e.Moneda)
		sumar(&r.Egresos, moneda, e.Monto)
		switch metodoOEfectivo(e.MetodoPago) {
		case entity.MetodoEfectivo:
			restarConPiso(&r.Efectivo, moneda, e.Monto)
		case entity.MetodoTransferencia:
			if e.CuentaTransferencia == "" {
				continue
			}
			cuenta := uc.cuenta(r, e.CuentaTransferencia)
			sumar(&cuenta.Egresos, moneda, e.Monto)
			restarConPiso(&cuenta.Total, moneda, e.Monto)
			restarConPiso(&r.Transferencia, moneda, e.Monto)
		}
	}

	r.GananciaNeta = dto.TotalesMoneda{
		ARS: r.GananciaBruta.ARS.Sub(r.Egresos.ARS),
		USD: r.GananciaBruta.USD.Sub(r.Egresos.USD),
	}
	return r, nil
}

// Resumen devuelve la serie mensual de los últimos meses: cantidad de ventas,
// ingresos, ganancia y egresos por moneda, del mes más antiguo al actual.
// Registros fuera de la ventana se descartan.
func (uc *UseCase) Resumen(userID, meses int) (*dto.ResumenResponse, error) {
	if meses <= 0 {
		meses = MesesResumenPorDefecto
	}
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}

	ahora := uc.ahora().UTC()
	inicio := time.Date(ahora.Year(), ahora.Month(), 1, 0, 0, 0, 0, time.UTC)
	porMes := make(map[string]*dto.ResumenMes, meses)
	serie := make([]*dto.ResumenMes, 0, meses)
	for i := meses - 1; i >= 0; i-- {
		clave := inicio.AddDate(0, -i, 0).Format("2006-01")
		m := &dto.ResumenMes{Mes: clave}
		porMes[clave] = m
		serie = append(serie, m)
	}

	for _, v := range doc.Ventas {
		m, ok := porMes[claveMes(v.FechaEfectiva())]
		if !ok {
			continue
		}
		m.CantidadVentas++
		sumar(&m.Ingresos, monedaOArs(v.Moneda), v.TotalVenta)
		for _, item := range v.Items {
			moneda, ganancia := gananciaItem(doc, v, item)
			sumar(&m.Ganancia, moneda, ganancia)
		}
	}

	for _, e := range doc.Egresos {
		fecha := e.Fecha
		if fecha == "" {
			fecha = e.FechaCreacion
		}
		if m, ok := porMes[claveMes(fecha)]; ok {
			sumar(&m.Egresos, monedaOArs(e.Moneda), e.Monto)
		}
	}

	out := &dto.ResumenResponse{Meses: make([]dto.ResumenMes, 0, len(serie))}
	for _, m := range serie {
		out.Meses = append(out.Meses, *m)
	}
	return out, nil
}

func (uc *UseCase) cuenta(r *dto.TesoreriaResponse, nombre string) *dto.CuentaTesoreria {
	if c, ok := r.Cuentas[nombre]; ok {
		return c
	}
	c := &dto.CuentaTesoreria{}
	r.Cuentas[nombre] = c
	return c
}

// gananciaItem calcula (precio − costo) × cantidad y la moneda del item: la
// del artículo referenciado si todavía existe, si no la de la venta.
func gananciaItem(doc *entity.Documento, v entity.Venta, item entity.ItemVenta) (string, decimal.Decimal) {
	precio := item.Precio
	if precio.IsZero() {
		precio = item.PrecioVenta
	}
	costo := item.CostoUnit
	cantidad := item.Cantidad
	if cantidad <= 0 {
		cantidad = 1
	}

	moneda := ""
	if item.ArticuloID != nil && *item.ArticuloID != 0 {
		for i := range doc.Articulos {
			if doc.Articulos[i].ID == *item.ArticuloID {
				if costo.IsZero() {
					costo = doc.Articulos[i].Costo
				}
				moneda = doc.Articulos[i].Moneda
				break
			}
		}
	}
	if moneda == "" {
		moneda = v.Moneda
	}
	ganancia := precio.Sub(costo).Mul(decimal.NewFromInt(int64(cantidad)))
	return monedaOArs(moneda), ganancia
}

// claveMes reduce una fecha almacenada a su clave YYYY-MM; cadena vacía si la
// fecha no se puede interpretar.
func claveMes(fecha string) string {
	t := entity.ParseFecha(fecha)
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01")
}

func monedaOArs(moneda string) string {
	if moneda == entity.MonedaUSD {
		return entity.MonedaUSD
	}
	return entity.MonedaARS
}

func metodoOEfectivo(metodo string) string {
	if metodo == "" {
		return entity.MetodoEfectivo
	}
	return metodo
}

func sumar(t *dto.TotalesMoneda, moneda string, monto decimal.Decimal) {
	if moneda == entity.MonedaUSD {
		t.USD = t.USD.Add(monto)
		return
	}
	t.ARS = t.ARS.Add(monto)
}

// restarConPiso descuenta sin dejar el saldo por debajo de cero.
func restarConPiso(t *dto.TotalesMoneda, moneda string, monto decimal.Decimal) {
	if moneda == entity.MonedaUSD {
		t.USD = decimal.Max(decimal.Zero, t.USD.Sub(monto))
		return
	}
	t.ARS = decimal.Max(decimal.Zero, t.ARS.Sub(monto))
}
