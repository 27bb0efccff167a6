package informes

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
	"github.com/FDenisienia/Gestion-ventas/internal/infrastructure/jsonstore"
)

func nuevoUseCase(t *testing.T) (*UseCase, *jsonstore.Store) {
	t.Helper()
	store, err := jsonstore.New(afero.NewMemMapFs(), "data")
	require.NoError(t, err)
	return NewUseCase(store), store
}

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestTesoreriaSoloCuentaVentasPagadas(t *testing.T) {
	uc, store := nuevoUseCase(t)
	doc, err := store.Load(0)
	require.NoError(t, err)
	doc.Ventas = []entity.Venta{
		{ID: 1, TotalVenta: d(100), MetodoPago: entity.MetodoEfectivo, EstadoPago: entity.PagoPagado},
		{ID: 2, TotalVenta: d(999), MetodoPago: entity.MetodoEfectivo, EstadoPago: entity.PagoPendiente},
		{ID: 3, TotalVenta: d(200), Moneda: entity.MonedaUSD, MetodoPago: entity.MetodoTransferencia,
			CuentaTransferencia: "Galicia", EstadoPago: entity.PagoPagado},
	}
	require.NoError(t, store.Save(0, doc))

	r, err := uc.Tesoreria(0)
	require.NoError(t, err)
	assert.True(t, r.Efectivo.ARS.Equal(d(100)))
	assert.True(t, r.Efectivo.USD.IsZero())
	assert.True(t, r.Transferencia.USD.Equal(d(200)))
	require.Contains(t, r.Cuentas, "Galicia")
	assert.True(t, r.Cuentas["Galicia"].Total.USD.Equal(d(200)))
}

func TestTesoreriaVentaPagadaPorSaldoCero(t *testing.T) {
	uc, store := nuevoUseCase(t)
	saldado := decimal.Zero
	doc, err := store.Load(0)
	require.NoError(t, err)
	doc.Ventas = []entity.Venta{
		// Sin estado_pago explícito: pendiente en cero implica pagada.
		{ID: 1, TotalVenta: d(100), Pendiente: &saldado},
	}
	require.NoError(t, store.Save(0, doc))

	r, err := uc.Tesoreria(0)
	require.NoError(t, err)
	assert.True(t, r.Efectivo.ARS.Equal(d(100)))
}

func TestTesoreriaEgresosConPisoEnCero(t *testing.T) {
	uc, store := nuevoUseCase(t)
	doc, err := store.Load(0)
	require.NoError(t, err)
	doc.Ventas = []entity.Venta{
		{ID: 1, TotalVenta: d(100), MetodoPago: entity.MetodoEfectivo, EstadoPago: entity.PagoPagado},
		{ID: 2, TotalVenta: d(200), MetodoPago: entity.MetodoTransferencia,
			CuentaTransferencia: "Galicia", EstadoPago: entity.PagoPagado},
	}
	doc.Egresos = []entity.Egreso{
		{ID: 1, Monto: d(500), MetodoPago: entity.MetodoEfectivo},
		{ID: 2, Monto: d(50), MetodoPago: entity.MetodoTransferencia, CuentaTransferencia: "Galicia"},
	}
	require.NoError(t, store.Save(0, doc))

	r, err := uc.Tesoreria(0)
	require.NoError(t, err)
	assert.True(t, r.Efectivo.ARS.IsZero(), "el saldo de caja no baja de cero")
	assert.True(t, r.Transferencia.ARS.Equal(d(150)))
	assert.True(t, r.Cuentas["Galicia"].Total.ARS.Equal(d(150)))
	assert.True(t, r.Cuentas["Galicia"].Egresos.ARS.Equal(d(50)))
	assert.True(t, r.Egresos.ARS.Equal(d(550)))
}

func TestTesoreriaGananciaPorMonedaDelArticulo(t *testing.T) {
	uc, store := nuevoUseCase(t)
	articuloID := 1
	doc, err := store.Load(0)
	require.NoError(t, err)
	doc.Articulos = []entity.Articulo{
		{ID: 1, Nombre: "Widget", Costo: d(10), Venta: d(25), Moneda: entity.MonedaUSD},
	}
	doc.Ventas = []entity.Venta{
		{ID: 1, Moneda: entity.MonedaARS, Items: []entity.ItemVenta{
			{ArticuloID: &articuloID, Cantidad: 2, Precio: d(25), CostoUnit: d(10)},
			{Cantidad: 1, Precio: d(500), CostoUnit: d(300)},
		}},
	}
	doc.Egresos = []entity.Egreso{
		{ID: 1, Monto: d(250)},
		{ID: 2, Monto: d(5), Moneda: entity.MonedaUSD},
	}
	require.NoError(t, store.Save(0, doc))

	r, err := uc.Tesoreria(0)
	require.NoError(t, err)
	assert.True(t, r.GananciaBruta.USD.Equal(d(30)), "el item con artículo gana en la moneda del artículo")
	assert.True(t, r.GananciaBruta.ARS.Equal(d(200)), "el item manual gana en la moneda de la venta")
	assert.True(t, r.GananciaNeta.ARS.Equal(d(-50)), "la ganancia neta sí puede ser negativa")
	assert.True(t, r.GananciaNeta.USD.Equal(d(25)))
}

func TestResumenAgrupaPorMes(t *testing.T) {
	uc, store := nuevoUseCase(t)
	uc.ahora = func() time.Time {
		return time.Date(2026, time.September, 1, 12, 0, 0, 0, time.UTC)
	}
	doc, err := store.Load(0)
	require.NoError(t, err)
	doc.Ventas = []entity.Venta{
		{ID: 1, FechaEmision: "2026-09-01T10:00:00.000Z", TotalVenta: d(100), Items: []entity.ItemVenta{
			{Cantidad: 2, Precio: d(25), CostoUnit: d(10)},
		}},
		{ID: 2, FechaEmision: "2026-08-15T10:00:00.000Z", TotalVenta: d(200), Moneda: entity.MonedaUSD},
		{ID: 3, FechaVenta: "2026-08-20T10:00:00.000Z", TotalVenta: d(50)},
		{ID: 4, FechaEmision: "2025-01-01T10:00:00.000Z", TotalVenta: d(999)},
	}
	doc.Egresos = []entity.Egreso{
		{ID: 1, Fecha: "2026-09-01", Monto: d(30)},
		{ID: 2, FechaCreacion: "2026-08-02T08:00:00.000Z", Monto: d(10), Moneda: entity.MonedaUSD},
	}
	require.NoError(t, store.Save(0, doc))

	r, err := uc.Resumen(0, 0)
	require.NoError(t, err)
	require.Len(t, r.Meses, MesesResumenPorDefecto)
	assert.Equal(t, "2026-04", r.Meses[0].Mes, "la serie va del mes más antiguo al actual")
	ultimo := r.Meses[len(r.Meses)-1]
	assert.Equal(t, "2026-09", ultimo.Mes)
	assert.Equal(t, 1, ultimo.CantidadVentas)
	assert.True(t, ultimo.Ingresos.ARS.Equal(d(100)))
	assert.True(t, ultimo.Ganancia.ARS.Equal(d(30)))
	assert.True(t, ultimo.Egresos.ARS.Equal(d(30)))

	agosto := r.Meses[len(r.Meses)-2]
	assert.Equal(t, "2026-08", agosto.Mes)
	assert.Equal(t, 2, agosto.CantidadVentas, "sin fecha de emisión cuenta por fecha de venta")
	assert.True(t, agosto.Ingresos.USD.Equal(d(200)))
	assert.True(t, agosto.Ingresos.ARS.Equal(d(50)))
	assert.True(t, agosto.Egresos.USD.Equal(d(10)))

	for _, m := range r.Meses {
		assert.NotEqual(t, "2025-01", m.Mes, "lo anterior a la ventana se descarta")
	}
}

func TestResumenVentanaPersonalizada(t *testing.T) {
	uc, store := nuevoUseCase(t)
	uc.ahora = func() time.Time {
		return time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	}
	_, err := store.Load(0)
	require.NoError(t, err)

	r, err := uc.Resumen(0, 3)
	require.NoError(t, err)
	require.Len(t, r.Meses, 3)
	assert.Equal(t, "2026-01", r.Meses[0].Mes)
	assert.Equal(t, "2026-02", r.Meses[1].Mes)
	assert.Equal(t, "2026-03", r.Meses[2].Mes)
}
