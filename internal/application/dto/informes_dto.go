package dto

import "github.com/shopspring/decimal"

// TotalesMoneda un monto por cada moneda soportada.
type TotalesMoneda struct {
	ARS decimal.Decimal `json:"ars"`
	USD decimal.Decimal `json:"usd"`
}

// CuentaTesoreria posición de una cuenta bancaria: ingresos acumulados menos
// egresos, con el detalle de egresos aparte.
type CuentaTesoreria struct {
	Total   TotalesMoneda `json:"total"`
	Egresos TotalesMoneda `json:"egresos"`
}

// TesoreriaResponse resumen de tesorería: totales por método de pago y por
// cuenta bancaria, más ganancia bruta/neta por moneda.
type TesoreriaResponse struct {
	Efectivo      TotalesMoneda               `json:"efectivo"`
	Transferencia TotalesMoneda               `json:"transferencia"`
	Cuentas       map[string]*CuentaTesoreria `json:"cuentas"`
	GananciaBruta TotalesMoneda               `json:"ganancia_bruta"`
	Egresos       TotalesMoneda               `json:"egresos"`
	GananciaNeta  TotalesMoneda               `json:"ganancia_neta"`
}

// ResumenMes métricas de un mes calendario.
type ResumenMes struct {
	Mes            string        `json:"mes"` // YYYY-MM
	CantidadVentas int           `json:"cantidad_ventas"`
	Ingresos       TotalesMoneda `json:"ingresos"`
	Ganancia       TotalesMoneda `json:"ganancia"`
	Egresos        TotalesMoneda `json:"egresos"`
}

// ResumenResponse serie mensual para los gráficos de informes, del mes más
// antiguo al actual.
type ResumenResponse struct {
	Meses []ResumenMes `json:"meses"`
}
