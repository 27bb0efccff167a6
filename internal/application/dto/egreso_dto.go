package dto

import "github.com/shopspring/decimal"

// CrearEgresoRequest alta de egreso. Fecha vacía se completa con la fecha de
// hoy (solo fecha, sin hora).
type CrearEgresoRequest struct {
	Descripcion         string          `json:"descripcion"`
	Monto               decimal.Decimal `json:"monto"`
	Moneda              string          `json:"moneda"`
	MetodoPago          string          `json:"metodo_pago"`
	CuentaTransferencia string          `json:"cuenta_transferencia"`
	Categoria           string          `json:"categoria"`
	Fecha               string          `json:"fecha"`
}

// ActualizarEgresoRequest actualización parcial de egreso.
type ActualizarEgresoRequest struct {
	Descripcion         *string          `json:"descripcion"`
	Monto               *decimal.Decimal `json:"monto"`
	Moneda              *string          `json:"moneda"`
	MetodoPago          *string          `json:"metodo_pago"`
	CuentaTransferencia *string          `json:"cuenta_transferencia"`
	Categoria           *string          `json:"categoria"`
	Fecha               *string          `json:"fecha"`
}
