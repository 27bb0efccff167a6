package entity

import "github.com/shopspring/decimal"

// Egreso gasto registrado. La categoría es texto libre, no una referencia.
type Egreso struct {
	ID                  int             `json:"id"`
	Descripcion         string          `json:"descripcion"`
	Monto               decimal.Decimal `json:"monto"`
	Moneda              string          `json:"moneda"`
	MetodoPago          string          `json:"metodo_pago"`
	CuentaTransferencia string          `json:"cuenta_transferencia"`
	Categoria           string          `json:"categoria"`
	Fecha               string          `json:"fecha"` // solo fecha (YYYY-MM-DD) por defecto
	FechaCreacion       string          `json:"fecha_creacion"`
}

func (e Egreso) GetID() int { return e.ID }
