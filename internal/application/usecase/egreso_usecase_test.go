package usecase

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
)

func TestCrearEgresoConDefaults(t *testing.T) {
	store := nuevoStore(t)
	uc := NewEgresoUseCase(store)

	egreso, err := uc.Create(0, dto.CrearEgresoRequest{
		Descripcion: "Alquiler",
		Monto:       decimal.NewFromInt(500),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, egreso.ID)
	assert.Equal(t, entity.MonedaARS, egreso.Moneda)
	assert.Equal(t, entity.MetodoEfectivo, egreso.MetodoPago)
	assert.Equal(t, time.Now().UTC().Format("2006-01-02"), egreso.Fecha)
	assert.NotEmpty(t, egreso.FechaCreacion)
}

func TestListEgresosOrdenaPorFechaConFallback(t *testing.T) {
	store := nuevoStore(t)
	uc := NewEgresoUseCase(store)

	doc, err := store.Load(0)
	require.NoError(t, err)
	doc.Egresos = []entity.Egreso{
		{ID: 1, Descripcion: "Viejo", Fecha: "2024-01-10"},
		// Registro heredado sin fecha: ordena por su fecha de creación.
		{ID: 2, Descripcion: "Sin fecha", FechaCreacion: "2025-06-01T00:00:00.000Z"},
		{ID: 3, Descripcion: "Nuevo", Fecha: "2025-01-10"},
	}
	require.NoError(t, store.Save(0, doc))

	egresos, err := uc.List(0)
	require.NoError(t, err)
	require.Len(t, egresos, 3)
	assert.Equal(t, "Sin fecha", egresos[0].Descripcion)
	assert.Equal(t, "2025-06-01T00:00:00.000Z", egresos[0].Fecha)
	assert.Equal(t, "Nuevo", egresos[1].Descripcion)
	assert.Equal(t, "Viejo", egresos[2].Descripcion)
}

func TestActualizarEgresoParcial(t *testing.T) {
	store := nuevoStore(t)
	uc := NewEgresoUseCase(store)

	egreso, err := uc.Create(0, dto.CrearEgresoRequest{
		Descripcion:         "Alquiler",
		Monto:               decimal.NewFromInt(500),
		MetodoPago:          entity.MetodoTransferencia,
		CuentaTransferencia: "Galicia",
	})
	require.NoError(t, err)

	monto := decimal.NewFromInt(650)
	actualizado, err := uc.Update(0, egreso.ID, dto.ActualizarEgresoRequest{Monto: &monto})
	require.NoError(t, err)
	require.NotNil(t, actualizado)
	assert.True(t, actualizado.Monto.Equal(decimal.NewFromInt(650)))
	assert.Equal(t, "Alquiler", actualizado.Descripcion)
	assert.Equal(t, "Galicia", actualizado.CuentaTransferencia)
}

func TestEgresoInexistente(t *testing.T) {
	store := nuevoStore(t)
	uc := NewEgresoUseCase(store)

	egreso, err := uc.GetByID(0, 99)
	require.NoError(t, err)
	assert.Nil(t, egreso)

	descripcion := "x"
	actualizado, err := uc.Update(0, 99, dto.ActualizarEgresoRequest{Descripcion: &descripcion})
	require.NoError(t, err)
	assert.Nil(t, actualizado)

	assert.ErrorIs(t, uc.Delete(0, 99), domain.ErrNotFound)
}
