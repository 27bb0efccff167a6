package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
)

func TestCrearClienteAsignaIDYFecha(t *testing.T) {
	store := nuevoStore(t)
	uc := NewClienteUseCase(store)

	cliente, err := uc.Create(0, dto.CrearClienteRequest{Nombre: "Ana", DNI: "1", Telefono: "2"})
	require.NoError(t, err)
	assert.Equal(t, 1, cliente.ID)
	assert.Equal(t, "Ana", cliente.Nombre)
	assert.NotEmpty(t, cliente.FechaCreacion)

	otro, err := uc.Create(0, dto.CrearClienteRequest{Nombre: "Bruno", DNI: "3", Telefono: "4"})
	require.NoError(t, err)
	assert.Equal(t, 2, otro.ID)
}

func TestListClientesOrdenaPorCreacionDescendente(t *testing.T) {
	store := nuevoStore(t)
	uc := NewClienteUseCase(store)

	doc, err := store.Load(0)
	require.NoError(t, err)
	doc.Clientes = []entity.Cliente{
		{ID: 1, Nombre: "Viejo", FechaCreacion: "2024-01-01T00:00:00.000Z"},
		{ID: 2, Nombre: "Nuevo", FechaCreacion: "2025-06-01T00:00:00.000Z"},
	}
	require.NoError(t, store.Save(0, doc))

	clientes, err := uc.List(0)
	require.NoError(t, err)
	require.Len(t, clientes, 2)
	assert.Equal(t, "Nuevo", clientes[0].Nombre)
	assert.Equal(t, "Viejo", clientes[1].Nombre)
}

func TestActualizarClienteParcial(t *testing.T) {
	store := nuevoStore(t)
	uc := NewClienteUseCase(store)

	cliente, err := uc.Create(0, dto.CrearClienteRequest{Nombre: "Ana", DNI: "1", Telefono: "2"})
	require.NoError(t, err)

	telefono := "11-5555"
	actualizado, err := uc.Update(0, cliente.ID, dto.ActualizarClienteRequest{Telefono: &telefono})
	require.NoError(t, err)
	require.NotNil(t, actualizado)
	assert.Equal(t, "11-5555", actualizado.Telefono)
	assert.Equal(t, "Ana", actualizado.Nombre)
	assert.Equal(t, "1", actualizado.DNI)
}

func TestClienteInexistente(t *testing.T) {
	store := nuevoStore(t)
	uc := NewClienteUseCase(store)

	cliente, err := uc.GetByID(0, 99)
	require.NoError(t, err)
	assert.Nil(t, cliente)

	nombre := "x"
	actualizado, err := uc.Update(0, 99, dto.ActualizarClienteRequest{Nombre: &nombre})
	require.NoError(t, err)
	assert.Nil(t, actualizado)

	assert.ErrorIs(t, uc.Delete(0, 99), domain.ErrNotFound)
}

func TestEliminarClienteNoTocaSusVentas(t *testing.T) {
	store := nuevoStore(t)
	uc := NewClienteUseCase(store)

	cliente, err := uc.Create(0, dto.CrearClienteRequest{Nombre: "Ana", DNI: "1", Telefono: "2"})
	require.NoError(t, err)

	doc, err := store.Load(0)
	require.NoError(t, err)
	doc.Ventas = append(doc.Ventas, entity.Venta{ID: 1, ClienteID: cliente.ID})
	require.NoError(t, store.Save(0, doc))

	require.NoError(t, uc.Delete(0, cliente.ID))

	doc, err = store.Load(0)
	require.NoError(t, err)
	assert.Empty(t, doc.Clientes)
	assert.Len(t, doc.Ventas, 1, "las ventas del cliente eliminado se conservan")
}
