// Package usecase contiene los casos de uso CRUD sobre el documento por
// usuario. Cada operación es un ciclo cargar-mutar-guardar completo contra el
// DocumentStore; no hay transacciones más allá del guardado atómico del
// documento entero.
package usecase

import (
	"sort"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/repository"
)

// ClienteUseCase CRUD de clientes. Eliminar un cliente no toca sus ventas:
// las lecturas de ventas lo muestran como "Cliente eliminado".
type ClienteUseCase struct {
	store repository.DocumentStore
}

// NewClienteUseCase construye el caso de uso.
func NewClienteUseCase(store repository.DocumentStore) *ClienteUseCase {
	return &ClienteUseCase{store: store}
}

// List devuelve los clientes ordenados por fecha de creación descendente.
func (uc *ClienteUseCase) List(userID int) ([]entity.Cliente, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	clientes := append([]entity.Cliente{}, doc.Clientes...)
	sort.SliceStable(clientes, func(i, j int) bool {
		return entity.ParseFecha(clientes[i].FechaCreacion).After(entity.ParseFecha(clientes[j].FechaCreacion))
	})
	return clientes, nil
}

// GetByID devuelve el cliente o nil si no existe.
func (uc *ClienteUseCase) GetByID(userID, id int) (*entity.Cliente, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	for i := range doc.Clientes {
		if doc.Clientes[i].ID == id {
			c := doc.Clientes[i]
			return &c, nil
		}
	}
	return nil, nil
}

// Create crea un cliente con el próximo id y la fecha de creación actual.
func (uc *ClienteUseCase) Create(userID int, in dto.CrearClienteRequest) (*entity.Cliente, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	cliente := entity.Cliente{
		ID:            entity.NextID(doc.Clientes),
		Nombre:        in.Nombre,
		DNI:           in.DNI,
		Telefono:      in.Telefono,
		FechaCreacion: entity.NowISO(),
	}
	doc.Clientes = append(doc.Clientes, cliente)
	if err := uc.store.Save(userID, doc); err != nil {
		return nil, err
	}
	return &cliente, nil
}

// Update aplica una actualización parcial y devuelve el cliente resultante,
// o nil si el id no existe.
func (uc *ClienteUseCase) Update(userID, id int, in dto.ActualizarClienteRequest) (*entity.Cliente, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	for i := range doc.Clientes {
		if doc.Clientes[i].ID != id {
			continue
		}
		if in.Nombre != nil {
			doc.Clientes[i].Nombre = *in.Nombre
		}
		if in.DNI != nil {
			doc.Clientes[i].DNI = *in.DNI
		}
		if in.Telefono != nil {
			doc.Clientes[i].Telefono = *in.Telefono
		}
		if err := uc.store.Save(userID, doc); err != nil {
			return nil, err
		}
		c := doc.Clientes[i]
		return &c, nil
	}
	return nil, nil
}

// Delete elimina el cliente por id. No hay cascada sobre ventas.
func (uc *ClienteUseCase) Delete(userID, id int) error {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return err
	}
	for i := range doc.Clientes {
		if doc.Clientes[i].ID == id {
			doc.Clientes = append(doc.Clientes[:i], doc.Clientes[i+1:]...)
			return uc.store.Save(userID, doc)
		}
	}
	return domain.ErrNotFound
}
