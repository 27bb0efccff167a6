package usecase

import (
	"sort"
	"time"

	"github.com/FDenisienia/Gestion-ventas/internal/application/dto"
	"github.com/FDenisienia/Gestion-ventas/internal/domain"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/entity"
	"github.com/FDenisienia/Gestion-ventas/internal/domain/repository"
)

// EgresoUseCase CRUD de egresos.
type EgresoUseCase struct {
	store repository.DocumentStore
}

// NewEgresoUseCase construye el caso de uso.
func NewEgresoUseCase(store repository.DocumentStore) *EgresoUseCase {
	return &EgresoUseCase{store: store}
}

// List devuelve los egresos ordenados por fecha descendente. Registros
// heredados sin fecha caen a su fecha de creación.
func (uc *EgresoUseCase) List(userID int) ([]entity.Egreso, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	egresos := make([]entity.Egreso, 0, len(doc.Egresos))
	for _, e := range doc.Egresos {
		if e.Fecha == "" {
			e.Fecha = e.FechaCreacion
		}
		egresos = append(egresos, e)
	}
	sort.SliceStable(egresos, func(i, j int) bool {
		return entity.ParseFecha(egresos[i].Fecha).After(entity.ParseFecha(egresos[j].Fecha))
	})
	return egresos, nil
}

// GetByID devuelve el egreso o nil si no existe.
func (uc *EgresoUseCase) GetByID(userID, id int) (*entity.Egreso, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	for _, e := range doc.Egresos {
		if e.ID == id {
			return &e, nil
		}
	}
	return nil, nil
}

// Create crea un egreso. Fecha vacía queda en la fecha de hoy (sin hora);
// moneda y método de pago caen a sus valores por defecto.
func (uc *EgresoUseCase) Create(userID int, in dto.CrearEgresoRequest) (*entity.Egreso, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	moneda := in.Moneda
	if moneda == "" {
		moneda = entity.MonedaARS
	}
	metodo := in.MetodoPago
	if metodo == "" {
		metodo = entity.MetodoEfectivo
	}
	fecha := in.Fecha
	if fecha == "" {
		fecha = time.Now().UTC().Format("2006-01-02")
	}
	egreso := entity.Egreso{
		ID:                  entity.NextID(doc.Egresos),
		Descripcion:         in.Descripcion,
		Monto:               in.Monto,
		Moneda:              moneda,
		MetodoPago:          metodo,
		CuentaTransferencia: in.CuentaTransferencia,
		Categoria:           in.Categoria,
		Fecha:               fecha,
		FechaCreacion:       entity.NowISO(),
	}
	doc.Egresos = append(doc.Egresos, egreso)
	if err := uc.store.Save(userID, doc); err != nil {
		return nil, err
	}
	return &egreso, nil
}

// Update aplica una actualización parcial; nil si el id no existe.
func (uc *EgresoUseCase) Update(userID, id int, in dto.ActualizarEgresoRequest) (*entity.Egreso, error) {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return nil, err
	}
	for i := range doc.Egresos {
		if doc.Egresos[i].ID != id {
			continue
		}
		e := &doc.Egresos[i]
		if in.Descripcion != nil {
			e.Descripcion = *in.Descripcion
		}
		if in.Monto != nil {
			e.Monto = *in.Monto
		}
		if in.Moneda != nil {
			e.Moneda = *in.Moneda
		}
		if in.MetodoPago != nil {
			e.MetodoPago = *in.MetodoPago
		}
		if in.CuentaTransferencia != nil {
			e.CuentaTransferencia = *in.CuentaTransferencia
		}
		if in.Categoria != nil {
			e.Categoria = *in.Categoria
		}
		if in.Fecha != nil {
			e.Fecha = *in.Fecha
		}
		if err := uc.store.Save(userID, doc); err != nil {
			return nil, err
		}
		out := *e
		return &out, nil
	}
	return nil, nil
}

// Delete elimina el egreso por id.
func (uc *EgresoUseCase) Delete(userID, id int) error {
	doc, err := uc.store.Load(userID)
	if err != nil {
		return err
	}
	for i := range doc.Egresos {
		if doc.Egresos[i].ID == id {
			doc.Egresos = append(doc.Egresos[:i], doc.Egresos[i+1:]...)
			return uc.store.Save(userID, doc)
		}
	}
	return domain.ErrNotFound
}
