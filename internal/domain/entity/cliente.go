package entity

// Cliente registro de cliente. DNI y teléfono son opcionales.
type Cliente struct {
	ID            int    `json:"id"`
	Nombre        string `json:"nombre"`
	DNI           string `json:"dni"`
	Telefono      string `json:"telefono"`
	FechaCreacion string `json:"fecha_creacion"`
}

func (c Cliente) GetID() int { return c.ID }
