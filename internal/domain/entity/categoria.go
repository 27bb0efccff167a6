package entity

// Categoria taxonomía simple. Se usa tanto para categorías de artículos
// (colección "categorias") como de ventas ("categoriasVenta"); son taxonomías
// independientes con ids propios.
type Categoria struct {
	ID            int    `json:"id"`
	Nombre        string `json:"nombre"`
	FechaCreacion string `json:"fecha_creacion"`
}

func (c Categoria) GetID() int { return c.ID }
