package dto

// CrearCategoriaRequest alta de categoría (de artículos o de ventas).
type CrearCategoriaRequest struct {
	Nombre string `json:"nombre"`
}

// ActualizarCategoriaRequest actualización parcial de categoría.
type ActualizarCategoriaRequest struct {
	Nombre *string `json:"nombre"`
}
