package dto

// CrearClienteRequest alta de cliente.
type CrearClienteRequest struct {
	Nombre   string `json:"nombre"`
	DNI      string `json:"dni"`
	Telefono string `json:"telefono"`
}

// ActualizarClienteRequest actualización parcial: cada campo presente
// reemplaza el almacenado, cada campo ausente lo conserva.
type ActualizarClienteRequest struct {
	Nombre   *string `json:"nombre"`
	DNI      *string `json:"dni"`
	Telefono *string `json:"telefono"`
}
