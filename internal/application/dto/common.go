package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse cuerpo de confirmación para operaciones de borrado.
type MessageResponse struct {
	Message string `json:"message"`
}
