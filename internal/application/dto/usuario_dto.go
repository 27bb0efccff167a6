package dto

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UsuarioResponse usuario sin el hash de contraseña.
type UsuarioResponse struct {
	ID            int    `json:"id"`
	Username      string `json:"username"`
	Role          string `json:"role"`
	Nombre        string `json:"nombre"`
	Email         string `json:"email"`
	FechaCreacion string `json:"fecha_creacion,omitempty"`
}

// LoginResponse token más el usuario autenticado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  UsuarioResponse `json:"user"`
}

// VerifyResponse usuario actual según el token.
type VerifyResponse struct {
	User UsuarioResponse `json:"user"`
}

// CrearUsuarioRequest alta de usuario (solo admin).
type CrearUsuarioRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
	Nombre   string `json:"nombre"`
	Email    string `json:"email"`
}

// ActualizarUsuarioRequest actualización parcial de usuario. Una contraseña
// presente se vuelve a hashear antes de persistir.
type ActualizarUsuarioRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	Role     *string `json:"role"`
	Nombre   *string `json:"nombre"`
	Email    *string `json:"email"`
}
