package entity

// Roles de usuario.
const (
	RolAdmin = "admin"
	RolUser  = "user"
)

// Usuario cuenta de acceso. Password guarda el hash bcrypt y nunca se
// serializa hacia la API (el DTO de respuesta lo omite).
type Usuario struct {
	ID            int    `json:"id"`
	Username      string `json:"username"`
	Password      string `json:"password"`
	Role          string `json:"role"`
	Nombre        string `json:"nombre"`
	Email         string `json:"email"`
	FechaCreacion string `json:"fecha_creacion"`
}

func (u Usuario) GetID() int { return u.ID }

// ArchivoUsuarios forma del archivo users.json.
type ArchivoUsuarios struct {
	Users []Usuario `json:"users"`
}
