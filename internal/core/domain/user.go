package domain

import "time"

const (
	RoleAdministrador = "Administrador"
	RoleEmpleado      = "Empleado"
)

// User models an authenticated actor in the system.
//
// PasswordHash and TOTPSecret are write-once: they are set at registration
// and no update path exists. Neither is ever serialised in a response.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	TOTPSecret   string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
