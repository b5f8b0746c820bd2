package usuario

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleCliente       Role = "Cliente"
	RoleAdministrador Role = "Administrador"
	RoleProveedor     Role = "Proveedor"
)

// IsManager reports whether the role sees every reservation, not just its own.
func (r Role) IsManager() bool {
	return r == RoleAdministrador || r == RoleProveedor
}

const StatusActivo = "Activo"

type (
	UUID    = uuid.UUID
	Usuario struct {
		UUID             UUID
		Email            string
		PasswordHash     string
		Name             string
		Role             Role
		FirstName        string
		LastName         string
		IdentificationID string
		Status           string

		CreatedAt time.Time
	}
	Usuarios []*Usuario
)
