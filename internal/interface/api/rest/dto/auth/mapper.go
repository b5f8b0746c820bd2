package auth

import (
	"agendapro-api/internal/domain/usuario"
)

// DestinationView names the frontend view each role lands on after login.
func DestinationView(u usuario.Usuario) string {
	switch u.Role {
	case usuario.RoleAdministrador:
		return "admin"
	case usuario.RoleProveedor:
		return "provider_panel"
	default:
		return "services"
	}
}

func ToRegisterResponse(u usuario.Usuario) ProfileResponse {
	return ProfileResponse{
		Success:    true,
		Message:    "Usuario registrado correctamente.",
		Username:   u.Name,
		UserID:     u.UUID.String(),
		IsAdmin:    false,
		IsProvider: false,
	}
}

func ToLoginResponse(u usuario.Usuario, token string) ProfileResponse {
	return ProfileResponse{
		Success:    true,
		Message:    "Inicio de sesión exitoso.",
		Username:   u.Name,
		UserID:     u.UUID.String(),
		IsAdmin:    u.Role == usuario.RoleAdministrador,
		IsProvider: u.Role == usuario.RoleProveedor,

		Email:            u.Email,
		FirstName:        u.FirstName,
		LastName:         u.LastName,
		IdentificationID: u.IdentificationID,

		DestinationView: DestinationView(u),
		AccessToken:     token,
	}
}
