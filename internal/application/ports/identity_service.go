package ports

import (
	"context"

	"agendapro-api/internal/domain/usuario"
)

type (
	RegisterInput struct {
		Email            string
		Password         string
		FirstName        string
		LastName         string
		IdentificationID string
	}

	IdentityService interface {
		Register(ctx context.Context, in RegisterInput) (*usuario.Usuario, error)
		// Authenticate returns the matched profile and a signed access token.
		Authenticate(ctx context.Context, email, password string) (*usuario.Usuario, string, error)
	}
)
