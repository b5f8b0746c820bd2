package usuario

import (
	"time"

	"github.com/google/uuid"
)

type (
	Usuario struct {
		ID               uuid.UUID
		Email            string
		Password         string
		Name             string
		Role             string
		FirstName        string
		LastName         string
		IdentificationID string
		Status           string

		CreatedAt time.Time
	}
	Usuarios []*Usuario
)
