package servicio

import (
	"time"

	"github.com/google/uuid"
)

type (
	Servicio struct {
		ID          uuid.UUID
		ProviderID  uuid.UUID
		ExpertName  string
		Name        string
		Price       float64
		Duration    int
		Capacity    int
		Modality    string
		Description string
		ImageURL    string
		Category    string

		CreatedAt time.Time
	}
	Servicios []*Servicio
)
