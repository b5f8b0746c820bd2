package servicio

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultImageURL = "https://placehold.co/100x100/9400D3/ffffff?text=Service"
	DefaultCategory = "Sin Categoría"
)

type (
	UUID     = uuid.UUID
	Servicio struct {
		UUID       UUID
		ProviderID UUID
		ExpertName string
		Name       string
		Price      float64
		Duration   int
		Capacity   int
		Modality   string
		Desc       string
		ImageURL   string
		Category   string

		CreatedAt time.Time
	}
	Servicios []*Servicio
)
