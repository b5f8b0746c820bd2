package ports

import (
	"context"

	"agendapro-api/internal/domain/servicio"
)

type (
	CreateServicioInput struct {
		ProviderID string
		ExpertName string
		Name       string
		Price      float64
		Duration   int
		Capacity   int
		Modality   string
		Desc       string
		Image      string
		Category   string
	}

	CatalogService interface {
		ListAll(ctx context.Context) (servicio.Servicios, error)
		Create(ctx context.Context, in CreateServicioInput) (*servicio.Servicio, error)
	}
)
