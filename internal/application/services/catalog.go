package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"agendapro-api/internal/application/ports"
	domain "agendapro-api/internal/domain/servicio"
)

type CatalogService struct {
	servicioRepository domain.Repository
	mCounter           *prometheus.CounterVec
}

func NewCatalogService(
	servicioRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.CatalogService {
	return &CatalogService{
		servicioRepository: servicioRepository,
		mCounter:           mCounter,
	}
}

func (cs *CatalogService) ListAll(ctx context.Context) (domain.Servicios, error) {
	ss, err := cs.servicioRepository.FetchAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch servicios: %w", err)
	}

	return ss, nil
}

func (cs *CatalogService) Create(ctx context.Context, in ports.CreateServicioInput) (*domain.Servicio, error) {
	if in.ProviderID == "" || in.ExpertName == "" || in.Name == "" ||
		in.Price <= 0 || in.Duration <= 0 || in.Capacity <= 0 ||
		in.Modality == "" || in.Desc == "" {
		return nil, ErrMissingServicioFields
	}

	providerID, err := uuid.Parse(in.ProviderID)
	if err != nil {
		return nil, fmt.Errorf("%w: providerId", ErrInvalidID)
	}

	image := in.Image
	if image == "" {
		image = domain.DefaultImageURL
	}
	category := in.Category
	if category == "" {
		category = domain.DefaultCategory
	}

	s := domain.Servicio{
		UUID:       uuid.New(),
		ProviderID: providerID,
		ExpertName: in.ExpertName,
		Name:       in.Name,
		Price:      in.Price,
		Duration:   in.Duration,
		Capacity:   in.Capacity,
		Modality:   in.Modality,
		Desc:       in.Desc,
		ImageURL:   image,
		Category:   category,
	}

	sRet, err := cs.servicioRepository.Create(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("create servicio: %w", err)
	}

	cs.mCounter.WithLabelValues("service_created_total").Inc()

	return sRet, nil
}
