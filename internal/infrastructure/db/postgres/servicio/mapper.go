package servicio

import (
	domain "agendapro-api/internal/domain/servicio"
)

func fromDBModel(model *Servicio) *domain.Servicio {
	var s = &domain.Servicio{
		UUID:       model.ID,
		ProviderID: model.ProviderID,
		ExpertName: model.ExpertName,
		Name:       model.Name,
		Price:      model.Price,
		Duration:   model.Duration,
		Capacity:   model.Capacity,
		Modality:   model.Modality,
		Desc:       model.Description,
		ImageURL:   model.ImageURL,
		Category:   model.Category,

		CreatedAt: model.CreatedAt,
	}

	return s
}

func fromDBModels(models *Servicios) domain.Servicios {
	ss := make(domain.Servicios, len(*models))
	for idx, s := range *models {
		ss[idx] = fromDBModel(s)
	}

	return ss
}
