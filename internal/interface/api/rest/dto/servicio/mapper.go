package servicio

import (
	"agendapro-api/internal/application/ports"
	domain "agendapro-api/internal/domain/servicio"
)

func ToCreateInput(req Request) ports.CreateServicioInput {
	return ports.CreateServicioInput{
		ProviderID: req.ProviderID,
		ExpertName: req.ExpertName,
		Name:       req.Name,
		Price:      req.Price,
		Duration:   req.Duration,
		Capacity:   req.Capacity,
		Modality:   req.Modality,
		Desc:       req.Desc,
		Image:      req.Image,
		Category:   req.Category,
	}
}

func ToResponseServicio(sDomain domain.Servicio) Servicio {
	var s = Servicio{
		ID:         sDomain.UUID.String(),
		ProviderID: sDomain.ProviderID.String(),
		ExpertName: sDomain.ExpertName,
		Name:       sDomain.Name,
		Price:      sDomain.Price,
		Duration:   sDomain.Duration,
		Capacity:   sDomain.Capacity,
		Modality:   sDomain.Modality,
		Desc:       sDomain.Desc,
		Image:      sDomain.ImageURL,
		Category:   sDomain.Category,
	}

	return s
}

func ToResponseServicios(ssDomain domain.Servicios) Servicios {
	ss := make(Servicios, len(ssDomain))
	for idx, s := range ssDomain {
		ss[idx] = ToResponseServicio(*s)
	}

	return ss
}
