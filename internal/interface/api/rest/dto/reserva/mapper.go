package reserva

import (
	"agendapro-api/internal/application/ports"
)

func ToCreateInput(req Request) ports.CreateReservationInput {
	return ports.CreateReservationInput{
		UsuarioID:   req.UsuarioID,
		ServiceID:   req.ServiceID,
		SlotTime:    req.SlotTime,
		Status:      req.Status,
		UserEmail:   req.UserEmail,
		ServiceName: req.ServiceName,
	}
}
