package ports

import (
	"context"

	"agendapro-api/internal/domain/reserva"
)

type (
	// CreateReservationInput carries the raw payload: SlotTime stays the
	// human-entered string until the service parses it.
	CreateReservationInput struct {
		UsuarioID   string
		ServiceID   string
		SlotTime    string
		Status      string
		UserEmail   string
		ServiceName string
	}

	ReservationService interface {
		CreateReservation(ctx context.Context, in CreateReservationInput) (*reserva.Reserva, error)
	}
)
