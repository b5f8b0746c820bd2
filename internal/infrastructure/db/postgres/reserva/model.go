package reserva

import (
	"time"

	"github.com/google/uuid"
)

type (
	Reserva struct {
		ID        uuid.UUID
		UsuarioID uuid.UUID
		ServiceID uuid.UUID
		SlotTime  time.Time
		Status    string

		CreatedAt time.Time
	}
	Reservas []*Reserva

	HistoryRow struct {
		ReservaID   uuid.UUID
		ServiceName string
		SlotTime    time.Time
		Status      string

		PaymentAmount *float64
		PaymentMethod *string
		PaymentStatus *string

		Username  string
		UsuarioID uuid.UUID
	}
	HistoryRows []*HistoryRow
)
