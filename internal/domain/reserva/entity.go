package reserva

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID    = uuid.UUID
	Reserva struct {
		UUID      UUID
		UsuarioID UUID
		ServiceID UUID
		SlotTime  time.Time
		Status    string

		CreatedAt time.Time
	}
	Reservas []*Reserva

	// HistoryEntry is one row of the reservation history projection:
	// a reservation joined with its service, owning user and (optional) payment.
	HistoryEntry struct {
		ReservaID   UUID
		ServiceName string
		SlotTime    time.Time
		Status      string

		PaymentAmount *float64
		PaymentMethod *string
		PaymentStatus *string

		Username  string
		UsuarioID UUID
	}
	HistoryEntries []*HistoryEntry
)
