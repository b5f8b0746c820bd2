package pago

import (
	"time"

	"github.com/google/uuid"
)

type (
	Pago struct {
		ID            uuid.UUID
		ReservationID uuid.UUID
		Amount        float64
		PaymentMethod string
		Status        string

		CreatedAt time.Time
	}
	Pagos []*Pago
)
