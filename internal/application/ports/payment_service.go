package ports

import (
	"context"

	"agendapro-api/internal/domain/pago"
)

type (
	ProcessPaymentInput struct {
		ReservationID string
		Amount        float64
		Method        string
	}

	PaymentService interface {
		// ProcessPayment returns the persisted payment and its user-facing
		// confirmation message.
		ProcessPayment(ctx context.Context, in ProcessPaymentInput) (*pago.Pago, string, error)
	}
)
