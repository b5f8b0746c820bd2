package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"agendapro-api/internal/application/ports"
	domain "agendapro-api/internal/domain/pago"
)

const (
	MsgCashOnDelivery   = "Pago contraentrega registrado."
	MsgPaymentProcessed = "Pago procesado con éxito."
)

type PaymentService struct {
	pagoRepository domain.Repository
	mCounter       *prometheus.CounterVec
}

func NewPaymentService(
	pagoRepository domain.Repository,
	mCounter *prometheus.CounterVec,
) ports.PaymentService {
	return &PaymentService{
		pagoRepository: pagoRepository,
		mCounter:       mCounter,
	}
}

// ProcessPayment derives the payment status from the method: cash on site
// stays PENDIENTE, everything else is approved outright. There is no gateway
// behind this, the mapping is the whole integration.
func (ps *PaymentService) ProcessPayment(ctx context.Context, in ports.ProcessPaymentInput) (*domain.Pago, string, error) {
	method := domain.Method(strings.ToLower(strings.TrimSpace(in.Method)))
	if !method.Valid() {
		return nil, "", fmt.Errorf("%w: %s", ErrInvalidPaymentMethod, method)
	}

	if in.Amount <= 0 {
		return nil, "", ErrInvalidAmount
	}

	if strings.TrimSpace(in.ReservationID) == "" {
		return nil, "", ErrReservationIDRequired
	}
	// The reservation is not looked up: referential integrity is the store's.
	reservationID, err := uuid.Parse(in.ReservationID)
	if err != nil {
		return nil, "", fmt.Errorf("%w: reservaId", ErrInvalidID)
	}

	status := domain.StatusAprobado
	message := MsgPaymentProcessed
	if method == domain.MethodOnSite {
		status = domain.StatusPendiente
		message = MsgCashOnDelivery
	}

	p := domain.Pago{
		UUID:          uuid.New(),
		ReservationID: reservationID,
		Amount:        in.Amount,
		Method:        method,
		Status:        status,
	}

	pRet, err := ps.pagoRepository.Create(ctx, p)
	if err != nil {
		return nil, "", fmt.Errorf("create pago: %w", err)
	}

	ps.mCounter.WithLabelValues("payment_processed_total").Inc()

	return pRet, message, nil
}
