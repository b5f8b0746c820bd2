package services

import (
	"context"
	"fmt"
	"time"

	"github.com/araddon/dateparse"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"agendapro-api/internal/application/ports"
	domain "agendapro-api/internal/domain/reserva"
	"agendapro-api/internal/infrastructure/mq"
)

type ReservationService struct {
	reservaRepository domain.Repository
	mq                ports.RabbitMQ
	mCounter          *prometheus.CounterVec
}

func NewReservationService(
	reservaRepository domain.Repository,
	mq ports.RabbitMQ,
	mCounter *prometheus.CounterVec,
) ports.ReservationService {
	return &ReservationService{
		reservaRepository: reservaRepository,
		mq:                mq,
		mCounter:          mCounter,
	}
}

func (rs *ReservationService) CreateReservation(ctx context.Context, in ports.CreateReservationInput) (*domain.Reserva, error) {
	if in.UsuarioID == "" || in.ServiceID == "" || in.SlotTime == "" ||
		in.Status == "" || in.UserEmail == "" || in.ServiceName == "" {
		return nil, ErrMissingReservaFields
	}

	// Lenient parse: the slot arrives as a human-entered string in any of
	// the common date/time shapes.
	slot, err := dateparse.ParseAny(in.SlotTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlotTime, err)
	}

	usuarioID, err := uuid.Parse(in.UsuarioID)
	if err != nil {
		return nil, fmt.Errorf("%w: usuarioId", ErrInvalidID)
	}
	serviceID, err := uuid.Parse(in.ServiceID)
	if err != nil {
		return nil, fmt.Errorf("%w: serviceId", ErrInvalidID)
	}

	r := domain.Reserva{
		UUID:      uuid.New(),
		UsuarioID: usuarioID,
		ServiceID: serviceID,
		SlotTime:  slot,
		Status:    in.Status,
	}

	rRet, err := rs.reservaRepository.Create(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("create reserva: %w", err)
	}

	if rRet != nil {
		// The body keeps the slot exactly as the user typed it.
		rs.mq.GetInputChan() <- mq.Notification{
			Id:      uuid.New(),
			TS:      time.Now(),
			Kind:    mq.KindReservationConfirmed,
			To:      in.UserEmail,
			Subject: "Reserva Confirmada: " + in.ServiceName,
			Body: fmt.Sprintf(
				"Su reserva para el servicio '%s' ha sido creada exitosamente para la fecha y hora: %s.",
				in.ServiceName, in.SlotTime,
			),
		}
	}

	rs.mCounter.WithLabelValues("reservation_created_total").Inc()

	return rRet, nil
}
