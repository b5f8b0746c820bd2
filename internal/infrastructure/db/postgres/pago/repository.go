package pago

import (
	"context"

	domain "agendapro-api/internal/domain/pago"
	"agendapro-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, req domain.Pago) (*domain.Pago, error) {
	p := new(Pago)

	err := r.db.QueryRow(
		ctx,
		InsertPago,
		req.UUID.String(),
		req.ReservationID.String(),
		req.Amount,
		string(req.Method),
		string(req.Status),
	).Scan(
		&p.ID,
		&p.ReservationID,
		&p.Amount,
		&p.PaymentMethod,
		&p.Status,

		&p.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(p), err
}
