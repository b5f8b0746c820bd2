package reserva

import (
	"context"

	"github.com/jackc/pgx/v5"

	domain "agendapro-api/internal/domain/reserva"
	"agendapro-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, req domain.Reserva) (*domain.Reserva, error) {
	m := new(Reserva)

	err := r.db.QueryRow(
		ctx,
		InsertReserva,
		req.UUID.String(),
		req.UsuarioID.String(),
		req.ServiceID.String(),
		req.SlotTime,
		req.Status,
	).Scan(
		&m.ID,
		&m.UsuarioID,
		&m.ServiceID,
		&m.SlotTime,
		&m.Status,

		&m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(m), err
}

func (r *Repository) FetchHistory(ctx context.Context, usuarioID *domain.UUID) (domain.HistoryEntries, error) {
	var (
		rows pgx.Rows
		err  error
	)
	if usuarioID == nil {
		rows, err = r.db.Query(ctx, SelectHistory)
	} else {
		rows, err = r.db.Query(ctx, SelectHistoryByUsuario, usuarioID.String())
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hs HistoryRows
	for rows.Next() {
		h := new(HistoryRow)

		if err = rows.Scan(
			&h.ReservaID,
			&h.ServiceName,
			&h.SlotTime,
			&h.Status,

			&h.PaymentAmount,
			&h.PaymentMethod,
			&h.PaymentStatus,

			&h.Username,
			&h.UsuarioID,
		); err != nil {
			return nil, err
		}

		hs = append(hs, h)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromHistoryRows(&hs), nil
}
