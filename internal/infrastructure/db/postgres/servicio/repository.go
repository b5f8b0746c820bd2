package servicio

import (
	"context"

	domain "agendapro-api/internal/domain/servicio"
	"agendapro-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchAll(ctx context.Context) (domain.Servicios, error) {
	rows, err := r.db.Query(ctx, SelectServicios)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ss Servicios
	for rows.Next() {
		s := new(Servicio)

		if err = rows.Scan(
			&s.ID,
			&s.ProviderID,
			&s.ExpertName,
			&s.Name,
			&s.Price,
			&s.Duration,
			&s.Capacity,
			&s.Modality,
			&s.Description,
			&s.ImageURL,
			&s.Category,

			&s.CreatedAt,
		); err != nil {
			return nil, err
		}

		ss = append(ss, s)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(&ss), nil
}

func (r *Repository) Create(ctx context.Context, req domain.Servicio) (*domain.Servicio, error) {
	s := new(Servicio)

	err := r.db.QueryRow(
		ctx,
		InsertServicio,
		req.UUID.String(),
		req.ProviderID.String(),
		req.ExpertName,
		req.Name,
		req.Price,
		req.Duration,
		req.Capacity,
		req.Modality,
		req.Desc,
		req.ImageURL,
		req.Category,
	).Scan(
		&s.ID,
		&s.ProviderID,
		&s.ExpertName,
		&s.Name,
		&s.Price,
		&s.Duration,
		&s.Capacity,
		&s.Modality,
		&s.Description,
		&s.ImageURL,
		&s.Category,

		&s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return fromDBModel(s), err
}
