package usuario

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "agendapro-api/internal/domain/usuario"
	"agendapro-api/internal/infrastructure/db/postgres"
)

var ErrEmailAlreadyExists = errors.New("email already registered")

type Repository struct {
	db postgres.Querier
}

func NewRepository(db postgres.Querier) domain.Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchByEmail(ctx context.Context, email string) (*domain.Usuario, error) {
	u := new(Usuario)
	err := r.db.QueryRow(ctx, SelectUsuarioByEmail, email).Scan(
		&u.ID,
		&u.Email,
		&u.Password,
		&u.Name,
		&u.Role,
		&u.FirstName,
		&u.LastName,
		&u.IdentificationID,
		&u.Status,

		&u.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), err
}

func (r *Repository) Create(ctx context.Context, req domain.Usuario) (*domain.Usuario, error) {
	u := new(Usuario)

	err := r.db.QueryRow(
		ctx,
		InsertUsuario,
		req.UUID.String(),
		req.Email,
		req.PasswordHash,
		req.Name,
		string(req.Role),
		req.FirstName,
		req.LastName,
		req.IdentificationID,
		req.Status,
	).Scan(
		&u.ID,
		&u.Email,
		&u.Password,
		&u.Name,
		&u.Role,
		&u.FirstName,
		&u.LastName,
		&u.IdentificationID,
		&u.Status,

		&u.CreatedAt,
	)
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrEmailAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(u), err
}
