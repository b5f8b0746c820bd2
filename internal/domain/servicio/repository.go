package servicio

import (
	"context"
)

type Repository interface {
	FetchAll(ctx context.Context) (Servicios, error)
	Create(ctx context.Context, req Servicio) (*Servicio, error)
}
