package usuario

import (
	"context"
)

type Repository interface {
	FetchByEmail(ctx context.Context, email string) (*Usuario, error)
	Create(ctx context.Context, req Usuario) (*Usuario, error)
}
