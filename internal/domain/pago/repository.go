package pago

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, req Pago) (*Pago, error)
}
