package reserva

import (
	"context"
)

type Repository interface {
	Create(ctx context.Context, req Reserva) (*Reserva, error)
	// FetchHistory returns the history projection ordered by slot time
	// descending. A nil usuarioID means no ownership filter (manager view).
	FetchHistory(ctx context.Context, usuarioID *UUID) (HistoryEntries, error)
}
