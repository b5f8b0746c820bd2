package ports

import (
	"context"

	"agendapro-api/internal/domain/reserva"
	"agendapro-api/internal/domain/usuario"
)

type HistoryService interface {
	// GetHistory returns all reservations for manager roles, and only the
	// caller's own for everyone else.
	GetHistory(ctx context.Context, userID string, role usuario.Role) (reserva.HistoryEntries, error)
}
