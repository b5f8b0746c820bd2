package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"agendapro-api/internal/application/ports"
	domain "agendapro-api/internal/domain/reserva"
	"agendapro-api/internal/domain/usuario"
)

type HistoryService struct {
	reservaRepository domain.Repository
}

func NewHistoryService(reservaRepository domain.Repository) ports.HistoryService {
	return &HistoryService{reservaRepository: reservaRepository}
}

func (hs *HistoryService) GetHistory(ctx context.Context, userID string, role usuario.Role) (domain.HistoryEntries, error) {
	if role.IsManager() {
		es, err := hs.reservaRepository.FetchHistory(ctx, nil)
		if err != nil {
			return nil, fmt.Errorf("fetch history: %w", err)
		}
		return es, nil
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		// An opaque id that is not one of ours matches no reservations.
		return domain.HistoryEntries{}, nil
	}

	es, err := hs.reservaRepository.FetchHistory(ctx, &id)
	if err != nil {
		return nil, fmt.Errorf("fetch history: %w", err)
	}

	return es, nil
}
