package reserva

import (
	domain "agendapro-api/internal/domain/reserva"
)

func fromDBModel(model *Reserva) *domain.Reserva {
	var r = &domain.Reserva{
		UUID:      model.ID,
		UsuarioID: model.UsuarioID,
		ServiceID: model.ServiceID,
		SlotTime:  model.SlotTime,
		Status:    model.Status,

		CreatedAt: model.CreatedAt,
	}

	return r
}

func fromHistoryRow(model *HistoryRow) *domain.HistoryEntry {
	var e = &domain.HistoryEntry{
		ReservaID:   model.ReservaID,
		ServiceName: model.ServiceName,
		SlotTime:    model.SlotTime,
		Status:      model.Status,

		PaymentAmount: model.PaymentAmount,
		PaymentMethod: model.PaymentMethod,
		PaymentStatus: model.PaymentStatus,

		Username:  model.Username,
		UsuarioID: model.UsuarioID,
	}

	return e
}

func fromHistoryRows(models *HistoryRows) domain.HistoryEntries {
	es := make(domain.HistoryEntries, len(*models))
	for idx, m := range *models {
		es[idx] = fromHistoryRow(m)
	}

	return es
}
