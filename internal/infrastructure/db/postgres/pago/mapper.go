package pago

import (
	domain "agendapro-api/internal/domain/pago"
)

func fromDBModel(model *Pago) *domain.Pago {
	var p = &domain.Pago{
		UUID:          model.ID,
		ReservationID: model.ReservationID,
		Amount:        model.Amount,
		Method:        domain.Method(model.PaymentMethod),
		Status:        domain.Status(model.Status),

		CreatedAt: model.CreatedAt,
	}

	return p
}
