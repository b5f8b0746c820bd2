package pago

import (
	"agendapro-api/internal/application/ports"
)

func ToProcessInput(req Request) ports.ProcessPaymentInput {
	return ports.ProcessPaymentInput{
		ReservationID: req.ReservaID,
		Amount:        req.Monto,
		Method:        req.Metodo,
	}
}
