package pago

import (
	"time"

	"github.com/google/uuid"
)

type Method string

const (
	MethodOnline     Method = "online"
	MethodOnSite     Method = "pagar en sitio"
	MethodStoredCard Method = "tarjeta guardada"
)

func (m Method) Valid() bool {
	switch m {
	case MethodOnline, MethodOnSite, MethodStoredCard:
		return true
	}
	return false
}

type Status string

const (
	StatusPendiente Status = "PENDIENTE"
	StatusAprobado  Status = "APROBADO"
)

type (
	UUID = uuid.UUID
	Pago struct {
		UUID          UUID
		ReservationID UUID
		Amount        float64
		Method        Method
		Status        Status

		CreatedAt time.Time
	}
	Pagos []*Pago
)
