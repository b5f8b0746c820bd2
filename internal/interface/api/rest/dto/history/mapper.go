package history

import (
	domain "agendapro-api/internal/domain/reserva"
)

// SlotTimeLayout is the fixed textual rendering of slot timestamps.
const SlotTimeLayout = "2006-01-02 15:04:05"

func ToResponseEntry(eDomain domain.HistoryEntry) Entry {
	var e = Entry{
		IDReserva:     eDomain.ReservaID.String(),
		TipoConsulta:  eDomain.ServiceName,
		SlotTime:      eDomain.SlotTime.Format(SlotTimeLayout),
		EstadoReserva: eDomain.Status,

		MontoPago:  eDomain.PaymentAmount,
		MetodoPago: eDomain.PaymentMethod,
		EstadoPago: eDomain.PaymentStatus,

		Username: eDomain.Username,
		UserID:   eDomain.UsuarioID.String(),
	}

	return e
}

func ToResponseEntries(esDomain domain.HistoryEntries) Entries {
	es := make(Entries, len(esDomain))
	for idx, e := range esDomain {
		es[idx] = ToResponseEntry(*e)
	}

	return es
}
