package history

type (
	Entry struct {
		IDReserva     string   `json:"id_reserva"`
		TipoConsulta  string   `json:"tipo_consulta"`
		SlotTime      string   `json:"slot_time"`
		EstadoReserva string   `json:"estado_reserva"`
		MontoPago     *float64 `json:"monto_pago"`
		MetodoPago    *string  `json:"metodo_pago"`
		EstadoPago    *string  `json:"estado_pago"`
		Username      string   `json:"username"`
		UserID        string   `json:"user_id"`
	}
	Entries []Entry
)
