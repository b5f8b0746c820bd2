package pago

type Request struct {
	ReservaID string  `json:"reserva_id"`
	Monto     float64 `json:"monto"`
	Metodo    string  `json:"metodo"`
}
