package reserva

type Request struct {
	UsuarioID   string `json:"usuarioId"`
	ServiceID   string `json:"serviceId"`
	SlotTime    string `json:"slotTime"`
	Status      string `json:"status"`
	UserEmail   string `json:"userEmail"`
	ServiceName string `json:"serviceName"`
}
