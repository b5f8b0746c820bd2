package reserva

const (
	InsertReserva = `
		INSERT INTO reservas (id, usuario_id, service_id, slot_time, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, usuario_id, service_id, slot_time, status, created_at
	`
	SelectHistory = `
		SELECT
		  r.id, s.name, r.slot_time, r.status,
		  p.amount, p.payment_method, p.status AS payment_status,
		  u.name AS username, u.id AS user_id
		FROM reservas r
		JOIN servicios s ON r.service_id = s.id
		JOIN usuarios u ON r.usuario_id = u.id
		LEFT JOIN pagos p ON r.id = p.reservation_id
		ORDER BY r.slot_time DESC
	`
	SelectHistoryByUsuario = `
		SELECT
		  r.id, s.name, r.slot_time, r.status,
		  p.amount, p.payment_method, p.status AS payment_status,
		  u.name AS username, u.id AS user_id
		FROM reservas r
		JOIN servicios s ON r.service_id = s.id
		JOIN usuarios u ON r.usuario_id = u.id
		LEFT JOIN pagos p ON r.id = p.reservation_id
		WHERE r.usuario_id = $1
		ORDER BY r.slot_time DESC
	`
)
