package pago

const (
	InsertPago = `
		INSERT INTO pagos (id, reservation_id, amount, payment_method, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING
		  id, reservation_id, amount, payment_method, status, created_at
	`
)
