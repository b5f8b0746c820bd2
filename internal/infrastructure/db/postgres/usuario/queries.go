package usuario

const (
	SelectUsuarioByEmail = `
		SELECT id, email, password, name, role, first_name, last_name, identification_id, status, created_at
		FROM usuarios
		WHERE email = $1
	`
	InsertUsuario = `
		INSERT INTO usuarios (id, email, password, name, role, first_name, last_name, identification_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING
		  id, email, password, name, role, first_name, last_name, identification_id, status, created_at
	`
)
