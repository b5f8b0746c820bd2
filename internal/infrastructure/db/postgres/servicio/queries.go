package servicio

const (
	SelectServicios = `
		SELECT id, provider_id, expert_name, name, price, duration, capacity, modality, description, image_url, category, created_at
		FROM servicios
		ORDER BY name ASC
	`
	InsertServicio = `
		INSERT INTO servicios (id, provider_id, expert_name, name, price, duration, capacity, modality, description, image_url, category)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING
		  id, provider_id, expert_name, name, price, duration, capacity, modality, description, image_url, category, created_at
	`
)
