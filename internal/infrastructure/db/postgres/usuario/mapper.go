package usuario

import (
	domain "agendapro-api/internal/domain/usuario"
)

func fromDBModel(model *Usuario) *domain.Usuario {
	var u = &domain.Usuario{
		UUID:             model.ID,
		Email:            model.Email,
		PasswordHash:     model.Password,
		Name:             model.Name,
		Role:             domain.Role(model.Role),
		FirstName:        model.FirstName,
		LastName:         model.LastName,
		IdentificationID: model.IdentificationID,
		Status:           model.Status,

		CreatedAt: model.CreatedAt,
	}

	return u
}
