package auth

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	RegisterRequest struct {
		Email            string `json:"email"`
		Password         string `json:"password"`
		FirstName        string `json:"firstName"`
		LastName         string `json:"lastName"`
		IdentificationID string `json:"identificationId"`
	}
)
