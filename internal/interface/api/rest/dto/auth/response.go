package auth

type ProfileResponse struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Username   string `json:"username"`
	UserID     string `json:"userId"`
	IsAdmin    bool   `json:"isAdmin"`
	IsProvider bool   `json:"isProvider"`

	Email            string `json:"email,omitempty"`
	FirstName        string `json:"firstName,omitempty"`
	LastName         string `json:"lastName,omitempty"`
	IdentificationID string `json:"identificationId,omitempty"`

	DestinationView string `json:"destinationView,omitempty"`
	AccessToken     string `json:"accessToken,omitempty"`
}
