package req

// DecisionEmailRequest is the body of the application approve/decline
// email endpoint.
type DecisionEmailRequest struct {
	To              string `json:"to" validate:"required,email"`
	Subject         string `json:"subject" validate:"required"`
	PropertyAddress string `json:"propertyAddress"`
	IsApproved      bool   `json:"isApproved"`
	CustomMessage   string `json:"customMessage,omitempty"`
}
