package req

type CreateMessageRequest struct {
	PropertyID  string `json:"propertyId" validate:"required"`
	Body        string `json:"body" validate:"required"`
	SenderEmail string `json:"senderEmail" validate:"required,email"`
	SenderPhone string `json:"senderPhone" validate:"omitempty,min=8"`
}
