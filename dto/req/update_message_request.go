package req

// UpdateMessageRequest carries the PATCH body for a message. Status and
// read are independent; either or both may be present.
type UpdateMessageRequest struct {
	Status *string `json:"status,omitempty" validate:"omitempty,oneof=pending approved declined"`
	Read   *bool   `json:"read,omitempty"`
}
