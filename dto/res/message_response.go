package res

type MessageResponse struct {
	MessageId   string        `json:"messageId"`
	Body        string        `json:"body"`
	SenderId    string        `json:"senderId"`
	SenderName  string        `json:"senderName"`
	SenderEmail string        `json:"senderEmail"`
	SenderPhone string        `json:"senderPhone"`
	Property    *PropertyInfo `json:"property,omitempty"`
	Read        bool          `json:"read"`
	Status      string        `json:"status"`
	CreatedAt   string        `json:"createdAt"`
}

type PropertyInfo struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	Zipcode string `json:"zipcode,omitempty"`
}
