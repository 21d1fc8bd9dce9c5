package entity

import "time"

// Notification lives in Redis, not Postgres. It has no linkage back to the
// message that triggered it; sender contact and property details are
// snapshotted at creation time because the store cannot join.
type Notification struct {
	ID          string               `json:"id"`
	Content     string               `json:"content"`
	SenderId    string               `json:"senderId"`
	RecipientId string               `json:"recipientId"`
	PropertyId  string               `json:"propertyId"`
	Read        bool                 `json:"read"`
	CreatedAt   time.Time            `json:"createdAt"`
	Sender      NotificationSender   `json:"sender"`
	Property    NotificationProperty `json:"property"`
}

// NotificationSender is the contact card of the property owner who
// disclosed their details.
type NotificationSender struct {
	Name        string `json:"name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
}

type NotificationProperty struct {
	Name       string `json:"name"`
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zipcode    string `json:"zipcode"`
	OwnerName  string `json:"ownerName"`
	OwnerPhone string `json:"ownerPhone"`
}
