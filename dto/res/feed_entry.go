package res

import "time"

// FeedEntry is one row of the merged "interested owners" feed. It is a
// union of a read message and a notification, discriminated by Type.
type FeedEntry struct {
	Type string `json:"type"`

	// type == "notification"
	NotificationID string       `json:"notificationId,omitempty"`
	Content        string       `json:"content,omitempty"`
	Read           *bool        `json:"read,omitempty"`
	CreatedAt      *time.Time   `json:"createdAt,omitempty"`
	Sender         *ContactInfo `json:"sender,omitempty"`

	// type == "readMessage"
	MessageID        string       `json:"messageId,omitempty"`
	PropertyOwner    *ContactInfo `json:"propertyOwner,omitempty"`
	ReadAt           *time.Time   `json:"readAt,omitempty"`
	HasSharedContact bool         `json:"hasSharedContact,omitempty"`

	// shared
	Property *PropertyInfo `json:"property,omitempty"`
}

type ContactInfo struct {
	ID          string `json:"id,omitempty"`
	Username    string `json:"username,omitempty"`
	Name        string `json:"name,omitempty"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
}

// EffectiveTime is the feed ordering key, readAt when present else
// createdAt.
func (e FeedEntry) EffectiveTime() time.Time {
	if e.ReadAt != nil {
		return *e.ReadAt
	}
	if e.CreatedAt != nil {
		return *e.CreatedAt
	}
	return time.Time{}
}
