package entity

import "fmt"

type Property struct {
	BaseEntity
	Name    string `json:"name" gorm:"type:varchar(255)"`
	Street  string `json:"street" gorm:"type:varchar(255)"`
	City    string `json:"city" gorm:"type:varchar(100)"`
	State   string `json:"state" gorm:"type:varchar(50)"`
	Zipcode string `json:"zipcode" gorm:"type:varchar(20)"`
	OwnerId string `json:"ownerId" gorm:"type:varchar(255)"`

	Owner User `json:"-" gorm:"foreignKey:OwnerId;references:ID"`
}

// Address renders the full postal address used in notification content
// and disclosure emails.
func (p Property) Address() string {
	return fmt.Sprintf("%s, %s, %s %s", p.Street, p.City, p.State, p.Zipcode)
}
