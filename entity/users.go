package entity

type User struct {
	BaseEntity
	Username    string `json:"username" gorm:"unique;type:varchar(50)"`
	Name        string `json:"name" gorm:"type:varchar(255)"`
	Email       string `json:"email" gorm:"unique;type:varchar(100)"`
	PhoneNumber string `json:"phoneNumber" gorm:"type:varchar(20)"`
	AuthId      string `json:"authId" gorm:"type:varchar(255);unique"`

	Properties []Property `json:"-" gorm:"foreignKey:OwnerId"`
	Sent       []Message  `json:"-" gorm:"foreignKey:SenderId"`
	Received   []Message  `json:"-" gorm:"foreignKey:RecipientId"`
}
