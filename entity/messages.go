package entity

import "rentify-api/enum"

type Message struct {
	BaseEntity
	Body        string             `json:"body" gorm:"type:TEXT"`
	SenderId    string             `json:"senderId" gorm:"foreignKey"`
	RecipientId string             `json:"recipientId" gorm:"foreignKey"`
	PropertyId  string             `json:"propertyId" gorm:"foreignKey"`
	SenderEmail string             `json:"senderEmail" gorm:"type:varchar(100)"`
	SenderPhone string             `json:"senderPhone" gorm:"type:varchar(20)"`
	Read        bool               `json:"read" gorm:"default:false"`
	Status      enum.InquiryStatus `json:"status" gorm:"type:varchar(20);default:'pending'"`

	Sender    User     `json:"-" gorm:"foreignKey:SenderId;references:ID"`
	Recipient User     `json:"-" gorm:"foreignKey:RecipientId;references:ID"`
	Property  Property `json:"-" gorm:"foreignKey:PropertyId;references:ID"`
}
