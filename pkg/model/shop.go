package model

import "time"

// Shop is a seller storefront. Registration and profile management happen in
// the account service; events and products only resolve and snapshot shops.
// swagger:model
type Shop struct {
	ID          uint      `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Name        string    `json:"name"`
	Email       string    `gorm:"index;unique" json:"email"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	PhoneNumber string    `json:"phoneNumber"`
	ZipCode     string    `json:"zipCode"`
	Avatar      AssetRef  `gorm:"serializer:json" json:"avatar"`
}
