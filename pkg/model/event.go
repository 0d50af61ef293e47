package model

import "time"

// Event is a time-bound promotional listing published by a shop.
//
// Shop is a denormalized snapshot taken when the event is created, not a live
// reference; editing the shop afterwards does not update it. Images is ordered,
// insertion order is display order, and every ref must correspond to a live
// blob in the asset store once creation has reported success (best effort, see
// the asset store docs).
// swagger:model
type Event struct {
	ID            uint       `gorm:"primarykey" json:"id"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
	Name          string     `json:"name"`
	Slug          string     `gorm:"index" json:"slug"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Tags          string     `json:"tags"`
	OriginalPrice float64    `json:"originalPrice"`
	DiscountPrice float64    `json:"discountPrice"`
	Stock         int        `json:"stock"`
	SoldOut       int        `json:"soldOut"`
	StartDate     time.Time  `json:"startDate"`
	FinishDate    time.Time  `json:"finishDate"`
	Status        string     `json:"status"`
	ShopID        uint       `gorm:"index" json:"shopId"`
	Shop          Shop       `gorm:"serializer:json" json:"shop"`
	Images        []AssetRef `gorm:"serializer:json" json:"images"`
}
