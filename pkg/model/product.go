package model

import "time"

// Product is a catalog listing owned by a shop. It carries externally hosted
// images the same way Event does: ordered refs, shop snapshot at creation.
// swagger:model
type Product struct {
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
	ShopID        uint       `gorm:"index" json:"shopId"`
	Shop          Shop       `gorm:"serializer:json" json:"shop"`
	Images        []AssetRef `gorm:"serializer:json" json:"images"`
}
