package models

import "time"

// Product is a storefront listing. Rows are created either through the admin
// API or by the Telegram ingestion flow.
type Product struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Name        string    `gorm:"column:name;not null"`
	Category    string    `gorm:"column:category;not null"`
	Price       int64     `gorm:"column:price;not null"`
	ImageURL    string    `gorm:"column:image_url;not null"`
	GlowColor   string    `gorm:"column:glow_color;not null;default:blue"`
	Description string    `gorm:"column:description;not null;default:''"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Product) TableName() string { return "products" }
