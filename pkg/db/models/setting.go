package models

import "time"

// Setting is one key of the site settings key/value store. Values are opaque:
// either a raw string or a JSON-serialized value.
type Setting struct {
	Key       string    `gorm:"column:key;primaryKey"`
	Value     string    `gorm:"column:value;not null"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Setting) TableName() string { return "site_settings" }
