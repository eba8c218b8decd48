package models

import "time"

// Category values for Service.Category.
const (
	CategoryMain     = "main"
	CategorySporadic = "sporadic"
)

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500;not null" json:"description"`
	// Price in centavos.
	Price       int64  `gorm:"not null" json:"price"`
	DurationMin int    `gorm:"not null" json:"duration_min"`
	Image       string `gorm:"size:255" json:"image"`
	Category    string `gorm:"size:20;default:'main'" json:"category"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
