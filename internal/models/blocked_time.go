package models

import "time"

// BlockedTime without StartTime/EndTime closes the whole day.
type BlockedTime struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Date      string  `gorm:"size:10;not null;index" json:"date"`
	StartTime *string `gorm:"size:5" json:"start_time"`
	EndTime   *string `gorm:"size:5" json:"end_time"`
	Reason    *string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
