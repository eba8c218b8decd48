package models

import "time"

const (
	DefaultOpenTime  = "09:00"
	DefaultCloseTime = "19:00"
)

type ShopSettings struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	OpenTime  string `gorm:"size:5;not null;default:'09:00'" json:"open_time"`
	CloseTime string `gorm:"size:5;not null;default:'19:00'" json:"close_time"`

	UpdatedAt time.Time `json:"updated_at"`
}

func DefaultShopSettings() ShopSettings {
	return ShopSettings{
		OpenTime:  DefaultOpenTime,
		CloseTime: DefaultCloseTime,
	}
}
