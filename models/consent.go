package models

import "time"

// Consent согласие на рекомендации по направлению (внешние данные)
type Consent struct {
	UserID                  string    `json:"user_id" gorm:"type:varchar(120);primaryKey"`
	DestinationRecosEnabled bool      `json:"destination_recos_enabled" gorm:"not null"`
	UpdatedAt               time.Time `json:"-"`
}

// ConsentRequest тело POST /privacy/consent
type ConsentRequest struct {
	DestinationRecosEnabled *bool `json:"destination_recos_enabled" binding:"required"`
}
