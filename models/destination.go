package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	CategoryTransport  = "transport"
	CategoryHotel      = "hotel"
	CategoryRestaurant = "restaurant"
	CategoryActivity   = "activity"
)

// ArrivalCategories порядок секций в ответе /destinations/arrival
var ArrivalCategories = []string{CategoryHotel, CategoryRestaurant, CategoryTransport, CategoryActivity}

// IsValidCategory transport/hotel/restaurant/activity
func IsValidCategory(category string) bool {
	switch category {
	case CategoryTransport, CategoryHotel, CategoryRestaurant, CategoryActivity:
		return true
	}
	return false
}

// DestinationItem элемент рекомендаций от провайдера; в БД не хранится
type DestinationItem struct {
	ID         string  `json:"id"`
	Category   string  `json:"category"`
	Name       string  `json:"name"`
	Rating     float64 `json:"rating"`
	PriceLevel string  `json:"price_level"` // € / €€ / €€€
	DistanceKm float64 `json:"distance_km"`
	Address    string  `json:"address"`
	ImageURL   *string `json:"image_url"`
	Source     string  `json:"source"`
	Link       *string `json:"link"`
}

// DestinationRecoResponse ответ /destinations/recommendations
type DestinationRecoResponse struct {
	City     string            `json:"city"`
	Category string            `json:"category"`
	Budget   *string           `json:"budget"`
	Limit    int               `json:"limit"`
	Count    int               `json:"count"`
	Items    []DestinationItem `json:"items"`
}

// ArrivalResponse ответ /destinations/arrival
type ArrivalResponse struct {
	City      string                       `json:"city"`
	Budget    *string                      `json:"budget"`
	Interests []string                     `json:"interests"`
	Sections  map[string][]DestinationItem `json:"sections"`
}

// DestinationSearch история запросов рекомендаций пользователя
type DestinationSearch struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    string         `json:"user_id" gorm:"type:varchar(120);not null;index"`
	City      string         `json:"city" gorm:"type:varchar(120);not null"`
	Category  string         `json:"category" gorm:"type:varchar(20);not null"`
	Budget    *string        `json:"budget" gorm:"type:varchar(10)"`
	Limit     int            `json:"limit" gorm:"not null"`
	ItemIDs   datatypes.JSON `json:"item_ids"`
	CreatedAt time.Time      `json:"created_at" gorm:"index"`
}
