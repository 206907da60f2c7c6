package models

import "time"

const (
	TripTypeOneway    = "oneway"
	TripTypeRoundtrip = "roundtrip"
)

// Booking бронирование перелета, принадлежит владельцу токена (guest:... или user:...)
type Booking struct {
	ID          string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	OwnerID     string    `json:"owner_id" gorm:"type:varchar(120);not null;index:idx_bookings_owner_depart,priority:1"`
	Origin      string    `json:"origin" gorm:"type:varchar(10);not null"`
	Destination string    `json:"destination" gorm:"type:varchar(80);not null;index"`
	TripType    string    `json:"trip_type" gorm:"type:varchar(20);not null"`
	Cabin       string    `json:"cabin" gorm:"type:varchar(20);not null"`
	DepartDate  Date      `json:"depart_date" gorm:"not null;index:idx_bookings_owner_depart,priority:2"`
	ReturnDate  *Date     `json:"return_date"`
	FirstName   *string   `json:"first_name,omitempty" gorm:"type:varchar(80)"`
	LastName    *string   `json:"last_name,omitempty" gorm:"type:varchar(80)"`
	BirthDate   *Date     `json:"birth_date,omitempty"`
	Email       *string   `json:"email,omitempty" gorm:"type:varchar(120)"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BookingRequest тело запроса на создание/обновление бронирования
type BookingRequest struct {
	Destination string  `json:"destination" binding:"required,min=2,max=80"`
	DepartDate  Date    `json:"depart_date"`
	ReturnDate  *Date   `json:"return_date"`
	Origin      string  `json:"origin" binding:"omitempty,iata"`
	TripType    string  `json:"trip_type" binding:"omitempty,oneof=oneway roundtrip"`
	Cabin       string  `json:"cabin" binding:"omitempty,max=20"`
	FirstName   *string `json:"first_name" binding:"omitempty,max=80"`
	LastName    *string `json:"last_name" binding:"omitempty,max=80"`
	BirthDate   *Date   `json:"birth_date"`
	Email       *string `json:"email" binding:"omitempty,email"`
}

// ApplyDefaults значения по умолчанию: CMN, roundtrip, economy
func (r *BookingRequest) ApplyDefaults() {
	if r.Origin == "" {
		r.Origin = "CMN"
	}
	if r.TripType == "" {
		r.TripType = TripTypeRoundtrip
	}
	if r.Cabin == "" {
		r.Cabin = "economy"
	}
}

// IsOneway true если поездка в одну сторону
func (b *Booking) IsOneway() bool {
	return b.TripType == TripTypeOneway
}
