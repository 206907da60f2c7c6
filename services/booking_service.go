package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/salahou-dine/hon-hon/models"
)

// BookingNotifier уведомление о новом бронировании (email и т.п.)
type BookingNotifier interface {
	BookingCreated(b *models.Booking)
}

type BookingService struct {
	DB       *gorm.DB
	Notifier BookingNotifier
}

func NewBookingService(db *gorm.DB, notifier BookingNotifier) *BookingService {
	return &BookingService{DB: db, Notifier: notifier}
}

// Create сохраняет бронирование и включает согласие на рекомендации владельца:
// бронируя поездку, пользователь проявляет интерес к рекомендациям.
func (s *BookingService) Create(ctx context.Context, ownerID string, req models.BookingRequest) (*models.Booking, error) {
	req.ApplyDefaults()
	if req.DepartDate.IsZero() {
		return nil, ErrDepartDateRequired
	}
	if req.TripType == models.TripTypeOneway && req.ReturnDate != nil {
		return nil, ErrReturnDateOneway
	}

	booking := models.Booking{
		ID:          uuid.NewString(),
		OwnerID:     ownerID,
		Origin:      strings.ToUpper(req.Origin),
		Destination: strings.TrimSpace(req.Destination),
		TripType:    req.TripType,
		Cabin:       req.Cabin,
		DepartDate:  req.DepartDate,
		ReturnDate:  req.ReturnDate,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		BirthDate:   req.BirthDate,
		Email:       req.Email,
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		if _, err := upsertConsent(tx, ownerID, true); err != nil {
			return fmt.Errorf("enable consent: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.BookingCreated(&booking)
	}
	return &booking, nil
}

// GetOwned 404 если нет, 403 если бронирование чужое
func (s *BookingService) GetOwned(ctx context.Context, ownerID, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.WithContext(ctx).Where("id = ?", bookingID).First(&booking).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	if booking.OwnerID != ownerID {
		return nil, ErrForbidden
	}
	return &booking, nil
}

// UpdatePersonal меняет только данные пассажира
func (s *BookingService) UpdatePersonal(ctx context.Context, ownerID, bookingID string, req models.BookingRequest) (*models.Booking, error) {
	booking, err := s.GetOwned(ctx, ownerID, bookingID)
	if err != nil {
		return nil, err
	}

	booking.FirstName = req.FirstName
	booking.LastName = req.LastName
	booking.BirthDate = req.BirthDate
	booking.Email = req.Email

	err = s.DB.WithContext(ctx).Model(booking).
		Select("first_name", "last_name", "birth_date", "email", "updated_at").
		Updates(booking).Error
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// NextOrLast ближайшая предстоящая поездка, иначе последняя прошедшая
func (s *BookingService) NextOrLast(ctx context.Context, ownerID string, today models.Date) (*models.Booking, error) {
	db := s.DB.WithContext(ctx)

	var next models.Booking
	err := db.Where("owner_id = ? AND depart_date >= ?", ownerID, today).
		Order("depart_date ASC").First(&next).Error
	if err == nil {
		return &next, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	var last models.Booking
	err = db.Where("owner_id = ?", ownerID).Order("depart_date DESC").First(&last).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoBookings
	}
	if err != nil {
		return nil, err
	}
	return &last, nil
}

// ListOwned бронирования владельца по дате вылета
func (s *BookingService) ListOwned(ctx context.Context, ownerID string) ([]models.Booking, error) {
	bookings := []models.Booking{}
	err := s.DB.WithContext(ctx).Where("owner_id = ?", ownerID).Order("depart_date ASC").Find(&bookings).Error
	return bookings, err
}
