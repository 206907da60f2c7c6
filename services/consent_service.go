package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/salahou-dine/hon-hon/models"
)

type ConsentService struct {
	DB *gorm.DB
}

func NewConsentService(db *gorm.DB) *ConsentService {
	return &ConsentService{DB: db}
}

// GetOrCreateDefault по умолчанию рекомендации включены
func (s *ConsentService) GetOrCreateDefault(ctx context.Context, userID string) (*models.Consent, error) {
	db := s.DB.WithContext(ctx)

	var consent models.Consent
	err := db.Where("user_id = ?", userID).First(&consent).Error
	if err == nil {
		return &consent, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	consent = models.Consent{UserID: userID, DestinationRecosEnabled: true}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&consent).Error; err != nil {
		return nil, err
	}
	if err := db.Where("user_id = ?", userID).First(&consent).Error; err != nil {
		return nil, err
	}
	return &consent, nil
}

func (s *ConsentService) Set(ctx context.Context, userID string, enabled bool) (*models.Consent, error) {
	consent, err := upsertConsent(s.DB.WithContext(ctx), userID, enabled)
	if err != nil {
		return nil, err
	}
	return consent, nil
}

// upsertConsent работает и внутри транзакции бронирования
func upsertConsent(db *gorm.DB, userID string, enabled bool) (*models.Consent, error) {
	consent := models.Consent{UserID: userID, DestinationRecosEnabled: enabled}
	err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"destination_recos_enabled", "updated_at"}),
	}).Create(&consent).Error
	if err != nil {
		return nil, err
	}
	return &consent, nil
}
