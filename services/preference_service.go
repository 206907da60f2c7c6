package services

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/salahou-dine/hon-hon/models"
)

type PreferenceService struct {
	DB *gorm.DB
}

func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{DB: db}
}

// GetOrCreateDefault при первом обращении создает mid / без интересов
func (s *PreferenceService) GetOrCreateDefault(ctx context.Context, userID string) (*models.Preference, error) {
	db := s.DB.WithContext(ctx)

	var pref models.Preference
	err := db.Where("user_id = ?", userID).First(&pref).Error
	if err == nil {
		return &pref, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	pref = models.Preference{UserID: userID, Budget: models.BudgetMid}
	pref.SetInterests(nil)
	// параллельный запрос мог создать запись раньше
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&pref).Error; err != nil {
		return nil, err
	}
	if err := db.Where("user_id = ?", userID).First(&pref).Error; err != nil {
		return nil, err
	}
	return &pref, nil
}

// Upsert неизвестный бюджет сохраняется как mid
func (s *PreferenceService) Upsert(ctx context.Context, userID string, req models.PreferenceRequest) (*models.Preference, error) {
	budget := models.NormalizeBudget(req.Budget)
	if budget == "" {
		budget = models.BudgetMid
	}

	pref := models.Preference{UserID: userID, Budget: budget}
	pref.SetInterests(req.Interests)

	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"budget", "interests", "updated_at"}),
	}).Create(&pref).Error
	if err != nil {
		return nil, err
	}
	return &pref, nil
}
