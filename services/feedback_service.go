package services

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/salahou-dine/hon-hon/models"
)

type FeedbackService struct {
	DB *gorm.DB
}

func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{DB: db}
}

// Upsert одна запись на (user_id, item_id), последняя реакция побеждает
func (s *FeedbackService) Upsert(ctx context.Context, userID string, req models.FeedbackRequest) (*models.FeedbackResponse, error) {
	fb := models.Feedback{
		UserID:   userID,
		ItemID:   req.ItemID,
		Category: req.Category,
		City:     strings.ToLower(strings.TrimSpace(req.City)),
		Action:   req.Action,
	}

	err := s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"category", "city", "action", "updated_at"}),
	}).Create(&fb).Error
	if err != nil {
		return nil, err
	}

	return &models.FeedbackResponse{
		UserID:   fb.UserID,
		ItemID:   fb.ItemID,
		Category: fb.Category,
		City:     fb.City,
		Action:   fb.Action,
	}, nil
}

// ListFor city ожидается уже в нижнем регистре
func (s *FeedbackService) ListFor(ctx context.Context, userID, city, category string) ([]models.Feedback, error) {
	var rows []models.Feedback
	err := s.DB.WithContext(ctx).
		Where("user_id = ? AND city = ? AND category = ?", userID, city, category).
		Find(&rows).Error
	return rows, err
}

// List отзывы пользователя, фильтры city/category необязательны
func (s *FeedbackService) List(ctx context.Context, userID, city, category string) ([]models.Feedback, error) {
	q := s.DB.WithContext(ctx).Where("user_id = ?", userID)
	if city = strings.ToLower(strings.TrimSpace(city)); city != "" {
		q = q.Where("city = ?", city)
	}
	if category = strings.ToLower(strings.TrimSpace(category)); category != "" {
		q = q.Where("category = ?", category)
	}

	rows := []models.Feedback{}
	err := q.Order("updated_at DESC").Order("id DESC").Find(&rows).Error
	return rows, err
}
