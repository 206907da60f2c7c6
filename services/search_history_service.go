package services

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/salahou-dine/hon-hon/models"
)

// HistoryLimit сколько последних поисков отдает /destinations/history
const HistoryLimit = 20

type SearchHistoryService struct {
	DB *gorm.DB
}

func NewSearchHistoryService(db *gorm.DB) *SearchHistoryService {
	return &SearchHistoryService{DB: db}
}

func (s *SearchHistoryService) Record(ctx context.Context, userID string, resp *models.DestinationRecoResponse) error {
	ids := make([]string, 0, len(resp.Items))
	for _, it := range resp.Items {
		ids = append(ids, it.ID)
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return err
	}

	row := models.DestinationSearch{
		UserID:   userID,
		City:     resp.City,
		Category: resp.Category,
		Budget:   resp.Budget,
		Limit:    resp.Limit,
		ItemIDs:  datatypes.JSON(raw),
	}
	return s.DB.WithContext(ctx).Create(&row).Error
}

// Recent последние поиски пользователя, новые первыми
func (s *SearchHistoryService) Recent(ctx context.Context, userID string) ([]models.DestinationSearch, error) {
	rows := []models.DestinationSearch{}
	err := s.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").Order("id DESC").
		Limit(HistoryLimit).
		Find(&rows).Error
	return rows, err
}
