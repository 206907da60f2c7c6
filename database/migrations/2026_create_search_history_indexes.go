package migrations

import "gorm.io/gorm"

// CreateSearchHistoryIndexes история читается по пользователю от новых к старым
func CreateSearchHistoryIndexes(db *gorm.DB) error {
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_destination_searches_user_created
			ON destination_searches(user_id, created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_destination_searches_item_ids
			ON destination_searches USING GIN ((item_ids::jsonb));
	`).Error; err != nil {
		return err
	}
	return nil
}
