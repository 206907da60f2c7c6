package models

import "time"

const (
	FeedbackLike    = "like"
	FeedbackDislike = "dislike"
	FeedbackClicked = "clicked"
)

// Feedback реакция пользователя на элемент рекомендаций; одна запись на (user_id, item_id)
type Feedback struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"type:varchar(120);not null;uniqueIndex:uq_feedback_user_item,priority:1;index:ix_feedback_user_city_cat,priority:1"`
	ItemID    string    `json:"item_id" gorm:"type:varchar(255);not null;uniqueIndex:uq_feedback_user_item,priority:2"`
	Category  string    `json:"category" gorm:"type:varchar(20);not null;index:ix_feedback_user_city_cat,priority:3"`
	City      string    `json:"city" gorm:"type:varchar(120);not null;index:ix_feedback_user_city_cat,priority:2"`
	Action    string    `json:"action" gorm:"type:varchar(20);not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Feedback) TableName() string {
	return "feedback"
}

// FeedbackRequest тело POST /feedback
type FeedbackRequest struct {
	ItemID   string `json:"item_id" binding:"required,min=3"`
	Category string `json:"category" binding:"required,oneof=hotel restaurant activity transport"`
	City     string `json:"city" binding:"required,min=2"`
	Action   string `json:"action" binding:"required,oneof=like dislike clicked"`
}

// FeedbackResponse ответ POST /feedback
type FeedbackResponse struct {
	UserID   string `json:"user_id"`
	ItemID   string `json:"item_id"`
	Category string `json:"category"`
	City     string `json:"city"`
	Action   string `json:"action"`
}
