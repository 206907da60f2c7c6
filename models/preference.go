package models

import (
	"encoding/json"
	"sort"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const (
	BudgetLow  = "low"
	BudgetMid  = "mid"
	BudgetHigh = "high"
)

// Preference бюджет и интересы пользователя, одна запись на пользователя
type Preference struct {
	UserID    string         `json:"user_id" gorm:"type:varchar(120);primaryKey"`
	Budget    string         `json:"budget" gorm:"type:varchar(10);not null"`
	Interests datatypes.JSON `json:"-"` // ["culture","food"]
	UpdatedAt time.Time      `json:"updated_at"`
}

// PreferenceRequest тело POST /preferences
type PreferenceRequest struct {
	Budget    string   `json:"budget"`
	Interests []string `json:"interests"`
}

// PreferenceResponse ответ GET/POST /preferences
type PreferenceResponse struct {
	UserID    string   `json:"user_id"`
	Budget    string   `json:"budget"`
	Interests []string `json:"interests"`
}

// IsValidBudget проверяет low/mid/high
func IsValidBudget(budget string) bool {
	switch budget {
	case BudgetLow, BudgetMid, BudgetHigh:
		return true
	}
	return false
}

// NormalizeBudget приводит к нижнему регистру; пустая строка если бюджет неизвестен
func NormalizeBudget(budget string) string {
	b := strings.ToLower(strings.TrimSpace(budget))
	if !IsValidBudget(b) {
		return ""
	}
	return b
}

// NormalizeInterests trim + lowercase, без пустых, без дублей, отсортировано
func NormalizeInterests(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, i := range raw {
		v := strings.ToLower(strings.TrimSpace(i))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// InterestList декодирует JSON-колонку; битые данные трактуются как пустой список
func (p *Preference) InterestList() []string {
	out := []string{}
	if len(p.Interests) == 0 {
		return out
	}
	if err := json.Unmarshal(p.Interests, &out); err != nil {
		return []string{}
	}
	return out
}

// SetInterests нормализует и сохраняет интересы
func (p *Preference) SetInterests(raw []string) {
	b, _ := json.Marshal(NormalizeInterests(raw))
	p.Interests = datatypes.JSON(b)
}

// HasInterest проверка тега (теги уже нормализованы)
func (p *Preference) HasInterest(tag string) bool {
	for _, i := range p.InterestList() {
		if i == tag {
			return true
		}
	}
	return false
}

func (p *Preference) ToResponse() PreferenceResponse {
	return PreferenceResponse{UserID: p.UserID, Budget: p.Budget, Interests: p.InterestList()}
}
