package destinations

import (
	"context"
	"errors"
	"sync"

	"github.com/salahou-dine/hon-hon/models"
)

type fakePrefs struct {
	pref  *models.Preference
	calls int
	mu    sync.Mutex
}

func (f *fakePrefs) GetOrCreateDefault(ctx context.Context, userID string) (*models.Preference, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.pref == nil {
		f.pref = &models.Preference{UserID: userID, Budget: models.BudgetMid}
		f.pref.SetInterests(nil)
	}
	return f.pref, nil
}

type fakeConsents struct {
	enabled bool
	calls   int
}

func (f *fakeConsents) GetOrCreateDefault(ctx context.Context, userID string) (*models.Consent, error) {
	f.calls++
	return &models.Consent{UserID: userID, DestinationRecosEnabled: f.enabled}, nil
}

type fakeFeedback struct {
	rows []models.Feedback
}

func (f *fakeFeedback) ListFor(ctx context.Context, userID, city, category string) ([]models.Feedback, error) {
	var out []models.Feedback
	for _, r := range f.rows {
		if r.UserID == userID && r.City == city && r.Category == category {
			out = append(out, r)
		}
	}
	return out, nil
}

// stubProvider возвращает фиксированные элементы и запоминает запросы
type stubProvider struct {
	mu      sync.Mutex
	items   map[string][]models.DestinationItem
	calls   []string
	budgets []*string
	err     error
}

func (s *stubProvider) Search(ctx context.Context, city, category string, budget *string, limit int) ([]models.DestinationItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, category)
	s.budgets = append(s.budgets, budget)
	if s.err != nil {
		return nil, s.err
	}
	src := s.items[category]
	out := make([]models.DestinationItem, len(src))
	copy(out, src)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

var errProviderDown = errors.New("provider down")

func item(id string, rating, distance float64) models.DestinationItem {
	return models.DestinationItem{ID: id, Rating: rating, DistanceKm: distance, Source: "test"}
}

func itemIDs(items []models.DestinationItem) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.ID)
	}
	return out
}
