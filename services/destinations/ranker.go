package destinations

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/salahou-dine/hon-hon/models"
	"github.com/salahou-dine/hon-hon/utils"
)

// ErrConsentRequired пользователь отключил рекомендации по направлению
var ErrConsentRequired = errors.New("destination recommendations disabled (consent required)")

const (
	feedbackLikeBoost    = 100
	feedbackDislikeBoost = -100
)

type PreferenceStore interface {
	GetOrCreateDefault(ctx context.Context, userID string) (*models.Preference, error)
}

type ConsentStore interface {
	GetOrCreateDefault(ctx context.Context, userID string) (*models.Consent, error)
}

type FeedbackStore interface {
	// ListFor отзывы пользователя по городу (в нижнем регистре) и категории
	ListFor(ctx context.Context, userID, city, category string) ([]models.Feedback, error)
}

type RankRequest struct {
	UserID   string
	City     string
	Category string
	Budget   *string
	Limit    int
}

type ArrivalRequest struct {
	UserID           string
	City             string
	Budget           *string
	LimitPerCategory int
}

// Ranker персонализирует выдачу провайдера: бюджет из предпочтений,
// буст по интересам, затем лайки/дизлайки пользователя.
type Ranker struct {
	provider    Provider
	preferences PreferenceStore
	consents    ConsentStore
	feedback    FeedbackStore
}

func NewRanker(provider Provider, preferences PreferenceStore, consents ConsentStore, feedback FeedbackStore) *Ranker {
	return &Ranker{
		provider:    provider,
		preferences: preferences,
		consents:    consents,
		feedback:    feedback,
	}
}

func (r *Ranker) Rank(ctx context.Context, req RankRequest) (*models.DestinationRecoResponse, error) {
	city := strings.TrimSpace(req.City)

	if err := r.ensureConsent(ctx, req.UserID); err != nil {
		return nil, err
	}

	pref, err := r.preferences.GetOrCreateDefault(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}

	budget := req.Budget
	if budget == nil && pref.Budget != "" {
		b := pref.Budget
		budget = &b
	}

	category := strings.ToLower(strings.TrimSpace(req.Category))
	if !models.IsValidCategory(category) {
		return &models.DestinationRecoResponse{
			City:     req.City,
			Category: category,
			Budget:   budget,
			Limit:    req.Limit,
			Count:    0,
			Items:    []models.DestinationItem{},
		}, nil
	}

	budget = normalizeBudgetPtr(budget)

	items, err := r.rankCategory(ctx, req.UserID, city, category, budget, req.Limit, pref.InterestList())
	if err != nil {
		return nil, err
	}

	return &models.DestinationRecoResponse{
		City:     utils.TitleCase(city),
		Category: category,
		Budget:   budget,
		Limit:    req.Limit,
		Count:    len(items),
		Items:    items,
	}, nil
}

// RankArrival четыре секции (hotel, restaurant, transport, activity) для экрана прилета.
// Согласие и предпочтения читаются один раз, секции запрашиваются параллельно.
func (r *Ranker) RankArrival(ctx context.Context, req ArrivalRequest) (*models.ArrivalResponse, error) {
	city := strings.TrimSpace(req.City)

	if err := r.ensureConsent(ctx, req.UserID); err != nil {
		return nil, err
	}

	pref, err := r.preferences.GetOrCreateDefault(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load preferences: %w", err)
	}
	interests := pref.InterestList()

	budget := req.Budget
	if budget == nil && pref.Budget != "" {
		b := pref.Budget
		budget = &b
	}
	budget = normalizeBudgetPtr(budget)

	results := make([][]models.DestinationItem, len(models.ArrivalCategories))
	g, gctx := errgroup.WithContext(ctx)
	for i, category := range models.ArrivalCategories {
		i, category := i, category
		g.Go(func() error {
			items, err := r.rankCategory(gctx, req.UserID, city, category, budget, req.LimitPerCategory, interests)
			if err != nil {
				return fmt.Errorf("%s section: %w", category, err)
			}
			results[i] = items
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sections := make(map[string][]models.DestinationItem, len(results))
	for i, category := range models.ArrivalCategories {
		sections[category] = results[i]
	}

	return &models.ArrivalResponse{
		City:      utils.TitleCase(city),
		Budget:    budget,
		Interests: interests,
		Sections:  sections,
	}, nil
}

func (r *Ranker) ensureConsent(ctx context.Context, userID string) error {
	consent, err := r.consents.GetOrCreateDefault(ctx, userID)
	if err != nil {
		return fmt.Errorf("load consent: %w", err)
	}
	if !consent.DestinationRecosEnabled {
		utils.ConsentDenials.Inc()
		return ErrConsentRequired
	}
	return nil
}

func (r *Ranker) rankCategory(ctx context.Context, userID, city, category string, budget *string, limit int, interests []string) ([]models.DestinationItem, error) {
	items, err := r.provider.Search(ctx, city, category, budget, limit)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.DestinationItem{}
	}

	if InterestBoost(category, interests) {
		SortByQuality(items)
	}

	feedback, err := r.feedback.ListFor(ctx, userID, strings.ToLower(city), category)
	if err != nil {
		return nil, fmt.Errorf("load feedback: %w", err)
	}
	ApplyFeedback(items, feedback)
	return items, nil
}

// InterestBoost food поднимает рестораны, culture или nature - активности
func InterestBoost(category string, interests []string) bool {
	has := func(tag string) bool {
		for _, i := range interests {
			if i == tag {
				return true
			}
		}
		return false
	}
	switch category {
	case models.CategoryRestaurant:
		return has("food")
	case models.CategoryActivity:
		return has("culture") || has("nature")
	}
	return false
}

// SortByQuality рейтинг по убыванию, при равенстве ближайшие
func SortByQuality(items []models.DestinationItem) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Rating != items[j].Rating {
			return items[i].Rating > items[j].Rating
		}
		return items[i].DistanceKm < items[j].DistanceKm
	})
}

func feedbackBoost(action string) int {
	switch action {
	case models.FeedbackLike:
		return feedbackLikeBoost
	case models.FeedbackDislike:
		return feedbackDislikeBoost
	}
	return 0
}

// ApplyFeedback финальная сортировка по (boost, rating, -distance) по убыванию.
// Лайк всегда выше любого рейтинга, дизлайк всегда ниже.
func ApplyFeedback(items []models.DestinationItem, feedback []models.Feedback) {
	boosts := make(map[string]int, len(feedback))
	for _, f := range feedback {
		boosts[f.ItemID] = feedbackBoost(f.Action)
	}

	sort.SliceStable(items, func(i, j int) bool {
		bi, bj := boosts[items[i].ID], boosts[items[j].ID]
		if bi != bj {
			return bi > bj
		}
		if items[i].Rating != items[j].Rating {
			return items[i].Rating > items[j].Rating
		}
		return items[i].DistanceKm < items[j].DistanceKm
	})
}
