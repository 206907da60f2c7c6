package destinations

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salahou-dine/hon-hon/models"
)

func strPtr(s string) *string { return &s }

func newTestRanker(p Provider, interests []string, consent bool, fb []models.Feedback) (*Ranker, *fakePrefs, *fakeConsents) {
	pref := &models.Preference{UserID: "guest:u1", Budget: models.BudgetMid}
	pref.SetInterests(interests)
	prefs := &fakePrefs{pref: pref}
	consents := &fakeConsents{enabled: consent}
	return NewRanker(p, prefs, consents, &fakeFeedback{rows: fb}), prefs, consents
}

func TestRankConsentDisabled(t *testing.T) {
	p := &stubProvider{}
	r, _, _ := newTestRanker(p, nil, false, nil)

	resp, err := r.Rank(context.Background(), RankRequest{UserID: "guest:u1", City: "Paris", Category: "hotel", Limit: 10})

	assert.ErrorIs(t, err, ErrConsentRequired)
	assert.Nil(t, resp)
	assert.Empty(t, p.calls)
}

func TestRankUnknownCategory(t *testing.T) {
	p := &stubProvider{}
	r, _, _ := newTestRanker(p, nil, true, nil)

	resp, err := r.Rank(context.Background(), RankRequest{UserID: "guest:u1", City: "paris", Category: " Museum ", Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, "museum", resp.Category)
	assert.Equal(t, 0, resp.Count)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 5, resp.Limit)
	assert.Empty(t, p.calls)
}

func TestRankBudgetFallbackToPreference(t *testing.T) {
	p := &stubProvider{}
	r, _, _ := newTestRanker(p, nil, true, nil)

	resp, err := r.Rank(context.Background(), RankRequest{UserID: "guest:u1", City: "paris", Category: "hotel", Limit: 5})

	require.NoError(t, err)
	require.NotNil(t, resp.Budget)
	assert.Equal(t, "mid", *resp.Budget)
	assert.Equal(t, "Paris", resp.City)
}

func TestRankInvalidBudgetIgnored(t *testing.T) {
	p := &stubProvider{}
	r, _, _ := newTestRanker(p, nil, true, nil)

	resp, err := r.Rank(context.Background(), RankRequest{UserID: "guest:u1", City: "paris", Category: "hotel", Budget: strPtr("luxury"), Limit: 5})

	require.NoError(t, err)
	assert.Nil(t, resp.Budget)
	require.Len(t, p.budgets, 1)
	assert.Nil(t, p.budgets[0])
}

func TestRankRequestBudgetWins(t *testing.T) {
	p := &stubProvider{}
	r, _, _ := newTestRanker(p, nil, true, nil)

	resp, err := r.Rank(context.Background(), RankRequest{UserID: "guest:u1", City: "paris", Category: "hotel", Budget: strPtr(" HIGH "), Limit: 5})

	require.NoError(t, err)
	assert.Equal(t, "high", *resp.Budget)
}

func TestRankInterestBoostRestaurant(t *testing.T) {
	p := &stubProvider{items: map[string][]models.DestinationItem{
		"restaurant": {item("a", 3.8, 0.5), item("b", 4.7, 2.0), item("c", 4.7, 1.0)},
	}}
	r, _, _ := newTestRanker(p, []string{"food"}, true, nil)

	resp, err := r.Rank(context.Background(), RankRequest{UserID: "guest:u1", City: "paris", Category: "restaurant", Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, itemIDs(resp.Items))
}

func TestInterestBoostAndSortByQuality(t *testing.T) {
	items := []models.DestinationItem{item("a", 3.8, 0.5), item("b", 4.7, 2.0)}

	assert.False(t, InterestBoost("hotel", []string{"food", "culture"}))
	assert.False(t, InterestBoost("restaurant", []string{"culture"}))
	assert.True(t, InterestBoost("activity", []string{"nature"}))

	SortByQuality(items)
	assert.Equal(t, []string{"b", "a"}, itemIDs(items))
}

func TestRankFeedbackDominates(t *testing.T) {
	p := &stubProvider{items: map[string][]models.DestinationItem{
		"hotel": {item("near", 4.0, 0.3), item("best", 4.9, 1.0), item("liked", 3.6, 6.0), item("hated", 4.9, 0.3)},
	}}
	fb := []models.Feedback{
		{UserID: "guest:u1", ItemID: "liked", City: "paris", Category: "hotel", Action: "like"},
		{UserID: "guest:u1", ItemID: "hated", City: "paris", Category: "hotel", Action: "dislike"},
		{UserID: "guest:u1", ItemID: "near", City: "paris", Category: "hotel", Action: "clicked"},
		{UserID: "guest:u2", ItemID: "best", City: "paris", Category: "hotel", Action: "dislike"},
	}
	r, _, _ := newTestRanker(p, nil, true, fb)

	resp, err := r.Rank(context.Background(), RankRequest{UserID: "guest:u1", City: " Paris ", Category: "hotel", Limit: 10})

	require.NoError(t, err)
	assert.Equal(t, []string{"liked", "best", "near", "hated"}, itemIDs(resp.Items))
	assert.Equal(t, 4, resp.Count)
}

func TestApplyFeedbackStableOnTies(t *testing.T) {
	items := []models.DestinationItem{item("x", 4.0, 1.0), item("y", 4.0, 1.0), item("z", 4.0, 1.0)}

	ApplyFeedback(items, nil)

	assert.Equal(t, []string{"x", "y", "z"}, itemIDs(items))
}

func TestRankProviderErrorSurfaces(t *testing.T) {
	p := &stubProvider{err: errProviderDown}
	r, _, _ := newTestRanker(p, nil, true, nil)

	_, err := r.Rank(context.Background(), RankRequest{UserID: "guest:u1", City: "paris", Category: "hotel", Limit: 5})

	assert.ErrorIs(t, err, errProviderDown)
}

func TestRankArrival(t *testing.T) {
	p := &stubProvider{items: map[string][]models.DestinationItem{
		"hotel":      {item("h1", 4.0, 1.0), item("h2", 4.5, 2.0)},
		"restaurant": {item("r1", 3.9, 0.5), item("r2", 4.8, 3.0)},
		"transport":  {item("t1", 4.1, 0.2)},
		"activity":   {item("a1", 3.7, 0.4), item("a2", 4.6, 5.0)},
	}}
	fb := []models.Feedback{{UserID: "guest:u1", ItemID: "t1", City: "rome", Category: "transport", Action: "dislike"}}
	r, prefs, consents := newTestRanker(p, []string{"food"}, true, fb)

	resp, err := r.RankArrival(context.Background(), ArrivalRequest{UserID: "guest:u1", City: "rome", LimitPerCategory: 4})

	require.NoError(t, err)
	assert.Equal(t, "Rome", resp.City)
	assert.Equal(t, []string{"food"}, resp.Interests)
	require.Len(t, resp.Sections, 4)
	assert.Equal(t, []string{"h2", "h1"}, itemIDs(resp.Sections["hotel"]))
	assert.Equal(t, []string{"r2", "r1"}, itemIDs(resp.Sections["restaurant"]))
	assert.Equal(t, []string{"a2", "a1"}, itemIDs(resp.Sections["activity"]))
	assert.Equal(t, []string{"t1"}, itemIDs(resp.Sections["transport"]))
	assert.ElementsMatch(t, models.ArrivalCategories, p.calls)
	assert.Equal(t, 1, prefs.calls)
	assert.Equal(t, 1, consents.calls)
}

func TestRankArrivalConsentDisabled(t *testing.T) {
	p := &stubProvider{}
	r, _, _ := newTestRanker(p, nil, false, nil)

	_, err := r.RankArrival(context.Background(), ArrivalRequest{UserID: "guest:u1", City: "rome", LimitPerCategory: 4})

	assert.ErrorIs(t, err, ErrConsentRequired)
	assert.Empty(t, p.calls)
}

func TestRankArrivalProviderError(t *testing.T) {
	p := &stubProvider{err: errProviderDown}
	r, _, _ := newTestRanker(p, nil, true, nil)

	_, err := r.RankArrival(context.Background(), ArrivalRequest{UserID: "guest:u1", City: "rome", LimitPerCategory: 4})

	assert.ErrorIs(t, err, errProviderDown)
}
