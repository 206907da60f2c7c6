package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salahou-dine/hon-hon/models"
)

func TestPreferenceGetOrCreateDefault(t *testing.T) {
	svc := NewPreferenceService(newTestDB(t))
	ctx := context.Background()

	pref, err := svc.GetOrCreateDefault(ctx, "guest:p1")
	require.NoError(t, err)
	assert.Equal(t, models.BudgetMid, pref.Budget)
	assert.Equal(t, []string{}, pref.InterestList())

	again, err := svc.GetOrCreateDefault(ctx, "guest:p1")
	require.NoError(t, err)
	assert.Equal(t, pref.UserID, again.UserID)

	var count int64
	svc.DB.Model(&models.Preference{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestPreferenceUpsertNormalizes(t *testing.T) {
	svc := NewPreferenceService(newTestDB(t))
	ctx := context.Background()

	pref, err := svc.Upsert(ctx, "guest:p2", models.PreferenceRequest{
		Budget:    " HIGH ",
		Interests: []string{" Food", "culture", "food", "", "  "},
	})
	require.NoError(t, err)
	assert.Equal(t, "high", pref.Budget)
	assert.Equal(t, []string{"culture", "food"}, pref.InterestList())

	pref, err = svc.Upsert(ctx, "guest:p2", models.PreferenceRequest{Budget: "luxury", Interests: []string{"nature"}})
	require.NoError(t, err)
	assert.Equal(t, "mid", pref.Budget)

	stored, err := svc.GetOrCreateDefault(ctx, "guest:p2")
	require.NoError(t, err)
	assert.Equal(t, "mid", stored.Budget)
	assert.Equal(t, []string{"nature"}, stored.InterestList())
	assert.True(t, stored.HasInterest("nature"))
}
