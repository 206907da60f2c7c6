package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salahou-dine/hon-hon/models"
)

func TestFeedbackUpsertIsIdempotent(t *testing.T) {
	svc := NewFeedbackService(newTestDB(t))
	ctx := context.Background()
	req := models.FeedbackRequest{ItemID: "hotel_paris_eco_lodge", Category: "hotel", City: " Paris ", Action: "like"}

	resp, err := svc.Upsert(ctx, "guest:f1", req)
	require.NoError(t, err)
	assert.Equal(t, "paris", resp.City)

	_, err = svc.Upsert(ctx, "guest:f1", req)
	require.NoError(t, err)

	rows, err := svc.ListFor(ctx, "guest:f1", "paris", "hotel")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "like", rows[0].Action)
}

func TestFeedbackLatestWins(t *testing.T) {
	svc := NewFeedbackService(newTestDB(t))
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "guest:f2", models.FeedbackRequest{ItemID: "item_1", Category: "hotel", City: "Rome", Action: "like"})
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, "guest:f2", models.FeedbackRequest{ItemID: "item_1", Category: "activity", City: "Milan", Action: "dislike"})
	require.NoError(t, err)

	rows, err := svc.List(ctx, "guest:f2", "", "")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "dislike", rows[0].Action)
	assert.Equal(t, "activity", rows[0].Category)
	assert.Equal(t, "milan", rows[0].City)

	old, err := svc.ListFor(ctx, "guest:f2", "rome", "hotel")
	require.NoError(t, err)
	assert.Empty(t, old)
}

func TestFeedbackListFilters(t *testing.T) {
	svc := NewFeedbackService(newTestDB(t))
	ctx := context.Background()

	for _, r := range []models.FeedbackRequest{
		{ItemID: "a_1", Category: "hotel", City: "Rome", Action: "like"},
		{ItemID: "a_2", Category: "restaurant", City: "Rome", Action: "clicked"},
		{ItemID: "a_3", Category: "hotel", City: "Oslo", Action: "dislike"},
	} {
		_, err := svc.Upsert(ctx, "guest:f3", r)
		require.NoError(t, err)
	}
	_, err := svc.Upsert(ctx, "guest:other", models.FeedbackRequest{ItemID: "a_1", Category: "hotel", City: "Rome", Action: "dislike"})
	require.NoError(t, err)

	all, err := svc.List(ctx, "guest:f3", "", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	rome, err := svc.List(ctx, "guest:f3", "ROME", "")
	require.NoError(t, err)
	assert.Len(t, rome, 2)

	hotels, err := svc.List(ctx, "guest:f3", "", "hotel")
	require.NoError(t, err)
	assert.Len(t, hotels, 2)
}
