package repository_test

import (
	"context"
	"testing"
	"tour-booking-service/internal/repository"
	"tour-booking-service/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookEventMarkProcessed(t *testing.T) {
	db := testutil.OpenDB(t)
	repo := repository.NewWebhookEventRepository(db)
	ctx := context.Background()

	exists, err := repo.Exists(ctx, "evt_1")
	require.NoError(t, err)
	assert.False(t, exists)

	first, err := repo.MarkProcessed(ctx, "evt_1", "PAYMENT_CONFIRMED")
	require.NoError(t, err)
	assert.True(t, first)

	again, err := repo.MarkProcessed(ctx, "evt_1", "PAYMENT_CONFIRMED")
	require.NoError(t, err)
	assert.False(t, again)

	exists, err = repo.Exists(ctx, "evt_1")
	require.NoError(t, err)
	assert.True(t, exists)
}
