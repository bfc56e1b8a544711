package service

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/state_repo"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionResetDiscardsState(t *testing.T) {
	ctx := context.Background()
	stateRepo := state_repo.NewMemStateRepo()
	cartService := NewCartService(stateRepo)
	sessionService := NewSessionService(stateRepo)

	_, err := cartService.AddItem(ctx, testSessionID, model.Product{ID: 1, Price: decimal.NewFromInt(5)})
	require.NoError(t, err)

	require.NoError(t, sessionService.Reset(ctx, testSessionID))

	cart, err := cartService.GetCart(ctx, testSessionID)
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())
}

// 只重置自己的session
func TestSessionResetLeavesOtherSessionsAlone(t *testing.T) {
	ctx := context.Background()
	stateRepo := state_repo.NewMemStateRepo()
	cartService := NewCartService(stateRepo)
	sessionService := NewSessionService(stateRepo)

	_, err := cartService.AddItem(ctx, "session-other", model.Product{ID: 1, Price: decimal.NewFromInt(5)})
	require.NoError(t, err)

	require.NoError(t, sessionService.Reset(ctx, testSessionID))

	cart, err := cartService.GetCart(ctx, "session-other")
	require.NoError(t, err)
	assert.Equal(t, 1, cart.ItemCount)
}
