package state_repo

import (
	"context"
	"testing"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type MemStateRepoTestSuite struct {
	suite.Suite
	ctx  context.Context
	repo *MemStateRepo
}

func (s *MemStateRepoTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = NewMemStateRepo()
}

func TestMemStateRepoTestSuite(t *testing.T) {
	suite.Run(t, new(MemStateRepoTestSuite))
}

func (s *MemStateRepoTestSuite) TestLoadUnknownSessionReturnsFreshState() {
	state, err := s.repo.Load(s.ctx, "nope")
	s.NoError(err)
	s.True(state.Cart.IsEmpty())
	s.Empty(state.Orders)
	s.False(state.Auth.Authenticated)
}

func (s *MemStateRepoTestSuite) TestSaveThenLoadRoundTrip() {
	state := model.NewSessionState()
	pen := model.Product{ID: 1, Title: "pen", Price: decimal.RequireFromString("2.50")}
	state.Cart.AddItem(pen)
	state.Cart.AddItem(pen)
	state.Auth.Authenticated = true
	state.Auth.Username = "admin"

	s.NoError(s.repo.Save(s.ctx, "sess-1", state))

	loaded, err := s.repo.Load(s.ctx, "sess-1")
	s.NoError(err)
	s.Equal(2, loaded.Cart.ItemCount)
	s.Equal("5.00", loaded.Cart.Total.StringFixed(2))
	s.True(loaded.Auth.Authenticated)
	s.Equal("admin", loaded.Auth.Username)
}

func (s *MemStateRepoTestSuite) TestSessionsAreIsolated() {
	a := model.NewSessionState()
	a.Cart.AddItem(model.Product{ID: 1, Price: decimal.NewFromInt(1)})
	s.NoError(s.repo.Save(s.ctx, "a", a))

	b, err := s.repo.Load(s.ctx, "b")
	s.NoError(err)
	s.True(b.Cart.IsEmpty())
}

func (s *MemStateRepoTestSuite) TestDeleteRemovesState() {
	state := model.NewSessionState()
	state.Cart.AddItem(model.Product{ID: 1, Price: decimal.NewFromInt(1)})
	s.NoError(s.repo.Save(s.ctx, "sess-1", state))

	s.NoError(s.repo.Delete(s.ctx, "sess-1"))

	loaded, err := s.repo.Load(s.ctx, "sess-1")
	s.NoError(err)
	s.True(loaded.Cart.IsEmpty())
}

// Save後改原物件、Load後改回傳物件都不能影響store
func (s *MemStateRepoTestSuite) TestStoredStateIsIsolatedFromCallers() {
	state := model.NewSessionState()
	state.Cart.AddItem(model.Product{ID: 1, Price: decimal.NewFromInt(1)})
	s.NoError(s.repo.Save(s.ctx, "sess-1", state))

	state.Cart.Clear()

	loaded, err := s.repo.Load(s.ctx, "sess-1")
	s.NoError(err)
	s.Equal(1, loaded.Cart.ItemCount)

	loaded.Cart.AddItem(model.Product{ID: 2, Price: decimal.NewFromInt(3)})

	again, err := s.repo.Load(s.ctx, "sess-1")
	s.NoError(err)
	s.Equal(1, again.Cart.ItemCount)
}
