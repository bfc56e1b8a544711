package service

import (
	"context"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/state_repo"
)

type ICartService interface {
	GetCart(ctx context.Context, sessionID string) (model.Cart, error)
	AddItem(ctx context.Context, sessionID string, product model.Product) (model.Cart, error)
	RemoveItem(ctx context.Context, sessionID string, productID int) (model.Cart, error)
	SetQuantity(ctx context.Context, sessionID string, productID int, quantity int) (model.Cart, error)
	Clear(ctx context.Context, sessionID string) (model.Cart, error)
}

// CartService 購物車操作的編排層
// 購物車本身的變更邏輯在model.Cart，必定成功，只有狀態存取會失敗
// 每次狀態轉換只呼叫一次Save
type CartService struct {
	stateRepo state_repo.IStateRepository
}

func NewCartService(stateRepo state_repo.IStateRepository) *CartService {
	return &CartService{stateRepo: stateRepo}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (model.Cart, error) {
	state, err := s.stateRepo.Load(ctx, sessionID)
	if err != nil {
		return model.Cart{}, err
	}
	return state.Cart, nil
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, product model.Product) (model.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *model.Cart) {
		cart.AddItem(product)
	})
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID string, productID int) (model.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *model.Cart) {
		cart.RemoveItem(productID)
	})
}

func (s *CartService) SetQuantity(ctx context.Context, sessionID string, productID int, quantity int) (model.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *model.Cart) {
		cart.SetQuantity(productID, quantity)
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) (model.Cart, error) {
	return s.mutate(ctx, sessionID, func(cart *model.Cart) {
		cart.Clear()
	})
}

func (s *CartService) mutate(ctx context.Context, sessionID string, fn func(cart *model.Cart)) (model.Cart, error) {
	state, err := s.stateRepo.Load(ctx, sessionID)
	if err != nil {
		return model.Cart{}, err
	}

	fn(&state.Cart)

	if err := s.stateRepo.Save(ctx, sessionID, state); err != nil {
		return model.Cart{}, err
	}
	return state.Cart, nil
}

var _ ICartService = (*CartService)(nil)
