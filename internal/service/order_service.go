package service

import (
	"context"
	"errors"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/RoyceAzure/lab/storefront/internal/infra/repository/state_repo"
)

var ErrEmptyCart = errors.New("cart is empty")

type IOrderService interface {
	Checkout(ctx context.Context, sessionID string, info model.CustomerInfo) (model.Order, error)
	ListOrders(ctx context.Context, sessionID string) ([]model.Order, error)
}

// OrderService 訂單建立與歷史查詢
// 結帳是單一原子性的狀態轉換: 建立訂單 -> 寫入歷史 -> 清空購物車 -> 存檔一次
// 不依賴任何時間差，成功後購物車必定已清空
type OrderService struct {
	stateRepo state_repo.IStateRepository
}

func NewOrderService(stateRepo state_repo.IStateRepository) *OrderService {
	return &OrderService{stateRepo: stateRepo}
}

// Checkout 驗證失敗回傳model.ValidationErrors，空購物車回傳ErrEmptyCart
func (s *OrderService) Checkout(ctx context.Context, sessionID string, info model.CustomerInfo) (model.Order, error) {
	if errs := info.Validate(); errs != nil {
		return model.Order{}, errs
	}

	state, err := s.stateRepo.Load(ctx, sessionID)
	if err != nil {
		return model.Order{}, err
	}

	if state.Cart.IsEmpty() {
		return model.Order{}, ErrEmptyCart
	}

	totals := ComputeTotals(state.Cart)
	now := time.Now().UTC()

	order := model.Order{
		OrderID:      model.NewOrderID(now),
		CustomerInfo: info,
		Items:        model.CloneItems(state.Cart.Items),
		Subtotal:     totals.Subtotal,
		Shipping:     totals.Shipping,
		Tax:          totals.Tax,
		Total:        totals.GrandTotal,
		OrderDate:    now,
		Status:       model.OrderStatusCompleted,
	}

	// 最新的訂單放在最前面
	state.Orders = append([]model.Order{order}, state.Orders...)
	state.Cart.Clear()

	if err := s.stateRepo.Save(ctx, sessionID, state); err != nil {
		return model.Order{}, err
	}
	return order, nil
}

func (s *OrderService) ListOrders(ctx context.Context, sessionID string) ([]model.Order, error) {
	state, err := s.stateRepo.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return state.Orders, nil
}

var _ IOrderService = (*OrderService)(nil)
