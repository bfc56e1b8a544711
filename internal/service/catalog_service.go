package service

import (
	"context"
	"sync"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
)

type ICatalogClient interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int) (*model.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
}

type ICatalogService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id int) (*model.Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListProductsByCategory(ctx context.Context, category string) ([]model.Product, error)
}

const defaultFreshFor = time.Hour

// CatalogService 在catalog client之上加一層商品清單快取
// 快取只是減少對外部API的請求，過期重抓，不是正確性保證
type CatalogService struct {
	client   ICatalogClient
	freshFor time.Duration

	mu          sync.RWMutex
	products    []model.Product
	lastFetched time.Time
}

func NewCatalogService(client ICatalogClient, freshFor time.Duration) *CatalogService {
	if freshFor <= 0 {
		freshFor = defaultFreshFor
	}
	return &CatalogService{client: client, freshFor: freshFor}
}

func (s *CatalogService) ListProducts(ctx context.Context) ([]model.Product, error) {
	if products, ok := s.cachedProducts(); ok {
		return products, nil
	}

	products, err := s.client.ListProducts(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.products = products
	s.lastFetched = time.Now()
	s.mu.Unlock()

	return products, nil
}

// GetProduct 清單快取仍新鮮時直接從快取找，否則打單筆API
func (s *CatalogService) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	if products, ok := s.cachedProducts(); ok {
		for i := range products {
			if products[i].ID == id {
				product := products[i]
				return &product, nil
			}
		}
	}
	return s.client.GetProduct(ctx, id)
}

func (s *CatalogService) ListCategories(ctx context.Context) ([]string, error) {
	return s.client.ListCategories(ctx)
}

func (s *CatalogService) ListProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	return s.client.ListProductsByCategory(ctx, category)
}

func (s *CatalogService) cachedProducts() ([]model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.lastFetched.IsZero() || time.Since(s.lastFetched) >= s.freshFor {
		return nil, false
	}
	return s.products, true
}

var _ ICatalogService = (*CatalogService)(nil)
