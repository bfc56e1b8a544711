package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/domain/model"
	"github.com/cenkalti/backoff/v4"
)

var (
	ErrCatalogUnavailable     = errors.New("catalog is unavailable")
	ErrCatalogInvalidResponse = errors.New("catalog returned an invalid response")
	ErrProductNotFound        = errors.New("product not found")
)

const (
	defaultTimeout  = 10 * time.Second
	maxRetries      = 2 // 共3次嘗試
	initialInterval = time.Second
)

// Client 外部商品目錄的HTTP client，唯讀
// 傳輸錯誤或非2xx會以指數退避重試，重試耗盡回傳ErrCatalogUnavailable
type Client struct {
	baseURL       string
	httpClient    *http.Client
	retryInterval time.Duration
}

type Option func(*Client)

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

func NewClient(baseURL string, options ...Option) *Client {
	c := &Client{
		baseURL:       baseURL,
		httpClient:    &http.Client{Timeout: defaultTimeout},
		retryInterval: initialInterval,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	var products []model.Product
	if err := c.getJSON(ctx, "/products", &products, requireList(&products)); err != nil {
		return nil, err
	}
	return products, nil
}

// requireList JSON null可以解進slice而不報錯，清單回應必須是真正的陣列
func requireList[T any](list *[]T) func() error {
	return func() error {
		if *list == nil {
			return fmt.Errorf("%w: expected a list", ErrCatalogInvalidResponse)
		}
		return nil
	}
}

func (c *Client) GetProduct(ctx context.Context, id int) (*model.Product, error) {
	var product model.Product
	validate := func() error {
		// fakestore的404有時body是空的200，id必須為正數才算合法回應
		if product.ID <= 0 {
			return fmt.Errorf("%w: missing product id", ErrCatalogInvalidResponse)
		}
		return nil
	}
	if err := c.getJSON(ctx, fmt.Sprintf("/products/%d", id), &product, validate); err != nil {
		return nil, err
	}
	return &product, nil
}

func (c *Client) ListCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := c.getJSON(ctx, "/products/categories", &categories, requireList(&categories)); err != nil {
		return nil, err
	}
	return categories, nil
}

func (c *Client) ListProductsByCategory(ctx context.Context, category string) ([]model.Product, error) {
	var products []model.Product
	path := fmt.Sprintf("/products/category/%s", url.PathEscape(category))
	if err := c.getJSON(ctx, path, &products, requireList(&products)); err != nil {
		return nil, err
	}
	return products, nil
}

// getJSON 發出GET並解析body，validate為解析後的額外形狀檢查，可為nil
func (c *Client) getJSON(ctx context.Context, path string, out any, validate func() error) error {
	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode == http.StatusNotFound {
			return backoff.Permanent(ErrProductNotFound)
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("unexpected status %d", resp.StatusCode)
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(body, out); err != nil {
			// body壞掉不重試，與傳輸錯誤區分開
			return backoff.Permanent(fmt.Errorf("%w: %v", ErrCatalogInvalidResponse, err))
		}
		if validate != nil {
			if err := validate(); err != nil {
				return backoff.Permanent(err)
			}
		}
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(c.newRetryBackOff(), ctx))
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrProductNotFound) || errors.Is(err, ErrCatalogInvalidResponse) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrCatalogUnavailable, err)
}

// 指數退避 1s -> 2s，含首次共3次嘗試
func (c *Client) newRetryBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.retryInterval
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxInterval = 4 * c.retryInterval
	return backoff.WithMaxRetries(b, maxRetries)
}
