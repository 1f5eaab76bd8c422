// Package catalog fetches products from the external product API. The
// catalog is read-only and treated as an opaque collaborator: a failed
// fetch degrades to an empty product view, with no retry.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/models"
)

// DefaultBaseURL is the public demo product API.
const DefaultBaseURL = "https://fakestoreapi.com"

type Client struct {
	base string
	http *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		base: baseURL,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

// Products fetches the full product list.
func (c *Client) Products(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.get(ctx, c.base+"/products", &products); err != nil {
		zap.L().Warn("product list fetch failed", zap.Error(err))
		return nil, err
	}
	return products, nil
}

// Product fetches a single product by id. A missing product comes back
// as (nil, nil).
func (c *Client) Product(ctx context.Context, id int) (*models.Product, error) {
	var product models.Product
	err := c.get(ctx, fmt.Sprintf("%s/products/%d", c.base, id), &product)
	if err != nil {
		if errors.Is(err, errNotFound) || errors.Is(err, io.EOF) {
			return nil, nil
		}
		zap.L().Warn("product fetch failed", zap.Int("id", id), zap.Error(err))
		return nil, err
	}
	if product.ID == 0 {
		// the demo API answers 200 with an empty or null body for unknown ids
		return nil, nil
	}
	return &product, nil
}

var errNotFound = fmt.Errorf("product not found")

func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return errNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("catalog responded %d", resp.StatusCode)
	}
	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("decode catalog response: %w", err)
	}
	return nil
}
