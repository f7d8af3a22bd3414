package hyperstack

import (
	"context"
	"net/http"
)

// GetFlavors fetches the available instance flavors.
func (c *Client) GetFlavors(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, "/core/flavors", nil, nil)
}

// GetImages fetches the available system images.
func (c *Client) GetImages(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, "/core/images", nil, nil)
}

// GetGPUStocks fetches current and upcoming GPU availability.
func (c *Client) GetGPUStocks(ctx context.Context) (any, error) {
	return c.do(ctx, http.MethodGet, "/core/stocks", nil, nil)
}
