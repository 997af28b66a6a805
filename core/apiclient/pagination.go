package apiclient

import (
	"context"
	"net/http"
)

// Paginated is the envelope list endpoints wrap their results in.
type Paginated[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// GetList fetches a list endpoint and unwraps its results array.
func GetList[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var page Paginated[T]
	if err := c.Do(ctx, http.MethodGet, path, nil, &page); err != nil {
		return nil, err
	}
	return page.Results, nil
}
