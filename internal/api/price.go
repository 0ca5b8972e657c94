package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// GetSimplePrice fetches GET /simple/price for one asset id and one vs_currency.
//
// The raw body is returned undecoded: the expected shape is
// {"<asset>": {"<currency>": <number>}} but validating it is left to the caller.
func (c *Client) GetSimplePrice(ctx context.Context, asset, currency string) ([]byte, error) {
	query := url.Values{}
	query.Set("ids", asset)
	query.Set("vs_currencies", currency)

	body, err := c.doRequest(ctx, http.MethodGet, "/simple/price", query)
	if err != nil {
		return nil, fmt.Errorf("get simple price: %w", err)
	}
	return body, nil
}
