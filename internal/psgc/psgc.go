// Package psgc wraps the public Philippine Standard Geographic Code API
// used to populate the province picker on the address forms.
package psgc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is the third-party PSGC mirror.
const DefaultBaseURL = "https://psgc.gitlab.io/api"

// Province is the reshaped record handed to the frontend.
type Province struct {
	Code       string `json:"code"`
	Name       string `json:"name"`
	RegionCode string `json:"regionCode"`
}

// Client fetches geographic records from the upstream API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient returns a client against the default upstream with a
// sensible timeout.
func NewClient() *Client {
	return &Client{
		BaseURL:    DefaultBaseURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Provinces fetches the full province list, reshaped to just the fields
// the frontend uses.
func (c *Client) Provinces(ctx context.Context) ([]Province, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/provinces/", nil)
	if err != nil {
		return nil, err
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("upstream returned status %d", res.StatusCode)
	}

	var provinces []Province
	if err := json.NewDecoder(res.Body).Decode(&provinces); err != nil {
		return nil, err
	}
	return provinces, nil
}
