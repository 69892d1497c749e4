// Package rates fetches currency exchange rates.
package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

const defaultBaseURL = "https://api.exchangerate-api.com/v4"

type Client struct {
	httpClient *http.Client

	// BaseURL is overridable for tests.
	BaseURL string
}

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient, BaseURL: defaultBaseURL}
}

// Latest returns the rates table for a base currency code. Unlike the
// places client, a failure here is an error: the conversion screen has no
// meaningful fallback.
func (c *Client) Latest(ctx context.Context, base string) (map[string]float64, error) {
	code := strings.ToUpper(strings.TrimSpace(base))
	if code == "" {
		code = "USD"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/latest/"+code, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch rates for %s: %w", code, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch rates for %s: unexpected status %d", code, resp.StatusCode)
	}

	var body struct {
		Rates map[string]float64 `json:"rates"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode rates for %s: %w", code, err)
	}
	return body.Rates, nil
}
