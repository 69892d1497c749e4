// Package places wraps the Google Places and Geocoding HTTP APIs.
//
// Lookups are best-effort: any transport or decode failure comes back as
// an empty result with a log line, never as an error the caller has to
// handle.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"golang.org/x/time/rate"

	"github.com/roamplan/travel-planner-api/internal/domain"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

type Client struct {
	httpClient *http.Client
	apiKey     string
	logger     *slog.Logger
	limiter    *rate.Limiter

	// BaseURL is overridable for tests and proxies.
	BaseURL string
}

func NewClient(httpClient *http.Client, apiKey string, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		httpClient: httpClient,
		apiKey:     apiKey,
		logger:     logger,
		limiter:    rate.NewLimiter(10, 20),
		BaseURL:    defaultBaseURL,
	}
}

type textSearchResponse struct {
	Results []struct {
		PlaceID          string `json:"place_id"`
		Name             string `json:"name"`
		FormattedAddress string `json:"formatted_address"`
		Photos           []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
		Geometry struct {
			Location domain.LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

type geocodeResponse struct {
	Results []struct {
		Geometry struct {
			Location domain.LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Search returns the top attractions for a destination. Failures return an
// empty slice.
func (c *Client) Search(ctx context.Context, destination string) []domain.Place {
	q := url.Values{}
	q.Set("query", "top attractions in "+destination)
	q.Set("key", c.apiKey)

	var body textSearchResponse
	if err := c.getJSON(ctx, c.BaseURL+"/place/textsearch/json?"+q.Encode(), &body); err != nil {
		c.logger.Warn("places search failed", "destination", destination, "err", err)
		return []domain.Place{}
	}

	out := make([]domain.Place, 0, len(body.Results))
	for _, r := range body.Results {
		p := domain.Place{
			ID:       r.PlaceID,
			Name:     r.Name,
			Address:  r.FormattedAddress,
			Location: r.Geometry.Location,
		}
		if len(r.Photos) > 0 {
			p.PhotoReference = r.Photos[0].PhotoReference
		}
		out = append(out, p)
	}
	return out
}

// Geocode resolves an address to coordinates, or nil when the address
// cannot be resolved.
func (c *Client) Geocode(ctx context.Context, address string) *domain.LatLng {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", c.apiKey)

	var body geocodeResponse
	if err := c.getJSON(ctx, c.BaseURL+"/geocode/json?"+q.Encode(), &body); err != nil {
		c.logger.Warn("geocode failed", "address", address, "err", err)
		return nil
	}
	if len(body.Results) == 0 {
		return nil
	}
	loc := body.Results[0].Geometry.Location
	return &loc
}

// PhotoURL builds the photo endpoint URL for a reference from Search.
func (c *Client) PhotoURL(photoReference string) string {
	q := url.Values{}
	q.Set("maxwidth", "400")
	q.Set("photoreference", photoReference)
	q.Set("key", c.apiKey)
	return c.BaseURL + "/place/photo?" + q.Encode()
}

func (c *Client) getJSON(ctx context.Context, rawURL string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
