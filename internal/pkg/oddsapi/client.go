// Package oddsapi fetches event and moneyline data from The Odds API v4.
package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/nmakarov/pickbot/internal/pkg/config"
	"github.com/nmakarov/pickbot/internal/pkg/models"
)

type Client struct {
	client  *http.Client
	config  *config.OddsAPIConfig
	baseURL string
}

func NewClient(cfg *config.OddsAPIConfig) *Client {
	return &Client{
		client: &http.Client{
			Timeout: cfg.Timeout.Std(),
		},
		config:  cfg,
		baseURL: cfg.BaseURL,
	}
}

// FetchEvents returns the events for one sport whose commence time falls
// within the given UTC day (date formatted as YYYY-MM-DD). Only h2h markets
// in American odds are requested. Transport failures, non-2xx statuses and
// malformed payloads are returned as distinct wrapped errors; the caller is
// expected to surface them to the user as-is.
func (c *Client) FetchEvents(ctx context.Context, sportKey, date string) ([]models.Event, error) {
	url := fmt.Sprintf("%s/sports/%s/odds", c.baseURL, sportKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("apiKey", c.config.APIKey)
	q.Set("regions", c.config.Regions)
	q.Set("markets", models.MarketH2H)
	q.Set("oddsFormat", "american")
	q.Set("dateFormat", "iso")
	q.Set("commenceTimeFrom", date+"T00:00:00Z")
	q.Set("commenceTimeTo", date+"T23:59:59Z")
	req.URL.RawQuery = q.Encode()

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("odds API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("odds API returned status %d: %s", resp.StatusCode, string(body))
	}

	var events []models.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("failed to decode odds API response: %w", err)
	}

	return events, nil
}
