// Package models defines the odds feed data model: one Event per scheduled
// game, with the moneyline quotes every bookmaker offers for it. The JSON tags
// follow The Odds API v4 response format.
package models

// MarketH2H is the market key for head-to-head (moneyline) quotes. Other
// market kinds (spreads, totals) may appear in a feed and are ignored by the
// consensus logic.
const MarketH2H = "h2h"

// Event is one scheduled game with per-bookmaker quote sets.
// HomeTeam and AwayTeam are the exact names outcome names are matched against.
// CommenceTime stays a raw RFC3339 UTC string; for this fixed format lexical
// order equals chronological order, and parsing is deferred to display time.
type Event struct {
	ID           string      `json:"id"`
	SportKey     string      `json:"sport_key"`
	SportTitle   string      `json:"sport_title"`
	CommenceTime string      `json:"commence_time"`
	HomeTeam     string      `json:"home_team"`
	AwayTeam     string      `json:"away_team"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker is one book's quote set for an event.
type Bookmaker struct {
	Key        string   `json:"key"`
	Title      string   `json:"title"`
	LastUpdate string   `json:"last_update"`
	Markets    []Market `json:"markets"`
}

// Market is one betting market offered by a bookmaker.
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome is a single priced selection. Price is in American odds format
// (e.g. -110, +150).
type Outcome struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
