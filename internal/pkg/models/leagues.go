package models

import (
	"fmt"
	"sort"
	"strings"
)

// sportKeys maps the short league codes users type to The Odds API sport keys.
var sportKeys = map[string]string{
	"mlb": "baseball_mlb",
	"nfl": "americanfootball_nfl",
	"nba": "basketball_nba",
	"nhl": "icehockey_nhl",
}

// SportKeyFor resolves a league code (case-insensitive) to an API sport key.
func SportKeyFor(league string) (string, error) {
	key, ok := sportKeys[strings.ToLower(strings.TrimSpace(league))]
	if !ok {
		return "", fmt.Errorf("unknown league %q (supported: %s)", league, strings.Join(Leagues(), ", "))
	}
	return key, nil
}

// Leagues returns the supported league codes in stable order.
func Leagues() []string {
	leagues := make([]string, 0, len(sportKeys))
	for l := range sportKeys {
		leagues = append(leagues, l)
	}
	sort.Strings(leagues)
	return leagues
}
