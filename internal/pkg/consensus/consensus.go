// Package consensus turns per-bookmaker moneyline quotes into a single
// best-estimate pick per event: every quote becomes an implied win
// probability, probabilities are grouped by team name, and the team with the
// higher cross-bookmaker mean wins the pick.
package consensus

import (
	"math"

	"github.com/nmakarov/pickbot/internal/pkg/models"
)

// Implied converts an American moneyline price to an implied win probability.
// Negative prices are favorites: -ml / (-ml + 100). Zero and positive prices
// use 100 / (ml + 100). Non-finite input (NaN, ±Inf) has no probability and
// returns ok=false; callers must treat that as "no data", not as an error.
func Implied(ml float64) (float64, bool) {
	if math.IsNaN(ml) || math.IsInf(ml, 0) {
		return 0, false
	}
	if ml < 0 {
		return -ml / (-ml + 100), true
	}
	return 100 / (ml + 100), true
}

// Average is the arithmetic mean of collected probabilities for one team.
// Samples == 0 means no usable quote was seen; Mean is meaningless then.
type Average struct {
	Mean    float64
	Samples int
}

// Present reports whether any probability was collected.
func (a Average) Present() bool { return a.Samples > 0 }

// Pick is the consensus result for one event. Winner is empty when neither
// side had a usable quote. Confidence is the winner's average probability.
type Pick struct {
	Winner     string
	Confidence float64
	Averages   map[string]Average // keyed by the event's home/away names
}

// HasWinner reports whether a pick was determined.
func (p Pick) HasWinner() bool { return p.Winner != "" }

// BestPick aggregates all h2h quotes of an event into a Pick.
//
// Outcome names must match the event's home/away name exactly (case- and
// whitespace-sensitive); outcomes that match neither are skipped silently, as
// are quotes with no implied probability. When both averages are present the
// strictly higher one wins; at exactly equal averages home is selected.
func BestPick(event models.Event) Pick {
	sums := map[string]float64{event.HomeTeam: 0, event.AwayTeam: 0}
	counts := map[string]int{event.HomeTeam: 0, event.AwayTeam: 0}

	for _, book := range event.Bookmakers {
		for _, market := range book.Markets {
			if market.Key != models.MarketH2H {
				continue
			}
			for _, outcome := range market.Outcomes {
				p, ok := Implied(outcome.Price)
				if !ok {
					continue
				}
				if _, tracked := counts[outcome.Name]; !tracked {
					continue
				}
				sums[outcome.Name] += p
				counts[outcome.Name]++
			}
		}
	}

	averages := make(map[string]Average, 2)
	for team, n := range counts {
		avg := Average{Samples: n}
		if n > 0 {
			avg.Mean = sums[team] / float64(n)
		}
		averages[team] = avg
	}

	home := averages[event.HomeTeam]
	away := averages[event.AwayTeam]
	pick := Pick{Averages: averages}

	switch {
	case home.Present() && away.Present():
		// Strict comparison in away's favor only: ties go to home.
		if away.Mean > home.Mean {
			pick.Winner = event.AwayTeam
			pick.Confidence = away.Mean
		} else {
			pick.Winner = event.HomeTeam
			pick.Confidence = home.Mean
		}
	case home.Present():
		pick.Winner = event.HomeTeam
		pick.Confidence = home.Mean
	case away.Present():
		pick.Winner = event.AwayTeam
		pick.Confidence = away.Mean
	}

	return pick
}
