// Package report renders events and consensus picks as plain text for chat
// delivery, and splits long output into transport-safe chunks.
package report

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/nmakarov/pickbot/internal/pkg/consensus"
	"github.com/nmakarov/pickbot/internal/pkg/models"
)

// NoGamesMessage is the whole output when a query matches no events.
const NoGamesMessage = "No games found for that date."

const localTimeLayout = "2006-01-02 15:04"

// Formatter renders events in a fixed display timezone. The zone always comes
// from configuration, never from the process environment.
type Formatter struct {
	loc *time.Location
}

func NewFormatter(loc *time.Location) *Formatter {
	return &Formatter{loc: loc}
}

// RenderGames renders one line per event, sorted by start time.
func (f *Formatter) RenderGames(events []models.Event) (string, error) {
	return f.render(events, false)
}

// RenderPredictions renders the schedule plus a consensus pick line per event.
func (f *Formatter) RenderPredictions(events []models.Event) (string, error) {
	return f.render(events, true)
}

// render fails as a whole on the first malformed commence time: a timestamp
// that does not parse is an upstream contract violation, and partial output
// must not reach the user.
func (f *Formatter) render(events []models.Event, withPicks bool) (string, error) {
	if len(events) == 0 {
		return NoGamesMessage, nil
	}

	sorted := make([]models.Event, len(events))
	copy(sorted, events)
	// RFC3339 UTC strings order lexically the same as chronologically.
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CommenceTime < sorted[j].CommenceTime
	})

	lines := make([]string, 0, len(sorted)*2)
	for _, e := range sorted {
		startLocal, err := f.localTime(e.CommenceTime)
		if err != nil {
			return "", fmt.Errorf("event %s @ %s: %w", e.AwayTeam, e.HomeTeam, err)
		}
		lines = append(lines, fmt.Sprintf("• %s @ %s — %s", e.AwayTeam, e.HomeTeam, startLocal))

		if !withPicks {
			continue
		}
		pick := consensus.BestPick(e)
		if pick.HasWinner() {
			lines = append(lines, fmt.Sprintf("    Pick: %s  (home %s | away %s)  Confidence: %s",
				pick.Winner,
				formatPct(pick.Averages[e.HomeTeam]),
				formatPct(pick.Averages[e.AwayTeam]),
				fmt.Sprintf("%.1f%%", pick.Confidence*100)))
		} else {
			lines = append(lines, "    Pick: Not enough odds data yet.")
		}
	}

	return strings.Join(lines, "\n"), nil
}

func (f *Formatter) localTime(commenceTime string) (string, error) {
	t, err := time.Parse(time.RFC3339, commenceTime)
	if err != nil {
		return "", fmt.Errorf("malformed commence time %q: %w", commenceTime, err)
	}
	return t.In(f.loc).Format(localTimeLayout), nil
}

// formatPct renders an average as a one-decimal percentage, or "N/A" when no
// quote contributed to it.
func formatPct(a consensus.Average) string {
	if !a.Present() {
		return "N/A"
	}
	return fmt.Sprintf("%.1f%%", a.Mean*100)
}
