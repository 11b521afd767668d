// Package metrics holds the Prometheus instrumentation shared by the bot and
// its collaborators. Collectors are registered on the default registry and
// exposed by the health server's /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CommandsTotal counts handled chat commands by command name and outcome
	// ("ok" or "error").
	CommandsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pickbot_commands_total",
		Help: "Chat commands handled, by command and outcome.",
	}, []string{"command", "outcome"})

	// OddsAPIRequests counts upstream odds API calls by result
	// ("ok", "error").
	OddsAPIRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pickbot_oddsapi_requests_total",
		Help: "Requests made to the odds API, by result.",
	}, []string{"result"})

	// SnapshotCache counts snapshot cache lookups by result
	// ("hit", "miss", "error").
	SnapshotCache = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pickbot_snapshot_cache_total",
		Help: "Odds snapshot cache lookups, by result.",
	}, []string{"result"})

	// MessagesSent counts Telegram messages delivered to users.
	MessagesSent = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pickbot_messages_sent_total",
		Help: "Telegram messages sent.",
	})
)
