// Package bot implements the Telegram-facing service: command routing, date
// and league resolution, odds retrieval with snapshot caching, and chunked
// delivery of rendered reports.
package bot

import (
	"context"
	"log/slog"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nmakarov/pickbot/internal/pkg/metrics"
	"github.com/nmakarov/pickbot/internal/pkg/models"
	"github.com/nmakarov/pickbot/internal/pkg/storage"
)

// Telegram is the message-sending side of the bot API.
type Telegram interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// EventSource supplies the odds snapshot for one sport and UTC day.
type EventSource interface {
	FetchEvents(ctx context.Context, sportKey, date string) ([]models.Event, error)
}

// PrefsStore persists per-chat defaults. May be nil on the Service when no
// database is configured.
type PrefsStore interface {
	Get(ctx context.Context, chatID int64) (storage.ChatPrefs, error)
	SetLeague(ctx context.Context, chatID int64, league string) error
	SetTimezone(ctx context.Context, chatID int64, zone string) error
}

// SnapshotCache is the optional odds snapshot cache. May be nil.
type SnapshotCache interface {
	Get(ctx context.Context, sportKey, date string) ([]models.Event, bool, error)
	Put(ctx context.Context, sportKey, date string, events []models.Event) error
}

// Options carry the display defaults a chat can override via preferences.
type Options struct {
	DefaultLocation *time.Location
	DefaultLeague   string
	ChunkLimit      int
}

type Service struct {
	tg     Telegram
	source EventSource
	cache  SnapshotCache // nil when disabled
	prefs  PrefsStore    // nil when disabled
	opts   Options
}

func NewService(tg Telegram, source EventSource, cache SnapshotCache, prefs PrefsStore, opts Options) *Service {
	return &Service{
		tg:     tg,
		source: source,
		cache:  cache,
		prefs:  prefs,
		opts:   opts,
	}
}

// HandleUpdate routes one Telegram update. Non-message updates are ignored.
func (s *Service) HandleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.Message == nil || update.Message.Text == "" {
		return
	}
	s.handleMessage(ctx, update.Message)
}

// events returns the odds snapshot for (sportKey, date), consulting the cache
// first when one is configured. Cache failures degrade to a direct fetch and
// are never surfaced to the user.
func (s *Service) events(ctx context.Context, sportKey, date string) ([]models.Event, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, sportKey, date)
		switch {
		case err != nil:
			metrics.SnapshotCache.WithLabelValues("error").Inc()
			slog.Warn("Snapshot cache read failed", "sport", sportKey, "date", date, "error", err)
		case ok:
			metrics.SnapshotCache.WithLabelValues("hit").Inc()
			return cached, nil
		default:
			metrics.SnapshotCache.WithLabelValues("miss").Inc()
		}
	}

	events, err := s.source.FetchEvents(ctx, sportKey, date)
	if err != nil {
		metrics.OddsAPIRequests.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.OddsAPIRequests.WithLabelValues("ok").Inc()

	if s.cache != nil {
		if err := s.cache.Put(ctx, sportKey, date, events); err != nil {
			slog.Warn("Snapshot cache write failed", "sport", sportKey, "date", date, "error", err)
		}
	}
	return events, nil
}
