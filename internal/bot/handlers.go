package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/nmakarov/pickbot/internal/pkg/metrics"
	"github.com/nmakarov/pickbot/internal/pkg/models"
	"github.com/nmakarov/pickbot/internal/pkg/report"
	"github.com/nmakarov/pickbot/internal/pkg/storage"
)

func (s *Service) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if !message.IsCommand() {
		s.sendHelp(message.Chat.ID)
		return
	}

	command := message.Command()
	args := strings.Fields(message.CommandArguments())

	var err error
	switch command {
	case "start", "help":
		s.sendHelp(message.Chat.ID)
	case "games":
		err = s.handleReport(ctx, message.Chat.ID, args, false)
	case "predict":
		err = s.handleReport(ctx, message.Chat.ID, args, true)
	case "setleague":
		err = s.handleSetLeague(ctx, message.Chat.ID, args)
	case "settz":
		err = s.handleSetTimezone(ctx, message.Chat.ID, args)
	default:
		s.reply(message.Chat.ID, "Unknown command. Use /help to see available commands.")
		return
	}

	if err != nil {
		metrics.CommandsTotal.WithLabelValues(command, "error").Inc()
		slog.Error("Command failed", "command", command, "chat", message.Chat.ID, "error", err)
		s.reply(message.Chat.ID, fmt.Sprintf("Error: %v", err))
		return
	}
	metrics.CommandsTotal.WithLabelValues(command, "ok").Inc()
}

// handleReport serves /games and /predict: resolve date, league and timezone,
// fetch the snapshot, render, chunk, send.
func (s *Service) handleReport(ctx context.Context, chatID int64, args []string, withPicks bool) error {
	prefs := s.chatPrefs(ctx, chatID)
	loc := s.location(prefs)

	dateArg := "today"
	league := s.opts.DefaultLeague
	if prefs.League != "" {
		league = prefs.League
	}
	if len(args) > 0 {
		dateArg = args[0]
	}
	if len(args) > 1 {
		league = args[1]
	}
	if league == "" {
		return fmt.Errorf("no league given and no default set; use /games <date> <league> or /setleague")
	}

	sportKey, err := models.SportKeyFor(league)
	if err != nil {
		return err
	}
	date, err := ResolveDate(dateArg, time.Now(), loc)
	if err != nil {
		return err
	}

	s.send(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))

	events, err := s.events(ctx, sportKey, date)
	if err != nil {
		return err
	}

	formatter := report.NewFormatter(loc)
	var body string
	kind := "games"
	if withPicks {
		kind = "predictions"
		body, err = formatter.RenderPredictions(events)
	} else {
		body, err = formatter.RenderGames(events)
	}
	if err != nil {
		return err
	}

	header := fmt.Sprintf("%s %s for %s (%s):", strings.ToUpper(league), kind, date, loc.String())
	for _, chunk := range report.ChunkText(header+"\n\n"+body, s.opts.ChunkLimit) {
		s.reply(chatID, chunk)
	}
	return nil
}

func (s *Service) handleSetLeague(ctx context.Context, chatID int64, args []string) error {
	if s.prefs == nil {
		return fmt.Errorf("preferences storage is not configured")
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: /setleague <%s>", strings.Join(models.Leagues(), "|"))
	}
	league := strings.ToLower(args[0])
	if _, err := models.SportKeyFor(league); err != nil {
		return err
	}
	if err := s.prefs.SetLeague(ctx, chatID, league); err != nil {
		return err
	}
	s.reply(chatID, fmt.Sprintf("Default league set to %s.", strings.ToUpper(league)))
	return nil
}

func (s *Service) handleSetTimezone(ctx context.Context, chatID int64, args []string) error {
	if s.prefs == nil {
		return fmt.Errorf("preferences storage is not configured")
	}
	if len(args) != 1 {
		return fmt.Errorf("usage: /settz <IANA zone>, e.g. /settz America/Toronto")
	}
	zone := args[0]
	if _, err := time.LoadLocation(zone); err != nil {
		return fmt.Errorf("unknown timezone %q", zone)
	}
	if err := s.prefs.SetTimezone(ctx, chatID, zone); err != nil {
		return err
	}
	s.reply(chatID, fmt.Sprintf("Display timezone set to %s.", zone))
	return nil
}

// chatPrefs loads stored preferences; lookup failures degrade to defaults.
func (s *Service) chatPrefs(ctx context.Context, chatID int64) storage.ChatPrefs {
	if s.prefs == nil {
		return storage.ChatPrefs{}
	}
	prefs, err := s.prefs.Get(ctx, chatID)
	if err != nil {
		slog.Warn("Failed to load chat prefs", "chat", chatID, "error", err)
		return storage.ChatPrefs{}
	}
	return prefs
}

// location resolves the display zone: chat preference first, config default
// otherwise. A stored zone that no longer loads falls back to the default.
func (s *Service) location(prefs storage.ChatPrefs) *time.Location {
	if prefs.Timezone != "" {
		loc, err := time.LoadLocation(prefs.Timezone)
		if err == nil {
			return loc
		}
		slog.Warn("Stored timezone no longer loads, using default", "zone", prefs.Timezone, "error", err)
	}
	return s.opts.DefaultLocation
}

func (s *Service) sendHelp(chatID int64) {
	help := `I list MLB/NFL/NBA/NHL games and predict winners from bookmaker consensus.

Commands:
• /games <today|YYYY-MM-DD> <league> — schedule for a date
• /predict <today|YYYY-MM-DD> <league> — schedule with consensus picks
• /setleague <league> — set this chat's default league
• /settz <IANA zone> — set this chat's display timezone
• /help — show this message

Leagues: ` + strings.Join(models.Leagues(), ", ") + `

Arguments are optional once defaults are set, e.g. just "/predict".`
	s.reply(chatID, help)
}

func (s *Service) reply(chatID int64, text string) {
	s.send(tgbotapi.NewMessage(chatID, text))
	metrics.MessagesSent.Inc()
}

func (s *Service) send(c tgbotapi.Chattable) {
	if _, err := s.tg.Send(c); err != nil {
		slog.Error("Failed to send Telegram message", "error", err)
	}
}
