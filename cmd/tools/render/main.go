// Command render fetches one day's games for a league and prints the
// formatted schedule (optionally with consensus picks) to stdout, bypassing
// Telegram. Useful for checking the feed and the formatting without a bot.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/nmakarov/pickbot/internal/bot"
	"github.com/nmakarov/pickbot/internal/pkg/config"
	"github.com/nmakarov/pickbot/internal/pkg/models"
	"github.com/nmakarov/pickbot/internal/pkg/oddsapi"
	"github.com/nmakarov/pickbot/internal/pkg/report"
)

func main() {
	var (
		configPath string
		date       string
		league     string
		predict    bool
		chunks     bool
	)
	flag.StringVar(&configPath, "config", "config.yaml", "Path to config file")
	flag.StringVar(&date, "date", "today", "Date: today or YYYY-MM-DD")
	flag.StringVar(&league, "league", "mlb", "League code (mlb, nfl, nba, nhl)")
	flag.BoolVar(&predict, "predict", false, "Include consensus picks")
	flag.BoolVar(&chunks, "chunks", false, "Print chunk boundaries as the bot would send them")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	loc, err := time.LoadLocation(cfg.Display.Timezone)
	if err != nil {
		log.Fatalf("Invalid display timezone %q: %v", cfg.Display.Timezone, err)
	}

	sportKey, err := models.SportKeyFor(league)
	if err != nil {
		log.Fatal(err)
	}
	day, err := bot.ResolveDate(date, time.Now(), loc)
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	events, err := oddsapi.NewClient(&cfg.OddsAPI).FetchEvents(ctx, sportKey, day)
	if err != nil {
		log.Fatalf("Fetch failed: %v", err)
	}

	formatter := report.NewFormatter(loc)
	var body string
	if predict {
		body, err = formatter.RenderPredictions(events)
	} else {
		body, err = formatter.RenderGames(events)
	}
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	if !chunks {
		fmt.Println(body)
		return
	}
	for i, chunk := range report.ChunkText(body, cfg.Display.ChunkLimit) {
		fmt.Fprintf(os.Stdout, "--- chunk %d (%d chars) ---\n%s\n", i+1, len(chunk), chunk)
	}
}
