package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"

	"github.com/nmakarov/pickbot/internal/pkg/config"
)

// ChatPrefs are per-chat defaults applied when a command omits its arguments.
// Empty fields mean "no preference stored".
type ChatPrefs struct {
	League   string
	Timezone string
}

// PostgresPrefsStorage stores ChatPrefs in PostgreSQL.
type PostgresPrefsStorage struct {
	db *sql.DB
}

// NewPostgresPrefsStorage opens the connection and initializes the schema.
func NewPostgresPrefsStorage(cfg *config.PostgresConfig) (*PostgresPrefsStorage, error) {
	if cfg.DSN == "" {
		return nil, fmt.Errorf("postgres DSN is required")
	}

	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	storage := &PostgresPrefsStorage{db: db}

	if err := storage.initSchema(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	slog.Info("PostgreSQL preferences storage initialized")
	return storage, nil
}

func (s *PostgresPrefsStorage) initSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS chat_prefs (
		chat_id BIGINT PRIMARY KEY,
		league VARCHAR(32) NOT NULL DEFAULT '',
		timezone VARCHAR(64) NOT NULL DEFAULT '',
		updated_at TIMESTAMP NOT NULL DEFAULT NOW()
	)`
	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create chat_prefs table: %w", err)
	}
	return nil
}

// Get returns the stored preferences for a chat, or the zero value when the
// chat has none.
func (s *PostgresPrefsStorage) Get(ctx context.Context, chatID int64) (ChatPrefs, error) {
	var prefs ChatPrefs
	err := s.db.QueryRowContext(ctx,
		`SELECT league, timezone FROM chat_prefs WHERE chat_id = $1`,
		chatID,
	).Scan(&prefs.League, &prefs.Timezone)
	if err == sql.ErrNoRows {
		return ChatPrefs{}, nil
	}
	if err != nil {
		return ChatPrefs{}, fmt.Errorf("failed to query chat prefs: %w", err)
	}
	return prefs, nil
}

// SetLeague upserts the default league for a chat.
func (s *PostgresPrefsStorage) SetLeague(ctx context.Context, chatID int64, league string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_prefs (chat_id, league, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (chat_id) DO UPDATE SET league = EXCLUDED.league, updated_at = NOW()`,
		chatID, league,
	)
	if err != nil {
		return fmt.Errorf("failed to store league preference: %w", err)
	}
	return nil
}

// SetTimezone upserts the display timezone for a chat.
func (s *PostgresPrefsStorage) SetTimezone(ctx context.Context, chatID int64, zone string) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO chat_prefs (chat_id, timezone, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (chat_id) DO UPDATE SET timezone = EXCLUDED.timezone, updated_at = NOW()`,
		chatID, zone,
	)
	if err != nil {
		return fmt.Errorf("failed to store timezone preference: %w", err)
	}
	return nil
}

func (s *PostgresPrefsStorage) Close() error {
	return s.db.Close()
}
