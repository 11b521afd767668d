package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Telegram TelegramConfig `yaml:"telegram"`
	OddsAPI  OddsAPIConfig  `yaml:"odds_api"`
	Display  DisplayConfig  `yaml:"display"`
	Redis    RedisConfig    `yaml:"redis"`
	Postgres PostgresConfig `yaml:"postgres"`
	Health   HealthConfig   `yaml:"health"`
	Logging  LoggingConfig  `yaml:"logging"`
}

type TelegramConfig struct {
	Token         string `yaml:"token"`          // or TELEGRAM_BOT_TOKEN env var
	Mode          string `yaml:"mode"`           // "polling" (default) or "webhook"
	WebhookAddr   string `yaml:"webhook_addr"`   // listen address for webhook mode, e.g. ":8443"
	WebhookSecret string `yaml:"webhook_secret"` // path secret for webhook mode, or WEBHOOK_SECRET env var
	UpdateTimeout int    `yaml:"update_timeout"` // long-poll timeout in seconds (polling mode)
}

type OddsAPIConfig struct {
	BaseURL string   `yaml:"base_url"` // default https://api.the-odds-api.com/v4
	APIKey  string   `yaml:"api_key"`  // or ODDS_API_KEY env var
	Regions string   `yaml:"regions"`  // comma-separated, default "us"
	Timeout Duration `yaml:"timeout"`
}

type DisplayConfig struct {
	Timezone   string `yaml:"timezone"`    // IANA zone for game times, e.g. "America/Toronto"
	ChunkLimit int    `yaml:"chunk_limit"` // max characters per message chunk
	League     string `yaml:"league"`      // default league when a chat has no stored preference
}

type RedisConfig struct {
	Addr        string   `yaml:"addr"` // empty disables the snapshot cache
	Password    string   `yaml:"password"`
	DB          int      `yaml:"db"`
	SnapshotTTL Duration `yaml:"snapshot_ttl"`
}

type PostgresConfig struct {
	DSN string `yaml:"dsn"` // empty disables per-chat preferences
}

type HealthConfig struct {
	Port              int      `yaml:"port"`
	ReadHeaderTimeout Duration `yaml:"read_header_timeout"`
}

type LoggingConfig struct {
	Level    string `yaml:"level"`     // debug, info, warn, error
	JSONFile string `yaml:"json_file"` // optional path for an additional JSON log handler
}

const (
	DefaultBaseURL       = "https://api.the-odds-api.com/v4"
	DefaultRegions       = "us"
	DefaultChunkLimit    = 3800
	DefaultUpdateTimeout = 60
	DefaultSnapshotTTL   = Duration(5 * time.Minute)
)

// Duration is a time.Duration that unmarshals from yaml strings like "20s"
// or "5m" (bare integers are taken as nanoseconds, matching the underlying
// type).
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var n int64
	if err := value.Decode(&n); err == nil {
		*d = Duration(n)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("invalid duration value %q", value.Value)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	config.applyEnvOverrides()

	return &config, nil
}

func (c *Config) applyDefaults() {
	if c.OddsAPI.BaseURL == "" {
		c.OddsAPI.BaseURL = DefaultBaseURL
	}
	if c.OddsAPI.Regions == "" {
		c.OddsAPI.Regions = DefaultRegions
	}
	if c.OddsAPI.Timeout <= 0 {
		c.OddsAPI.Timeout = Duration(20 * time.Second)
	}
	if c.Display.ChunkLimit <= 0 {
		c.Display.ChunkLimit = DefaultChunkLimit
	}
	if c.Display.Timezone == "" {
		c.Display.Timezone = "UTC"
	}
	if c.Telegram.Mode == "" {
		c.Telegram.Mode = "polling"
	}
	if c.Telegram.UpdateTimeout <= 0 {
		c.Telegram.UpdateTimeout = DefaultUpdateTimeout
	}
	if c.Redis.SnapshotTTL <= 0 {
		c.Redis.SnapshotTTL = DefaultSnapshotTTL
	}
}

// applyEnvOverrides lets secrets come from the environment instead of the
// config file, so the file can be committed without them.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		c.Telegram.Token = v
	}
	if v := os.Getenv("ODDS_API_KEY"); v != "" {
		c.OddsAPI.APIKey = v
	}
	if v := os.Getenv("WEBHOOK_SECRET"); v != "" {
		c.Telegram.WebhookSecret = v
	}
}

// Validate checks the parts without which the bot cannot start at all.
// Optional subsystems (redis, postgres, health) are validated where they are
// constructed.
func (c *Config) Validate() error {
	if c.Telegram.Token == "" {
		return fmt.Errorf("telegram token is required (config telegram.token or TELEGRAM_BOT_TOKEN)")
	}
	if c.OddsAPI.APIKey == "" {
		return fmt.Errorf("odds API key is required (config odds_api.api_key or ODDS_API_KEY)")
	}
	if c.Telegram.Mode != "polling" && c.Telegram.Mode != "webhook" {
		return fmt.Errorf("telegram mode must be \"polling\" or \"webhook\", got %q", c.Telegram.Mode)
	}
	if c.Telegram.Mode == "webhook" {
		if c.Telegram.WebhookAddr == "" {
			return fmt.Errorf("telegram webhook_addr is required in webhook mode")
		}
		if c.Telegram.WebhookSecret == "" {
			return fmt.Errorf("telegram webhook_secret is required in webhook mode")
		}
	}
	return nil
}
