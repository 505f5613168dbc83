package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL     string `yaml:"base_url"`
		APIKey      string `yaml:"api_key"`
		HistoryDays int    `yaml:"history_days"`
	} `yaml:"data_source"`
	Schedule struct {
		DailyCron  string `yaml:"daily_cron"`
		WeeklyCron string `yaml:"weekly_cron"`
	} `yaml:"schedule"`
	Alerts struct {
		ScoreChangeThreshold int `yaml:"score_change_threshold"`
	} `yaml:"alerts"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("FMP_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("FMP_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("SCORE_CHANGE_THRESHOLD"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Alerts.ScoreChangeThreshold = n
		}
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("CRON_WEEKLY"); v != "" {
		cfg.Schedule.WeeklyCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.DataSource.HistoryDays == 0 {
		cfg.DataSource.HistoryDays = 365
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 22 * * 1-5"
	}
	if cfg.Schedule.WeeklyCron == "" {
		cfg.Schedule.WeeklyCron = "0 0 9 * * 6"
	}
	if cfg.Alerts.ScoreChangeThreshold == 0 {
		cfg.Alerts.ScoreChangeThreshold = 5
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/portfolio_sentinel.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are set.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.DataSource.APIKey == "" {
		return fmt.Errorf("data_source.api_key is required")
	}
	if c.DataSource.HistoryDays < 30 {
		return fmt.Errorf("data_source.history_days must be at least 30")
	}
	if c.Alerts.ScoreChangeThreshold < 1 {
		return fmt.Errorf("alerts.score_change_threshold must be positive")
	}
	return nil
}
