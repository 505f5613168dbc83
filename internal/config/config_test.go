package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_FromYAML(t *testing.T) {
	path := writeConfig(t, `
telegram:
  bot_token: "token-123"
  chat_id: "456"
data_source:
  api_key: "fmp-key"
  history_days: 200
alerts:
  score_change_threshold: 8
database:
  sqlite_path: "/tmp/test.db"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "token-123", cfg.Telegram.BotToken)
	assert.Equal(t, "456", cfg.Telegram.ChatID)
	assert.Equal(t, "fmp-key", cfg.DataSource.APIKey)
	assert.Equal(t, 200, cfg.DataSource.HistoryDays)
	assert.Equal(t, 8, cfg.Alerts.ScoreChangeThreshold)
	assert.Equal(t, "/tmp/test.db", cfg.Database.SQLitePath)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 365, cfg.DataSource.HistoryDays)
	assert.Equal(t, "0 0 22 * * 1-5", cfg.Schedule.DailyCron)
	assert.Equal(t, "0 0 9 * * 6", cfg.Schedule.WeeklyCron)
	assert.Equal(t, 5, cfg.Alerts.ScoreChangeThreshold)
	assert.Equal(t, "data/portfolio_sentinel.db", cfg.Database.SQLitePath)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
telegram:
  bot_token: "yaml-token"
data_source:
  api_key: "yaml-key"
`)

	t.Setenv("TELEGRAM_BOT_TOKEN", "env-token")
	t.Setenv("TELEGRAM_CHAT_ID", "env-chat")
	t.Setenv("FMP_API_KEY", "env-key")
	t.Setenv("SCORE_CHANGE_THRESHOLD", "10")
	t.Setenv("CRON_DAILY", "0 30 21 * * 1-5")
	t.Setenv("SQLITE_PATH", "/tmp/env.db")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "env-token", cfg.Telegram.BotToken)
	assert.Equal(t, "env-chat", cfg.Telegram.ChatID)
	assert.Equal(t, "env-key", cfg.DataSource.APIKey)
	assert.Equal(t, 10, cfg.Alerts.ScoreChangeThreshold)
	assert.Equal(t, "0 30 21 * * 1-5", cfg.Schedule.DailyCron)
	assert.Equal(t, "/tmp/env.db", cfg.Database.SQLitePath)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "telegram: [not a map")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		cfg.Telegram.BotToken = "t"
		cfg.Telegram.ChatID = "c"
		cfg.DataSource.APIKey = "k"
		cfg.DataSource.HistoryDays = 365
		cfg.Alerts.ScoreChangeThreshold = 5
		return cfg
	}

	assert.NoError(t, base().Validate())

	cfg := base()
	cfg.Telegram.BotToken = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.DataSource.APIKey = ""
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.DataSource.HistoryDays = 29
	assert.Error(t, cfg.Validate())

	cfg = base()
	cfg.Alerts.ScoreChangeThreshold = 0
	assert.Error(t, cfg.Validate())
}
