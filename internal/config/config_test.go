package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("DB_DSN", "postgres://localhost/pyq")
	t.Setenv("SHEETS_SPREADSHEET_ID", "sheet-id")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "Sheet1!A2:E", cfg.SheetRange)
	assert.Equal(t, 10*time.Minute, cfg.CacheTTL)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "assets/qr.png", cfg.DonationQRPath)
	assert.Empty(t, cfg.WebhookURL)
}

func TestLoadCacheTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("CACHE_TTL", "30m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL)
}

func TestLoadRejectsBadCacheTTL(t *testing.T) {
	setRequired(t)
	t.Setenv("CACHE_TTL", "soon")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRequiredValues(t *testing.T) {
	tests := []struct {
		name string
		omit string
	}{
		{name: "token", omit: "TELEGRAM_BOT_TOKEN"},
		{name: "dsn", omit: "DB_DSN"},
		{name: "spreadsheet", omit: "SHEETS_SPREADSHEET_ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.omit, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.omit)
		})
	}
}
