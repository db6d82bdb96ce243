package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	TelegramToken string
	DBDSN         string
	Environment   string

	// Google Sheets source of the subject index.
	SpreadsheetID   string
	SheetRange      string
	CredentialsFile string

	// How long a fetched subject index stays fresh before the next
	// incoming request triggers a refresh.
	CacheTTL time.Duration

	// When WebhookURL is set the bot serves updates over HTTP on
	// ListenAddr instead of long polling.
	WebhookURL string
	ListenAddr string

	// Static payment QR sent by /donate.
	DonationQRPath string
}

func Load() (*Config, error) {
	// .env is optional; plain environment variables win in deployment.
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		TelegramToken:   os.Getenv("TELEGRAM_BOT_TOKEN"),
		DBDSN:           os.Getenv("DB_DSN"),
		Environment:     os.Getenv("ENV"),
		SpreadsheetID:   os.Getenv("SHEETS_SPREADSHEET_ID"),
		SheetRange:      os.Getenv("SHEETS_RANGE"),
		CredentialsFile: os.Getenv("GOOGLE_CREDENTIALS_FILE"),
		WebhookURL:      os.Getenv("WEBHOOK_URL"),
		ListenAddr:      os.Getenv("LISTEN_ADDR"),
		DonationQRPath:  os.Getenv("DONATION_QR_PATH"),
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}
	if cfg.SheetRange == "" {
		cfg.SheetRange = "Sheet1!A2:E"
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.DonationQRPath == "" {
		cfg.DonationQRPath = "assets/qr.png"
	}

	cfg.CacheTTL = 10 * time.Minute
	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		ttl, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("parse CACHE_TTL: %w", err)
		}
		cfg.CacheTTL = ttl
	}

	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required but not set")
	}
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}
	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("SHEETS_SPREADSHEET_ID is required but not set")
	}

	return cfg, nil
}
