package config

import (
	"os"
	"time"

	"github.com/spf13/cast"
)

// Config carries the environment-backed settings. JWT_SECRET is read
// directly by the auth and middleware packages.
type Config struct {
	Port            string
	DataPath        string
	BackupDir       string
	CatalogBaseURL  string
	ConfirmRedirect time.Duration
}

// Load reads settings from the environment, applying demo defaults.
func Load() Config {
	cfg := Config{
		Port:            os.Getenv("PORT"),
		DataPath:        os.Getenv("DATA_PATH"),
		BackupDir:       os.Getenv("BACKUP_DIR"),
		CatalogBaseURL:  os.Getenv("CATALOG_BASE_URL"),
		ConfirmRedirect: 2 * time.Second,
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.DataPath == "" {
		cfg.DataPath = "data/storefront.db"
	}
	if cfg.BackupDir == "" {
		cfg.BackupDir = "data/backup"
	}
	if v := os.Getenv("CONFIRM_REDIRECT_SECONDS"); v != "" {
		cfg.ConfirmRedirect = time.Duration(cast.ToInt(v)) * time.Second
	}
	return cfg
}
