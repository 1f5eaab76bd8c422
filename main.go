package main

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/junaidrashid-git/storefront-api/cart"
	"github.com/junaidrashid-git/storefront-api/catalog"
	"github.com/junaidrashid-git/storefront-api/checkout"
	"github.com/junaidrashid-git/storefront-api/config"
	orderControllers "github.com/junaidrashid-git/storefront-api/controllers/order"
	"github.com/junaidrashid-git/storefront-api/routes"
	"github.com/junaidrashid-git/storefront-api/session"
	"github.com/junaidrashid-git/storefront-api/storage"
	"github.com/junaidrashid-git/storefront-api/wishlist"
)

func main() {
	// Load environment variables
	_ = godotenv.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	cfg := config.Load()

	// Durable key-value store (the session's "local storage")
	store, err := storage.OpenBolt(cfg.DataPath)
	if err != nil {
		zap.L().Fatal("failed to open store", zap.Error(err))
	}
	defer store.Close()

	// State containers; cart and wishlist follow the session's identity
	sessions := session.New(store)
	carts := cart.New(store, sessions)
	wishlists := wishlist.New(store, sessions)
	products := catalog.New(cfg.CatalogBaseURL)

	feed := orderControllers.NewFeed()
	recorder, err := checkout.New(store, sessions, carts, cfg.ConfirmRedirect, func(path string) {
		zap.L().Info("checkout confirmed, returning to catalog", zap.String("path", path))
	})
	if err != nil {
		zap.L().Fatal("failed to init checkout", zap.Error(err))
	}
	recorder.OnPlaced(feed.Broadcast)

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, routes.Deps{
		Sessions:  sessions,
		Carts:     carts,
		Wishlists: wishlists,
		Recorder:  recorder,
		Catalog:   products,
		OrderFeed: feed,
	})

	// Back up the store daily at 2 AM, keep 4 days of backups
	go startDailyBackupAtFixedTime(store, cfg.BackupDir, 4*24*time.Hour, 2, 0)

	zap.L().Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		zap.L().Fatal("failed to start server", zap.Error(err))
	}
}

// startDailyBackupAtFixedTime snapshots the store daily at a fixed hour
// and removes backups older than the retention window.
func startDailyBackupAtFixedTime(store *storage.BoltStore, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		zap.L().Info("next store backup scheduled", zap.Time("at", next))
		time.Sleep(next.Sub(now))

		if _, err := store.Backup(backupDir); err != nil {
			zap.L().Error("store backup failed", zap.Error(err))
		}
		cleanupOldBackups(backupDir, retention)
	}
}

// cleanupOldBackups removes backup files older than the retention duration.
func cleanupOldBackups(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		zap.L().Error("failed to read backup directory", zap.Error(err))
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				zap.L().Error("failed to remove old backup", zap.String("path", path), zap.Error(err))
			} else {
				zap.L().Info("removed old backup", zap.String("path", path))
			}
		}
	}
}
