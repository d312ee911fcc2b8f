package scheduler

import (
	"log"
	"time"

	"gorm.io/gorm"

	authService "bcaroutine_backend/internals/features/auth/service"
)

// StartBlacklistCleanupScheduler purges expired blacklist entries hourly.
// db may be nil (local mode, in-memory blacklist).
func StartBlacklistCleanupScheduler(db *gorm.DB) {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()
		log.Println("[INFO] blacklist cleanup scheduler started")
		for range ticker.C {
			authService.PurgeExpired(db)
		}
	}()
}
