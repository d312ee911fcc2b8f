package service

import (
	"log"
	"sync"
	"time"

	"gorm.io/gorm"

	authModel "bcaroutine_backend/internals/features/auth/model"
)

// In local mode there is no database; revoked tokens live in this process-
// scoped set until they expire.
var (
	memMu        sync.RWMutex
	memBlacklist = map[string]time.Time{}
)

// BlacklistToken revokes a token until its expiry. db may be nil (local mode).
func BlacklistToken(db *gorm.DB, token string, expiresAt time.Time) error {
	if db == nil {
		memMu.Lock()
		memBlacklist[token] = expiresAt
		memMu.Unlock()
		return nil
	}
	row := authModel.TokenBlacklistModel{
		TokenBlacklistToken:     token,
		TokenBlacklistExpiresAt: expiresAt,
	}
	return db.Create(&row).Error
}

// IsBlacklisted reports whether the token was revoked. DB errors are logged
// and treated as "not blacklisted" so a flaky lookup cannot lock everyone
// out.
func IsBlacklisted(db *gorm.DB, token string) bool {
	if db == nil {
		memMu.RLock()
		exp, ok := memBlacklist[token]
		memMu.RUnlock()
		return ok && time.Now().Before(exp)
	}
	var count int64
	err := db.Model(&authModel.TokenBlacklistModel{}).
		Where("token_blacklist_token = ? AND token_blacklist_deleted_at IS NULL", token).
		Count(&count).Error
	if err != nil {
		log.Printf("[ERROR] blacklist lookup: %v", err)
		return false
	}
	return count > 0
}

// PurgeExpired drops blacklist entries whose tokens have expired anyway.
func PurgeExpired(db *gorm.DB) {
	now := time.Now()
	if db == nil {
		memMu.Lock()
		for tok, exp := range memBlacklist {
			if now.After(exp) {
				delete(memBlacklist, tok)
			}
		}
		memMu.Unlock()
		return
	}
	res := db.Unscoped().
		Where("token_blacklist_expires_at < ?", now).
		Delete(&authModel.TokenBlacklistModel{})
	if res.Error != nil {
		log.Printf("[ERROR] blacklist purge: %v", res.Error)
	} else if res.RowsAffected > 0 {
		log.Printf("[INFO] blacklist purge removed %d rows", res.RowsAffected)
	}
}
