package orm

import (
	"time"

	"gorm.io/gorm"
)

// APICache stores responses of paid external APIs, such as geocoding, keyed by request.
type APICache struct {
	Key       string `gorm:"primaryKey"`
	Value     []byte
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
}

func (APICache) TableName() string {
	return "api_cache"
}

// GetCacheEntry retrieves an unexpired cache entry
func GetCacheEntry(db *gorm.DB, key string) (*APICache, error) {
	var entry APICache
	err := db.Where("key = ? AND expires_at > ?", key, time.Now()).First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// SetCacheEntry upserts a cache entry
func SetCacheEntry(db *gorm.DB, key string, value []byte, ttl time.Duration) error {
	now := time.Now()
	entry := APICache{
		Key:       key,
		Value:     value,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
	return db.Save(&entry).Error
}

// CleanupCache removes expired entries
func CleanupCache(db *gorm.DB) error {
	return db.Where("expires_at < ?", time.Now()).Delete(&APICache{}).Error
}
