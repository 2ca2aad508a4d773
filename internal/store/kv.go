package store

import (
	"context"
	"errors"
	"sync"

	"message-board-api/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// KV is the external key-value store behind the message cache. Get reports
// presence explicitly so an absent key is not conflated with a read failure.
type KV interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// GormKV persists entries in the kv_entries table.
type GormKV struct {
	db *gorm.DB
}

// NewGormKV wraps a gorm connection as a KV store.
func NewGormKV(db *gorm.DB) *GormKV {
	return &GormKV{db: db}
}

// Get implements KV.Get.
func (s *GormKV) Get(ctx context.Context, key string) (string, bool, error) {
	var entry models.KVEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

// Set implements KV.Set, overwriting any prior value for the key.
func (s *GormKV) Set(ctx context.Context, key, value string) error {
	entry := models.KVEntry{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

// MemoryKV is a map-backed KV store, safe for concurrent use. Used in tests
// and anywhere no durable backend is wanted.
type MemoryKV struct {
	mu      sync.RWMutex
	entries map[string]string
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{entries: make(map[string]string)}
}

// Get implements KV.Get.
func (s *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[key]
	return value, ok, nil
}

// Set implements KV.Set.
func (s *MemoryKV) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

// Ensure both implementations satisfy KV at compile time.
var (
	_ KV = (*GormKV)(nil)
	_ KV = (*MemoryKV)(nil)
)
