package models

import "time"

// KVEntry is a single row in the key-value table backing the external store.
// The cached message sequence lives under one well-known key.
type KVEntry struct {
	Key       string `gorm:"primaryKey;column:key"`
	Value     string `gorm:"column:value;not null"`
	UpdatedAt time.Time
}

// TableName specifies the table name for the KVEntry Model
func (KVEntry) TableName() string {
	return "kv_entries"
}
