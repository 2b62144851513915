// internal/models/kv.go
package models

import "time"

// KVEntry is one named slot of the postgres-backed key-value store. The
// catalog snapshot lives in a single row.
type KVEntry struct {
	Key       string    `gorm:"primaryKey;size:191"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
