// internal/storage/gorm.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/javajoker/heyi-backend/internal/models"
)

// GormSlot keeps the value in one row of the kv_entries table.
type GormSlot struct {
	db      *gorm.DB
	key     string
	closeFn func() error
	now     func() time.Time
}

func NewGormSlot(db *gorm.DB, key string, closeFn func() error) *GormSlot {
	return &GormSlot{db: db, key: key, closeFn: closeFn, now: time.Now}
}

func (g *GormSlot) Get(ctx context.Context) ([]byte, error) {
	var entry models.KVEntry
	err := g.db.WithContext(ctx).Where("key = ?", g.key).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSlotEmpty
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load slot %s: %w", g.key, err)
	}
	return []byte(entry.Value), nil
}

func (g *GormSlot) Put(ctx context.Context, data []byte) error {
	entry := models.KVEntry{
		Key:       g.key,
		Value:     string(data),
		UpdatedAt: g.now().UTC(),
	}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("failed to store slot %s: %w", g.key, err)
	}
	return nil
}

func (g *GormSlot) Close() error {
	if g.closeFn == nil {
		return nil
	}
	return g.closeFn()
}
