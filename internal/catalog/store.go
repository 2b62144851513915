// internal/catalog/store.go
package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/heyi-backend/internal/models"
	"github.com/javajoker/heyi-backend/internal/storage"
)

// Store holds the asset catalog in insertion order and writes the whole
// catalog back to its slot on every upsert.
type Store struct {
	mu     sync.RWMutex
	slot   storage.Slot
	order  []int
	assets map[int]models.Asset
}

// Open loads the catalog from slot. A missing, unreadable or corrupt
// snapshot, or one without a single valid asset, is replaced by initial();
// nothing is written until the first upsert.
func Open(ctx context.Context, slot storage.Slot, initial func() []models.Asset) *Store {
	s := &Store{slot: slot}

	data, err := slot.Get(ctx)
	switch {
	case errors.Is(err, storage.ErrSlotEmpty):
		logrus.Info("No catalog snapshot found, using generated catalog")
	case err != nil:
		logrus.WithError(err).Warn("Catalog snapshot unavailable, using generated catalog")
	default:
		assets, decodeErr := DecodeSnapshot(data)
		if decodeErr != nil {
			logrus.WithError(decodeErr).Warn("Catalog snapshot is corrupt, using generated catalog")
			break
		}
		if s.load(assets) == 0 {
			logrus.WithField("records", len(assets)).Warn("Catalog snapshot has no valid assets, using generated catalog")
			break
		}
		logrus.WithField("assets", len(s.order)).Info("Catalog snapshot loaded")
		return s
	}

	s.load(initial())
	return s
}

// NewStore builds a store from a fixed catalog.
func NewStore(slot storage.Slot, assets []models.Asset) *Store {
	s := &Store{slot: slot}
	s.load(assets)
	return s
}

// load replaces the catalog with the valid assets and returns how many
// were kept.
func (s *Store) load(assets []models.Asset) int {
	s.order = make([]int, 0, len(assets))
	s.assets = make(map[int]models.Asset, len(assets))
	for _, a := range assets {
		if err := a.Validate(); err != nil {
			logrus.WithError(err).WithField("asset_id", a.ID).Warn("Skipping invalid asset")
			continue
		}
		if _, exists := s.assets[a.ID]; !exists {
			s.order = append(s.order, a.ID)
		}
		s.assets[a.ID] = a.Clone()
	}
	return len(s.order)
}

// Get returns the asset with id, or false when there is none.
func (s *Store) Get(id int) (models.Asset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.assets[id]
	if !ok {
		return models.Asset{}, false
	}
	return a.Clone(), true
}

// All returns every asset in insertion order.
func (s *Store) All() []models.Asset {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.snapshotLocked()
}

// Len reports the number of assets in the catalog.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

func (s *Store) snapshotLocked() []models.Asset {
	out := make([]models.Asset, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.assets[id].Clone())
	}
	return out
}

// Upsert overwrites the fields set on patch onto the asset with the same id,
// creating it if absent, and persists the whole catalog. The in-memory
// catalog only changes once the write succeeded.
func (s *Store) Upsert(ctx context.Context, patch models.AssetPatch) (models.Asset, error) {
	if patch.ID <= 0 {
		return models.Asset{}, fmt.Errorf("%w: id must be positive", ErrInvalidAsset)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.assets[patch.ID]
	next := models.Asset{ID: patch.ID, Currency: models.DefaultCurrency}
	if exists {
		next = current.Clone()
	}
	patch.ApplyTo(&next)

	return s.commitLocked(ctx, next, exists)
}

// Update applies fn to a copy of an existing asset and stores the result
// the way Upsert does. fn may veto the change by returning an error.
func (s *Store) Update(ctx context.Context, id int, fn func(*models.Asset) error) (models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.assets[id]
	if !exists {
		return models.Asset{}, ErrAssetNotFound
	}

	next := current.Clone()
	if err := fn(&next); err != nil {
		return models.Asset{}, err
	}
	next.ID = id

	return s.commitLocked(ctx, next, true)
}

func (s *Store) commitLocked(ctx context.Context, next models.Asset, exists bool) (models.Asset, error) {
	if err := next.Validate(); err != nil {
		return models.Asset{}, fmt.Errorf("%w: %v", ErrInvalidAsset, err)
	}

	assets := s.snapshotLocked()
	if exists {
		assets[slices.Index(s.order, next.ID)] = next
	} else {
		assets = append(assets, next)
	}

	data, err := EncodeSnapshot(assets)
	if err != nil {
		return models.Asset{}, fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := s.slot.Put(ctx, data); err != nil {
		return models.Asset{}, fmt.Errorf("failed to persist catalog: %w", err)
	}

	if !exists {
		s.order = append(s.order, next.ID)
	}
	s.assets[next.ID] = next

	logrus.WithFields(logrus.Fields{
		"asset_id": next.ID,
		"created":  !exists,
	}).Debug("Asset stored")

	return next.Clone(), nil
}

// Persist writes the current catalog to the slot.
func (s *Store) Persist(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := EncodeSnapshot(s.snapshotLocked())
	if err != nil {
		return fmt.Errorf("failed to encode catalog: %w", err)
	}
	if err := s.slot.Put(ctx, data); err != nil {
		return fmt.Errorf("failed to persist catalog: %w", err)
	}
	return nil
}

// EncodeSnapshot serializes the catalog as a JSON array in catalog order.
func EncodeSnapshot(assets []models.Asset) ([]byte, error) {
	if assets == nil {
		assets = []models.Asset{}
	}
	return json.Marshal(assets)
}

// DecodeSnapshot reads a JSON array of assets, or an object keyed by asset
// id. Object entries are ordered by numeric id.
func DecodeSnapshot(data []byte) ([]models.Asset, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, errors.New("empty snapshot")
	}

	switch data[0] {
	case '[':
		var assets []models.Asset
		if err := json.Unmarshal(data, &assets); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot: %w", err)
		}
		return assets, nil

	case '{':
		var byID map[string]models.Asset
		if err := json.Unmarshal(data, &byID); err != nil {
			return nil, fmt.Errorf("failed to decode snapshot: %w", err)
		}
		type keyed struct {
			id    int
			asset models.Asset
		}
		entries := make([]keyed, 0, len(byID))
		for key, a := range byID {
			id, err := strconv.Atoi(key)
			if err != nil {
				return nil, fmt.Errorf("snapshot key %q is not an asset id", key)
			}
			if a.ID == 0 {
				a.ID = id
			}
			entries = append(entries, keyed{id: id, asset: a})
		}
		slices.SortFunc(entries, func(a, b keyed) int { return a.id - b.id })

		assets := make([]models.Asset, len(entries))
		for i, e := range entries {
			assets[i] = e.asset
		}
		return assets, nil
	}

	return nil, fmt.Errorf("unexpected snapshot format starting with %q", data[0])
}
