// internal/services/ranking_service.go
package services

import (
	"context"

	"github.com/javajoker/heyi-backend/internal/catalog"
)

type RankingService struct {
	store    *catalog.Store
	currency string
}

func NewRankingService(store *catalog.Store, currency string) *RankingService {
	return &RankingService{store: store, currency: currency}
}

// All recomputes every leaderboard from the current catalog.
func (s *RankingService) All(ctx context.Context, limit int) (catalog.Rankings, error) {
	if err := ctx.Err(); err != nil {
		return catalog.Rankings{}, err
	}

	rankings := catalog.Rank(s.store.All(), s.currency)
	rankings.Heat = truncate(rankings.Heat, limit)
	rankings.Revenue = truncate(rankings.Revenue, limit)
	rankings.Price = truncate(rankings.Price, limit)
	return rankings, nil
}

// Board recomputes a single leaderboard. limit <= 0 returns every entry.
func (s *RankingService) Board(ctx context.Context, board string, limit int) ([]catalog.RankEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	b := catalog.Board(board)
	if !b.Valid() {
		return nil, ErrUnknownBoard
	}

	entries, err := catalog.BoardEntries(b, s.store.All(), s.currency)
	if err != nil {
		return nil, err
	}
	return truncate(entries, limit), nil
}

func truncate[T any](items []T, limit int) []T {
	if limit > 0 && len(items) > limit {
		return items[:limit]
	}
	return items
}
