// internal/services/profile_service.go
package services

import (
	"context"
	"strings"

	"github.com/javajoker/heyi-backend/internal/catalog"
	"github.com/javajoker/heyi-backend/internal/models"
)

type ProfileService struct {
	store *catalog.Store
}

// CreatorProfile splits a creator's assets into the ones they made and the
// ones they hold from other authors.
type CreatorProfile struct {
	Name       string         `json:"name"`
	Created    []models.Asset `json:"created"`
	Collected  []models.Asset `json:"collected"`
	TotalValue models.Price   `json:"total_value"`
	TotalLikes int64          `json:"total_likes"`
	TotalViews int64          `json:"total_views"`
	Rank       int            `json:"revenue_rank,omitempty"`
	Summary    AuthorSummary  `json:"summary"`
}

type AuthorSummary struct {
	Works  int    `json:"works"`
	Change string `json:"change"`
}

func NewProfileService(store *catalog.Store) *ProfileService {
	return &ProfileService{store: store}
}

func (s *ProfileService) GetProfile(ctx context.Context, name string) (*CreatorProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrCreatorNotFound
	}

	assets := s.store.All()
	profile := &CreatorProfile{
		Name:      name,
		Created:   []models.Asset{},
		Collected: []models.Asset{},
	}

	for _, a := range assets {
		switch {
		case a.Author == name:
			profile.Created = append(profile.Created, a)
			profile.TotalValue = profile.TotalValue.Add(a.Price)
			profile.TotalLikes += a.Likes
			profile.TotalViews += a.Views
		case a.Owner == name:
			profile.Collected = append(profile.Collected, a)
		}
	}

	if len(profile.Created) == 0 && len(profile.Collected) == 0 {
		return nil, ErrCreatorNotFound
	}

	for i, author := range catalog.RevenueRanking(assets) {
		if author.Name == name {
			profile.Rank = i + 1
			profile.Summary = AuthorSummary{Works: author.Count, Change: author.Change}
			break
		}
	}

	return profile, nil
}
