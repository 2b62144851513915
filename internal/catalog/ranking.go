// internal/catalog/ranking.go
package catalog

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/shopspring/decimal"

	"github.com/javajoker/heyi-backend/internal/models"
)

type Board string

const (
	BoardHeat    Board = "heat"
	BoardRevenue Board = "revenue"
	BoardPrice   Board = "price"
)

var Boards = []Board{BoardHeat, BoardRevenue, BoardPrice}

func (b Board) Valid() bool {
	return slices.Contains(Boards, b)
}

// AuthorAggregate sums the prices of every asset an author created.
type AuthorAggregate struct {
	Name       string       `json:"name"`
	Total      models.Price `json:"total"`
	Count      int          `json:"count"`
	ImageColor string       `json:"image_color,omitempty"`
	Change     string       `json:"change"`
}

// RankEntry is one display row of a leaderboard.
type RankEntry struct {
	Rank       int     `json:"rank"`
	Type       string  `json:"type"`
	AssetID    int     `json:"asset_id,omitempty"`
	Name       string  `json:"name"`
	Author     string  `json:"author,omitempty"`
	Value      string  `json:"value"`
	Metrics    string  `json:"metrics"`
	Change     string  `json:"change"`
	Score      float64 `json:"score"`
	ImageColor string  `json:"image_color,omitempty"`
}

type Rankings struct {
	Heat    []RankEntry `json:"heat"`
	Revenue []RankEntry `json:"revenue"`
	Price   []RankEntry `json:"price"`
}

// HeatRanking orders assets by views + likes*10, highest first. Equal
// scores keep input order.
func HeatRanking(assets []models.Asset) []models.Asset {
	out := slices.Clone(assets)
	slices.SortStableFunc(out, func(a, b models.Asset) int {
		return cmp.Compare(b.HeatScore(), a.HeatScore())
	})
	return out
}

// PriceRanking orders assets by price, highest first. Equal prices keep
// input order.
func PriceRanking(assets []models.Asset) []models.Asset {
	out := slices.Clone(assets)
	slices.SortStableFunc(out, func(a, b models.Asset) int {
		return b.Price.Cmp(a.Price)
	})
	return out
}

// AuthorAggregates groups assets by author in first-seen order.
func AuthorAggregates(assets []models.Asset) []AuthorAggregate {
	index := make(map[string]int)
	var out []AuthorAggregate
	var changes [][]decimal.Decimal

	for i := range assets {
		a := &assets[i]
		pos, ok := index[a.Author]
		if !ok {
			pos = len(out)
			index[a.Author] = pos
			out = append(out, AuthorAggregate{Name: a.Author, ImageColor: a.ImageColor})
			changes = append(changes, nil)
		}
		out[pos].Total = out[pos].Total.Add(a.Price)
		out[pos].Count++
		changes[pos] = append(changes[pos], priceChange(a.PriceHistory))
	}

	for i := range out {
		out[i].Change = formatChange(mean(changes[i]))
	}
	return out
}

// RevenueRanking orders author aggregates by total, highest first. Equal
// totals keep first-seen order.
func RevenueRanking(assets []models.Asset) []AuthorAggregate {
	out := AuthorAggregates(assets)
	slices.SortStableFunc(out, func(a, b AuthorAggregate) int {
		return b.Total.Cmp(a.Total)
	})
	return out
}

// Rank builds all three leaderboards. currency labels author totals.
func Rank(assets []models.Asset, currency string) Rankings {
	return Rankings{
		Heat:    heatEntries(assets),
		Revenue: revenueEntries(assets, currency),
		Price:   priceEntries(assets),
	}
}

// BoardEntries builds a single leaderboard.
func BoardEntries(board Board, assets []models.Asset, currency string) ([]RankEntry, error) {
	switch board {
	case BoardHeat:
		return heatEntries(assets), nil
	case BoardRevenue:
		return revenueEntries(assets, currency), nil
	case BoardPrice:
		return priceEntries(assets), nil
	}
	return nil, fmt.Errorf("unknown board %q", board)
}

func heatEntries(assets []models.Asset) []RankEntry {
	ranked := HeatRanking(assets)
	entries := make([]RankEntry, len(ranked))
	for i, a := range ranked {
		entries[i] = RankEntry{
			Rank:       i + 1,
			Type:       "asset",
			AssetID:    a.ID,
			Name:       a.Title,
			Author:     a.Author,
			Value:      fmt.Sprintf("%.1fk views", float64(a.Views)/1000),
			Metrics:    fmt.Sprintf("%d likes", a.Likes),
			Change:     formatChange(priceChange(a.PriceHistory)),
			Score:      float64(a.HeatScore()),
			ImageColor: a.ImageColor,
		}
	}
	return entries
}

func revenueEntries(assets []models.Asset, currency string) []RankEntry {
	ranked := RevenueRanking(assets)
	entries := make([]RankEntry, len(ranked))
	for i, author := range ranked {
		entries[i] = RankEntry{
			Rank:       i + 1,
			Type:       "author",
			Name:       author.Name,
			Value:      models.CurrencySymbol(currency) + author.Total.String(),
			Metrics:    fmt.Sprintf("%d works", author.Count),
			Change:     author.Change,
			Score:      author.Total.Float64(),
			ImageColor: author.ImageColor,
		}
	}
	return entries
}

func priceEntries(assets []models.Asset) []RankEntry {
	ranked := PriceRanking(assets)
	entries := make([]RankEntry, len(ranked))
	for i, a := range ranked {
		entries[i] = RankEntry{
			Rank:       i + 1,
			Type:       "asset",
			AssetID:    a.ID,
			Name:       a.Title,
			Author:     a.Author,
			Value:      models.CurrencySymbol(a.Currency) + a.Price.String(),
			Metrics:    fmt.Sprintf("%d likes", a.Likes),
			Change:     formatChange(priceChange(a.PriceHistory)),
			Score:      a.Price.Float64(),
			ImageColor: a.ImageColor,
		}
	}
	return entries
}

var hundred = decimal.NewFromInt(100)

// priceChange is the percent move between the last two history points.
func priceChange(history []models.PricePoint) decimal.Decimal {
	if len(history) < 2 {
		return decimal.Zero
	}
	prev := history[len(history)-2].Price.Decimal()
	last := history[len(history)-1].Price.Decimal()
	if prev.IsZero() {
		return decimal.Zero
	}
	return last.Sub(prev).Div(prev).Mul(hundred)
}

func mean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	return decimal.Sum(decimal.Zero, values...).Div(decimal.NewFromInt(int64(len(values))))
}

func formatChange(pct decimal.Decimal) string {
	pct = pct.Round(1)
	if pct.IsNegative() {
		return pct.StringFixed(1) + "%"
	}
	return "+" + pct.StringFixed(1) + "%"
}
