// Package service implements the read-only aggregation pipelines behind
// the stats API. Every query follows the same shape: fetch filtered fact
// rows, join dimension lookups built from the ids they reference, derive
// display fields, then rank and truncate to the requested limit.
package service

import (
	"github.com/fortuna/gridiron/internal/headshot"
	"github.com/fortuna/gridiron/internal/store"
	"github.com/fortuna/gridiron/internal/store/repository"
)

// Display caps per view. Requested limits are clamped into [1, cap].
const (
	seasonListMax = 300
	dashboardMax  = 200
)

// StatsService composes the repositories and the headshot resolver into
// the per-view query pipelines.
type StatsService struct {
	players   *repository.PlayerRepository
	teams     *repository.TeamRepository
	games     *repository.GameRepository
	stats     *repository.StatsRepository
	headshots *headshot.Resolver
}

// NewStatsService creates a new stats service over a table-query backend.
func NewStatsService(q store.Querier, headshots *headshot.Resolver) *StatsService {
	return &StatsService{
		players:   repository.NewPlayerRepository(q),
		teams:     repository.NewTeamRepository(q),
		games:     repository.NewGameRepository(q),
		stats:     repository.NewStatsRepository(q),
		headshots: headshots,
	}
}

func clampLimit(limit, max int) int {
	if limit < 1 {
		limit = 1
	}
	if limit > max {
		limit = max
	}
	return limit
}

func truncate[T any](rows []T, limit, max int) []T {
	n := clampLimit(limit, max)
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}

// uniqueInts de-duplicates keeping first-occurrence order; InList
// expressions only care about the set.
func uniqueInts(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func strPtr(s string) *string {
	return &s
}

func strPtrOrNil(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// abbrFor resolves an optional team id through a dimension lookup; misses
// yield nil, never an error.
func abbrFor(abbrs map[int]string, id *int) *string {
	if id == nil {
		return nil
	}
	abbr, ok := abbrs[*id]
	if !ok {
		return nil
	}
	return strPtr(abbr)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func (s *StatsService) photoURL(name string, team *string) *string {
	if s.headshots == nil {
		return nil
	}
	url, ok := s.headshots.URL(name, deref(team))
	if !ok {
		return nil
	}
	return &url
}
