package service

import (
	"context"

	"github.com/fortuna/gridiron/internal/store"
)

// positions is the fixed set of offense positions the UI filters on.
var positions = []string{"QB", "RB", "WR", "TE"}

// FilterOptions returns the dropdown values for the UI: seasons newest
// first, weeks ascending, team abbreviations ascending and the fixed
// position list.
func (s *StatsService) FilterOptions(ctx context.Context) (*Options, error) {
	games, err := s.games.SeasonWeeks(ctx)
	if err != nil {
		return nil, err
	}

	teams, err := s.teams.Abbreviations(ctx)
	if err != nil {
		return nil, err
	}

	return &Options{
		Seasons:   store.UniqueSortedInts(columnValues(games, "season"), true),
		Weeks:     store.UniqueSortedInts(columnValues(games, "week"), false),
		Teams:     teams,
		Positions: positions,
	}, nil
}

// DatasetSummary returns row counts and the distinct seasons on record.
func (s *StatsService) DatasetSummary(ctx context.Context) (*Summary, error) {
	games, err := s.games.Count(ctx)
	if err != nil {
		return nil, err
	}
	players, err := s.players.Count(ctx)
	if err != nil {
		return nil, err
	}
	teams, err := s.teams.Count(ctx)
	if err != nil {
		return nil, err
	}

	seasonRows, err := s.games.Seasons(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Seasons: store.UniqueSortedInts(columnValues(seasonRows, "season"), false),
		Games:   games,
		Players: players,
		Teams:   teams,
	}, nil
}

func columnValues(rows []store.Row, column string) []any {
	vals := make([]any, 0, len(rows))
	for _, r := range rows {
		vals = append(vals, r[column])
	}
	return vals
}
