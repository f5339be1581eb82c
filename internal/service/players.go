package service

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/fortuna/gridiron/internal/store"
)

// SeasonListParams filters the player season list. Season is required;
// a nil season yields an empty result rather than an error. Position and
// Team are optional post-join filters.
type SeasonListParams struct {
	Season   *int
	Position string
	Team     string
	Limit    int
}

// SeasonList returns season totals for every player with recorded
// offensive stats, receivers sorted by receiving yards and everyone else
// by rushing yards.
func (s *StatsService) SeasonList(ctx context.Context, p SeasonListParams) ([]PlayerSeasonRow, error) {
	if p.Season == nil {
		return []PlayerSeasonRow{}, nil
	}

	// Team filtering is best-effort against the player's current team; an
	// unknown abbreviation leaves the filter off.
	var teamID *int
	if p.Team != "" {
		id, found, err := s.teams.IDByAbbreviation(ctx, p.Team)
		if err != nil {
			return nil, err
		}
		if found {
			teamID = &id
		}
	}

	lines, err := s.stats.SeasonLines(ctx, *p.Season)
	if err != nil {
		return nil, err
	}

	var withStats []store.StatLine
	playerIDs := make([]int, 0, len(lines))
	for _, l := range lines {
		if !l.HasStats() {
			continue
		}
		withStats = append(withStats, l)
		playerIDs = append(playerIDs, l.PlayerID)
	}
	if len(withStats) == 0 {
		return []PlayerSeasonRow{}, nil
	}

	playersByID, err := s.players.ByIDs(ctx, uniqueInts(playerIDs))
	if err != nil {
		return nil, err
	}

	teamIDs := make([]int, 0, len(playersByID))
	for _, pl := range playersByID {
		if pl.TeamID != nil {
			teamIDs = append(teamIDs, *pl.TeamID)
		}
	}
	abbrs, err := s.teams.AbbreviationsByID(ctx, uniqueInts(teamIDs))
	if err != nil {
		return nil, err
	}

	posFilter := strings.ToUpper(strings.TrimSpace(p.Position))

	out := make([]PlayerSeasonRow, 0, len(withStats))
	for _, l := range withStats {
		pl, ok := playersByID[l.PlayerID]
		if !ok {
			// Player lookup misses drop the fact row silently.
			continue
		}

		pos := strings.ToUpper(strings.TrimSpace(pl.Position))
		if posFilter != "" && pos != posFilter {
			continue
		}
		if teamID != nil && (pl.TeamID == nil || *pl.TeamID != *teamID) {
			continue
		}

		team := abbrFor(abbrs, pl.TeamID)

		avgYPC := 0.0
		if l.Receptions > 0 {
			avgYPC = float64(l.ReceivingYards) / float64(l.Receptions)
		}
		avgYPR := 0.0
		if l.RushingAttempts > 0 {
			avgYPR = float64(l.RushingYards) / float64(l.RushingAttempts)
		}

		name := pl.Name()
		out = append(out, PlayerSeasonRow{
			PlayerID:             strconv.Itoa(l.PlayerID),
			PlayerName:           name,
			Team:                 team,
			Position:             strPtrOrNil(pos),
			Season:               *p.Season,
			Games:                l.Games,
			Targets:              l.Targets,
			Receptions:           l.Receptions,
			ReceivingYards:       l.ReceivingYards,
			ReceivingTouchdowns:  l.ReceivingTouchdowns,
			AvgYardsPerCatch:     avgYPC,
			RushAttempts:         l.RushingAttempts,
			RushingYards:         l.RushingYards,
			RushingTouchdowns:    l.RushingTouchdowns,
			AvgYardsPerRush:      avgYPR,
			PassingAttempts:      l.PassingAttempts,
			PassingCompletions:   l.PassingCompletions,
			PassingYards:         l.PassingYards,
			PassingTouchdowns:    l.PassingTouchdowns,
			PassingInterceptions: l.PassingInterceptions,
			QBRating:             l.QBRating,
			QBR:                  l.QBR,
			PhotoURL:             s.photoURL(name, team),
		})
	}

	// Receivers rank by receiving yards, rushers and QBs by rushing yards.
	sort.SliceStable(out, func(i, j int) bool {
		return seasonSortKey(out[i]) > seasonSortKey(out[j])
	})

	return truncate(out, p.Limit, seasonListMax), nil
}

func seasonSortKey(r PlayerSeasonRow) int {
	switch deref(r.Position) {
	case "WR", "TE":
		return r.ReceivingYards
	default:
		return r.RushingYards
	}
}
