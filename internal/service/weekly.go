package service

import (
	"context"
	"sort"
	"strconv"

	"github.com/fortuna/gridiron/internal/store"
)

const receivingWeekColumns = "player_id,team_id,season,week," +
	"receiving_targets,receptions,receiving_yards,receiving_touchdowns"

const rushingWeekColumns = "player_id,team_id,season,week," +
	"rushing_attempts,rushing_yards,rushing_touchdowns,receptions,receiving_yards"

// ReceivingWeekly returns the week-level receiving dashboard: regular
// season only, sorted by targets descending, capped at the dashboard
// limit, then hydrated with player and team display fields.
func (s *StatsService) ReceivingWeekly(ctx context.Context, season, week int, team string, limit int) ([]WeeklyReceivingRow, error) {
	lines, err := s.weekLines(ctx, season, week, team, receivingWeekColumns)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Targets > lines[j].Targets
	})
	lines = truncate(lines, limit, dashboardMax)

	playersByID, abbrs, err := s.weekLookups(ctx, lines)
	if err != nil {
		return nil, err
	}

	out := make([]WeeklyReceivingRow, 0, len(lines))
	for _, l := range lines {
		pl, ok := playersByID[l.PlayerID]
		if !ok {
			continue
		}
		teamAbbr := abbrFor(abbrs, l.TeamID)
		name := pl.Name()
		out = append(out, WeeklyReceivingRow{
			Season:        season,
			Week:          week,
			Team:          teamAbbr,
			PlayerID:      strconv.Itoa(l.PlayerID),
			PlayerName:    name,
			Position:      strPtrOrNil(pl.Position),
			Targets:       l.Targets,
			Receptions:    l.Receptions,
			RecYards:      l.ReceivingYards,
			RecTouchdowns: l.ReceivingTouchdowns,
			PhotoURL:      s.photoURL(name, teamAbbr),
		})
	}

	return out, nil
}

// RushingWeekly returns the week-level rushing dashboard, sorted by
// rushing yards descending.
func (s *StatsService) RushingWeekly(ctx context.Context, season, week int, team string, limit int) ([]WeeklyRushingRow, error) {
	lines, err := s.weekLines(ctx, season, week, team, rushingWeekColumns)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].RushingYards > lines[j].RushingYards
	})
	lines = truncate(lines, limit, dashboardMax)

	playersByID, abbrs, err := s.weekLookups(ctx, lines)
	if err != nil {
		return nil, err
	}

	out := make([]WeeklyRushingRow, 0, len(lines))
	for _, l := range lines {
		pl, ok := playersByID[l.PlayerID]
		if !ok {
			continue
		}
		teamAbbr := abbrFor(abbrs, l.TeamID)
		name := pl.Name()
		out = append(out, WeeklyRushingRow{
			Season:         season,
			Week:           week,
			Team:           teamAbbr,
			PlayerID:       strconv.Itoa(l.PlayerID),
			PlayerName:     name,
			Position:       strPtrOrNil(pl.Position),
			RushAttempts:   l.RushingAttempts,
			RushYards:      l.RushingYards,
			RushTouchdowns: l.RushingTouchdowns,
			Receptions:     l.Receptions,
			RecYards:       l.ReceivingYards,
			PhotoURL:       s.photoURL(name, teamAbbr),
		})
	}

	return out, nil
}

// weekLines fetches the fact rows for an exact season+week. A team
// abbreviation that fails to resolve leaves the team filter off.
func (s *StatsService) weekLines(ctx context.Context, season, week int, team, columns string) ([]store.GameStatLine, error) {
	var teamID *int
	if team != "" {
		id, found, err := s.teams.IDByAbbreviation(ctx, team)
		if err != nil {
			return nil, err
		}
		if found {
			teamID = &id
		}
	}
	return s.stats.WeekLines(ctx, season, week, teamID, columns)
}

// weekLookups builds the player and team dimension lookups for the rows
// that survived ranking and truncation.
func (s *StatsService) weekLookups(ctx context.Context, lines []store.GameStatLine) (map[int]store.Player, map[int]string, error) {
	playerIDs := make([]int, 0, len(lines))
	teamIDs := make([]int, 0, len(lines))
	for _, l := range lines {
		playerIDs = append(playerIDs, l.PlayerID)
		if l.TeamID != nil {
			teamIDs = append(teamIDs, *l.TeamID)
		}
	}

	playersByID, err := s.players.ByIDs(ctx, uniqueInts(playerIDs))
	if err != nil {
		return nil, nil, err
	}
	abbrs, err := s.teams.AbbreviationsByID(ctx, uniqueInts(teamIDs))
	if err != nil {
		return nil, nil, err
	}
	return playersByID, abbrs, nil
}
