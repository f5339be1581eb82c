package service

import (
	"context"
	"strconv"

	"github.com/fortuna/gridiron/internal/store"
)

// GameLog returns one player's per-game lines for a season in ascending
// week order. There is no ranking or truncation beyond the fetch safety
// cap; the UI renders the full log. Postseason games are included only
// when requested. A malformed player id yields an empty log.
func (s *StatsService) GameLog(ctx context.Context, playerID string, season int, includePostseason bool) ([]GameLogRow, error) {
	pid, ok := store.ToInt(playerID)
	if !ok {
		return []GameLogRow{}, nil
	}

	lines, err := s.stats.GameLines(ctx, pid, season, includePostseason)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return []GameLogRow{}, nil
	}

	gameIDs := make([]int, 0, len(lines))
	for _, l := range lines {
		if l.GameID != nil {
			gameIDs = append(gameIDs, *l.GameID)
		}
	}
	gamesByID, err := s.games.ByIDs(ctx, uniqueInts(gameIDs))
	if err != nil {
		return nil, err
	}

	// Team ids come from both sides of each game and from the team the
	// player suited up for that week.
	teamIDs := make([]int, 0, 2*len(gamesByID)+len(lines))
	for _, g := range gamesByID {
		if g.HomeTeamID != nil {
			teamIDs = append(teamIDs, *g.HomeTeamID)
		}
		if g.VisitorTeamID != nil {
			teamIDs = append(teamIDs, *g.VisitorTeamID)
		}
	}
	for _, l := range lines {
		if l.TeamID != nil {
			teamIDs = append(teamIDs, *l.TeamID)
		}
	}
	abbrs, err := s.teams.AbbreviationsByID(ctx, uniqueInts(teamIDs))
	if err != nil {
		return nil, err
	}

	out := make([]GameLogRow, 0, len(lines))
	for _, l := range lines {
		if l.GameID == nil {
			continue
		}
		g := gamesByID[*l.GameID]

		homeAbbr := abbrFor(abbrs, g.HomeTeamID)
		awayAbbr := abbrFor(abbrs, g.VisitorTeamID)

		location := "home"
		var opponent *string
		if l.TeamID != nil && g.HomeTeamID != nil && g.VisitorTeamID != nil {
			if *l.TeamID == *g.HomeTeamID {
				opponent = awayAbbr
			} else {
				location = "away"
				opponent = homeAbbr
			}
		}

		rowSeason := season
		if l.Season != nil && *l.Season != 0 {
			rowSeason = *l.Season
		}

		out = append(out, GameLogRow{
			Season:             rowSeason,
			Week:               l.Week,
			GameID:             strconv.Itoa(*l.GameID),
			Team:               abbrFor(abbrs, l.TeamID),
			Opponent:           opponent,
			HomeTeam:           homeAbbr,
			AwayTeam:           awayAbbr,
			Location:           location,
			IsPostseason:       l.Postseason,
			Targets:            l.Targets,
			Receptions:         l.Receptions,
			RecYards:           l.ReceivingYards,
			RecTouchdowns:      l.ReceivingTouchdowns,
			RushAttempts:       l.RushingAttempts,
			RushYards:          l.RushingYards,
			RushTouchdowns:     l.RushingTouchdowns,
			PassingAttempts:    l.PassingAttempts,
			PassingCompletions: l.PassingCompletions,
			PassingYards:       l.PassingYards,
			PassingTouchdowns:  l.PassingTouchdowns,
			Interceptions:      l.PassingInterceptions,
			QBRating:           l.QBRating,
			QBR:                l.QBR,
		})
	}

	return out, nil
}
