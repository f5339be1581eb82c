package service

import (
	"context"
	"sort"
)

var (
	receivingPositions = map[string]struct{}{"WR": {}, "TE": {}, "RB": {}}
	rushingPositions   = map[string]struct{}{"RB": {}, "QB": {}, "WR": {}, "TE": {}}
)

// ReceivingSeason returns the season-level receiving summary. It reuses
// the season list pipeline for fetch/join/derive, then adds a team target
// share. Team totals are summed over the whole already-filtered list
// scope before the position subset is applied, so a team's share always
// reflects every pass-catcher in the result set.
func (s *StatsService) ReceivingSeason(ctx context.Context, season int, team string, limit int) ([]SeasonReceivingRow, error) {
	rows, err := s.seasonScope(ctx, season, team)
	if err != nil {
		return nil, err
	}

	targetsByTeam := make(map[string]int)
	for _, r := range rows {
		targetsByTeam[deref(r.Team)] += r.Targets
	}

	out := make([]SeasonReceivingRow, 0, len(rows))
	for _, r := range rows {
		if _, ok := receivingPositions[deref(r.Position)]; !ok {
			continue
		}
		out = append(out, SeasonReceivingRow{
			Season:          season,
			Team:            r.Team,
			PlayerID:        r.PlayerID,
			PlayerName:      r.PlayerName,
			Position:        r.Position,
			Targets:         r.Targets,
			Receptions:      r.Receptions,
			RecYards:        r.ReceivingYards,
			RecTouchdowns:   r.ReceivingTouchdowns,
			TeamTargetShare: share(r.Targets, targetsByTeam[deref(r.Team)]),
			PhotoURL:        r.PhotoURL,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Targets > out[j].Targets
	})

	return truncate(out, limit, dashboardMax), nil
}

// RushingSeason returns the season-level rushing summary with a team rush
// share, computed the same way as the receiving share.
func (s *StatsService) RushingSeason(ctx context.Context, season int, team string, limit int) ([]SeasonRushingRow, error) {
	rows, err := s.seasonScope(ctx, season, team)
	if err != nil {
		return nil, err
	}

	attemptsByTeam := make(map[string]int)
	for _, r := range rows {
		attemptsByTeam[deref(r.Team)] += r.RushAttempts
	}

	out := make([]SeasonRushingRow, 0, len(rows))
	for _, r := range rows {
		if _, ok := rushingPositions[deref(r.Position)]; !ok {
			continue
		}
		out = append(out, SeasonRushingRow{
			Season:         season,
			Team:           r.Team,
			PlayerID:       r.PlayerID,
			PlayerName:     r.PlayerName,
			Position:       r.Position,
			RushAttempts:   r.RushAttempts,
			RushYards:      r.RushingYards,
			RushTouchdowns: r.RushingTouchdowns,
			TeamRushShare:  share(r.RushAttempts, attemptsByTeam[deref(r.Team)]),
			PhotoURL:       r.PhotoURL,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RushYards > out[j].RushYards
	})

	return truncate(out, limit, dashboardMax), nil
}

// seasonScope runs the season list pipeline without a position filter and
// with the cap wide open; the summaries subset and re-rank it themselves.
func (s *StatsService) seasonScope(ctx context.Context, season int, team string) ([]PlayerSeasonRow, error) {
	sn := season
	return s.SeasonList(ctx, SeasonListParams{Season: &sn, Team: team, Limit: 8000})
}

// share divides a player's count by the team total; a zero total yields
// null rather than a division error.
func share(count, total int) *float64 {
	if total == 0 {
		return nil
	}
	v := float64(count) / float64(total)
	return &v
}
