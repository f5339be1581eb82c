package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

const seasonStatColumns = "player_id,games_played," +
	"passing_attempts,passing_completions,passing_yards,passing_touchdowns,passing_interceptions," +
	"qbr,qb_rating," +
	"rushing_attempts,rushing_yards,rushing_touchdowns," +
	"receptions,receiving_yards,receiving_touchdowns,receiving_targets"

const gameStatColumns = "player_id,game_id,season,week,postseason,team_id," +
	"rushing_attempts,rushing_yards,rushing_touchdowns," +
	"receptions,receiving_yards,receiving_touchdowns,receiving_targets," +
	"passing_attempts,passing_completions,passing_yards,passing_touchdowns,passing_interceptions," +
	"qbr,qb_rating"

// StatsRepository handles fact-row data access for both the per-season
// and per-game stat tables.
type StatsRepository struct {
	q store.Querier
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(q store.Querier) *StatsRepository {
	return &StatsRepository{q: q}
}

// SeasonLines fetches regular-season stat lines for one season. The row
// cap is generous because position and team filtering happens after the
// player join. Rows without a coercible player_id are dropped.
func (r *StatsRepository) SeasonLines(ctx context.Context, season int) ([]store.StatLine, error) {
	rows, err := r.q.Select(ctx, store.TableSeasonStats, store.SelectParams{
		Columns: seasonStatColumns,
		Filters: store.Filters{
			"season":     store.Eq(season),
			"postseason": store.Eq(false),
		},
		Limit: 8000,
	})
	if err != nil {
		return nil, fmt.Errorf("querying season stats: %w", err)
	}

	lines := make([]store.StatLine, 0, len(rows))
	for _, row := range rows {
		line, ok := store.StatLineFromRow(row)
		if !ok {
			continue
		}
		lines = append(lines, line)
	}

	return lines, nil
}

// GameLines fetches one player's game stat lines for a season in ascending
// week order, up to a safety cap of 400 rows. Postseason games are
// excluded unless requested.
func (r *StatsRepository) GameLines(ctx context.Context, playerID, season int, includePostseason bool) ([]store.GameStatLine, error) {
	filters := store.Filters{
		"player_id": store.Eq(playerID),
		"season":    store.Eq(season),
	}
	if !includePostseason {
		filters["postseason"] = store.Eq(false)
	}

	rows, err := r.q.Select(ctx, store.TableGameStats, store.SelectParams{
		Columns: gameStatColumns,
		Filters: filters,
		Order:   "week.asc",
		Limit:   400,
	})
	if err != nil {
		return nil, fmt.Errorf("querying game stats for player %d: %w", playerID, err)
	}

	return decodeGameLines(rows), nil
}

// WeekLines fetches regular-season game stat lines for an exact
// season+week, optionally narrowed to one team id.
func (r *StatsRepository) WeekLines(ctx context.Context, season, week int, teamID *int, columns string) ([]store.GameStatLine, error) {
	filters := store.Filters{
		"season":     store.Eq(season),
		"week":       store.Eq(week),
		"postseason": store.Eq(false),
	}
	if teamID != nil {
		filters["team_id"] = store.Eq(*teamID)
	}

	rows, err := r.q.Select(ctx, store.TableGameStats, store.SelectParams{
		Columns: columns,
		Filters: filters,
		Limit:   5000,
	})
	if err != nil {
		return nil, fmt.Errorf("querying week %d stats: %w", week, err)
	}

	return decodeGameLines(rows), nil
}

func decodeGameLines(rows []store.Row) []store.GameStatLine {
	lines := make([]store.GameStatLine, 0, len(rows))
	for _, row := range rows {
		line, ok := store.GameStatLineFromRow(row)
		if !ok {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
