package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

// GameRepository handles game data access
type GameRepository struct {
	q store.Querier
}

// NewGameRepository creates a new game repository
func NewGameRepository(q store.Querier) *GameRepository {
	return &GameRepository{q: q}
}

// ByIDs fetches the given game ids in one batch and returns an id to
// record mapping. An empty id set short-circuits without a fetch.
func (r *GameRepository) ByIDs(ctx context.Context, gameIDs []int) (map[int]store.Game, error) {
	games := make(map[int]store.Game, len(gameIDs))
	if len(gameIDs) == 0 {
		return games, nil
	}

	rows, err := r.q.Select(ctx, store.TableGames, store.SelectParams{
		Columns: "id,home_team_id,visitor_team_id,postseason",
		Filters: store.Filters{"id": store.InList(gameIDs)},
		Limit:   len(gameIDs),
	})
	if err != nil {
		return nil, fmt.Errorf("querying games: %w", err)
	}

	for _, row := range rows {
		game, ok := store.GameFromRow(row)
		if !ok {
			continue
		}
		games[game.ID] = game
	}

	return games, nil
}

// SeasonWeeks lists (season, week) pairs across all games, newest season
// first, for dropdown filter options.
func (r *GameRepository) SeasonWeeks(ctx context.Context) ([]store.Row, error) {
	rows, err := r.q.Select(ctx, store.TableGames, store.SelectParams{
		Columns: "season,week",
		Order:   "season.desc,week.asc",
		Limit:   5000,
	})
	if err != nil {
		return nil, fmt.Errorf("querying season weeks: %w", err)
	}
	return rows, nil
}

// Seasons lists the season column across all games, oldest first.
func (r *GameRepository) Seasons(ctx context.Context) ([]store.Row, error) {
	rows, err := r.q.Select(ctx, store.TableGames, store.SelectParams{
		Columns: "season",
		Order:   "season.asc",
		Limit:   5000,
	})
	if err != nil {
		return nil, fmt.Errorf("querying seasons: %w", err)
	}
	return rows, nil
}

// Count returns the total number of games.
func (r *GameRepository) Count(ctx context.Context) (int, error) {
	n, err := r.q.Count(ctx, store.TableGames)
	if err != nil {
		return 0, fmt.Errorf("counting games: %w", err)
	}
	return n, nil
}
