package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

// PlayerRepository handles player data access
type PlayerRepository struct {
	q store.Querier
}

// NewPlayerRepository creates a new player repository
func NewPlayerRepository(q store.Querier) *PlayerRepository {
	return &PlayerRepository{q: q}
}

// ByIDs fetches the given player ids in one batch and returns an id to
// record mapping. An empty id set short-circuits without a fetch.
func (r *PlayerRepository) ByIDs(ctx context.Context, playerIDs []int) (map[int]store.Player, error) {
	players := make(map[int]store.Player, len(playerIDs))
	if len(playerIDs) == 0 {
		return players, nil
	}

	rows, err := r.q.Select(ctx, store.TablePlayers, store.SelectParams{
		Columns: "id,first_name,last_name,position_abbreviation,team_id",
		Filters: store.Filters{"id": store.InList(playerIDs)},
		Limit:   len(playerIDs),
	})
	if err != nil {
		return nil, fmt.Errorf("querying players: %w", err)
	}

	for _, row := range rows {
		player, ok := store.PlayerFromRow(row)
		if !ok {
			continue
		}
		players[player.ID] = player
	}

	return players, nil
}

// Count returns the total number of players.
func (r *PlayerRepository) Count(ctx context.Context) (int, error) {
	n, err := r.q.Count(ctx, store.TablePlayers)
	if err != nil {
		return 0, fmt.Errorf("counting players: %w", err)
	}
	return n, nil
}
