package store

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

// Table names in the backing store.
const (
	TablePlayers     = "nfl_players"
	TableTeams       = "nfl_teams"
	TableGames       = "nfl_games"
	TableSeasonStats = "nfl_player_season_stats"
	TableGameStats   = "nfl_player_game_stats"
)

// Row is a single record returned by the table-query API. Values are
// whatever JSON decoding produced for the backend; use the coercion
// helpers before trusting a field.
type Row map[string]any

// Filters maps column names to filter expressions in PostgREST syntax,
// e.g. {"season": "eq.2023", "id": "in.(1,2,3)"}.
type Filters map[string]string

// SelectParams describes a filtered table scan.
type SelectParams struct {
	Columns string
	Filters Filters
	Order   string
	Limit   int
}

// Querier is the table-query contract every backend implements. Select
// issues one filtered scan; Count returns the total row count of a table.
type Querier interface {
	Select(ctx context.Context, table string, params SelectParams) ([]Row, error)
	Count(ctx context.Context, table string) (int, error)
}

// Eq builds an equality filter expression.
func Eq(v any) string {
	return fmt.Sprintf("eq.%v", v)
}

// InList builds a membership filter over an integer id set. Ids appear in
// input order; only the set matters semantically. Callers must guard
// against empty id sets before issuing a fetch.
func InList(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return "in.(" + strings.Join(parts, ",") + ")"
}
