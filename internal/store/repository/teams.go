package repository

import (
	"context"
	"fmt"

	"github.com/fortuna/gridiron/internal/store"
)

// TeamRepository handles team data access
type TeamRepository struct {
	q store.Querier
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(q store.Querier) *TeamRepository {
	return &TeamRepository{q: q}
}

// AbbreviationsByID fetches the given team ids in one batch and returns an
// id to upper-cased abbreviation mapping. An empty id set short-circuits
// to an empty map without issuing a fetch.
func (r *TeamRepository) AbbreviationsByID(ctx context.Context, teamIDs []int) (map[int]string, error) {
	abbrs := make(map[int]string, len(teamIDs))
	if len(teamIDs) == 0 {
		return abbrs, nil
	}

	rows, err := r.q.Select(ctx, store.TableTeams, store.SelectParams{
		Columns: "id,abbreviation",
		Filters: store.Filters{"id": store.InList(teamIDs)},
		Limit:   len(teamIDs),
	})
	if err != nil {
		return nil, fmt.Errorf("querying teams: %w", err)
	}

	for _, row := range rows {
		team, ok := store.TeamFromRow(row)
		if !ok {
			continue
		}
		abbrs[team.ID] = team.Abbreviation
	}

	return abbrs, nil
}

// IDByAbbreviation resolves a team abbreviation (e.g. "KC") to its id.
// An unknown abbreviation reports found=false, not an error.
func (r *TeamRepository) IDByAbbreviation(ctx context.Context, abbr string) (int, bool, error) {
	rows, err := r.q.Select(ctx, store.TableTeams, store.SelectParams{
		Columns: "id",
		Filters: store.Filters{"abbreviation": store.Eq(abbr)},
		Limit:   1,
	})
	if err != nil {
		return 0, false, fmt.Errorf("querying team %q: %w", abbr, err)
	}
	if len(rows) == 0 {
		return 0, false, nil
	}

	id, ok := store.ToInt(rows[0]["id"])
	if !ok {
		return 0, false, nil
	}
	return id, true, nil
}

// Abbreviations lists all team abbreviations sorted ascending, for
// dropdown filter options.
func (r *TeamRepository) Abbreviations(ctx context.Context) ([]string, error) {
	rows, err := r.q.Select(ctx, store.TableTeams, store.SelectParams{
		Columns: "abbreviation",
		Order:   "abbreviation.asc",
		Limit:   1000,
	})
	if err != nil {
		return nil, fmt.Errorf("querying team abbreviations: %w", err)
	}

	abbrs := make([]string, 0, len(rows))
	for _, row := range rows {
		if abbr, ok := row["abbreviation"].(string); ok {
			abbrs = append(abbrs, abbr)
		}
	}

	return abbrs, nil
}

// Count returns the total number of teams.
func (r *TeamRepository) Count(ctx context.Context) (int, error) {
	n, err := r.q.Count(ctx, store.TableTeams)
	if err != nil {
		return 0, fmt.Errorf("counting teams: %w", err)
	}
	return n, nil
}
