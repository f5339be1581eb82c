package postgres

import (
	"reflect"
	"testing"

	"github.com/fortuna/gridiron/internal/store"
)

func TestBuildSelect(t *testing.T) {
	tests := []struct {
		name     string
		table    string
		params   store.SelectParams
		wantSQL  string
		wantArgs []any
		wantErr  bool
	}{
		{
			name:    "bare table",
			table:   "nfl_games",
			params:  store.SelectParams{},
			wantSQL: "SELECT * FROM nfl_games",
		},
		{
			name:  "columns order limit",
			table: "nfl_teams",
			params: store.SelectParams{
				Columns: "id,abbreviation",
				Order:   "abbreviation.asc",
				Limit:   100,
			},
			wantSQL: "SELECT id,abbreviation FROM nfl_teams ORDER BY abbreviation ASC LIMIT 100",
		},
		{
			name:  "eq filters sorted by column",
			table: "nfl_player_season_stats",
			params: store.SelectParams{
				Filters: store.Filters{
					"season":     "eq.2024",
					"postseason": "eq.false",
				},
			},
			wantSQL:  "SELECT * FROM nfl_player_season_stats WHERE postseason = $1 AND season = $2",
			wantArgs: []any{false, 2024},
		},
		{
			name:  "in filter",
			table: "nfl_players",
			params: store.SelectParams{
				Filters: store.Filters{"id": "in.(3,1,2)"},
			},
			wantSQL:  "SELECT * FROM nfl_players WHERE id IN ($1, $2, $3)",
			wantArgs: []any{3, 1, 2},
		},
		{
			name:  "empty in list matches nothing",
			table: "nfl_players",
			params: store.SelectParams{
				Filters: store.Filters{"id": "in.()"},
			},
			wantSQL: "SELECT * FROM nfl_players WHERE FALSE",
		},
		{
			name:  "multi key order",
			table: "nfl_games",
			params: store.SelectParams{
				Columns: "season,week",
				Order:   "season.desc,week.asc",
			},
			wantSQL: "SELECT season,week FROM nfl_games ORDER BY season DESC, week ASC",
		},
		{
			name:  "string eq stays string",
			table: "nfl_teams",
			params: store.SelectParams{
				Filters: store.Filters{"abbreviation": "eq.KC"},
			},
			wantSQL:  "SELECT * FROM nfl_teams WHERE abbreviation = $1",
			wantArgs: []any{"KC"},
		},
		{
			name:    "rejects bad table",
			table:   "nfl_games; DROP TABLE x",
			params:  store.SelectParams{},
			wantErr: true,
		},
		{
			name:  "rejects bad column",
			table: "nfl_games",
			params: store.SelectParams{
				Columns: "id,1=1--",
			},
			wantErr: true,
		},
		{
			name:  "rejects unsupported filter",
			table: "nfl_games",
			params: store.SelectParams{
				Filters: store.Filters{"season": "gte.2020"},
			},
			wantErr: true,
		},
		{
			name:  "rejects bad order direction",
			table: "nfl_games",
			params: store.SelectParams{
				Order: "season.sideways",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := buildSelect(tt.table, tt.params)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("buildSelect succeeded, want error; got %q", sql)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildSelect: %v", err)
			}
			if sql != tt.wantSQL {
				t.Errorf("sql = %q, want %q", sql, tt.wantSQL)
			}
			if len(args) != 0 || len(tt.wantArgs) != 0 {
				if !reflect.DeepEqual(args, tt.wantArgs) {
					t.Errorf("args = %#v, want %#v", args, tt.wantArgs)
				}
			}
		})
	}
}

func TestTypedLiteral(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"false", false},
		{"2024", 2024},
		{"KC", "KC"},
		{"12.5", "12.5"},
	}
	for _, tt := range tests {
		if got := typedLiteral(tt.in); got != tt.want {
			t.Errorf("typedLiteral(%q) = %#v, want %#v", tt.in, got, tt.want)
		}
	}
}
