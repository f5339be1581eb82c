package store

import (
	"strconv"
	"strings"
)

// Player is a dimension record from nfl_players. TeamID is the player's
// current team and may be absent.
type Player struct {
	ID        int
	FirstName string
	LastName  string
	Position  string
	TeamID    *int
}

// PlayerFromRow decodes a player row. Rows without a coercible id are
// rejected, never errors.
func PlayerFromRow(r Row) (Player, bool) {
	id, ok := ToInt(r["id"])
	if !ok {
		return Player{}, false
	}
	p := Player{
		ID:        id,
		FirstName: strings.TrimSpace(asString(r["first_name"])),
		LastName:  strings.TrimSpace(asString(r["last_name"])),
		Position:  strings.TrimSpace(asString(r["position_abbreviation"])),
	}
	if tid, ok := ToInt(r["team_id"]); ok {
		p.TeamID = &tid
	}
	return p, true
}

// Name returns the display name, falling back to the player id when both
// name parts are blank.
func (p Player) Name() string {
	name := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if name == "" {
		return strconv.Itoa(p.ID)
	}
	return name
}

// Team is a dimension record from nfl_teams. Abbreviation is upper-cased
// for comparison and display.
type Team struct {
	ID           int
	Abbreviation string
}

// TeamFromRow decodes a team row.
func TeamFromRow(r Row) (Team, bool) {
	id, ok := ToInt(r["id"])
	if !ok {
		return Team{}, false
	}
	return Team{
		ID:           id,
		Abbreviation: strings.ToUpper(strings.TrimSpace(asString(r["abbreviation"]))),
	}, true
}

// Game is a dimension record from nfl_games.
type Game struct {
	ID            int
	HomeTeamID    *int
	VisitorTeamID *int
	Postseason    bool
}

// GameFromRow decodes a game row.
func GameFromRow(r Row) (Game, bool) {
	id, ok := ToInt(r["id"])
	if !ok {
		return Game{}, false
	}
	g := Game{ID: id, Postseason: ToBool(r["postseason"])}
	if ht, ok := ToInt(r["home_team_id"]); ok {
		g.HomeTeamID = &ht
	}
	if vt, ok := ToInt(r["visitor_team_id"]); ok {
		g.VisitorTeamID = &vt
	}
	return g, true
}

// StatLine carries the offensive counting stats shared by season and game
// fact rows. Counters default to zero when a column is absent or fails
// coercion; the QB ratings stay null.
type StatLine struct {
	PlayerID             int
	Games                int
	Targets              int
	Receptions           int
	ReceivingYards       int
	ReceivingTouchdowns  int
	RushingAttempts      int
	RushingYards         int
	RushingTouchdowns    int
	PassingAttempts      int
	PassingCompletions   int
	PassingYards         int
	PassingTouchdowns    int
	PassingInterceptions int
	QBRating             *float64
	QBR                  *float64
}

// HasStats reports whether the line recorded at least one meaningful
// offensive stat. Defensive players can appear with games_played but no
// tracked counters; they stay out of list and season views.
func (l StatLine) HasStats() bool {
	return l.PassingAttempts > 0 ||
		l.PassingCompletions > 0 ||
		l.RushingAttempts > 0 ||
		l.Receptions > 0 ||
		l.Targets > 0
}

// StatLineFromRow decodes the shared counters from a fact row. Rows
// without a coercible player_id are dropped silently.
func StatLineFromRow(r Row) (StatLine, bool) {
	pid, ok := ToInt(r["player_id"])
	if !ok {
		return StatLine{}, false
	}
	l := StatLine{
		PlayerID:             pid,
		Games:                intOrZero(r["games_played"]),
		Targets:              intOrZero(r["receiving_targets"]),
		Receptions:           intOrZero(r["receptions"]),
		ReceivingYards:       intOrZero(r["receiving_yards"]),
		ReceivingTouchdowns:  intOrZero(r["receiving_touchdowns"]),
		RushingAttempts:      intOrZero(r["rushing_attempts"]),
		RushingYards:         intOrZero(r["rushing_yards"]),
		RushingTouchdowns:    intOrZero(r["rushing_touchdowns"]),
		PassingAttempts:      intOrZero(r["passing_attempts"]),
		PassingCompletions:   intOrZero(r["passing_completions"]),
		PassingYards:         intOrZero(r["passing_yards"]),
		PassingTouchdowns:    intOrZero(r["passing_touchdowns"]),
		PassingInterceptions: intOrZero(r["passing_interceptions"]),
	}
	if f, ok := ToFloat(r["qb_rating"]); ok {
		l.QBRating = &f
	}
	if f, ok := ToFloat(r["qbr"]); ok {
		l.QBR = &f
	}
	return l, true
}

// GameStatLine is a per-game fact row from nfl_player_game_stats.
type GameStatLine struct {
	StatLine
	GameID     *int
	TeamID     *int
	Season     *int
	Week       int
	Postseason bool
}

// GameStatLineFromRow decodes a per-game fact row.
func GameStatLineFromRow(r Row) (GameStatLine, bool) {
	base, ok := StatLineFromRow(r)
	if !ok {
		return GameStatLine{}, false
	}
	l := GameStatLine{
		StatLine:   base,
		Week:       intOrZero(r["week"]),
		Postseason: ToBool(r["postseason"]),
	}
	if gid, ok := ToInt(r["game_id"]); ok {
		l.GameID = &gid
	}
	if tid, ok := ToInt(r["team_id"]); ok {
		l.TeamID = &tid
	}
	if s, ok := ToInt(r["season"]); ok {
		l.Season = &s
	}
	return l, true
}

func intOrZero(v any) int {
	i, _ := ToInt(v)
	return i
}
