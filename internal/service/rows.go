package service

// Output row types are a wire contract consumed by the UI; field names
// must be preserved exactly, including the camelCase/snake_case mix the
// frontend already depends on.

// PlayerSeasonRow is one line of the player season list view.
type PlayerSeasonRow struct {
	PlayerID             string   `json:"player_id"`
	PlayerName           string   `json:"player_name"`
	Team                 *string  `json:"team"`
	Position             *string  `json:"position"`
	Season               int      `json:"season"`
	Games                int      `json:"games"`
	Targets              int      `json:"targets"`
	Receptions           int      `json:"receptions"`
	ReceivingYards       int      `json:"receivingYards"`
	ReceivingTouchdowns  int      `json:"receivingTouchdowns"`
	AvgYardsPerCatch     float64  `json:"avgYardsPerCatch"`
	RushAttempts         int      `json:"rushAttempts"`
	RushingYards         int      `json:"rushingYards"`
	RushingTouchdowns    int      `json:"rushingTouchdowns"`
	AvgYardsPerRush      float64  `json:"avgYardsPerRush"`
	PassingAttempts      int      `json:"passingAttempts"`
	PassingCompletions   int      `json:"passingCompletions"`
	PassingYards         int      `json:"passingYards"`
	PassingTouchdowns    int      `json:"passingTouchdowns"`
	PassingInterceptions int      `json:"passingInterceptions"`
	QBRating             *float64 `json:"qbRating"`
	QBR                  *float64 `json:"qbr"`
	PhotoURL             *string  `json:"photoUrl"`
}

// GameLogRow is one game of a player's season log.
type GameLogRow struct {
	Season             int      `json:"season"`
	Week               int      `json:"week"`
	GameID             string   `json:"game_id"`
	Team               *string  `json:"team"`
	Opponent           *string  `json:"opponent"`
	HomeTeam           *string  `json:"home_team"`
	AwayTeam           *string  `json:"away_team"`
	Location           string   `json:"location"`
	IsPostseason       bool     `json:"is_postseason"`
	Targets            int      `json:"targets"`
	Receptions         int      `json:"receptions"`
	RecYards           int      `json:"rec_yards"`
	RecTouchdowns      int      `json:"rec_tds"`
	AirYards           int      `json:"air_yards"`
	YAC                int      `json:"yac"`
	RushAttempts       int      `json:"rush_attempts"`
	RushYards          int      `json:"rush_yards"`
	RushTouchdowns     int      `json:"rush_tds"`
	PassingAttempts    int      `json:"passing_attempts"`
	PassingCompletions int      `json:"passing_completions"`
	PassingYards       int      `json:"passing_yards"`
	PassingTouchdowns  int      `json:"passing_tds"`
	Interceptions      int      `json:"interceptions"`
	QBRating           *float64 `json:"qb_rating"`
	QBR                *float64 `json:"qbr"`
}

// WeeklyReceivingRow is one line of the week-level receiving dashboard.
type WeeklyReceivingRow struct {
	Season        int     `json:"season"`
	Week          int     `json:"week"`
	Team          *string `json:"team"`
	PlayerID      string  `json:"player_id"`
	PlayerName    string  `json:"player_name"`
	Position      *string `json:"position"`
	Targets       int     `json:"targets"`
	Receptions    int     `json:"receptions"`
	RecYards      int     `json:"rec_yards"`
	RecTouchdowns int     `json:"rec_tds"`
	AirYards      int     `json:"air_yards"`
	YAC           int     `json:"yac"`
	PhotoURL      *string `json:"photoUrl"`
}

// WeeklyRushingRow is one line of the week-level rushing dashboard.
type WeeklyRushingRow struct {
	Season         int     `json:"season"`
	Week           int     `json:"week"`
	Team           *string `json:"team"`
	PlayerID       string  `json:"player_id"`
	PlayerName     string  `json:"player_name"`
	Position       *string `json:"position"`
	RushAttempts   int     `json:"rush_attempts"`
	RushYards      int     `json:"rush_yards"`
	RushTouchdowns int     `json:"rush_tds"`
	Receptions     int     `json:"receptions"`
	RecYards       int     `json:"rec_yards"`
	PhotoURL       *string `json:"photoUrl"`
}

// SeasonReceivingRow is one line of the season-level receiving summary.
type SeasonReceivingRow struct {
	Season          int      `json:"season"`
	Team            *string  `json:"team"`
	PlayerID        string   `json:"player_id"`
	PlayerName      string   `json:"player_name"`
	Position        *string  `json:"position"`
	Targets         int      `json:"targets"`
	Receptions      int      `json:"receptions"`
	RecYards        int      `json:"rec_yards"`
	AirYards        int      `json:"air_yards"`
	RecTouchdowns   int      `json:"rec_tds"`
	TeamTargetShare *float64 `json:"team_target_share"`
	PhotoURL        *string  `json:"photoUrl"`
}

// SeasonRushingRow is one line of the season-level rushing summary.
type SeasonRushingRow struct {
	Season         int      `json:"season"`
	Team           *string  `json:"team"`
	PlayerID       string   `json:"player_id"`
	PlayerName     string   `json:"player_name"`
	Position       *string  `json:"position"`
	RushAttempts   int      `json:"rush_attempts"`
	RushYards      int      `json:"rush_yards"`
	RushTouchdowns int      `json:"rush_tds"`
	TeamRushShare  *float64 `json:"team_rush_share"`
	PhotoURL       *string  `json:"photoUrl"`
}

// Options holds the dropdown filter values for the UI.
type Options struct {
	Seasons   []int    `json:"seasons"`
	Weeks     []int    `json:"weeks"`
	Teams     []string `json:"teams"`
	Positions []string `json:"positions"`
}

// Summary holds dataset-level counts for the landing view.
type Summary struct {
	Seasons []int `json:"seasons"`
	Games   int   `json:"games"`
	Players int   `json:"players"`
	Teams   int   `json:"teams"`
}
