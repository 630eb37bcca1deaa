package data

import "time"

// Canonical records produced by the fetchers.
// The external identifier is always a canonical string, every other field
// is a pointer: nil marks a value the source did not supply, which the
// ingest services must leave untouched on update.

// TeamRecord is the canonical shape of one team.
type TeamRecord struct {
	TeamId       string
	Name         *string
	Abbreviation *string
	City         *string
	State        *string
	Conference   *string
	Division     *string
}

// GameRecord is the canonical shape of one game.
type GameRecord struct {
	GameId          string
	GameDate        *time.Time
	HomeTeamAbbr    *string
	AwayTeamAbbr    *string
	HomeScore       *int
	AwayScore       *int
	Arena           *string
	Attendance      *int
	DurationMinutes *int
	OvertimePeriods *int
}

// PlayerRecord is the canonical shape of one roster entry.
type PlayerRecord struct {
	PlayerId     string
	TeamId       *string
	Name         *string
	Position     *string
	Height       *string
	Weight       *int
	BirthDate    *time.Time
	BirthPlace   *string
	College      *string
	DraftYear    *int
	DraftRound   *int
	DraftNumber  *int
	IsActive     *bool
	JerseyNumber *string
}

// TeamStatsRecord is the canonical shape of one team season stat line.
type TeamStatsRecord struct {
	TeamId string

	GamesPlayed   *int
	Wins          *int
	Losses        *int
	WinPercentage *float64

	PointsPerGame            *float64
	FieldGoalPercentage      *float64
	ThreePointPercentage     *float64
	FreeThrowPercentage      *float64
	OffensiveReboundsPerGame *float64
	DefensiveReboundsPerGame *float64
	AssistsPerGame           *float64
	StealsPerGame            *float64
	BlocksPerGame            *float64
	TurnoversPerGame         *float64
	PersonalFoulsPerGame     *float64

	Pace            *float64
	OffensiveRating *float64
	DefensiveRating *float64
	NetRating       *float64
}

// PlayerStatsRecord is the canonical shape of one player season stat line.
type PlayerStatsRecord struct {
	PlayerId string
	TeamId   *string

	GamesPlayed  *int
	GamesStarted *int

	MinutesPerGame *float64

	PointsPerGame        *float64
	ReboundsPerGame      *float64
	AssistsPerGame       *float64
	StealsPerGame        *float64
	BlocksPerGame        *float64
	TurnoversPerGame     *float64
	PersonalFoulsPerGame *float64

	FieldGoalPercentage  *float64
	ThreePointPercentage *float64
	FreeThrowPercentage  *float64

	TrueShootingPercentage       *float64
	EffectiveFieldGoalPercentage *float64
	OffensiveReboundPercentage   *float64
	DefensiveReboundPercentage   *float64
	AssistPercentage             *float64
	TurnoverPercentage           *float64
	UsagePercentage              *float64
	PlayerEfficiencyRating       *float64
}

// TeamBoxRecord is one team line of a game box score.
type TeamBoxRecord struct {
	TeamId string

	Points               *int
	FieldGoalsMade       *int
	FieldGoalsAttempted  *int
	FieldGoalPercentage  *float64
	ThreePointsMade      *int
	ThreePointsAttempted *int
	ThreePointPercentage *float64
	FreeThrowsMade       *int
	FreeThrowsAttempted  *int
	FreeThrowPercentage  *float64

	OffensiveRebounds *int
	DefensiveRebounds *int
	TotalRebounds     *int

	Assists       *int
	Steals        *int
	Blocks        *int
	Turnovers     *int
	PersonalFouls *int
}

// PlayerBoxRecord is one player line of a game box score.
type PlayerBoxRecord struct {
	PlayerId string
	TeamId   string

	Started              *bool
	MinutesPlayed        *string
	MinutesPlayedSeconds *int

	Points               *int
	FieldGoalsMade       *int
	FieldGoalsAttempted  *int
	FieldGoalPercentage  *float64
	ThreePointsMade      *int
	ThreePointsAttempted *int
	ThreePointPercentage *float64
	FreeThrowsMade       *int
	FreeThrowsAttempted  *int
	FreeThrowPercentage  *float64

	OffensiveRebounds *int
	DefensiveRebounds *int
	TotalRebounds     *int

	Assists       *int
	Steals        *int
	Blocks        *int
	Turnovers     *int
	PersonalFouls *int

	PlusMinus *int
}

// BoxScoreRecord groups the flattened result sets of one game box score.
type BoxScoreRecord struct {
	GameId  string
	Teams   []TeamBoxRecord
	Players []PlayerBoxRecord
}
