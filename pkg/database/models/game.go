package models

import "time"

// Database model for a single game.
// The primary key is the game id assigned by the stats API, not a surrogate.
// The team abbreviations are kept denormalized so the row stays readable
// even when the team lookup failed at ingest time.
type Game struct {
	ID         string     `gorm:"primaryKey;type:varchar(16)"`
	GameDate   *time.Time `gorm:"type:date;index"`
	Season     int        `gorm:"index;index:idx_games_season_date,priority:1"`
	SeasonType string     `gorm:"type:varchar(16);index"`

	// Team references, best effort.
	HomeTeamId   *uint  `gorm:"index"`
	AwayTeamId   *uint  `gorm:"index"`
	HomeTeamAbbr string `gorm:"type:varchar(8);index"`
	AwayTeamAbbr string `gorm:"type:varchar(8);index"`

	// Results. HomeWin is derived from the scores and never set directly.
	HomeScore *int
	AwayScore *int
	HomeWin   *bool

	// Game metadata.
	Arena           *string `gorm:"type:varchar(128)"`
	Attendance      *int
	DurationMinutes *int
	Overtime        bool
	OvertimePeriods int

	// Game context.
	HomeRestDays   *int
	AwayRestDays   *int
	HomeBackToBack bool
	AwayBackToBack bool

	// Owned rows, removed together with the game.
	GameStats    []GameStats       `gorm:"foreignKey:GameId;constraint:OnDelete:CASCADE"`
	PlayerStats  []PlayerGameStats `gorm:"foreignKey:GameId;constraint:OnDelete:CASCADE"`
	BettingLines []BettingLine     `gorm:"foreignKey:GameId;constraint:OnDelete:CASCADE"`
}

// RecomputeHomeWin rebuilds the derived winner flag from the current scores.
// With either score missing the flag is cleared.
func (g *Game) RecomputeHomeWin() {
	if g.HomeScore == nil || g.AwayScore == nil {
		g.HomeWin = nil
		return
	}

	won := *g.HomeScore > *g.AwayScore
	g.HomeWin = &won
}
