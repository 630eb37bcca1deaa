package models

import "time"

// Database model for a betting line attached to a game.
// One row per game, sportsbook and line type.
type BettingLine struct {
	ID     uint   `gorm:"primaryKey"`
	GameId string `gorm:"type:varchar(16);not null;index;uniqueIndex:idx_betting_lines_unique,priority:1"`

	// Line information.
	HomeSpread    *float64
	AwaySpread    *float64
	TotalPoints   *float64
	HomeMoneyline *int
	AwayMoneyline *int

	// Realized results.
	HomeCover *bool
	AwayCover *bool
	OverHit   *bool
	UnderHit  *bool

	// Metadata.
	Sportsbook string    `gorm:"type:varchar(64);index;uniqueIndex:idx_betting_lines_unique,priority:2"`
	LineType   string    `gorm:"type:varchar(32);uniqueIndex:idx_betting_lines_unique,priority:3"`
	Timestamp  time.Time `gorm:"autoCreateTime"`
}
