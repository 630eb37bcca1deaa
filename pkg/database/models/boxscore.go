package models

// Database model for a team box score in a single game.
type GameStats struct {
	ID     uint   `gorm:"primaryKey"`
	GameId string `gorm:"type:varchar(16);not null;index;uniqueIndex:idx_game_stats_game_team,priority:1"`
	TeamId uint   `gorm:"not null;index;uniqueIndex:idx_game_stats_game_team,priority:2"`
	IsHome bool   `gorm:"index"`

	// Shooting splits.
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

	// Rebounding.
	OffensiveRebounds *int
	DefensiveRebounds *int
	TotalRebounds     *int

	// Other stats.
	Assists       *int
	Steals        *int
	Blocks        *int
	Turnovers     *int
	PersonalFouls *int

	// Advanced stats.
	TrueShootingPercentage       *float64
	EffectiveFieldGoalPercentage *float64
	OffensiveReboundPercentage   *float64
	DefensiveReboundPercentage   *float64
	AssistPercentage             *float64
	TurnoverPercentage           *float64
}

// Database model for a player box score in a single game.
type PlayerGameStats struct {
	ID       uint   `gorm:"primaryKey"`
	GameId   string `gorm:"type:varchar(16);not null;index;uniqueIndex:idx_player_game_stats_game_player,priority:1"`
	PlayerId uint   `gorm:"not null;index;uniqueIndex:idx_player_game_stats_game_player,priority:2"`
	TeamId   uint   `gorm:"not null;index"`

	// Game context. Minutes come as "MM:SS" from the API.
	Started              bool
	MinutesPlayed        *string `gorm:"type:varchar(8)"`
	MinutesPlayedSeconds *int

	// Shooting splits.
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

	// Rebounding.
	OffensiveRebounds *int
	DefensiveRebounds *int
	TotalRebounds     *int

	// Other stats.
	Assists       *int
	Steals        *int
	Blocks        *int
	Turnovers     *int
	PersonalFouls *int

	// Advanced stats.
	PlusMinus                    *int
	TrueShootingPercentage       *float64
	EffectiveFieldGoalPercentage *float64
	OffensiveReboundPercentage   *float64
	DefensiveReboundPercentage   *float64
	AssistPercentage             *float64
	TurnoverPercentage           *float64
}
