package models

// Database model for team season aggregates.
// One row per team, season and season type.
type TeamStats struct {
	ID         uint   `gorm:"primaryKey"`
	TeamId     uint   `gorm:"not null;index;uniqueIndex:idx_team_stats_unique,priority:1"`
	Season     int    `gorm:"index;uniqueIndex:idx_team_stats_unique,priority:2"`
	SeasonType string `gorm:"type:varchar(16);index;uniqueIndex:idx_team_stats_unique,priority:3"`

	Team Team `gorm:"foreignKey:TeamId"`

	// Basic stats.
	GamesPlayed   *int
	Wins          *int
	Losses        *int
	WinPercentage *float64

	// Offensive stats.
	PointsPerGame            *float64
	FieldGoalPercentage      *float64
	ThreePointPercentage     *float64
	FreeThrowPercentage      *float64
	OffensiveReboundsPerGame *float64
	AssistsPerGame           *float64
	TurnoversPerGame         *float64

	// Defensive stats.
	DefensiveReboundsPerGame *float64
	StealsPerGame            *float64
	BlocksPerGame            *float64
	PersonalFoulsPerGame     *float64

	// Advanced stats.
	Pace            *float64
	OffensiveRating *float64
	DefensiveRating *float64
	NetRating       *float64
}

// Database model for player season aggregates.
// One row per player, season and season type.
type PlayerSeasonStats struct {
	ID         uint   `gorm:"primaryKey"`
	PlayerId   uint   `gorm:"not null;index;uniqueIndex:idx_player_season_stats_unique,priority:1"`
	TeamId     *uint  `gorm:"index"`
	Season     int    `gorm:"index;uniqueIndex:idx_player_season_stats_unique,priority:2"`
	SeasonType string `gorm:"type:varchar(16);index;uniqueIndex:idx_player_season_stats_unique,priority:3"`

	Player Player `gorm:"foreignKey:PlayerId"`

	// Games played.
	GamesPlayed  *int
	GamesStarted *int

	// Minutes.
	MinutesPerGame *float64
	TotalMinutes   *int

	// Per game averages.
	PointsPerGame        *float64
	ReboundsPerGame      *float64
	AssistsPerGame       *float64
	StealsPerGame        *float64
	BlocksPerGame        *float64
	TurnoversPerGame     *float64
	PersonalFoulsPerGame *float64

	// Shooting percentages.
	FieldGoalPercentage  *float64
	ThreePointPercentage *float64
	FreeThrowPercentage  *float64

	// Advanced stats.
	TrueShootingPercentage       *float64
	EffectiveFieldGoalPercentage *float64
	OffensiveReboundPercentage   *float64
	DefensiveReboundPercentage   *float64
	AssistPercentage             *float64
	TurnoverPercentage           *float64
	UsagePercentage              *float64
	PlayerEfficiencyRating       *float64
}
