package database

import (
	"fmt"

	"gohoops/pkg/database/models"

	"gorm.io/gorm"
)

// Migrate creates or updates every table of the schema.
// Table creation is owned here, the ingest services assume the schema exists.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Team{},
		&models.Player{},
		&models.Game{},
		&models.TeamStats{},
		&models.PlayerSeasonStats{},
		&models.GameStats{},
		&models.PlayerGameStats{},
		&models.BettingLine{},
	)
	if err != nil {
		return fmt.Errorf("couldn't migrate the models: %v", err)
	}

	return createCustomIndexes(db)
}

// createCustomIndexes creates any necessary custom index.
func createCustomIndexes(db *gorm.DB) error {
	// Speeds up the season filtered queries on stats tables.
	indexes := []string{
		`CREATE INDEX IF NOT EXISTS idx_team_stats_season_type ON team_stats (season, season_type)`,
		`CREATE INDEX IF NOT EXISTS idx_player_season_stats_season_type ON player_season_stats (season, season_type)`,
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			return fmt.Errorf("couldn't create the custom indexes: %v", err)
		}
	}
	return nil
}
