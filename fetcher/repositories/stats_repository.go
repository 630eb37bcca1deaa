package repositories

import (
	"errors"
	"fmt"

	"gohoops/pkg/database/models"
	seasonvalues "gohoops/pkg/nbavalues/season"

	"gorm.io/gorm"
)

// StatsRepository defines the public interface for handling the stat rows.
// Season rows are keyed by owner, season and season type, box rows by game
// and owner.
type StatsRepository interface {
	GetTeamStats(teamId uint, season int, seasonType seasonvalues.SeasonType) (*models.TeamStats, error)
	GetPlayerSeasonStats(playerId uint, season int, seasonType seasonvalues.SeasonType) (*models.PlayerSeasonStats, error)
	GetGameStats(gameId string, teamId uint) (*models.GameStats, error)
	GetPlayerGameStats(gameId string, playerId uint) (*models.PlayerGameStats, error)
	CreateTeamStats(stats *models.TeamStats) error
	SaveTeamStats(stats *models.TeamStats) error
	CreatePlayerSeasonStats(stats *models.PlayerSeasonStats) error
	SavePlayerSeasonStats(stats *models.PlayerSeasonStats) error
	CreateGameStats(stats *models.GameStats) error
	SaveGameStats(stats *models.GameStats) error
	CreatePlayerGameStats(stats *models.PlayerGameStats) error
	SavePlayerGameStats(stats *models.PlayerGameStats) error
}

// statsRepository is the repository instance.
type statsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates and return the stats repository.
func NewStatsRepository(db *gorm.DB) StatsRepository {
	return &statsRepository{db: db}
}

// GetTeamStats returns the team season row for the given key.
func (sr *statsRepository) GetTeamStats(teamId uint, season int, seasonType seasonvalues.SeasonType) (*models.TeamStats, error) {
	var stats models.TeamStats
	err := sr.db.
		Where("team_id = ? AND season = ? AND season_type = ?", teamId, season, string(seasonType)).
		First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't get the team stats: %v", err)
	}

	return &stats, nil
}

// GetPlayerSeasonStats returns the player season row for the given key.
func (sr *statsRepository) GetPlayerSeasonStats(playerId uint, season int, seasonType seasonvalues.SeasonType) (*models.PlayerSeasonStats, error) {
	var stats models.PlayerSeasonStats
	err := sr.db.
		Where("player_id = ? AND season = ? AND season_type = ?", playerId, season, string(seasonType)).
		First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't get the player stats: %v", err)
	}

	return &stats, nil
}

// GetGameStats returns the team box row of one game.
func (sr *statsRepository) GetGameStats(gameId string, teamId uint) (*models.GameStats, error) {
	var stats models.GameStats
	err := sr.db.
		Where("game_id = ? AND team_id = ?", gameId, teamId).
		First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't get the game stats: %v", err)
	}

	return &stats, nil
}

// GetPlayerGameStats returns the player box row of one game.
func (sr *statsRepository) GetPlayerGameStats(gameId string, playerId uint) (*models.PlayerGameStats, error) {
	var stats models.PlayerGameStats
	err := sr.db.
		Where("game_id = ? AND player_id = ?", gameId, playerId).
		First(&stats).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't get the player game stats: %v", err)
	}

	return &stats, nil
}

func (sr *statsRepository) CreateTeamStats(stats *models.TeamStats) error {
	return sr.db.Create(stats).Error
}

func (sr *statsRepository) SaveTeamStats(stats *models.TeamStats) error {
	return sr.db.Save(stats).Error
}

func (sr *statsRepository) CreatePlayerSeasonStats(stats *models.PlayerSeasonStats) error {
	return sr.db.Create(stats).Error
}

func (sr *statsRepository) SavePlayerSeasonStats(stats *models.PlayerSeasonStats) error {
	return sr.db.Save(stats).Error
}

func (sr *statsRepository) CreateGameStats(stats *models.GameStats) error {
	return sr.db.Create(stats).Error
}

func (sr *statsRepository) SaveGameStats(stats *models.GameStats) error {
	return sr.db.Save(stats).Error
}

func (sr *statsRepository) CreatePlayerGameStats(stats *models.PlayerGameStats) error {
	return sr.db.Create(stats).Error
}

func (sr *statsRepository) SavePlayerGameStats(stats *models.PlayerGameStats) error {
	return sr.db.Save(stats).Error
}
