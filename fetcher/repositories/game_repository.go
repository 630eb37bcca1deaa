package repositories

import (
	"errors"
	"fmt"
	"time"

	"gohoops/pkg/database/models"
	seasonvalues "gohoops/pkg/nbavalues/season"

	"gorm.io/gorm"
)

// GameRepository defines the public interface for handling game related data.
type GameRepository interface {
	GetById(gameId string) (*models.Game, error)
	GetBySeason(season int, seasonType seasonvalues.SeasonType) ([]models.Game, error)
	GetByDateRange(start time.Time, end time.Time) ([]models.Game, error)
	Create(game *models.Game) error
	Save(game *models.Game) error
	Delete(gameId string) error
}

// gameRepository is the repository instance.
type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates and return the game repository.
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

// GetById returns a given game by the id assigned by the stats API.
func (gr *gameRepository) GetById(gameId string) (*models.Game, error) {
	var game models.Game
	if err := gr.db.Where("id = ?", gameId).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't get the game: %v", err)
	}

	return &game, nil
}

// GetBySeason returns every game of a season and season type.
func (gr *gameRepository) GetBySeason(season int, seasonType seasonvalues.SeasonType) ([]models.Game, error) {
	var games []models.Game
	err := gr.db.
		Where("season = ? AND season_type = ?", season, string(seasonType)).
		Order("game_date asc").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

// GetByDateRange returns every game inside the date range, inclusive.
func (gr *gameRepository) GetByDateRange(start time.Time, end time.Time) ([]models.Game, error) {
	var games []models.Game
	err := gr.db.
		Where("game_date >= ? AND game_date <= ?", start, end).
		Order("game_date asc").
		Find(&games).Error
	if err != nil {
		return nil, err
	}
	return games, nil
}

// Create stages a new game.
func (gr *gameRepository) Create(game *models.Game) error {
	return gr.db.Create(game).Error
}

// Save persists every field of a already loaded game.
func (gr *gameRepository) Save(game *models.Game) error {
	return gr.db.Save(game).Error
}

// Delete removes a game. The owned stats and betting rows cascade.
func (gr *gameRepository) Delete(gameId string) error {
	return gr.db.Delete(&models.Game{}, "id = ?", gameId).Error
}
