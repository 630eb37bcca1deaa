package repositories

import (
	"errors"
	"fmt"

	"gohoops/pkg/database/models"

	"gorm.io/gorm"
)

// BettingRepository defines the public interface for handling betting lines.
// Rows are keyed by game, sportsbook and line type.
type BettingRepository interface {
	GetLine(gameId string, sportsbook string, lineType string) (*models.BettingLine, error)
	GetByGame(gameId string) ([]models.BettingLine, error)
	Create(line *models.BettingLine) error
	Save(line *models.BettingLine) error
}

// bettingRepository is the repository instance.
type bettingRepository struct {
	db *gorm.DB
}

// NewBettingRepository creates and return the betting repository.
func NewBettingRepository(db *gorm.DB) BettingRepository {
	return &bettingRepository{db: db}
}

// GetLine returns the line for the given key.
func (br *bettingRepository) GetLine(gameId string, sportsbook string, lineType string) (*models.BettingLine, error) {
	var line models.BettingLine
	err := br.db.
		Where("game_id = ? AND sportsbook = ? AND line_type = ?", gameId, sportsbook, lineType).
		First(&line).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't get the betting line: %v", err)
	}

	return &line, nil
}

// GetByGame returns every line attached to a game.
func (br *bettingRepository) GetByGame(gameId string) ([]models.BettingLine, error) {
	var lines []models.BettingLine
	if err := br.db.Where("game_id = ?", gameId).Find(&lines).Error; err != nil {
		return nil, err
	}
	return lines, nil
}

// Create stages a new line.
func (br *bettingRepository) Create(line *models.BettingLine) error {
	return br.db.Create(line).Error
}

// Save persists every field of a already loaded line.
func (br *bettingRepository) Save(line *models.BettingLine) error {
	return br.db.Save(line).Error
}
