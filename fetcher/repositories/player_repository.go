package repositories

import (
	"errors"
	"fmt"

	"gohoops/pkg/database/models"

	"gorm.io/gorm"
)

// PlayerRepository defines the public interface for handling player related data.
type PlayerRepository interface {
	GetByExternalId(playerId string) (*models.Player, error)
	GetByTeam(teamId uint) ([]models.Player, error)
	GetActive() ([]models.Player, error)
	Create(player *models.Player) error
	Save(player *models.Player) error
}

// playerRepository is the repository instance.
type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates and return the player repository.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// GetByExternalId returns a given player by the id assigned by the stats API.
func (pr *playerRepository) GetByExternalId(playerId string) (*models.Player, error) {
	var player models.Player
	if err := pr.db.Where("player_id = ?", playerId).First(&player).Error; err != nil {
		// If the record was not found, doesn't need to return a error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		// Other database error.
		return nil, fmt.Errorf("couldn't get the player: %v", err)
	}

	return &player, nil
}

// GetByTeam returns the active players of a given team.
func (pr *playerRepository) GetByTeam(teamId uint) ([]models.Player, error) {
	var players []models.Player
	err := pr.db.
		Where("team_id = ? AND is_active = ?", teamId, true).
		Order("name asc").
		Find(&players).Error
	if err != nil {
		return nil, err
	}
	return players, nil
}

// GetActive returns every active player.
func (pr *playerRepository) GetActive() ([]models.Player, error) {
	var players []models.Player
	if err := pr.db.Where("is_active = ?", true).Find(&players).Error; err != nil {
		return nil, err
	}
	return players, nil
}

// Create stages a new player.
func (pr *playerRepository) Create(player *models.Player) error {
	return pr.db.Create(player).Error
}

// Save persists every field of a already loaded player.
func (pr *playerRepository) Save(player *models.Player) error {
	return pr.db.Save(player).Error
}
