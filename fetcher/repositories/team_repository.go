package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gohoops/pkg/database/models"

	"gorm.io/gorm"
)

// TeamRepository defines the public interface for handling team related data.
type TeamRepository interface {
	GetByExternalId(teamId string) (*models.Team, error)
	GetByAbbreviation(abbreviation string) (*models.Team, error)
	GetAll() ([]models.Team, error)
	Create(team *models.Team) error
	Save(team *models.Team) error
}

// teamRepository is the repository instance.
type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates and return the team repository.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// GetByExternalId returns a given team by the id assigned by the stats API.
func (tr *teamRepository) GetByExternalId(teamId string) (*models.Team, error) {
	var team models.Team
	if err := tr.db.Where("team_id = ?", teamId).First(&team).Error; err != nil {
		// If the record was not found, doesn't need to return a error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		// Other database error.
		return nil, fmt.Errorf("couldn't get the team: %v", err)
	}

	return &team, nil
}

// GetByAbbreviation returns a given team by its abbreviation.
func (tr *teamRepository) GetByAbbreviation(abbreviation string) (*models.Team, error) {
	var team models.Team
	if err := tr.db.Where("abbreviation = ?", strings.ToUpper(abbreviation)).First(&team).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("couldn't get the team: %v", err)
	}

	return &team, nil
}

// GetAll returns every stored team.
func (tr *teamRepository) GetAll() ([]models.Team, error) {
	var teams []models.Team
	if err := tr.db.Order("abbreviation asc").Find(&teams).Error; err != nil {
		return nil, err
	}
	return teams, nil
}

// Create stages a new team.
func (tr *teamRepository) Create(team *models.Team) error {
	return tr.db.Create(team).Error
}

// Save persists every field of a already loaded team.
func (tr *teamRepository) Save(team *models.Team) error {
	return tr.db.Save(team).Error
}
