package services

import (
	"context"
	"fmt"
	"strings"

	"gohoops/fetcher/data"
	"gohoops/fetcher/repositories"
	"gohoops/pkg/database/models"
	"gohoops/pkg/logger"
	"gohoops/pkg/messages"

	"gorm.io/gorm"
)

// TeamsService ingests the team list.
type TeamsService struct {
	db     *gorm.DB
	source TeamSource
	runLog *logger.IngestLogger
}

// NewTeamsService creates a new teams service.
func NewTeamsService(db *gorm.DB, source TeamSource, runLog *logger.IngestLogger) *TeamsService {
	return &TeamsService{
		db:     db,
		source: source,
		runLog: runLog,
	}
}

// IngestTeams fetches the team list and reconciles it into the store.
// The whole batch runs inside one transaction, any error rolls it back.
func (s *TeamsService) IngestTeams(ctx context.Context, season int) ([]*models.Team, error) {
	records, err := s.source.GetTeams(ctx, season)
	if err != nil {
		return nil, err
	}

	var touched []*models.Team
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repo := repositories.NewTeamRepository(tx)

		for _, record := range records {
			// A team is created at most once per external id.
			existing, err := repo.GetByExternalId(record.TeamId)
			if err != nil {
				return err
			}

			if existing != nil {
				applyTeamRecord(existing, record)
				if err := repo.Save(existing); err != nil {
					return err
				}
				touched = append(touched, existing)
				continue
			}

			team := &models.Team{TeamId: record.TeamId}
			applyTeamRecord(team, record)
			if err := repo.Create(team); err != nil {
				return err
			}
			touched = append(touched, team)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(messages.IngestRollbackMsg, err)
	}

	logInfof(s.runLog, "Successfully ingested %d teams", len(touched))
	return touched, nil
}

// applyTeamRecord copies every present field onto the team.
func applyTeamRecord(team *models.Team, record data.TeamRecord) {
	assign(&team.Name, record.Name)
	if record.Abbreviation != nil {
		team.Abbreviation = strings.ToUpper(*record.Abbreviation)
	}
	merge(&team.City, record.City)
	merge(&team.State, record.State)
	merge(&team.Conference, record.Conference)
	merge(&team.Division, record.Division)
}
