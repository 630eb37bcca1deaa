package services

import (
	"context"
	"fmt"

	"gohoops/fetcher/data"
	"gohoops/fetcher/repositories"
	"gohoops/pkg/database/models"
	"gohoops/pkg/logger"
	"gohoops/pkg/messages"

	"gorm.io/gorm"
)

// PlayersService ingests the player rosters.
type PlayersService struct {
	db     *gorm.DB
	source PlayerSource
	runLog *logger.IngestLogger
}

// NewPlayersService creates a new players service.
func NewPlayersService(db *gorm.DB, source PlayerSource, runLog *logger.IngestLogger) *PlayersService {
	return &PlayersService{
		db:     db,
		source: source,
		runLog: runLog,
	}
}

// IngestPlayers fetches the rosters and reconciles them into the store.
// A zero season means the current one and an empty teamId covers the whole
// league.
func (s *PlayersService) IngestPlayers(ctx context.Context, season int, teamId string) ([]*models.Player, error) {
	records, err := s.source.GetPlayers(ctx, season, teamId)
	if err != nil {
		return nil, err
	}

	var touched []*models.Player
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		playerRepo := repositories.NewPlayerRepository(tx)
		teamRepo := repositories.NewTeamRepository(tx)

		for _, record := range records {
			existing, err := playerRepo.GetByExternalId(record.PlayerId)
			if err != nil {
				return err
			}

			player := existing
			if player == nil {
				player = &models.Player{PlayerId: record.PlayerId, IsActive: true}
			}

			applyPlayerRecord(player, record)
			if err := resolvePlayerTeam(teamRepo, player, record.TeamId); err != nil {
				return err
			}

			if existing != nil {
				err = playerRepo.Save(player)
			} else {
				err = playerRepo.Create(player)
			}
			if err != nil {
				return err
			}
			touched = append(touched, player)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(messages.IngestRollbackMsg, err)
	}

	logInfof(s.runLog, "Successfully ingested %d players", len(touched))
	return touched, nil
}

// applyPlayerRecord copies every present field onto the player.
// A new full name also refreshes the split first and last name.
func applyPlayerRecord(player *models.Player, record data.PlayerRecord) {
	if record.Name != nil {
		player.Name = *record.Name
		player.FirstName, player.LastName = data.SplitName(*record.Name)
	}
	merge(&player.Position, record.Position)
	merge(&player.Height, record.Height)
	merge(&player.Weight, record.Weight)
	merge(&player.BirthDate, record.BirthDate)
	merge(&player.BirthPlace, record.BirthPlace)
	merge(&player.College, record.College)
	merge(&player.DraftYear, record.DraftYear)
	merge(&player.DraftRound, record.DraftRound)
	merge(&player.DraftNumber, record.DraftNumber)
	merge(&player.JerseyNumber, record.JerseyNumber)
	assign(&player.IsActive, record.IsActive)
}

// resolvePlayerTeam links the player to the stored team by external id.
// An unknown team id leaves the current assignment untouched.
func resolvePlayerTeam(teamRepo repositories.TeamRepository, player *models.Player, teamId *string) error {
	if teamId == nil {
		return nil
	}

	team, err := teamRepo.GetByExternalId(*teamId)
	if err != nil {
		return err
	}
	if team != nil {
		player.TeamId = &team.ID
	}
	return nil
}
