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

// BoxScoreService ingests the per game box scores.
type BoxScoreService struct {
	db     *gorm.DB
	source BoxScoreSource
	runLog *logger.IngestLogger
}

// NewBoxScoreService creates a new box score service.
func NewBoxScoreService(db *gorm.DB, source BoxScoreSource, runLog *logger.IngestLogger) *BoxScoreService {
	return &BoxScoreService{
		db:     db,
		source: source,
		runLog: runLog,
	}
}

// IngestBoxScore fetches the box score of one game and reconciles the team
// and player lines into the store. The game itself must already exist,
// lines for unknown teams or players are skipped.
func (s *BoxScoreService) IngestBoxScore(ctx context.Context, gameId string) (int, error) {
	record, err := s.source.GetBoxScore(ctx, gameId)
	if err != nil {
		return 0, err
	}

	var ingested int
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		gameRepo := repositories.NewGameRepository(tx)
		teamRepo := repositories.NewTeamRepository(tx)
		playerRepo := repositories.NewPlayerRepository(tx)
		statsRepo := repositories.NewStatsRepository(tx)

		game, err := gameRepo.GetById(record.GameId)
		if err != nil {
			return err
		}
		if game == nil {
			return fmt.Errorf("game %s was not ingested yet", record.GameId)
		}

		for _, teamBox := range record.Teams {
			team, err := teamRepo.GetByExternalId(teamBox.TeamId)
			if err != nil {
				return err
			}
			if team == nil {
				logInfof(s.runLog, messages.TeamNotFoundMsg, teamBox.TeamId)
				continue
			}

			existing, err := statsRepo.GetGameStats(game.ID, team.ID)
			if err != nil {
				return err
			}

			stats := existing
			if stats == nil {
				stats = &models.GameStats{
					GameId: game.ID,
					TeamId: team.ID,
				}
			}
			stats.IsHome = isHomeTeam(game, team)
			applyTeamBoxRecord(stats, teamBox)

			if existing != nil {
				err = statsRepo.SaveGameStats(stats)
			} else {
				err = statsRepo.CreateGameStats(stats)
			}
			if err != nil {
				return err
			}
			ingested++
		}

		for _, playerBox := range record.Players {
			player, err := playerRepo.GetByExternalId(playerBox.PlayerId)
			if err != nil {
				return err
			}
			if player == nil {
				logInfof(s.runLog, messages.PlayerNotFoundMsg, playerBox.PlayerId)
				continue
			}

			team, err := teamRepo.GetByExternalId(playerBox.TeamId)
			if err != nil {
				return err
			}
			if team == nil {
				logInfof(s.runLog, messages.TeamNotFoundMsg, playerBox.TeamId)
				continue
			}

			existing, err := statsRepo.GetPlayerGameStats(game.ID, player.ID)
			if err != nil {
				return err
			}

			stats := existing
			if stats == nil {
				stats = &models.PlayerGameStats{
					GameId:   game.ID,
					PlayerId: player.ID,
				}
			}
			stats.TeamId = team.ID
			applyPlayerBoxRecord(stats, playerBox)

			if existing != nil {
				err = statsRepo.SavePlayerGameStats(stats)
			} else {
				err = statsRepo.CreatePlayerGameStats(stats)
			}
			if err != nil {
				return err
			}
			ingested++
		}

		return nil
	})
	if err != nil {
		return 0, fmt.Errorf(messages.IngestRollbackMsg, err)
	}

	logInfof(s.runLog, "Successfully ingested %d box score lines for game %s", ingested, record.GameId)
	return ingested, nil
}

// isHomeTeam matches the stored team against the home side of the game.
func isHomeTeam(game *models.Game, team *models.Team) bool {
	if game.HomeTeamId != nil {
		return *game.HomeTeamId == team.ID
	}
	return game.HomeTeamAbbr != "" && game.HomeTeamAbbr == team.Abbreviation
}

// applyTeamBoxRecord copies every present field onto the team line.
func applyTeamBoxRecord(stats *models.GameStats, record data.TeamBoxRecord) {
	merge(&stats.Points, record.Points)
	merge(&stats.FieldGoalsMade, record.FieldGoalsMade)
	merge(&stats.FieldGoalsAttempted, record.FieldGoalsAttempted)
	merge(&stats.FieldGoalPercentage, record.FieldGoalPercentage)
	merge(&stats.ThreePointsMade, record.ThreePointsMade)
	merge(&stats.ThreePointsAttempted, record.ThreePointsAttempted)
	merge(&stats.ThreePointPercentage, record.ThreePointPercentage)
	merge(&stats.FreeThrowsMade, record.FreeThrowsMade)
	merge(&stats.FreeThrowsAttempted, record.FreeThrowsAttempted)
	merge(&stats.FreeThrowPercentage, record.FreeThrowPercentage)
	merge(&stats.OffensiveRebounds, record.OffensiveRebounds)
	merge(&stats.DefensiveRebounds, record.DefensiveRebounds)
	merge(&stats.TotalRebounds, record.TotalRebounds)
	merge(&stats.Assists, record.Assists)
	merge(&stats.Steals, record.Steals)
	merge(&stats.Blocks, record.Blocks)
	merge(&stats.Turnovers, record.Turnovers)
	merge(&stats.PersonalFouls, record.PersonalFouls)
}

// applyPlayerBoxRecord copies every present field onto the player line.
func applyPlayerBoxRecord(stats *models.PlayerGameStats, record data.PlayerBoxRecord) {
	assign(&stats.Started, record.Started)
	merge(&stats.MinutesPlayed, record.MinutesPlayed)
	merge(&stats.MinutesPlayedSeconds, record.MinutesPlayedSeconds)
	merge(&stats.Points, record.Points)
	merge(&stats.FieldGoalsMade, record.FieldGoalsMade)
	merge(&stats.FieldGoalsAttempted, record.FieldGoalsAttempted)
	merge(&stats.FieldGoalPercentage, record.FieldGoalPercentage)
	merge(&stats.ThreePointsMade, record.ThreePointsMade)
	merge(&stats.ThreePointsAttempted, record.ThreePointsAttempted)
	merge(&stats.ThreePointPercentage, record.ThreePointPercentage)
	merge(&stats.FreeThrowsMade, record.FreeThrowsMade)
	merge(&stats.FreeThrowsAttempted, record.FreeThrowsAttempted)
	merge(&stats.FreeThrowPercentage, record.FreeThrowPercentage)
	merge(&stats.OffensiveRebounds, record.OffensiveRebounds)
	merge(&stats.DefensiveRebounds, record.DefensiveRebounds)
	merge(&stats.TotalRebounds, record.TotalRebounds)
	merge(&stats.Assists, record.Assists)
	merge(&stats.Steals, record.Steals)
	merge(&stats.Blocks, record.Blocks)
	merge(&stats.Turnovers, record.Turnovers)
	merge(&stats.PersonalFouls, record.PersonalFouls)
	merge(&stats.PlusMinus, record.PlusMinus)
}
