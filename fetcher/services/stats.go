package services

import (
	"context"
	"fmt"

	"gohoops/fetcher/data"
	"gohoops/fetcher/repositories"
	"gohoops/pkg/database/models"
	"gohoops/pkg/logger"
	"gohoops/pkg/messages"
	seasonvalues "gohoops/pkg/nbavalues/season"

	"gorm.io/gorm"
)

// StatsService ingests the season aggregate stat lines.
type StatsService struct {
	db     *gorm.DB
	source StatsSource
	runLog *logger.IngestLogger
}

// NewStatsService creates a new stats service.
func NewStatsService(db *gorm.DB, source StatsSource, runLog *logger.IngestLogger) *StatsService {
	return &StatsService{
		db:     db,
		source: source,
		runLog: runLog,
	}
}

// IngestTeamStats fetches the team season stat lines and reconciles them
// into the store. Rows for teams that were never ingested are skipped.
func (s *StatsService) IngestTeamStats(ctx context.Context, season int, seasonType seasonvalues.SeasonType) ([]*models.TeamStats, error) {
	records, err := s.source.GetTeamStats(ctx, season, seasonType)
	if err != nil {
		return nil, err
	}

	var touched []*models.TeamStats
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		statsRepo := repositories.NewStatsRepository(tx)
		teamRepo := repositories.NewTeamRepository(tx)

		for _, record := range records {
			team, err := teamRepo.GetByExternalId(record.TeamId)
			if err != nil {
				return err
			}
			if team == nil {
				logInfof(s.runLog, messages.TeamNotFoundMsg, record.TeamId)
				continue
			}

			existing, err := statsRepo.GetTeamStats(team.ID, season, seasonType)
			if err != nil {
				return err
			}

			stats := existing
			if stats == nil {
				stats = &models.TeamStats{
					TeamId:     team.ID,
					Season:     season,
					SeasonType: string(seasonType),
				}
			}

			applyTeamStatsRecord(stats, record)

			if existing != nil {
				err = statsRepo.SaveTeamStats(stats)
			} else {
				err = statsRepo.CreateTeamStats(stats)
			}
			if err != nil {
				return err
			}
			touched = append(touched, stats)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(messages.IngestRollbackMsg, err)
	}

	logInfof(s.runLog, "Successfully ingested %d team stat lines for season %s %s",
		len(touched), seasonvalues.Format(season), seasonType)
	return touched, nil
}

// IngestPlayerStats fetches the player season stat lines and reconciles
// them into the store. Rows for players that were never ingested are
// skipped. An empty teamId covers the whole league.
func (s *StatsService) IngestPlayerStats(ctx context.Context, season int, seasonType seasonvalues.SeasonType, teamId string) ([]*models.PlayerSeasonStats, error) {
	records, err := s.source.GetPlayerStats(ctx, season, seasonType, teamId)
	if err != nil {
		return nil, err
	}

	var touched []*models.PlayerSeasonStats
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		statsRepo := repositories.NewStatsRepository(tx)
		teamRepo := repositories.NewTeamRepository(tx)
		playerRepo := repositories.NewPlayerRepository(tx)

		for _, record := range records {
			player, err := playerRepo.GetByExternalId(record.PlayerId)
			if err != nil {
				return err
			}
			if player == nil {
				logInfof(s.runLog, messages.PlayerNotFoundMsg, record.PlayerId)
				continue
			}

			existing, err := statsRepo.GetPlayerSeasonStats(player.ID, season, seasonType)
			if err != nil {
				return err
			}

			stats := existing
			if stats == nil {
				stats = &models.PlayerSeasonStats{
					PlayerId:   player.ID,
					Season:     season,
					SeasonType: string(seasonType),
				}
			}

			applyPlayerStatsRecord(stats, record)

			// The team attached to the stat line is optional.
			if record.TeamId != nil {
				team, err := teamRepo.GetByExternalId(*record.TeamId)
				if err != nil {
					return err
				}
				if team != nil {
					stats.TeamId = &team.ID
				}
			}

			if existing != nil {
				err = statsRepo.SavePlayerSeasonStats(stats)
			} else {
				err = statsRepo.CreatePlayerSeasonStats(stats)
			}
			if err != nil {
				return err
			}
			touched = append(touched, stats)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(messages.IngestRollbackMsg, err)
	}

	logInfof(s.runLog, "Successfully ingested %d player stat lines for season %s %s",
		len(touched), seasonvalues.Format(season), seasonType)
	return touched, nil
}

// applyTeamStatsRecord copies every present field onto the stat line.
func applyTeamStatsRecord(stats *models.TeamStats, record data.TeamStatsRecord) {
	merge(&stats.GamesPlayed, record.GamesPlayed)
	merge(&stats.Wins, record.Wins)
	merge(&stats.Losses, record.Losses)
	merge(&stats.WinPercentage, record.WinPercentage)
	merge(&stats.PointsPerGame, record.PointsPerGame)
	merge(&stats.FieldGoalPercentage, record.FieldGoalPercentage)
	merge(&stats.ThreePointPercentage, record.ThreePointPercentage)
	merge(&stats.FreeThrowPercentage, record.FreeThrowPercentage)
	merge(&stats.OffensiveReboundsPerGame, record.OffensiveReboundsPerGame)
	merge(&stats.DefensiveReboundsPerGame, record.DefensiveReboundsPerGame)
	merge(&stats.AssistsPerGame, record.AssistsPerGame)
	merge(&stats.StealsPerGame, record.StealsPerGame)
	merge(&stats.BlocksPerGame, record.BlocksPerGame)
	merge(&stats.TurnoversPerGame, record.TurnoversPerGame)
	merge(&stats.PersonalFoulsPerGame, record.PersonalFoulsPerGame)
	merge(&stats.Pace, record.Pace)
	merge(&stats.OffensiveRating, record.OffensiveRating)
	merge(&stats.DefensiveRating, record.DefensiveRating)
	merge(&stats.NetRating, record.NetRating)
}

// applyPlayerStatsRecord copies every present field onto the stat line.
func applyPlayerStatsRecord(stats *models.PlayerSeasonStats, record data.PlayerStatsRecord) {
	merge(&stats.GamesPlayed, record.GamesPlayed)
	merge(&stats.GamesStarted, record.GamesStarted)
	merge(&stats.MinutesPerGame, record.MinutesPerGame)
	merge(&stats.PointsPerGame, record.PointsPerGame)
	merge(&stats.ReboundsPerGame, record.ReboundsPerGame)
	merge(&stats.AssistsPerGame, record.AssistsPerGame)
	merge(&stats.StealsPerGame, record.StealsPerGame)
	merge(&stats.BlocksPerGame, record.BlocksPerGame)
	merge(&stats.TurnoversPerGame, record.TurnoversPerGame)
	merge(&stats.PersonalFoulsPerGame, record.PersonalFoulsPerGame)
	merge(&stats.FieldGoalPercentage, record.FieldGoalPercentage)
	merge(&stats.ThreePointPercentage, record.ThreePointPercentage)
	merge(&stats.FreeThrowPercentage, record.FreeThrowPercentage)
	merge(&stats.TrueShootingPercentage, record.TrueShootingPercentage)
	merge(&stats.EffectiveFieldGoalPercentage, record.EffectiveFieldGoalPercentage)
	merge(&stats.OffensiveReboundPercentage, record.OffensiveReboundPercentage)
	merge(&stats.DefensiveReboundPercentage, record.DefensiveReboundPercentage)
	merge(&stats.AssistPercentage, record.AssistPercentage)
	merge(&stats.TurnoverPercentage, record.TurnoverPercentage)
	merge(&stats.UsagePercentage, record.UsagePercentage)
	merge(&stats.PlayerEfficiencyRating, record.PlayerEfficiencyRating)
}
