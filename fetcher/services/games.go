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

// GamesService ingests the game schedule and results.
type GamesService struct {
	db     *gorm.DB
	source GameSource
	runLog *logger.IngestLogger
}

// NewGamesService creates a new games service.
func NewGamesService(db *gorm.DB, source GameSource, runLog *logger.IngestLogger) *GamesService {
	return &GamesService{
		db:     db,
		source: source,
		runLog: runLog,
	}
}

// IngestGames fetches the games of one season and reconciles them into the
// store. Partial rows merge onto the stored game and the home win flag is
// recomputed from the merged scores.
func (s *GamesService) IngestGames(ctx context.Context, season int, seasonType seasonvalues.SeasonType) ([]*models.Game, error) {
	records, err := s.source.GetGames(ctx, season, seasonType)
	if err != nil {
		return nil, err
	}

	var touched []*models.Game
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		gameRepo := repositories.NewGameRepository(tx)
		teamRepo := repositories.NewTeamRepository(tx)

		for _, record := range records {
			existing, err := gameRepo.GetById(record.GameId)
			if err != nil {
				return err
			}

			if existing != nil {
				applyGameRecord(existing, record)
				// The last ingested season owns the game.
				existing.Season = season
				existing.SeasonType = string(seasonType)
				if err := resolveGameTeams(teamRepo, existing); err != nil {
					return err
				}
				existing.RecomputeHomeWin()
				if err := gameRepo.Save(existing); err != nil {
					return err
				}
				touched = append(touched, existing)
				continue
			}

			game := &models.Game{
				ID:         record.GameId,
				Season:     season,
				SeasonType: string(seasonType),
			}
			applyGameRecord(game, record)
			if err := resolveGameTeams(teamRepo, game); err != nil {
				return err
			}
			game.RecomputeHomeWin()
			if err := gameRepo.Create(game); err != nil {
				return err
			}
			touched = append(touched, game)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf(messages.IngestRollbackMsg, err)
	}

	logInfof(s.runLog, "Successfully ingested %d games for season %s %s",
		len(touched), seasonvalues.Format(season), seasonType)
	return touched, nil
}

// applyGameRecord copies every present field onto the game.
func applyGameRecord(game *models.Game, record data.GameRecord) {
	assign(&game.HomeTeamAbbr, record.HomeTeamAbbr)
	assign(&game.AwayTeamAbbr, record.AwayTeamAbbr)
	merge(&game.GameDate, record.GameDate)
	merge(&game.HomeScore, record.HomeScore)
	merge(&game.AwayScore, record.AwayScore)
	merge(&game.Arena, record.Arena)
	merge(&game.Attendance, record.Attendance)
	merge(&game.DurationMinutes, record.DurationMinutes)
	if record.OvertimePeriods != nil {
		game.OvertimePeriods = *record.OvertimePeriods
		game.Overtime = *record.OvertimePeriods > 0
	}
}

// resolveGameTeams links the game to stored teams by abbreviation.
// An unknown abbreviation leaves the foreign key empty, the denormalized
// abbreviation still carries the matchup.
func resolveGameTeams(teamRepo repositories.TeamRepository, game *models.Game) error {
	if game.HomeTeamId == nil && game.HomeTeamAbbr != "" {
		home, err := teamRepo.GetByAbbreviation(game.HomeTeamAbbr)
		if err != nil {
			return err
		}
		if home != nil {
			game.HomeTeamId = &home.ID
		}
	}
	if game.AwayTeamId == nil && game.AwayTeamAbbr != "" {
		away, err := teamRepo.GetByAbbreviation(game.AwayTeamAbbr)
		if err != nil {
			return err
		}
		if away != nil {
			game.AwayTeamId = &away.ID
		}
	}
	return nil
}
