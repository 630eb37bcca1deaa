package services

import (
	"context"
	"fmt"

	"gohoops/pkg/logger"
	seasonvalues "gohoops/pkg/nbavalues/season"
)

// Data types accepted by the historical backfill.
const (
	DataTypeTeams       = "teams"
	DataTypeGames       = "games"
	DataTypePlayers     = "players"
	DataTypeTeamStats   = "team-stats"
	DataTypePlayerStats = "player-stats"
)

// HistoricalService runs multi season backfills on top of the entity
// services, one season and data type at a time.
type HistoricalService struct {
	teams   *TeamsService
	games   *GamesService
	players *PlayersService
	stats   *StatsService
	runLog  *logger.IngestLogger
}

// NewHistoricalService creates a new historical service.
func NewHistoricalService(
	teams *TeamsService,
	games *GamesService,
	players *PlayersService,
	stats *StatsService,
	runLog *logger.IngestLogger,
) *HistoricalService {
	return &HistoricalService{
		teams:   teams,
		games:   games,
		players: players,
		stats:   stats,
		runLog:  runLog,
	}
}

// IngestRange backfills the given data types for every season between
// startYear and endYear inclusive. The first failing batch aborts the run,
// already committed batches stay in place.
func (s *HistoricalService) IngestRange(ctx context.Context, startYear int, endYear int, dataTypes []string, seasonType seasonvalues.SeasonType) (int, error) {
	if startYear > endYear {
		return 0, fmt.Errorf("start year %d is after end year %d", startYear, endYear)
	}
	for _, dataType := range dataTypes {
		switch dataType {
		case DataTypeTeams, DataTypeGames, DataTypePlayers, DataTypeTeamStats, DataTypePlayerStats:
		default:
			return 0, fmt.Errorf("unknown data type %q", dataType)
		}
	}

	var total int
	for year := startYear; year <= endYear; year++ {
		logInfof(s.runLog, "Starting backfill for season %s", seasonvalues.Format(year))

		for _, dataType := range dataTypes {
			count, err := s.ingestSeason(ctx, year, dataType, seasonType)
			if err != nil {
				return total, fmt.Errorf("backfill failed on %s for season %s: %v",
					dataType, seasonvalues.Format(year), err)
			}
			total += count
		}
	}

	logInfof(s.runLog, "Backfill finished with %d rows over %d seasons", total, endYear-startYear+1)
	return total, nil
}

// ingestSeason runs one data type for one season.
func (s *HistoricalService) ingestSeason(ctx context.Context, year int, dataType string, seasonType seasonvalues.SeasonType) (int, error) {
	switch dataType {
	case DataTypeTeams:
		teams, err := s.teams.IngestTeams(ctx, year)
		return len(teams), err
	case DataTypeGames:
		games, err := s.games.IngestGames(ctx, year, seasonType)
		return len(games), err
	case DataTypePlayers:
		players, err := s.players.IngestPlayers(ctx, year, "")
		return len(players), err
	case DataTypeTeamStats:
		stats, err := s.stats.IngestTeamStats(ctx, year, seasonType)
		return len(stats), err
	case DataTypePlayerStats:
		stats, err := s.stats.IngestPlayerStats(ctx, year, seasonType, "")
		return len(stats), err
	}
	return 0, fmt.Errorf("unknown data type %q", dataType)
}
