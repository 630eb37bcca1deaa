package services

import (
	"context"
	"log"

	"gohoops/fetcher/data"
	"gohoops/pkg/logger"
	seasonvalues "gohoops/pkg/nbavalues/season"
)

// Sources consumed by the ingest services.
// The NBA fetcher satisfies all of them, the tests plug in stubs.
type (
	TeamSource interface {
		GetTeams(ctx context.Context, season int) ([]data.TeamRecord, error)
	}

	GameSource interface {
		GetGames(ctx context.Context, season int, seasonType seasonvalues.SeasonType) ([]data.GameRecord, error)
	}

	PlayerSource interface {
		GetPlayers(ctx context.Context, season int, teamId string) ([]data.PlayerRecord, error)
	}

	StatsSource interface {
		GetTeamStats(ctx context.Context, season int, seasonType seasonvalues.SeasonType) ([]data.TeamStatsRecord, error)
		GetPlayerStats(ctx context.Context, season int, seasonType seasonvalues.SeasonType, teamId string) ([]data.PlayerStatsRecord, error)
	}

	BoxScoreSource interface {
		GetBoxScore(ctx context.Context, gameId string) (*data.BoxScoreRecord, error)
	}
)

// logInfof writes progress to the console and to the run log when present.
func logInfof(runLog *logger.IngestLogger, format string, args ...any) {
	log.Printf(format, args...)
	if runLog != nil {
		runLog.Infof(format, args...)
	}
}

// assign overwrites the target only when the record carried a value.
// Absent values never reset stored data, zero is a legitimate statistic.
func assign[T any](target *T, value *T) {
	if value != nil {
		*target = *value
	}
}

// merge replaces a nullable target only when the record carried a value.
func merge[T any](target **T, value *T) {
	if value != nil {
		*target = value
	}
}
