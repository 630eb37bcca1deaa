package services

import (
	"context"
	"testing"

	"gohoops/fetcher/data"
	"gohoops/internal/testutil"
	"gohoops/pkg/database/models"
	seasonvalues "gohoops/pkg/nbavalues/season"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestRangeBackfillsEverySeason(t *testing.T) {
	db := testutil.NewTestConnection(t)

	teamSource := &stubTeamSource{records: []data.TeamRecord{
		{
			TeamId:       "1610612747",
			Name:         testutil.Ptr("Lakers"),
			Abbreviation: testutil.Ptr("LAL"),
		},
	}}
	gameSource := &stubGameSource{records: []data.GameRecord{
		{
			GameId:       "0022300001",
			HomeTeamAbbr: testutil.Ptr("LAL"),
			AwayTeamAbbr: testutil.Ptr("BOS"),
		},
	}}

	teams := NewTeamsService(db, teamSource, nil)
	games := NewGamesService(db, gameSource, nil)
	players := NewPlayersService(db, &stubPlayerSource{}, nil)
	stats := NewStatsService(db, &stubStatsSource{}, nil)
	service := NewHistoricalService(teams, games, players, stats, nil)

	total, err := service.IngestRange(context.Background(), 2021, 2023,
		[]string{DataTypeTeams, DataTypeGames}, seasonvalues.RegularSeason)

	require.NoError(t, err)
	// One team and one game per season, three seasons.
	assert.Equal(t, 6, total)

	// The same game re-ingested per season stays a single row owned by
	// the last season.
	var game models.Game
	require.NoError(t, db.First(&game, "id = ?", "0022300001").Error)
	assert.Equal(t, 2023, game.Season)
}

func TestIngestRangeValidatesArguments(t *testing.T) {
	service := NewHistoricalService(nil, nil, nil, nil, nil)

	_, err := service.IngestRange(context.Background(), 2023, 2021, []string{DataTypeTeams}, seasonvalues.RegularSeason)
	assert.Error(t, err)

	_, err = service.IngestRange(context.Background(), 2021, 2023, []string{"lineups"}, seasonvalues.RegularSeason)
	assert.Error(t, err)
}
