package services

import (
	"context"
	"testing"
	"time"

	"gohoops/fetcher/data"
	"gohoops/internal/testutil"
	"gohoops/pkg/database/models"
	seasonvalues "gohoops/pkg/nbavalues/season"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubGameSource struct {
	records []data.GameRecord
	err     error
}

func (s *stubGameSource) GetGames(ctx context.Context, season int, seasonType seasonvalues.SeasonType) ([]data.GameRecord, error) {
	return s.records, s.err
}

// seedTeam creates a team directly in the store.
func seedTeam(t *testing.T, db *gorm.DB, teamId string, abbreviation string) *models.Team {
	t.Helper()

	team := &models.Team{
		TeamId:       teamId,
		Name:         abbreviation,
		Abbreviation: abbreviation,
	}
	require.NoError(t, db.Create(team).Error)
	return team
}

func TestIngestGamesLinksTeamsAndComputesHomeWin(t *testing.T) {
	db := testutil.NewTestConnection(t)
	home := seedTeam(t, db, "1610612747", "LAL")
	away := seedTeam(t, db, "1610612738", "BOS")

	gameDate := time.Date(2023, 10, 24, 0, 0, 0, 0, time.UTC)
	source := &stubGameSource{records: []data.GameRecord{
		{
			GameId:       "0022300001",
			GameDate:     &gameDate,
			HomeTeamAbbr: testutil.Ptr("LAL"),
			AwayTeamAbbr: testutil.Ptr("BOS"),
			HomeScore:    testutil.Ptr(108),
			AwayScore:    testutil.Ptr(104),
		},
	}}
	service := NewGamesService(db, source, nil)

	games, err := service.IngestGames(context.Background(), 2023, seasonvalues.RegularSeason)
	require.NoError(t, err)
	require.Len(t, games, 1)

	game := games[0]
	assert.Equal(t, "0022300001", game.ID)
	assert.Equal(t, 2023, game.Season)
	assert.Equal(t, string(seasonvalues.RegularSeason), game.SeasonType)
	require.NotNil(t, game.HomeTeamId)
	assert.Equal(t, home.ID, *game.HomeTeamId)
	require.NotNil(t, game.AwayTeamId)
	assert.Equal(t, away.ID, *game.AwayTeamId)
	require.NotNil(t, game.HomeWin)
	assert.True(t, *game.HomeWin)
}

func TestIngestGamesMergesPartialUpdate(t *testing.T) {
	db := testutil.NewTestConnection(t)
	seedTeam(t, db, "1610612747", "LAL")
	seedTeam(t, db, "1610612738", "BOS")

	source := &stubGameSource{records: []data.GameRecord{
		{
			GameId:       "0022300001",
			HomeTeamAbbr: testutil.Ptr("LAL"),
			AwayTeamAbbr: testutil.Ptr("BOS"),
			HomeScore:    testutil.Ptr(108),
			AwayScore:    testutil.Ptr(104),
		},
	}}
	service := NewGamesService(db, source, nil)

	_, err := service.IngestGames(context.Background(), 2023, seasonvalues.RegularSeason)
	require.NoError(t, err)

	// The correction only carries the away score.
	source.records = []data.GameRecord{
		{
			GameId:    "0022300001",
			AwayScore: testutil.Ptr(110),
		},
	}
	_, err = service.IngestGames(context.Background(), 2023, seasonvalues.RegularSeason)
	require.NoError(t, err)

	var game models.Game
	require.NoError(t, db.First(&game, "id = ?", "0022300001").Error)

	// The home score survives and the winner flips.
	require.NotNil(t, game.HomeScore)
	assert.Equal(t, 108, *game.HomeScore)
	require.NotNil(t, game.AwayScore)
	assert.Equal(t, 110, *game.AwayScore)
	require.NotNil(t, game.HomeWin)
	assert.False(t, *game.HomeWin)

	var count int64
	db.Model(&models.Game{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestIngestGamesWithoutScoresLeavesHomeWinUnset(t *testing.T) {
	db := testutil.NewTestConnection(t)

	source := &stubGameSource{records: []data.GameRecord{
		{
			GameId:       "0022300050",
			HomeTeamAbbr: testutil.Ptr("MIA"),
			AwayTeamAbbr: testutil.Ptr("NYK"),
		},
	}}
	service := NewGamesService(db, source, nil)

	games, err := service.IngestGames(context.Background(), 2023, seasonvalues.RegularSeason)
	require.NoError(t, err)
	require.Len(t, games, 1)

	// Unknown abbreviations leave the links empty but keep the matchup.
	game := games[0]
	assert.Nil(t, game.HomeTeamId)
	assert.Nil(t, game.AwayTeamId)
	assert.Equal(t, "MIA", game.HomeTeamAbbr)
	assert.Nil(t, game.HomeWin)
}

func TestIngestGamesOvertimeFlag(t *testing.T) {
	db := testutil.NewTestConnection(t)

	source := &stubGameSource{records: []data.GameRecord{
		{
			GameId:          "0022300060",
			HomeScore:       testutil.Ptr(120),
			AwayScore:       testutil.Ptr(118),
			OvertimePeriods: testutil.Ptr(2),
		},
	}}
	service := NewGamesService(db, source, nil)

	games, err := service.IngestGames(context.Background(), 2023, seasonvalues.RegularSeason)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.True(t, games[0].Overtime)
	assert.Equal(t, 2, games[0].OvertimePeriods)
}
