package services

import (
	"context"
	"testing"

	"gohoops/fetcher/data"
	"gohoops/internal/testutil"
	"gohoops/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubBoxScoreSource struct {
	record *data.BoxScoreRecord
	err    error
}

func (s *stubBoxScoreSource) GetBoxScore(ctx context.Context, gameId string) (*data.BoxScoreRecord, error) {
	return s.record, s.err
}

// seedGame creates a finished game between the two teams.
func seedGame(t *testing.T, db *gorm.DB, gameId string, home *models.Team, away *models.Team) *models.Game {
	t.Helper()

	game := &models.Game{
		ID:           gameId,
		Season:       2023,
		SeasonType:   "Regular Season",
		HomeTeamId:   &home.ID,
		AwayTeamId:   &away.ID,
		HomeTeamAbbr: home.Abbreviation,
		AwayTeamAbbr: away.Abbreviation,
	}
	require.NoError(t, db.Create(game).Error)
	return game
}

func TestIngestBoxScoreUpsertsTeamAndPlayerLines(t *testing.T) {
	db := testutil.NewTestConnection(t)
	home := seedTeam(t, db, "1610612747", "LAL")
	away := seedTeam(t, db, "1610612744", "GSW")
	seedGame(t, db, "0022300001", home, away)

	player := &models.Player{PlayerId: "2544", Name: "LeBron James", IsActive: true}
	require.NoError(t, db.Create(player).Error)

	source := &stubBoxScoreSource{record: &data.BoxScoreRecord{
		GameId: "0022300001",
		Teams: []data.TeamBoxRecord{
			{TeamId: "1610612747", Points: testutil.Ptr(108)},
			{TeamId: "1610612744", Points: testutil.Ptr(104)},
		},
		Players: []data.PlayerBoxRecord{
			{
				PlayerId:             "2544",
				TeamId:               "1610612747",
				Started:              testutil.Ptr(true),
				MinutesPlayed:        testutil.Ptr("34:27"),
				MinutesPlayedSeconds: testutil.Ptr(34*60 + 27),
				Points:               testutil.Ptr(28),
				PlusMinus:            testutil.Ptr(12),
			},
			{
				// Never ingested, skipped without error.
				PlayerId: "404",
				TeamId:   "1610612747",
				Points:   testutil.Ptr(5),
			},
		},
	}}
	service := NewBoxScoreService(db, source, nil)

	count, err := service.IngestBoxScore(context.Background(), "0022300001")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	var homeLine models.GameStats
	require.NoError(t, db.Where("game_id = ? AND team_id = ?", "0022300001", home.ID).First(&homeLine).Error)
	assert.True(t, homeLine.IsHome)
	assert.Equal(t, 108, *homeLine.Points)

	var awayLine models.GameStats
	require.NoError(t, db.Where("game_id = ? AND team_id = ?", "0022300001", away.ID).First(&awayLine).Error)
	assert.False(t, awayLine.IsHome)

	var playerLine models.PlayerGameStats
	require.NoError(t, db.Where("game_id = ? AND player_id = ?", "0022300001", player.ID).First(&playerLine).Error)
	assert.True(t, playerLine.Started)
	assert.Equal(t, 28, *playerLine.Points)
	assert.Equal(t, 34*60+27, *playerLine.MinutesPlayedSeconds)

	// Re-ingesting the same box must not duplicate lines.
	_, err = service.IngestBoxScore(context.Background(), "0022300001")
	require.NoError(t, err)

	var teamLines, playerLines int64
	db.Model(&models.GameStats{}).Count(&teamLines)
	db.Model(&models.PlayerGameStats{}).Count(&playerLines)
	assert.EqualValues(t, 2, teamLines)
	assert.EqualValues(t, 1, playerLines)
}

func TestIngestBoxScoreRequiresTheGame(t *testing.T) {
	db := testutil.NewTestConnection(t)

	source := &stubBoxScoreSource{record: &data.BoxScoreRecord{GameId: "0022300099"}}
	service := NewBoxScoreService(db, source, nil)

	_, err := service.IngestBoxScore(context.Background(), "0022300099")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0022300099")
}
