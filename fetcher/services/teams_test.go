package services

import (
	"context"
	"testing"

	"gohoops/fetcher/data"
	"gohoops/internal/testutil"
	"gohoops/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTeamSource struct {
	records []data.TeamRecord
	err     error
}

func (s *stubTeamSource) GetTeams(ctx context.Context, season int) ([]data.TeamRecord, error) {
	return s.records, s.err
}

func TestIngestTeamsIsIdempotent(t *testing.T) {
	db := testutil.NewTestConnection(t)
	source := &stubTeamSource{records: []data.TeamRecord{
		{
			TeamId:       "1610612747",
			Name:         testutil.Ptr("Lakers"),
			Abbreviation: testutil.Ptr("LAL"),
			City:         testutil.Ptr("Los Angeles"),
		},
		{
			TeamId:       "1610612738",
			Name:         testutil.Ptr("Celtics"),
			Abbreviation: testutil.Ptr("BOS"),
			City:         testutil.Ptr("Boston"),
		},
	}}
	service := NewTeamsService(db, source, nil)

	first, err := service.IngestTeams(context.Background(), 2023)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	second, err := service.IngestTeams(context.Background(), 2023)
	require.NoError(t, err)
	assert.Len(t, second, 2)

	// Re-ingesting must not duplicate rows.
	var count int64
	db.Model(&models.Team{}).Count(&count)
	assert.EqualValues(t, 2, count)
}

func TestIngestTeamsPreservesAbsentFields(t *testing.T) {
	db := testutil.NewTestConnection(t)
	source := &stubTeamSource{records: []data.TeamRecord{
		{
			TeamId:       "1610612747",
			Name:         testutil.Ptr("Lakers"),
			Abbreviation: testutil.Ptr("LAL"),
			City:         testutil.Ptr("Los Angeles"),
			State:        testutil.Ptr("CA"),
		},
	}}
	service := NewTeamsService(db, source, nil)

	_, err := service.IngestTeams(context.Background(), 2023)
	require.NoError(t, err)

	// Second payload renames the team but carries no city or state.
	source.records = []data.TeamRecord{
		{
			TeamId: "1610612747",
			Name:   testutil.Ptr("Los Angeles Lakers"),
		},
	}
	_, err = service.IngestTeams(context.Background(), 2023)
	require.NoError(t, err)

	var team models.Team
	require.NoError(t, db.Where("team_id = ?", "1610612747").First(&team).Error)
	assert.Equal(t, "Los Angeles Lakers", team.Name)
	assert.Equal(t, "LAL", team.Abbreviation)
	require.NotNil(t, team.City)
	assert.Equal(t, "Los Angeles", *team.City)
	require.NotNil(t, team.State)
	assert.Equal(t, "CA", *team.State)
}

func TestIngestTeamsUppercasesAbbreviation(t *testing.T) {
	db := testutil.NewTestConnection(t)
	source := &stubTeamSource{records: []data.TeamRecord{
		{
			TeamId:       "1610612748",
			Name:         testutil.Ptr("Heat"),
			Abbreviation: testutil.Ptr("mia"),
		},
	}}
	service := NewTeamsService(db, source, nil)

	teams, err := service.IngestTeams(context.Background(), 2023)
	require.NoError(t, err)
	require.Len(t, teams, 1)
	assert.Equal(t, "MIA", teams[0].Abbreviation)
}

func TestIngestTeamsRollsBackOnError(t *testing.T) {
	db := testutil.NewTestConnection(t)
	// The second record violates the unique abbreviation index.
	source := &stubTeamSource{records: []data.TeamRecord{
		{
			TeamId:       "1610612747",
			Name:         testutil.Ptr("Lakers"),
			Abbreviation: testutil.Ptr("LAL"),
		},
		{
			TeamId:       "999",
			Name:         testutil.Ptr("Impostors"),
			Abbreviation: testutil.Ptr("LAL"),
		},
	}}
	service := NewTeamsService(db, source, nil)

	teams, err := service.IngestTeams(context.Background(), 2023)
	require.Error(t, err)
	assert.Nil(t, teams)

	// Nothing from the failed batch may stick.
	var count int64
	db.Model(&models.Team{}).Count(&count)
	assert.EqualValues(t, 0, count)
}
