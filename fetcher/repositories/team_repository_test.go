package repositories

import (
	"testing"

	"gohoops/internal/testutil"
	"gohoops/pkg/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeamRepositoryLookups(t *testing.T) {
	db := testutil.NewTestConnection(t)
	repo := NewTeamRepository(db)

	team := &models.Team{TeamId: "1610612747", Name: "Lakers", Abbreviation: "LAL"}
	require.NoError(t, repo.Create(team))

	byId, err := repo.GetByExternalId("1610612747")
	require.NoError(t, err)
	require.NotNil(t, byId)
	assert.Equal(t, team.ID, byId.ID)

	// The lookup normalizes the abbreviation case.
	byAbbr, err := repo.GetByAbbreviation("lal")
	require.NoError(t, err)
	require.NotNil(t, byAbbr)
	assert.Equal(t, team.ID, byAbbr.ID)

	// Not found is not an error.
	missing, err := repo.GetByExternalId("404")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestTeamRepositoryGetAllOrdersByAbbreviation(t *testing.T) {
	db := testutil.NewTestConnection(t)
	repo := NewTeamRepository(db)

	require.NoError(t, repo.Create(&models.Team{TeamId: "2", Name: "Lakers", Abbreviation: "LAL"}))
	require.NoError(t, repo.Create(&models.Team{TeamId: "1", Name: "Celtics", Abbreviation: "BOS"}))

	teams, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, teams, 2)
	assert.Equal(t, "BOS", teams[0].Abbreviation)
	assert.Equal(t, "LAL", teams[1].Abbreviation)
}
