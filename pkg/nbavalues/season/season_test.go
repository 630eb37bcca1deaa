package seasonvalues

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		year int
		want string
	}{
		{2023, "2023-24"},
		{1999, "1999-00"},
		{2009, "2009-10"},
		{1947, "1947-48"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Format(tt.year))
	}
}

func TestParseSeasonType(t *testing.T) {
	for _, seasonType := range SeasonTypeList {
		parsed, err := ParseSeasonType(string(seasonType))
		require.NoError(t, err)
		assert.Equal(t, seasonType, parsed)
	}

	_, err := ParseSeasonType("Preseason")
	assert.Error(t, err)

	// The match is exact, no case folding.
	_, err = ParseSeasonType("regular season")
	assert.Error(t, err)
}
