package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecomputeHomeWin(t *testing.T) {
	intPtr := func(v int) *int { return &v }

	tests := []struct {
		name      string
		homeScore *int
		awayScore *int
		want      *bool
	}{
		{"home team wins", intPtr(108), intPtr(104), boolPtr(true)},
		{"away team wins", intPtr(104), intPtr(110), boolPtr(false)},
		{"missing home score", nil, intPtr(104), nil},
		{"missing away score", intPtr(108), nil, nil},
		{"no scores", nil, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			game := Game{HomeScore: tt.homeScore, AwayScore: tt.awayScore}
			game.RecomputeHomeWin()

			if tt.want == nil {
				assert.Nil(t, game.HomeWin)
				return
			}
			require.NotNil(t, game.HomeWin)
			assert.Equal(t, *tt.want, *game.HomeWin)
		})
	}
}

func TestRecomputeHomeWinClearsStaleFlag(t *testing.T) {
	score := 108
	won := true
	game := Game{HomeScore: &score, HomeWin: &won}

	game.RecomputeHomeWin()
	assert.Nil(t, game.HomeWin)
}

func boolPtr(v bool) *bool {
	return &v
}
