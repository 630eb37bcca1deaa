package seasonvalues

import (
	"fmt"

	"gohoops/pkg/messages"
)

// Simple package containing the season values used across the pipeline.
// Separated from the fetcher to avoid import cycles.
// Create the type for clarity.
type SeasonType string

// Season types accepted by the stats API.
const (
	RegularSeason SeasonType = "Regular Season"
	Playoffs      SeasonType = "Playoffs"
	AllStar       SeasonType = "All-Star"
)

// List of the valid season types.
var SeasonTypeList = []SeasonType{RegularSeason, Playoffs, AllStar}

// ParseSeasonType validates a raw season type string.
func ParseSeasonType(raw string) (SeasonType, error) {
	for _, seasonType := range SeasonTypeList {
		if string(seasonType) == raw {
			return seasonType, nil
		}
	}
	return "", fmt.Errorf(messages.UnknownSeasonType, raw)
}

// Format converts a season start year to the API season string.
// 2023 becomes "2023-24".
func Format(year int) string {
	return fmt.Sprintf("%d-%02d", year, (year+1)%100)
}
