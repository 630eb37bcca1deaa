package data

import (
	"gohoops/fetcher/requests"
)

// NBA league id used on every endpoint.
const leagueId = "00"

// NBAFetcher groups the per entity fetchers over one shared client,
// so the rate limit spacing covers every endpoint.
type NBAFetcher struct {
	Teams    *TeamFetcher
	Games    *GameFetcher
	Players  *PlayerFetcher
	Stats    *StatsFetcher
	BoxScore *BoxScoreFetcher
}

// NewNBAFetcher instantiates the main fetcher.
func NewNBAFetcher(client *requests.Client) *NBAFetcher {
	return &NBAFetcher{
		Teams:    &TeamFetcher{client: client},
		Games:    &GameFetcher{client: client},
		Players:  &PlayerFetcher{client: client},
		Stats:    &StatsFetcher{client: client},
		BoxScore: &BoxScoreFetcher{client: client},
	}
}
