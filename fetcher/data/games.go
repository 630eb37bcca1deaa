package data

import (
	"context"
	"net/url"

	"gohoops/fetcher/requests"
	seasonvalues "gohoops/pkg/nbavalues/season"
)

// GameFetcher fetches the game schedule and results.
type GameFetcher struct {
	client *requests.Client
}

// GetGames returns the normalized game records for a season and season type.
func (g *GameFetcher) GetGames(ctx context.Context, season int, seasonType seasonvalues.SeasonType) ([]GameRecord, error) {
	params := url.Values{}
	params.Set("LeagueID", leagueId)
	params.Set("Season", seasonvalues.Format(season))
	params.Set("SeasonType", string(seasonType))
	params.Set("IsOnlyCurrentSeason", "0")

	body, err := g.client.Get(ctx, "scoreboard", params)
	if err != nil {
		return nil, err
	}

	rows, err := decodeFirstResultSet(body)
	if err != nil {
		return nil, err
	}

	var games []GameRecord
	for _, row := range rows {
		record, ok := normalizeGame(row)
		if !ok {
			continue
		}
		games = append(games, record)
	}

	return games, nil
}

// normalizeGame maps one scoreboard row into the canonical game shape.
// The second return is false when the required game id is missing.
func normalizeGame(row Row) (GameRecord, bool) {
	gameId := row.IdValue("GAME_ID")
	if gameId == nil {
		return GameRecord{}, false
	}

	return GameRecord{
		GameId:          *gameId,
		GameDate:        row.DateValue("GAME_DATE"),
		HomeTeamAbbr:    row.StringValue("HOME_TEAM_ABBREVIATION"),
		AwayTeamAbbr:    row.StringValue("VISITOR_TEAM_ABBREVIATION"),
		HomeScore:       row.IntValue("HOME_TEAM_PTS"),
		AwayScore:       row.IntValue("VISITOR_TEAM_PTS"),
		Arena:           row.StringValue("ARENA_NAME"),
		Attendance:      row.IntValue("ATTENDANCE"),
		DurationMinutes: row.IntValue("GAME_DURATION_MINUTES"),
		OvertimePeriods: row.IntValue("OT_PERIODS"),
	}, true
}
