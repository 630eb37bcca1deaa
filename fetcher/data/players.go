package data

import (
	"context"
	"net/url"

	"gohoops/fetcher/requests"
	seasonvalues "gohoops/pkg/nbavalues/season"
)

// PlayerFetcher fetches roster entries.
type PlayerFetcher struct {
	client *requests.Client
}

// GetPlayers returns the normalized roster records.
// Season zero means the current season, teamId filters a single roster.
func (p *PlayerFetcher) GetPlayers(ctx context.Context, season int, teamId string) ([]PlayerRecord, error) {
	params := url.Values{}
	params.Set("LeagueID", leagueId)
	params.Set("IsOnlyCurrentSeason", "1")
	if season != 0 {
		params.Set("Season", seasonvalues.Format(season))
	}
	if teamId != "" {
		params.Set("TeamID", teamId)
	}

	body, err := p.client.Get(ctx, "commonteamroster", params)
	if err != nil {
		return nil, err
	}

	rows, err := decodeFirstResultSet(body)
	if err != nil {
		return nil, err
	}

	var players []PlayerRecord
	for _, row := range rows {
		record, ok := normalizePlayer(row)
		if !ok {
			continue
		}
		players = append(players, record)
	}

	return players, nil
}

// normalizePlayer maps one roster row into the canonical player shape.
// The second return is false when the required player id is missing.
func normalizePlayer(row Row) (PlayerRecord, bool) {
	playerId := row.IdValue("PLAYER_ID")
	if playerId == nil {
		return PlayerRecord{}, false
	}

	return PlayerRecord{
		PlayerId:     *playerId,
		TeamId:       row.IdValue("TeamID"),
		Name:         row.StringValue("PLAYER"),
		Position:     row.StringValue("POSITION"),
		Height:       row.StringValue("HEIGHT"),
		Weight:       row.IntValue("WEIGHT"),
		BirthDate:    row.DateValue("BIRTH_DATE"),
		BirthPlace:   row.StringValue("BIRTH_PLACE"),
		College:      row.StringValue("SCHOOL"),
		DraftYear:    row.IntValue("DRAFT_YEAR"),
		DraftRound:   row.IntValue("DRAFT_ROUND"),
		DraftNumber:  row.IntValue("DRAFT_NUMBER"),
		IsActive:     row.BoolValue("ROSTERSTATUS"),
		JerseyNumber: row.StringValue("NUM"),
	}, true
}
