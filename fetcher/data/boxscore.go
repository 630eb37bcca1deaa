package data

import (
	"context"
	"net/url"

	"gohoops/fetcher/requests"
)

// BoxScoreFetcher fetches the box score of a single game.
type BoxScoreFetcher struct {
	client *requests.Client
}

// GetBoxScore returns both team lines and every player line of one game.
// The endpoint carries several result sets, addressed by name.
func (b *BoxScoreFetcher) GetBoxScore(ctx context.Context, gameId string) (*BoxScoreRecord, error) {
	params := url.Values{}
	params.Set("GameID", gameId)
	params.Set("StartPeriod", "0")
	params.Set("EndPeriod", "0")
	params.Set("StartRange", "0")
	params.Set("EndRange", "0")
	params.Set("RangeType", "0")

	body, err := b.client.Get(ctx, "boxscoretraditionalv2", params)
	if err != nil {
		return nil, err
	}

	teamRows, err := decodeNamedResultSet(body, "TeamStats")
	if err != nil {
		return nil, err
	}

	playerRows, err := decodeNamedResultSet(body, "PlayerStats")
	if err != nil {
		return nil, err
	}

	box := &BoxScoreRecord{GameId: gameId}

	for _, row := range teamRows {
		record, ok := normalizeTeamBox(row)
		if !ok {
			continue
		}
		box.Teams = append(box.Teams, record)
	}

	for _, row := range playerRows {
		record, ok := normalizePlayerBox(row)
		if !ok {
			continue
		}
		box.Players = append(box.Players, record)
	}

	return box, nil
}

// normalizeTeamBox maps one TeamStats row into the canonical box shape.
func normalizeTeamBox(row Row) (TeamBoxRecord, bool) {
	teamId := row.IdValue("TEAM_ID")
	if teamId == nil {
		return TeamBoxRecord{}, false
	}

	return TeamBoxRecord{
		TeamId: *teamId,

		Points:               row.IntValue("PTS"),
		FieldGoalsMade:       row.IntValue("FGM"),
		FieldGoalsAttempted:  row.IntValue("FGA"),
		FieldGoalPercentage:  row.FloatValue("FG_PCT"),
		ThreePointsMade:      row.IntValue("FG3M"),
		ThreePointsAttempted: row.IntValue("FG3A"),
		ThreePointPercentage: row.FloatValue("FG3_PCT"),
		FreeThrowsMade:       row.IntValue("FTM"),
		FreeThrowsAttempted:  row.IntValue("FTA"),
		FreeThrowPercentage:  row.FloatValue("FT_PCT"),

		OffensiveRebounds: row.IntValue("OREB"),
		DefensiveRebounds: row.IntValue("DREB"),
		TotalRebounds:     row.IntValue("REB"),

		Assists:       row.IntValue("AST"),
		Steals:        row.IntValue("STL"),
		Blocks:        row.IntValue("BLK"),
		Turnovers:     row.IntValue("TO"),
		PersonalFouls: row.IntValue("PF"),
	}, true
}

// normalizePlayerBox maps one PlayerStats row into the canonical box shape.
func normalizePlayerBox(row Row) (PlayerBoxRecord, bool) {
	playerId := row.IdValue("PLAYER_ID")
	if playerId == nil {
		return PlayerBoxRecord{}, false
	}

	teamId := row.IdValue("TEAM_ID")
	if teamId == nil {
		return PlayerBoxRecord{}, false
	}

	record := PlayerBoxRecord{
		PlayerId: *playerId,
		TeamId:   *teamId,

		MinutesPlayed: row.StringValue("MIN"),

		Points:               row.IntValue("PTS"),
		FieldGoalsMade:       row.IntValue("FGM"),
		FieldGoalsAttempted:  row.IntValue("FGA"),
		FieldGoalPercentage:  row.FloatValue("FG_PCT"),
		ThreePointsMade:      row.IntValue("FG3M"),
		ThreePointsAttempted: row.IntValue("FG3A"),
		ThreePointPercentage: row.FloatValue("FG3_PCT"),
		FreeThrowsMade:       row.IntValue("FTM"),
		FreeThrowsAttempted:  row.IntValue("FTA"),
		FreeThrowPercentage:  row.FloatValue("FT_PCT"),

		OffensiveRebounds: row.IntValue("OREB"),
		DefensiveRebounds: row.IntValue("DREB"),
		TotalRebounds:     row.IntValue("REB"),

		Assists:       row.IntValue("AST"),
		Steals:        row.IntValue("STL"),
		Blocks:        row.IntValue("BLK"),
		Turnovers:     row.IntValue("TO"),
		PersonalFouls: row.IntValue("PF"),

		PlusMinus: row.IntValue("PLUS_MINUS"),
	}

	// A filled start position marks a starter.
	if position := row.StringValue("START_POSITION"); position != nil {
		started := true
		record.Started = &started
	}

	if record.MinutesPlayed != nil {
		record.MinutesPlayedSeconds = ParseMinutes(*record.MinutesPlayed)
	}

	return record, true
}
