package data

import (
	"context"
	"net/url"

	"gohoops/fetcher/requests"
	seasonvalues "gohoops/pkg/nbavalues/season"
)

// StatsFetcher fetches the season aggregate stats.
type StatsFetcher struct {
	client *requests.Client
}

// statsParams builds the shared parameter set of the dash endpoints.
func statsParams(season int, seasonType seasonvalues.SeasonType) url.Values {
	params := url.Values{}
	params.Set("LeagueID", leagueId)
	params.Set("Season", seasonvalues.Format(season))
	params.Set("SeasonType", string(seasonType))
	params.Set("PerMode", "PerGame")
	params.Set("MeasureType", "Base")
	return params
}

// GetTeamStats returns the normalized team stat lines for a season.
func (s *StatsFetcher) GetTeamStats(ctx context.Context, season int, seasonType seasonvalues.SeasonType) ([]TeamStatsRecord, error) {
	body, err := s.client.Get(ctx, "leaguedashteamstats", statsParams(season, seasonType))
	if err != nil {
		return nil, err
	}

	rows, err := decodeFirstResultSet(body)
	if err != nil {
		return nil, err
	}

	var stats []TeamStatsRecord
	for _, row := range rows {
		record, ok := normalizeTeamStats(row)
		if !ok {
			continue
		}
		stats = append(stats, record)
	}

	return stats, nil
}

// GetPlayerStats returns the normalized player stat lines for a season.
// teamId optionally narrows the fetch to one team.
func (s *StatsFetcher) GetPlayerStats(ctx context.Context, season int, seasonType seasonvalues.SeasonType, teamId string) ([]PlayerStatsRecord, error) {
	params := statsParams(season, seasonType)
	if teamId != "" {
		params.Set("TeamID", teamId)
	}

	body, err := s.client.Get(ctx, "leaguedashplayerstats", params)
	if err != nil {
		return nil, err
	}

	rows, err := decodeFirstResultSet(body)
	if err != nil {
		return nil, err
	}

	var stats []PlayerStatsRecord
	for _, row := range rows {
		record, ok := normalizePlayerStats(row)
		if !ok {
			continue
		}
		stats = append(stats, record)
	}

	return stats, nil
}

// normalizeTeamStats maps one dash row into the canonical team stat shape.
func normalizeTeamStats(row Row) (TeamStatsRecord, bool) {
	teamId := row.IdValue("TEAM_ID")
	if teamId == nil {
		return TeamStatsRecord{}, false
	}

	return TeamStatsRecord{
		TeamId: *teamId,

		GamesPlayed:   row.IntValue("GP"),
		Wins:          row.IntValue("W"),
		Losses:        row.IntValue("L"),
		WinPercentage: row.FloatValue("W_PCT"),

		PointsPerGame:            row.FloatValue("PTS"),
		FieldGoalPercentage:      row.FloatValue("FG_PCT"),
		ThreePointPercentage:     row.FloatValue("FG3_PCT"),
		FreeThrowPercentage:      row.FloatValue("FT_PCT"),
		OffensiveReboundsPerGame: row.FloatValue("OREB"),
		DefensiveReboundsPerGame: row.FloatValue("DREB"),
		AssistsPerGame:           row.FloatValue("AST"),
		StealsPerGame:            row.FloatValue("STL"),
		BlocksPerGame:            row.FloatValue("BLK"),
		TurnoversPerGame:         row.FloatValue("TOV"),
		PersonalFoulsPerGame:     row.FloatValue("PF"),

		Pace:            row.FloatValue("PACE"),
		OffensiveRating: row.FloatValue("OFFRTG"),
		DefensiveRating: row.FloatValue("DEFRTG"),
		NetRating:       row.FloatValue("NETRTG"),
	}, true
}

// normalizePlayerStats maps one dash row into the canonical player stat shape.
func normalizePlayerStats(row Row) (PlayerStatsRecord, bool) {
	playerId := row.IdValue("PLAYER_ID")
	if playerId == nil {
		return PlayerStatsRecord{}, false
	}

	return PlayerStatsRecord{
		PlayerId: *playerId,
		TeamId:   row.IdValue("TEAM_ID"),

		GamesPlayed:  row.IntValue("GP"),
		GamesStarted: row.IntValue("GS"),

		MinutesPerGame: row.FloatValue("MIN"),

		PointsPerGame:        row.FloatValue("PTS"),
		ReboundsPerGame:      row.FloatValue("REB"),
		AssistsPerGame:       row.FloatValue("AST"),
		StealsPerGame:        row.FloatValue("STL"),
		BlocksPerGame:        row.FloatValue("BLK"),
		TurnoversPerGame:     row.FloatValue("TOV"),
		PersonalFoulsPerGame: row.FloatValue("PF"),

		FieldGoalPercentage:  row.FloatValue("FG_PCT"),
		ThreePointPercentage: row.FloatValue("FG3_PCT"),
		FreeThrowPercentage:  row.FloatValue("FT_PCT"),

		TrueShootingPercentage:       row.FloatValue("TS_PCT"),
		EffectiveFieldGoalPercentage: row.FloatValue("EFG_PCT"),
		OffensiveReboundPercentage:   row.FloatValue("OREB_PCT"),
		DefensiveReboundPercentage:   row.FloatValue("DREB_PCT"),
		AssistPercentage:             row.FloatValue("AST_PCT"),
		TurnoverPercentage:           row.FloatValue("TOV_PCT"),
		UsagePercentage:              row.FloatValue("USG_PCT"),
		PlayerEfficiencyRating:       row.FloatValue("PER"),
	}, true
}
