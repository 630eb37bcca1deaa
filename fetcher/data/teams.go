package data

import (
	"context"
	"net/url"

	"gohoops/fetcher/requests"
	seasonvalues "gohoops/pkg/nbavalues/season"
)

// TeamFetcher fetches the team list.
type TeamFetcher struct {
	client *requests.Client
}

// GetTeams returns the normalized team records for a season.
// The roster endpoint repeats the team columns on every player row,
// so the rows are grouped by team id, first row wins.
func (t *TeamFetcher) GetTeams(ctx context.Context, season int) ([]TeamRecord, error) {
	params := url.Values{}
	params.Set("LeagueID", leagueId)
	params.Set("Season", seasonvalues.Format(season))
	params.Set("IsOnlyCurrentSeason", "1")

	body, err := t.client.Get(ctx, "commonteamroster", params)
	if err != nil {
		return nil, err
	}

	rows, err := decodeFirstResultSet(body)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var teams []TeamRecord
	for _, row := range rows {
		record, ok := normalizeTeam(row)
		if !ok {
			// Rows without a team id are dropped, not fatal.
			continue
		}

		if seen[record.TeamId] {
			continue
		}
		seen[record.TeamId] = true
		teams = append(teams, record)
	}

	return teams, nil
}

// normalizeTeam maps one roster row into the canonical team shape.
// The second return is false when the required team id is missing.
func normalizeTeam(row Row) (TeamRecord, bool) {
	teamId := row.IdValue("TEAM_ID")
	if teamId == nil {
		return TeamRecord{}, false
	}

	return TeamRecord{
		TeamId:       *teamId,
		Name:         row.StringValue("TEAM_NAME"),
		Abbreviation: row.StringValue("ABBREVIATION"),
		City:         row.StringValue("TEAM_CITY"),
		State:        row.StringValue("TEAM_STATE"),
		Conference:   row.StringValue("CONFERENCE"),
		Division:     row.StringValue("DIVISION"),
	}, true
}
