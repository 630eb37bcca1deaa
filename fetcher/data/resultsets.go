package data

import (
	"encoding/json"
	"errors"

	"gohoops/pkg/messages"
)

// resultSet is one tabular block of a stats API response.
type resultSet struct {
	Name    string   `json:"name"`
	Headers []string `json:"headers"`
	RowSet  [][]any  `json:"rowSet"`
}

// resultSetResponse is the outer envelope of the tabular endpoints.
type resultSetResponse struct {
	ResultSets []resultSet `json:"resultSets"`
}

// rows flattens a result set into keyed rows by zipping headers and values.
// Short rows keep the columns they have, extra values are dropped.
func (rs resultSet) rows() []Row {
	rows := make([]Row, 0, len(rs.RowSet))
	for _, raw := range rs.RowSet {
		row := make(Row, len(rs.Headers))
		for i, header := range rs.Headers {
			if i >= len(raw) {
				break
			}
			row[header] = raw[i]
		}
		rows = append(rows, row)
	}
	return rows
}

// decodeFirstResultSet parses a response and flattens its first result set.
// Responses without a result set fall back to the nested dictionary shape.
func decodeFirstResultSet(body []byte) ([]Row, error) {
	var response resultSetResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.New(messages.FailedToParseMsg)
	}

	if len(response.ResultSets) == 0 {
		return decodeEntityRows(body)
	}

	return response.ResultSets[0].rows(), nil
}

// decodeEntityRows parses the nested dictionary shape some endpoints use,
// like {"players": [{"PLAYER_ID": 2544, ...}]}. The first top level array
// of objects carries the rows.
func decodeEntityRows(body []byte) ([]Row, error) {
	var response map[string]json.RawMessage
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.New(messages.FailedToParseMsg)
	}

	for _, raw := range response {
		var rows []Row
		if err := json.Unmarshal(raw, &rows); err == nil && len(rows) > 0 {
			return rows, nil
		}
	}

	return nil, errors.New(messages.MissingResultSet)
}

// decodeNamedResultSet parses a response and flattens the result set with
// the given name. Endpoints like the box score carry several named sets.
func decodeNamedResultSet(body []byte, name string) ([]Row, error) {
	var response resultSetResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, errors.New(messages.FailedToParseMsg)
	}

	for _, rs := range response.ResultSets {
		if rs.Name == name {
			return rs.rows(), nil
		}
	}

	return nil, errors.New(messages.MissingResultSet)
}
