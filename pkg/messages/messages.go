package messages

const (
	BadStatusCodeMsg  = "API returned status code %d on endpoint %s"
	FailedToParseMsg  = "failed to parse API response"
	IngestRollbackMsg = "ingest batch rolled back: %v"
	MissingResultSet  = "response carries no result set"
	PlayerNotFoundMsg = "player not found for PLAYER_ID %s, skipping"
	RequestFailedMsg  = "API request failed on endpoint %s"
	TeamNotFoundMsg   = "team not found for TEAM_ID %s, skipping"
	UnknownSeasonType = "unknown season type %q"
)
