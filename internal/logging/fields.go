package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldProvider   = "provider"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldCursor     = "cursor"
	FieldCount      = "count"
	FieldTeamID     = "team_id"
	FieldPlayerID   = "player_id"
	FieldSlice      = "slice"
	FieldDurationMS = "duration_ms"
)
