package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Leaderboard Operations
const (
	ErrMsgFailedToCheckUsername  = "failed to check username"
	ErrMsgFailedToInsertPlayer   = "failed to insert player"
	ErrMsgFailedToUpsertPlayer   = "failed to upsert player"
	ErrMsgFailedToGetPlayer      = "failed to get player"
	ErrMsgFailedToQueryTopPlayer = "failed to query top players"
	ErrMsgFailedToScanPlayer     = "failed to scan player"
)
