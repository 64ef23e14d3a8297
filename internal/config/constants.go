package config

// Environment names
const (
	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Error Messages
const (
	ErrMsgParseEnv        = "failed to parse environment"
	ErrMsgInvalidConfig   = "invalid configuration"
	ErrMsgInvalidTimezone = "invalid timezone"
)

// Warning Messages
const (
	WarnMsgLeaderboardInMemory = "DATABASE_URL is not set - the leaderboard is kept in memory and lost on restart"
	WarnMsgTextLogsInProd      = "LOG_FORMAT=text in production - use json for log aggregation"
	WarnMsgDebugLogsInProd     = "LOG_LEVEL=DEBUG in production - expect high log volume"
	WarnMsgOpenAPIInProd       = "API_KEY is not set in production - anyone can act for any player"
)
