package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of older session logs kept at startup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized   = "Logging initialized"
	LogMsgStartingFarm         = "Starting degenfarm"
	LogMsgConfigurationWarning = "Configuration warning"
	LogMsgFailedCreateLogsDir  = "failed to create logs directory"
	LogMsgFailedOpenLogFile    = "failed to open log file"
	LogMsgFailedDeleteOldLog   = "Failed to delete old log file"
)

// =============================================================================
// Event System
// =============================================================================

const (
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgFarmEvent                  = "Farm event"
)

// =============================================================================
// Storage
// =============================================================================

const (
	ReadinessNameState       = "state"
	ReadinessNameLeaderboard = "leaderboard"
)

const (
	LogMsgStateStoreOpened      = "State store opened"
	LogMsgLeaderboardPostgres   = "Leaderboard backed by Postgres"
	LogMsgLeaderboardMemory     = "Leaderboard kept in memory"
	LogMsgFarmInitialized       = "Farm initialized"
	ErrMsgFailedCreateStateDir  = "failed to create state directory"
	ErrMsgFailedOpenStateStore  = "failed to open state store"
	ErrMsgFailedConnectDatabase = "failed to connect to leaderboard database"
	ErrMsgFailedMigrateDatabase = "failed to migrate leaderboard database"
	ErrMsgFailedLoadCatalog     = "failed to load upgrade catalog"
	ErrMsgFailedResolveTimezone = "failed to resolve farm timezone"
	ErrMsgFailedCloseStateStore = "failed to close state store"
)

// =============================================================================
// Shutdown
// =============================================================================

const (
	LogMsgShuttingDownServer     = "Shutting down server..."
	LogMsgServerForcedShutdown   = "Server forced to shutdown"
	LogMsgRolloverShutdownFailed = "Day rollover worker shutdown failed"
	LogMsgFlushingBackgroundJobs = "Flushing background jobs"
	LogMsgClosingStorage         = "Closing storage"
	LogMsgServerStopped          = "Server stopped"
)
