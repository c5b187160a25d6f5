package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionLimit is the maximum number of log files to keep
	LogFileRetentionLimit = 10

	// LogFileRetentionCount is the number of log files to retain after cleanup
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingKombinat    = "Starting Kombinat"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Storage Configuration
// =============================================================================

const (
	// StorageMaxConnections is the maximum size of the PostgreSQL pool
	StorageMaxConnections = 10

	// StorageMaxConnIdleTime is how long an idle connection is kept around
	StorageMaxConnIdleTime = 5 * time.Minute

	// StorageMaxConnLifetime bounds the total lifetime of a pooled connection
	StorageMaxConnLifetime = 30 * time.Minute
)

// Log messages for storage initialization
const (
	LogMsgStorageReady          = "Snapshot storage ready"
	ErrMsgFailedConnectDatabase = "failed to connect to database"
	ErrMsgFailedRunMigrations   = "failed to run database migrations"
	ErrMsgFailedCreateDataDir   = "failed to create snapshot directory"
	ErrMsgUnknownStorageBackend = "unknown storage backend"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgFlushingSessions     = "Flushing player sessions..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgSessionFlushFailed   = "Session flush failed"
)
