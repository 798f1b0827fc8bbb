package bootstrap

import "time"

// File system permissions
const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files
	LogFilePermission = 0666
)

// Logger configuration
const (
	// LogFileTimestampFormat is the timestamp format for log filenames
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
	LogMsgStartingService     = "Starting chinchiro service"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// Event system defaults
const (
	// EventDefaultRetryDelay is the base delay between publish retries
	EventDefaultRetryDelay = 2 * time.Second
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized    = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir = "failed to create dead-letter directory"
)

// Log messages for shutdown
const (
	LogMsgShuttingDownServer         = "Shutting down server"
	LogMsgServerForcedShutdown       = "Server forced shutdown"
	LogMsgShuttingDownEventPublisher = "Flushing event publisher"
	LogMsgServerStopped              = "Server stopped"
)
