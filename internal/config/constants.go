package config

// Default configuration values
const (
	DefaultPort           = 8080
	DefaultLogLevel       = "info"
	DefaultLogFormat      = "text"
	DefaultLogDir         = "logs"
	DefaultServiceName    = "chinchiro-bot"
	DefaultVersion        = "dev"
	DefaultEnvironment    = "dev"
	DefaultDeadLetterPath = "logs/dead_letter.jsonl"

	DefaultInitialBankroll = 1_000_000
	DefaultHistorySize     = 256
)

// Default reveal timings in milliseconds
const (
	DefaultSpinMillis       = 1000
	DefaultTickMillis       = 50
	DefaultConfirmMillis    = 300
	DefaultLastNormalMillis = 500
	DefaultTenseMinMillis   = 1500
	DefaultTenseMaxMillis   = 2500
)
