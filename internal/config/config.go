package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `validate:"min=1,max=65535"`
	LogLevel    string `validate:"oneof=debug info warn warning error"`
	LogFormat   string `validate:"oneof=json text"`
	LogDir      string `validate:"required"`
	ServiceName string `validate:"required"`
	Version     string `validate:"required"`
	Environment string `validate:"oneof=dev development staging prod test"`

	// Session settings
	InitialBankroll int `validate:"min=1"`
	HistorySize     int `validate:"min=1"`

	// Reveal animation timing
	SpinDuration    time.Duration `validate:"min=0"`
	TickInterval    time.Duration `validate:"gt=0"`
	ConfirmDelay    time.Duration `validate:"min=0"`
	LastNormalDelay time.Duration `validate:"min=0"`
	TenseDelayMin   time.Duration `validate:"min=0"`
	TenseDelayMax   time.Duration `validate:"gtefield=TenseDelayMin"`

	// Event publishing
	DeadLetterPath string `validate:"required"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:       getEnv("LOG_LEVEL", DefaultLogLevel),
		LogFormat:      getEnv("LOG_FORMAT", DefaultLogFormat),
		LogDir:         getEnv("LOG_DIR", DefaultLogDir),
		ServiceName:    getEnv("SERVICE_NAME", DefaultServiceName),
		Version:        getEnv("VERSION", DefaultVersion),
		Environment:    getEnv("ENVIRONMENT", DefaultEnvironment),
		DeadLetterPath: getEnv("DEAD_LETTER_PATH", DefaultDeadLetterPath),
	}

	var err error
	if cfg.Port, err = getEnvInt("PORT", DefaultPort); err != nil {
		return nil, err
	}
	if cfg.InitialBankroll, err = getEnvInt("INITIAL_BANKROLL", DefaultInitialBankroll); err != nil {
		return nil, err
	}
	if cfg.HistorySize, err = getEnvInt("HISTORY_SIZE", DefaultHistorySize); err != nil {
		return nil, err
	}

	if cfg.SpinDuration, err = getEnvMillis("REVEAL_SPIN_MS", DefaultSpinMillis); err != nil {
		return nil, err
	}
	if cfg.TickInterval, err = getEnvMillis("REVEAL_TICK_MS", DefaultTickMillis); err != nil {
		return nil, err
	}
	if cfg.ConfirmDelay, err = getEnvMillis("REVEAL_CONFIRM_MS", DefaultConfirmMillis); err != nil {
		return nil, err
	}
	if cfg.LastNormalDelay, err = getEnvMillis("REVEAL_LAST_NORMAL_MS", DefaultLastNormalMillis); err != nil {
		return nil, err
	}
	if cfg.TenseDelayMin, err = getEnvMillis("REVEAL_TENSE_MIN_MS", DefaultTenseMinMillis); err != nil {
		return nil, err
	}
	if cfg.TenseDelayMax, err = getEnvMillis("REVEAL_TENSE_MAX_MS", DefaultTenseMaxMillis); err != nil {
		return nil, err
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) (int, error) {
	raw, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return v, nil
}

// getEnvMillis retrieves a millisecond-count environment variable as a Duration
func getEnvMillis(key string, defaultMillis int) (time.Duration, error) {
	v, err := getEnvInt(key, defaultMillis)
	if err != nil {
		return 0, err
	}
	return time.Duration(v) * time.Millisecond, nil
}
