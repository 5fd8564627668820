package logging

import (
	"os"
	"strconv"

	"github.com/Station-Manager/errors"
	"gopkg.in/yaml.v3"
)

// Environment variables that override values loaded from file.
const (
	EnvLevel     = "PUSHER_LOG_LEVEL"
	EnvFile      = "PUSHER_LOG_FILE"
	EnvConsole   = "PUSHER_LOG_CONSOLE"
	EnvNoColor   = "PUSHER_LOG_NO_COLOR"
	EnvTimestamp = "PUSHER_LOG_TIMESTAMP"
)

// Config controls where and at which minimum level the sink emits.
// It has no effect on the formatter.
type Config struct {
	Level         string `yaml:"level" validate:"required,loglevel"`
	WithTimestamp bool   `yaml:"with_timestamp"`

	ConsoleLogging    bool   `yaml:"console_logging"`
	ConsoleFormat     string `yaml:"console_format" validate:"omitempty,oneof=console json"`
	ConsoleNoColor    bool   `yaml:"console_no_color"`
	ConsoleTimeFormat string `yaml:"console_time_format"`

	FileLogging       bool   `yaml:"file_logging"`
	LogFilePath       string `yaml:"log_file_path"`
	LogFileMaxSizeMB  int    `yaml:"log_file_max_size_mb" validate:"gte=0"`
	LogFileMaxBackups int    `yaml:"log_file_max_backups" validate:"gte=0"`
	LogFileMaxAgeDays int    `yaml:"log_file_max_age_days" validate:"gte=0"`
	LogFileCompress   bool   `yaml:"log_file_compress"`
}

// DefaultConfig returns an info-level, console-only configuration.
func DefaultConfig() *Config {
	return &Config{
		Level:             LevelInfo.String(),
		WithTimestamp:     true,
		ConsoleLogging:    true,
		ConsoleFormat:     consoleFormatConsole,
		FileLogging:       false,
		LogFileMaxSizeMB:  10,
		LogFileMaxBackups: 3,
		LogFileMaxAgeDays: 7,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig, applies environment
// overrides and validates the result.
func LoadConfig(path string) (*Config, error) {
	const op errors.Op = "logging.LoadConfig"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgReadConfig)
	}
	return ParseConfig(data)
}

// ParseConfig is LoadConfig for an in-memory document.
func ParseConfig(data []byte) (*Config, error) {
	const op errors.Op = "logging.ParseConfig"

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.New(op).Err(err).Msg(errMsgParseConfig)
	}

	applyEnvOverrides(cfg)
	normalizeLevel(cfg)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalizeLevel rewrites an accepted level spelling ("WARN", " Info ") to its
// canonical name. Unknown names are left for validation to report.
func normalizeLevel(cfg *Config) {
	if l, err := ParseLevel(cfg.Level); err == nil {
		cfg.Level = l.String()
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvLevel); v != emptyString {
		cfg.Level = v
	}
	if v := os.Getenv(EnvFile); v != emptyString {
		cfg.LogFilePath = v
		cfg.FileLogging = true
	}
	if b, ok := envBool(EnvConsole); ok {
		cfg.ConsoleLogging = b
	}
	if b, ok := envBool(EnvNoColor); ok {
		cfg.ConsoleNoColor = b
	}
	if b, ok := envBool(EnvTimestamp); ok {
		cfg.WithTimestamp = b
	}
}

// envBool ignores unset and unparsable values.
func envBool(key string) (bool, bool) {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false, false
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}
