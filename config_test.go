package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every override so the host environment cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvLevel, EnvFile, EnvConsole, EnvNoColor, EnvTimestamp} {
		t.Setenv(k, "")
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, validateConfig(cfg))
	assert.Equal(t, "info", cfg.Level)
	assert.True(t, cfg.ConsoleLogging)
	assert.False(t, cfg.FileLogging)
	assert.Equal(t, consoleFormatConsole, cfg.ConsoleFormat)
}

func TestParseConfig(t *testing.T) {
	clearEnv(t)

	cfg, err := ParseConfig([]byte(`
level: debug
with_timestamp: false
console_logging: true
console_format: json
file_logging: true
log_file_path: /tmp/pusher.log
log_file_max_size_mb: 5
log_file_max_backups: 1
log_file_compress: true
`))
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Level)
	assert.False(t, cfg.WithTimestamp)
	assert.Equal(t, consoleFormatJSON, cfg.ConsoleFormat)
	assert.True(t, cfg.FileLogging)
	assert.Equal(t, "/tmp/pusher.log", cfg.LogFilePath)
	assert.Equal(t, 5, cfg.LogFileMaxSizeMB)
	assert.Equal(t, 1, cfg.LogFileMaxBackups)
	// untouched keys keep their defaults
	assert.Equal(t, 7, cfg.LogFileMaxAgeDays)
	assert.True(t, cfg.LogFileCompress)
}

func TestParseConfig_Errors(t *testing.T) {
	clearEnv(t)

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := ParseConfig([]byte("level: [debug"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), errMsgParseConfig)
	})

	t.Run("unknown level", func(t *testing.T) {
		_, err := ParseConfig([]byte("level: verbose"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), errMsgConfigInvalid)
	})

	t.Run("unknown console format", func(t *testing.T) {
		_, err := ParseConfig([]byte("console_format: xml"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), errMsgConfigInvalid)
	})

	t.Run("negative rotation size", func(t *testing.T) {
		_, err := ParseConfig([]byte("log_file_max_size_mb: -1"))
		require.Error(t, err)
	})

	t.Run("no channels", func(t *testing.T) {
		_, err := ParseConfig([]byte("console_logging: false\nfile_logging: false"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), errMsgNoChannels)
	})
}

func TestLoadConfig(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "logging.yaml")
	require.NoError(t, os.WriteFile(path, []byte("level: warn\nconsole_no_color: true\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "warning", cfg.Level)
	assert.True(t, cfg.ConsoleNoColor)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), errMsgReadConfig)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	logFile := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(EnvLevel, "error")
	t.Setenv(EnvFile, logFile)
	t.Setenv(EnvConsole, "false")
	t.Setenv(EnvNoColor, "1")
	t.Setenv(EnvTimestamp, "not-a-bool")

	cfg, err := ParseConfig([]byte("level: debug\nconsole_logging: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Level)
	assert.True(t, cfg.FileLogging)
	assert.Equal(t, logFile, cfg.LogFilePath)
	assert.False(t, cfg.ConsoleLogging)
	assert.True(t, cfg.ConsoleNoColor)
	// unparsable booleans are ignored
	assert.True(t, cfg.WithTimestamp)
}

func TestValidateConfig_Nil(t *testing.T) {
	err := validateConfig(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), errMsgNilConfig)
}

func TestParseConfig_LevelSpellings(t *testing.T) {
	t.Run("yaml", func(t *testing.T) {
		clearEnv(t)
		for in, want := range map[string]string{
			"Info":     "info",
			"DEBUG":    "debug",
			"' warn '": "warning",
			"Err":      "error",
			"WARNING":  "warning",
		} {
			cfg, err := ParseConfig([]byte("level: " + in))
			require.NoError(t, err, in)
			assert.Equal(t, want, cfg.Level, in)
		}
	})

	t.Run("env", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvLevel, "WARN")
		cfg, err := ParseConfig([]byte("level: debug"))
		require.NoError(t, err)
		assert.Equal(t, "warning", cfg.Level)
	})

	t.Run("unknown env level", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvLevel, "LOUD")
		_, err := ParseConfig([]byte("level: debug"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), errMsgConfigInvalid)
	})
}

func TestValidateConfig_AcceptsParseLevelSpellings(t *testing.T) {
	cfg := DefaultConfig()
	for _, lvl := range []string{"ERROR", "Warn", " info "} {
		cfg.Level = lvl
		assert.NoError(t, validateConfig(cfg), lvl)
	}
	cfg.Level = "verbose"
	assert.Error(t, validateConfig(cfg))
}
