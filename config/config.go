// Package config holds the plugin's runtime settings: host log routing and
// profiler bootstrap. Settings are read from YAML and validated before the
// plugin loads.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Log backends.
const (
	BackendHost   = "host"
	BackendStderr = "stderr"
)

// validate is a package-level singleton; building a validator per call is
// expensive.
var validate = validator.New()

// Config is the root configuration document.
type Config struct {
	Log      Log      `yaml:"log" json:"log"`
	Profiler Profiler `yaml:"profiler" json:"profiler"`
}

// Log configures how the plugin's slog and zap loggers are built.
type Log struct {
	// Level is the minimum level reported: debug, info, warn or error.
	Level string `yaml:"level" json:"level" validate:"oneof=debug info warn error" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
	// Source attaches the Go file and line to every host log entry.
	Source bool `yaml:"source" json:"source" jsonschema:"default=true"`
	// Backend selects the sink. "host" falls back to stderr when the host
	// has no log interface.
	Backend string `yaml:"backend" json:"backend" validate:"oneof=host stderr" jsonschema:"enum=host,enum=stderr,default=host"`
}

// Profiler configures the profiler bootstrap done at load.
type Profiler struct {
	// Disabled skips profiler resolution entirely.
	Disabled bool `yaml:"disabled" json:"disabled"`
	// Category, when set, is created at load and used for the plugin's
	// markers instead of the built-in "Other" category.
	Category string `yaml:"category" json:"category,omitempty" validate:"printascii"`
	// ThreadGroup and ThreadName register the loading thread with the
	// profiler. Both are required together.
	ThreadGroup string `yaml:"thread_group" json:"thread_group,omitempty" validate:"required_with=ThreadName,printascii"`
	ThreadName  string `yaml:"thread_name" json:"thread_name,omitempty" validate:"required_with=ThreadGroup,printascii"`
}

// Default returns the configuration used when none is supplied.
func Default() Config {
	return Config{
		Log: Log{
			Level:   "info",
			Source:  true,
			Backend: BackendHost,
		},
	}
}

// Parse decodes YAML over Default and validates the result. Unknown keys
// are rejected. Empty input yields the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the YAML file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the configuration against its struct tags.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// SlogLevel returns Log.Level as a slog level.
func (l Log) SlogLevel() slog.Level {
	switch l.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ZapLevel returns Log.Level as a zap level.
func (l Log) ZapLevel() zapcore.Level {
	switch l.Level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// RegistersThread reports whether the loading thread should be registered
// with the profiler.
func (p Profiler) RegistersThread() bool {
	return p.ThreadName != ""
}
