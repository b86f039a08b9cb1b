package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile = "config/config.yaml"
	defaultDotEnvFile = ".env"

	EnvDevelopment = "development"

	OutputStdout = "stdout"
	OutputStderr = "stderr"
)

// Config holds the ambient settings of a run. Nothing here changes which location,
// window or endpoint the report is built for.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Log    LogConfig    `yaml:"log"`
	Sentry SentryConfig `yaml:"sentry"`
}

type AppConfig struct {
	Name    string `yaml:"name" envconfig:"NAME"`
	Version string `yaml:"version" envconfig:"VERSION"`
	Env     string `yaml:"env" envconfig:"ENV"`
}

type LogConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
	Output string `yaml:"output" envconfig:"OUTPUT"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn" envconfig:"DSN"`
	Debug bool   `yaml:"debug" envconfig:"DEBUG"`
}

// ConfigProvider loads and validates a Config.
type ConfigProvider interface {
	Load() (*Config, error)
	Validate(config *Config) error
}

// FileConfigProvider layers defaults, an optional YAML file, an optional .env file
// and the process environment, in that order of precedence.
type FileConfigProvider struct {
	path       string
	dotEnvPath string
}

func NewFileConfigProvider(path string) *FileConfigProvider {
	return &FileConfigProvider{
		path:       path,
		dotEnvPath: defaultDotEnvFile,
	}
}

func NewConfig() (*Config, error) {
	return NewConfigWithProvider(NewFileConfigProvider(defaultConfigFile))
}

// NewConfigWithProvider always returns a usable Config. When loading fails the
// defaults are returned; when validation fails only the offending fields are reset
// to their defaults. Either way the error describes what was discarded.
func NewConfigWithProvider(provider ConfigProvider) (*Config, error) {
	cnf, err := provider.Load()
	if err != nil {
		return Default(), fmt.Errorf("load config: %w", err)
	}

	if err := provider.Validate(cnf); err != nil {
		reset := cnf.resetInvalid()
		if len(reset) == 0 {
			return cnf, fmt.Errorf("validate config: %w", err)
		}
		return cnf, fmt.Errorf("validate config: %w (reset to defaults: %s)", err, strings.Join(reset, ", "))
	}

	return cnf, nil
}

// Default is the configuration used when nothing overrides it.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:    "weather-report",
			Version: "1.0.0",
			Env:     EnvDevelopment,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			Output: OutputStderr,
		},
	}
}

func (p *FileConfigProvider) Load() (*Config, error) {
	cnf := Default()

	if err := p.loadFromFile(cnf); err != nil {
		return nil, err
	}

	// Variables already present in the environment win over .env entries.
	if err := godotenv.Load(p.dotEnvPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", p.dotEnvPath, err)
	}

	if err := p.loadFromEnv(cnf); err != nil {
		return nil, err
	}

	return cnf, nil
}

// loadFromFile overlays the YAML file onto config. A missing file is not an error.
func (p *FileConfigProvider) loadFromFile(config *Config) error {
	yamlData, err := os.ReadFile(p.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read config file %s: %w", p.path, err)
	}

	if err := yaml.Unmarshal(yamlData, config); err != nil {
		return fmt.Errorf("parse config file %s: %w", p.path, err)
	}

	return nil
}

func (p *FileConfigProvider) loadFromEnv(config *Config) error {
	sections := []struct {
		prefix string
		spec   any
	}{
		{"app", &config.App},
		{"log", &config.Log},
		{"sentry", &config.Sentry},
	}

	for _, s := range sections {
		if err := envconfig.Process(s.prefix, s.spec); err != nil {
			return fmt.Errorf("error environment variable parsing: %w", err)
		}
	}

	return nil
}

func (p *FileConfigProvider) Validate(config *Config) error {
	if config.App.Name == "" {
		return errors.New("app.name is required")
	}

	if !validLevel(config.Log.Level) {
		return fmt.Errorf("log.level %q is invalid", config.Log.Level)
	}

	if !validFormat(config.Log.Format) {
		return fmt.Errorf("log.format must be json or console, got %q", config.Log.Format)
	}

	if !validOutput(config.Log.Output) {
		return fmt.Errorf("log.output must be stdout or stderr, got %q", config.Log.Output)
	}

	return nil
}

// resetInvalid puts every field that fails validation back to its default and
// returns the keys it touched. Valid fields are left alone.
func (c *Config) resetInvalid() []string {
	def := Default()
	var reset []string

	if c.App.Name == "" {
		c.App.Name = def.App.Name
		reset = append(reset, "app.name")
	}
	if !validLevel(c.Log.Level) {
		c.Log.Level = def.Log.Level
		reset = append(reset, "log.level")
	}
	if !validFormat(c.Log.Format) {
		c.Log.Format = def.Log.Format
		reset = append(reset, "log.format")
	}
	if !validOutput(c.Log.Output) {
		c.Log.Output = def.Log.Output
		reset = append(reset, "log.output")
	}

	return reset
}

func validLevel(level string) bool {
	_, err := zapcore.ParseLevel(level)
	return err == nil
}

func validFormat(format string) bool {
	return format == "json" || format == "console"
}

func validOutput(output string) bool {
	return output == OutputStdout || output == OutputStderr
}

// SentryEnabled reports whether log errors should be forwarded to Sentry.
func (c *Config) SentryEnabled() bool {
	return c.Sentry.DSN != ""
}
