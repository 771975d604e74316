package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	env "github.com/Netflix/go-env"
	"gopkg.in/yaml.v3"

	classifier "github.com/samuel/go-naivebayes"
)

// Config holds the nbayes configuration.
type Config struct {
	Env        string           `yaml:"env"` // local, dev, prod
	Logging    LoggingConfig    `yaml:"logging"`
	Database   DatabaseConfig   `yaml:"database"`
	Evaluation EvaluationConfig `yaml:"evaluation"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: determined by env)
}

// DatabaseConfig holds corpus store settings.
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // sqlite3
	DSN    string `yaml:"dsn"`
}

// EvaluationConfig holds held-out evaluation settings.
type EvaluationConfig struct {
	Mode         string  `yaml:"mode"`          // set, bag
	TestSize     int     `yaml:"test_size"`     // wins over test_fraction when > 0
	TestFraction float64 `yaml:"test_fraction"` // share of the corpus held out
	Rounds       int     `yaml:"rounds"`
	Seed         int64   `yaml:"seed"` // 0 = seeded from the clock
}

// MetricsConfig holds metrics export settings.
type MetricsConfig struct {
	Textfile string `yaml:"textfile"` // node_exporter textfile path, empty = disabled
}

// overrides are the environment variables that take precedence over the file.
type overrides struct {
	Env      string `env:"NBAYES_ENV"`
	LogLevel string `env:"NBAYES_LOG_LEVEL"`
	DSN      string `env:"NBAYES_DATABASE"`
	Mode     string `env:"NBAYES_MODE"`
	Seed     int64  `env:"NBAYES_SEED"`
	Textfile string `env:"NBAYES_METRICS_TEXTFILE"`
}

// Load reads configuration from a YAML file, applies environment overrides
// and defaults, and validates the result. An empty path skips the file.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}

		// Substitute env variables of the form ${VAR}
		data = expandEnvVars(data)

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	var o overrides
	if _, err := env.UnmarshalFromEnviron(&o); err != nil {
		return err
	}
	if o.Env != "" {
		c.Env = o.Env
	}
	if o.LogLevel != "" {
		c.Logging.Level = o.LogLevel
	}
	if o.DSN != "" {
		c.Database.DSN = o.DSN
	}
	if o.Mode != "" {
		c.Evaluation.Mode = o.Mode
	}
	if o.Seed != 0 {
		c.Evaluation.Seed = o.Seed
	}
	if o.Textfile != "" {
		c.Metrics.Textfile = o.Textfile
	}
	return nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Env == "" {
		c.Env = "local"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite3"
	}
	if c.Database.DSN == "" {
		c.Database.DSN = "nbayes.db"
	}
	if c.Evaluation.Mode == "" {
		c.Evaluation.Mode = classifier.SetMode.String()
	}
	if c.Evaluation.TestSize <= 0 && c.Evaluation.TestFraction <= 0 {
		c.Evaluation.TestFraction = 0.2
	}
	if c.Evaluation.Rounds <= 0 {
		c.Evaluation.Rounds = 1
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	switch c.Env {
	case "local", "dev", "prod":
	default:
		return fmt.Errorf("env must be local, dev or prod, got %q", c.Env)
	}
	if c.Database.Driver != "sqlite3" {
		return fmt.Errorf("database.driver must be \"sqlite3\", got %q", c.Database.Driver)
	}
	if _, err := classifier.ParseMode(c.Evaluation.Mode); err != nil {
		return fmt.Errorf("evaluation.mode: %w", err)
	}
	if c.Evaluation.TestSize < 0 {
		return fmt.Errorf("evaluation.test_size must not be negative, got %d", c.Evaluation.TestSize)
	}
	if c.Evaluation.TestFraction < 0 || c.Evaluation.TestFraction >= 1 {
		return fmt.Errorf("evaluation.test_fraction must be in [0, 1), got %g", c.Evaluation.TestFraction)
	}
	return nil
}

// Mode returns the parsed vectorization mode. Call after Validate.
func (c *Config) Mode() classifier.Mode {
	m, _ := classifier.ParseMode(c.Evaluation.Mode)
	return m
}

// TestSizeFor returns the number of documents to hold out of a corpus of n.
func (c *Config) TestSizeFor(n int) int {
	if c.Evaluation.TestSize > 0 {
		return c.Evaluation.TestSize
	}
	return classifier.TestSizeFor(n, c.Evaluation.TestFraction)
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
