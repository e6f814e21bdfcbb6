// Package config loads and stores carboncalc settings: output rendering,
// logging, report generation and lifecycle cost defaults. Settings live in
// $CARBONCALC_HOME/config.yaml (default ~/.carboncalc/config.yaml), may be
// overlaid by a project-local .carboncalc/config.yaml and are finally
// adjusted by environment variables.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/rshade/carboncalc/internal/lcc"
	"github.com/rshade/carboncalc/internal/model"
)

// Output formats understood by the CLI renderers.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
)

// Defaults.
const (
	DefaultOutputFormat     = OutputFormatTable
	DefaultPrecision        = 2
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "console"
	DefaultMinCompleteness  = 30.0
	DefaultDiscountRate     = 0.05
	DefaultInflationRate    = 0.02
	DefaultEnergyEscalation = 0.03
	DefaultLifespan         = 50
	DefaultSensitivityDelta = 0.1

	maxPrecision    = 10
	maxCompleteness = 100.0
	configFileName  = "config.yaml"
	configFilePerm  = 0o600
	configDirPerm   = 0o700
)

// Environment variables consulted by ApplyEnvOverrides.
const (
	EnvHome            = "CARBONCALC_HOME"
	EnvProjectDir      = "CARBONCALC_PROJECT_DIR"
	EnvLogLevel        = "CARBONCALC_LOG_LEVEL"
	EnvLogFormat       = "CARBONCALC_LOG_FORMAT"
	EnvOutputFormat    = "CARBONCALC_OUTPUT_FORMAT"
	EnvMinCompleteness = "CARBONCALC_MIN_COMPLETENESS"
)

// Configuration errors.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUnknownKey    = errors.New("unknown configuration key")

	ErrCompletenessRange        = errors.New("minimum completeness must be between 0 and 100")
	ErrNegativeSensitivityDelta = errors.New("sensitivity delta must be a non-negative number")
)

// Config is the full carboncalc configuration.
type Config struct {
	Output  OutputConfig  `yaml:"output"  json:"output"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
	Report  ReportConfig  `yaml:"report"  json:"report"`
	Cost    CostConfig    `yaml:"cost"    json:"cost"`

	configPath string
}

// OutputConfig controls CLI rendering.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
	Precision     int    `yaml:"precision"      json:"precision"`
}

// LoggingConfig controls the zerolog logger built for each command.
type LoggingConfig struct {
	Level  string `yaml:"level"            json:"level"`
	Format string `yaml:"format"           json:"format"`
	File   string `yaml:"file,omitempty"   json:"file,omitempty"`
	Caller bool   `yaml:"caller,omitempty" json:"caller,omitempty"`
}

// ReportConfig controls report generation.
type ReportConfig struct {
	DefaultFormat string `yaml:"default_format" json:"default_format"`
	// MinCompleteness is the data completeness score below which no report is generated.
	MinCompleteness float64 `yaml:"min_completeness" json:"min_completeness"`
}

// CostConfig holds the lifecycle cost defaults used when a document does not
// supply its own rates.
type CostConfig struct {
	DiscountRate         float64 `yaml:"discount_rate"          json:"discount_rate"`
	InflationRate        float64 `yaml:"inflation_rate"         json:"inflation_rate"`
	EnergyCostEscalation float64 `yaml:"energy_cost_escalation" json:"energy_cost_escalation"`
	Lifespan             int     `yaml:"lifespan"               json:"lifespan"`
	SensitivityDelta     float64 `yaml:"sensitivity_delta"      json:"sensitivity_delta"`
}

// Parameters returns lifecycle cost parameters carrying the configured rates
// and lifespan, with all cash flows zero.
func (c CostConfig) Parameters() lcc.Parameters {
	return lcc.Parameters{
		Lifespan:             c.Lifespan,
		DiscountRate:         c.DiscountRate,
		InflationRate:        c.InflationRate,
		EnergyCostEscalation: c.EnergyCostEscalation,
	}
}

// Defaults returns a Config holding only built-in defaults, not bound to a file.
func Defaults() *Config {
	return &Config{
		Output: OutputConfig{
			DefaultFormat: DefaultOutputFormat,
			Precision:     DefaultPrecision,
		},
		Logging: LoggingConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Report: ReportConfig{
			DefaultFormat:   string(model.FormatDetailed),
			MinCompleteness: DefaultMinCompleteness,
		},
		Cost: CostConfig{
			DiscountRate:         DefaultDiscountRate,
			InflationRate:        DefaultInflationRate,
			EnergyCostEscalation: DefaultEnergyEscalation,
			Lifespan:             DefaultLifespan,
			SensitivityDelta:     DefaultSensitivityDelta,
		},
	}
}

// New returns the effective configuration: defaults, overlaid by the config
// file when it exists and readable, then by environment overrides. A broken
// config file is ignored here; use Load to see the error.
func New() *Config {
	cfg := Defaults()
	if dir, err := GetConfigDir(); err == nil {
		cfg.configPath = filepath.Join(dir, configFileName)
	}
	_ = cfg.Load()
	cfg.ApplyEnvOverrides()
	return cfg
}

// ConfigPath returns the file the configuration is loaded from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath rebinds the configuration to another file.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Load reads the bound config file over the current values. A missing file is
// not an error.
func (c *Config) Load() error {
	if c.configPath == "" {
		return nil
	}
	data, err := os.ReadFile(c.configPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", c.configPath, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", c.configPath, err)
	}
	return nil
}

// Save writes the configuration to the bound file, creating its directory.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.New("config has no file path")
	}
	if err := os.MkdirAll(filepath.Dir(c.configPath), configDirPerm); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, configFilePerm); err != nil {
		return fmt.Errorf("writing config file %s: %w", c.configPath, err)
	}
	return nil
}

// ApplyEnvOverrides applies CARBONCALC_* environment variables. Unparseable
// numeric values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv(EnvOutputFormat); v != "" {
		c.Output.DefaultFormat = v
	}
	if v := os.Getenv(EnvMinCompleteness); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Report.MinCompleteness = f
		}
	}
}

// Validate checks every section and returns the first problem found.
func (c *Config) Validate() error {
	switch c.Output.DefaultFormat {
	case OutputFormatTable, OutputFormatJSON:
	default:
		return fmt.Errorf("%w: output.default_format must be %q or %q, got %q",
			ErrInvalidConfig, OutputFormatTable, OutputFormatJSON, c.Output.DefaultFormat)
	}
	if c.Output.Precision < 0 || c.Output.Precision > maxPrecision {
		return fmt.Errorf("%w: output.precision must be between 0 and %d, got %d",
			ErrInvalidConfig, maxPrecision, c.Output.Precision)
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(c.Logging.Level)); err != nil {
		return fmt.Errorf("%w: logging.level: %w", ErrInvalidConfig, err)
	}
	if _, err := model.ParseReportFormat(c.Report.DefaultFormat); err != nil {
		return fmt.Errorf("%w: report.default_format: %w", ErrInvalidConfig, err)
	}
	if err := CheckMinCompleteness(c.Report.MinCompleteness); err != nil {
		return fmt.Errorf("%w: report.min_completeness: %w", ErrInvalidConfig, err)
	}
	if err := c.Cost.Parameters().Validate(); err != nil {
		return fmt.Errorf("%w: cost: %w", ErrInvalidConfig, err)
	}
	if err := CheckSensitivityDelta(c.Cost.SensitivityDelta); err != nil {
		return fmt.Errorf("%w: cost.sensitivity_delta: %w", ErrInvalidConfig, err)
	}
	return nil
}

// CheckMinCompleteness validates a minimum data completeness score, from the
// config file or a command flag.
func CheckMinCompleteness(v float64) error {
	if math.IsNaN(v) || v < 0 || v > maxCompleteness {
		return fmt.Errorf("%w, got %g", ErrCompletenessRange, v)
	}
	return nil
}

// CheckSensitivityDelta validates a relative sensitivity perturbation.
func CheckSensitivityDelta(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return fmt.Errorf("%w, got %g", ErrNegativeSensitivityDelta, v)
	}
	return nil
}

// field binds a dotted key to one configuration value.
type field struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

func stringField(ptr func(c *Config) *string) field {
	return field{
		get: func(c *Config) string { return *ptr(c) },
		set: func(c *Config, v string) error {
			*ptr(c) = v
			return nil
		},
	}
}

func floatField(ptr func(c *Config) *float64) field {
	return field{
		get: func(c *Config) string { return strconv.FormatFloat(*ptr(c), 'g', -1, 64) },
		set: func(c *Config, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("expected a number, got %q", v)
			}
			*ptr(c) = f
			return nil
		},
	}
}

func intField(ptr func(c *Config) *int) field {
	return field{
		get: func(c *Config) string { return strconv.Itoa(*ptr(c)) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("expected an integer, got %q", v)
			}
			*ptr(c) = n
			return nil
		},
	}
}

func boolField(ptr func(c *Config) *bool) field {
	return field{
		get: func(c *Config) string { return strconv.FormatBool(*ptr(c)) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("expected true or false, got %q", v)
			}
			*ptr(c) = b
			return nil
		},
	}
}

// fields maps every dotted key to its value.
//
//nolint:gochecknoglobals // Constant lookup table.
var fields = map[string]field{
	"output.default_format":       stringField(func(c *Config) *string { return &c.Output.DefaultFormat }),
	"output.precision":            intField(func(c *Config) *int { return &c.Output.Precision }),
	"logging.level":               stringField(func(c *Config) *string { return &c.Logging.Level }),
	"logging.format":              stringField(func(c *Config) *string { return &c.Logging.Format }),
	"logging.file":                stringField(func(c *Config) *string { return &c.Logging.File }),
	"logging.caller":              boolField(func(c *Config) *bool { return &c.Logging.Caller }),
	"report.default_format":       stringField(func(c *Config) *string { return &c.Report.DefaultFormat }),
	"report.min_completeness":     floatField(func(c *Config) *float64 { return &c.Report.MinCompleteness }),
	"cost.discount_rate":          floatField(func(c *Config) *float64 { return &c.Cost.DiscountRate }),
	"cost.inflation_rate":         floatField(func(c *Config) *float64 { return &c.Cost.InflationRate }),
	"cost.energy_cost_escalation": floatField(func(c *Config) *float64 { return &c.Cost.EnergyCostEscalation }),
	"cost.lifespan":               intField(func(c *Config) *int { return &c.Cost.Lifespan }),
	"cost.sensitivity_delta":      floatField(func(c *Config) *float64 { return &c.Cost.SensitivityDelta }),
}

// Keys returns every settable key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Get returns the value of a dotted key such as "output.precision".
func (c *Config) Get(key string) (string, error) {
	f, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return f.get(c), nil
}

// Set assigns a dotted key from its text form and validates the result. On a
// validation failure the previous value is restored.
func (c *Config) Set(key, value string) error {
	f, ok := fields[key]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	previous := f.get(c)
	if err := f.set(c, strings.TrimSpace(value)); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, key, err)
	}
	if err := c.Validate(); err != nil {
		_ = f.set(c, previous)
		return err
	}
	return nil
}
