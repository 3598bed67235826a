// Package config holds the run configuration of the pids driver.
//
// Values are layered from lowest to highest priority: built-in defaults, a
// YAML file, then caller overrides (command-line flags). The merged result
// is checked with struct tags before use.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig wraps every validation and decoding failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrUnreadable is returned when the configuration file cannot be read.
	ErrUnreadable = errors.New("config: file unavailable")
)

// Strategy names accepted in Config.Strategy.
const (
	StrategyGreedy = "greedy"
	StrategyHill   = "hill"
	StrategyAnneal = "anneal"
	StrategyTabu   = "tabu"
)

// Config is the complete run configuration.
type Config struct {
	// Input is the instance file in the "n m / u v" text format.
	Input string `yaml:"input" validate:"required"`
	// Apps is the number of independent applications.
	Apps int `yaml:"apps" validate:"min=1"`
	// Seed feeds the process-wide random source; 0 selects the default seed.
	Seed int64 `yaml:"seed"`
	// Strategy is one of greedy, hill, anneal, tabu.
	Strategy string `yaml:"strategy" validate:"oneof=greedy hill anneal tabu"`
	// TimeLimit is the per-application tabu budget in seconds; 0 disables it.
	TimeLimit float64 `yaml:"time_limit" validate:"gte=0"`

	Anneal  Anneal  `yaml:"anneal"`
	Tabu    Tabu    `yaml:"tabu"`
	Log     Log     `yaml:"log"`
	Metrics Metrics `yaml:"metrics"`
}

// Anneal configures simulated annealing.
type Anneal struct {
	InitialTemp       float64 `yaml:"initial_temp" validate:"gt=0"`
	MinTemp           float64 `yaml:"min_temp" validate:"gt=0,ltfield=InitialTemp"`
	Cooling           float64 `yaml:"cooling" validate:"gt=0,lt=1"`
	IterationsPerTemp int     `yaml:"iterations_per_temp" validate:"min=1"`
	Acceptance        string  `yaml:"acceptance" validate:"oneof=literal metropolis"`
}

// Tabu configures tabu search.
type Tabu struct {
	// Tenure of 0 selects the node count.
	Tenure     int64   `yaml:"tenure" validate:"gte=0"`
	SizeWeight float64 `yaml:"size_weight" validate:"gt=0"`
	KeyPolicy  string  `yaml:"key_policy" validate:"oneof=node direction score"`
	// MaxIterations of 0 means unlimited.
	MaxIterations int64 `yaml:"max_iterations" validate:"gte=0"`
	// IterationCeiling of 0 keeps the engine default.
	IterationCeiling int64  `yaml:"iteration_ceiling" validate:"gte=0"`
	Clock            string `yaml:"clock" validate:"oneof=cpu wall"`
}

// Log configures the zap logger.
type Log struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

// Metrics configures the Prometheus textfile export; empty disables it.
type Metrics struct {
	Textfile string `yaml:"textfile"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Apps:      1,
		Strategy:  StrategyTabu,
		TimeLimit: 600,
		Anneal: Anneal{
			InitialTemp:       1,
			MinTemp:           1e-4,
			Cooling:           0.95,
			IterationsPerTemp: 1000,
			Acceptance:        "literal",
		},
		Tabu: Tabu{
			SizeWeight: 1000,
			KeyPolicy:  "node",
			Clock:      "cpu",
		},
		Log: Log{Level: "info", Format: "console"},
	}
}

// TimeBudget returns TimeLimit as a duration.
func (c Config) TimeBudget() time.Duration {
	return time.Duration(c.TimeLimit * float64(time.Second))
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and overrides, in that order, then validates it.
func Load(path string, overrides ...func(*Config)) (Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("Load: %s: %v: %w", path, err, ErrUnreadable)
		}
		if err = decode(bytes.NewReader(raw), &cfg); err != nil {
			return Config{}, fmt.Errorf("Load: %s: %w", path, err)
		}
	}
	for _, o := range overrides {
		o(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Parse decodes YAML from r over the defaults and validates the result.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	if err := decode(r, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode: %v: %w", err, ErrInvalidConfig)
	}

	return nil
}

var validate = validator.New()

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("Validate: %v: %w", err, ErrInvalidConfig)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fieldMessage(fe))
	}

	return fmt.Errorf("Validate: %s: %w", strings.Join(msgs, "; "), ErrInvalidConfig)
}

// fieldMessage renders one validation failure with the field's namespace.
func fieldMessage(fe validator.FieldError) string {
	field := strings.ToLower(strings.TrimPrefix(fe.Namespace(), "Config."))
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "min", "gte":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "lt":
		return fmt.Sprintf("%s must be less than %s", field, fe.Param())
	case "ltfield":
		return fmt.Sprintf("%s must be below %s", field, strings.ToLower(fe.Param()))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
