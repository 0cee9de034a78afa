package analysis

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeySizes     = "sweep.sizes"
	KeyDensities = "sweep.densities"
	KeyMaxWeight = "sweep.max_weight"
	KeyRuns      = "sweep.runs"
	KeySeed      = "sweep.seed"
	KeySource    = "sweep.source"
	KeyTolerance = "verify.tolerance"
	KeyOracle    = "verify.oracle"
	KeyLogLevel  = "logging.level"

	envPrefix = "SSSP"
)

// ErrInvalidConfig wraps every validation failure of Config.
var ErrInvalidConfig = errors.New("analysis: invalid config")

// Config manages harness configuration using Viper.
type Config struct {
	v *viper.Viper
}

// NewConfig creates a configuration holding only the defaults.
func NewConfig() *Config {
	v := viper.New()

	v.SetDefault(KeySizes, []int{100, 500, 1000, 2000, 5000})
	v.SetDefault(KeyDensities, []float64{0.01, 0.05, 0.2})
	v.SetDefault(KeyMaxWeight, 100.0)
	v.SetDefault(KeyRuns, 3)
	v.SetDefault(KeySeed, 1)
	v.SetDefault(KeySource, 0)

	v.SetDefault(KeyTolerance, 1e-6)
	v.SetDefault(KeyOracle, false)

	v.SetDefault(KeyLogLevel, "info")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return &Config{v: v}
}

// LoadConfig returns the defaults overlaid with the file at path (skipped
// when path is empty); SSSP_* environment variables win over both, e.g.
// SSSP_SWEEP_RUNS=5 or SSSP_SWEEP_SIZES="100,1000".
func LoadConfig(path string) (*Config, error) {
	c := NewConfig()
	if path != "" {
		if err := c.LoadFromFile(path); err != nil {
			return nil, err
		}
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadFromFile merges the configuration file at path.
func (c *Config) LoadFromFile(path string) error {
	c.v.SetConfigFile(path)
	if err := c.v.ReadInConfig(); err != nil {
		return fmt.Errorf("analysis: read config %q: %w", path, err)
	}

	return nil
}

// Set overrides a single key, taking precedence over file and env.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Sizes returns the vertex counts to sweep; nil if the value cannot be parsed.
func (c *Config) Sizes() []int {
	out, err := intList(c.v.Get(KeySizes))
	if err != nil {
		return nil
	}

	return out
}

// Densities returns the edge probabilities to sweep; nil if unparsable.
func (c *Config) Densities() []float64 {
	out, err := floatList(c.v.Get(KeyDensities))
	if err != nil {
		return nil
	}

	return out
}

// MaxWeight is the exclusive upper bound of generated edge weights.
func (c *Config) MaxWeight() float64 { return c.v.GetFloat64(KeyMaxWeight) }

// Runs is the number of timed runs per solver and graph.
func (c *Config) Runs() int { return c.v.GetInt(KeyRuns) }

// Seed is the base rng seed; row n uses Seed()+n.
func (c *Config) Seed() int64 { return c.v.GetInt64(KeySeed) }

// Source is the start vertex of every run.
func (c *Config) Source() int { return c.v.GetInt(KeySource) }

// Tolerance is the absolute and relative tolerance of distance checks.
func (c *Config) Tolerance() float64 { return c.v.GetFloat64(KeyTolerance) }

// Oracle reports whether dijkstra is also checked against gonum.
func (c *Config) Oracle() bool { return c.v.GetBool(KeyOracle) }

// LogLevel is the zerolog level name.
func (c *Config) LogLevel() string { return c.v.GetString(KeyLogLevel) }

// Validate checks every key a Sweep depends on.
func (c *Config) Validate() error {
	sizes, err := intList(c.v.Get(KeySizes))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeySizes, err)
	}
	if len(sizes) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, KeySizes)
	}
	for _, n := range sizes {
		if n <= c.Source() {
			return fmt.Errorf("%w: size %d has no vertex %d (%s)", ErrInvalidConfig, n, c.Source(), KeySource)
		}
	}

	densities, err := floatList(c.v.Get(KeyDensities))
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, KeyDensities, err)
	}
	if len(densities) == 0 {
		return fmt.Errorf("%w: %s is empty", ErrInvalidConfig, KeyDensities)
	}
	for _, p := range densities {
		if p < 0 || p > 1 {
			return fmt.Errorf("%w: density %g outside [0,1]", ErrInvalidConfig, p)
		}
	}

	switch {
	case c.Source() < 0:
		return fmt.Errorf("%w: %s=%d", ErrInvalidConfig, KeySource, c.Source())
	case c.MaxWeight() < 0:
		return fmt.Errorf("%w: %s=%g", ErrInvalidConfig, KeyMaxWeight, c.MaxWeight())
	case c.Runs() < 1:
		return fmt.Errorf("%w: %s=%d", ErrInvalidConfig, KeyRuns, c.Runs())
	case c.Tolerance() <= 0:
		return fmt.Errorf("%w: %s=%g", ErrInvalidConfig, KeyTolerance, c.Tolerance())
	}

	return nil
}

// intList accepts a slice (defaults, YAML/JSON files) or a comma/space
// separated string (env vars, flags).
func intList(raw interface{}) ([]int, error) {
	if s, ok := raw.(string); ok {
		fields := splitList(s)
		out := make([]int, 0, len(fields))
		for _, f := range fields {
			n, err := cast.ToIntE(f)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
		}

		return out, nil
	}

	return cast.ToIntSliceE(raw)
}

func floatList(raw interface{}) ([]float64, error) {
	if s, ok := raw.(string); ok {
		fields := splitList(s)
		out := make([]float64, 0, len(fields))
		for _, f := range fields {
			x, err := cast.ToFloat64E(f)
			if err != nil {
				return nil, err
			}
			out = append(out, x)
		}

		return out, nil
	}

	switch xs := raw.(type) {
	case []float64:
		return append([]float64(nil), xs...), nil
	case []interface{}:
		out := make([]float64, 0, len(xs))
		for _, x := range xs {
			f, err := cast.ToFloat64E(x)
			if err != nil {
				return nil, err
			}
			out = append(out, f)
		}

		return out, nil
	default:
		return nil, fmt.Errorf("unable to cast %#v of type %T to []float64", raw, raw)
	}
}

func splitList(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
}
