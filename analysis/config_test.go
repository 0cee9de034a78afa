package analysis_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bmssp/analysis"
)

func TestConfig_Defaults(t *testing.T) {
	c, err := analysis.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, []int{100, 500, 1000, 2000, 5000}, c.Sizes())
	assert.Equal(t, []float64{0.01, 0.05, 0.2}, c.Densities(), "sparse, medium and dense tiers")
	assert.Equal(t, 100.0, c.MaxWeight())
	assert.Equal(t, 3, c.Runs())
	assert.Equal(t, int64(1), c.Seed())
	assert.Equal(t, 0, c.Source())
	assert.Equal(t, 1e-6, c.Tolerance())
	assert.False(t, c.Oracle())
	assert.Equal(t, "info", c.LogLevel())
}

func TestConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	body := `
sweep:
  sizes: [10, 20, 30]
  densities: [0.1, 1]
  runs: 2
verify:
  oracle: true
logging:
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	c, err := analysis.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30}, c.Sizes())
	assert.Equal(t, []float64{0.1, 1}, c.Densities())
	assert.Equal(t, 2, c.Runs())
	assert.True(t, c.Oracle())
	assert.Equal(t, "debug", c.LogLevel())
	assert.Equal(t, 100.0, c.MaxWeight(), "unset keys keep defaults")
}

func TestConfig_MissingFile(t *testing.T) {
	_, err := analysis.LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestConfig_Env(t *testing.T) {
	t.Setenv("SSSP_SWEEP_RUNS", "5")
	t.Setenv("SSSP_SWEEP_SIZES", "50, 60")
	t.Setenv("SSSP_SWEEP_DENSITIES", "0.2,0.3")

	c, err := analysis.LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, 5, c.Runs())
	assert.Equal(t, []int{50, 60}, c.Sizes())
	assert.Equal(t, []float64{0.2, 0.3}, c.Densities())
}

func TestConfig_Validate(t *testing.T) {
	cases := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"no sizes", analysis.KeySizes, []int{}},
		{"bad sizes", analysis.KeySizes, "10,x"},
		{"density above one", analysis.KeyDensities, []float64{1.5}},
		{"negative weight", analysis.KeyMaxWeight, -1.0},
		{"zero runs", analysis.KeyRuns, 0},
		{"negative source", analysis.KeySource, -1},
		{"source beyond size", analysis.KeySource, 100},
		{"zero tolerance", analysis.KeyTolerance, 0.0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := analysis.NewConfig()
			c.Set(tc.key, tc.value)
			require.ErrorIs(t, c.Validate(), analysis.ErrInvalidConfig)
		})
	}
}

func TestNewLogger(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, analysis.NewLogger("debug", os.Stderr).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, analysis.NewLogger("bogus", os.Stderr).GetLevel())
	assert.Equal(t, zerolog.InfoLevel, analysis.NewLogger("", os.Stderr).GetLevel())

	c := analysis.NewConfig()
	c.Set(analysis.KeyLogLevel, "warn")
	assert.Equal(t, zerolog.WarnLevel, c.Logger(os.Stderr).GetLevel())
}
