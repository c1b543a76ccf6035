package config_test

import (
	"strings"
	"testing"

	"github.com/mechiko/go-iccprof/pkg/icc/config"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesDefaults(t *testing.T) {
	r := strings.NewReader("samples: 512\nmaxIterations: 10\ntolerance: 0.001\n")

	c, err := config.Load(r)

	require.NoError(t, err)
	require.Equal(t, 512, c.Samples)
	require.Equal(t, 10, c.MaxIterations)
	require.InDelta(t, 0.001, c.Tolerance, 1e-12)
}

func TestLoadFallsBackToDefaults(t *testing.T) {
	c, err := config.Load(strings.NewReader(""))

	require.NoError(t, err)
	require.Equal(t, config.Default(), c)
}

func TestLoadRejectsInvalidSamples(t *testing.T) {
	_, err := config.Load(strings.NewReader("samples: 1\n"))
	require.Error(t, err)
}

func TestLoadRejectsNonPositiveTolerance(t *testing.T) {
	_, err := config.Load(strings.NewReader("tolerance: 0\n"))
	require.Error(t, err)
}

func TestFitOptionsRoundTrips(t *testing.T) {
	c := config.Default()
	opts := c.FitOptions()

	require.Equal(t, c.Samples, opts.Samples)
	require.Equal(t, c.MaxIterations, opts.MaxIterations)
	require.InDelta(t, c.Tolerance, opts.Tolerance, 1e-12)
}
