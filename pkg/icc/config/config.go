/*
Copyright 2018 The pdfcpu Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads the transfer-function fitter's tuning from a
// YAML document, the way a pdfcpu-style configuration file is parsed
// and validated before it is handed to the rest of the program.
package config

import (
	"bytes"
	"io"
	"os"

	"github.com/mechiko/go-iccprof/pkg/icc"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

// rawConfig mirrors the on-disk YAML shape; Config is the validated,
// ready-to-use form handed to icc.Approximate.
type rawConfig struct {
	Samples       int     `yaml:"samples"`
	MaxIterations int     `yaml:"maxIterations"`
	Tolerance     float64 `yaml:"tolerance"`
}

// Config is a validated set of fitter tuning parameters.
type Config struct {
	Samples       int
	MaxIterations int
	Tolerance     float64
}

// Default returns the tuning icc.DefaultFitOptions falls back to.
func Default() Config {
	opts := icc.DefaultFitOptions()
	return Config{Samples: opts.Samples, MaxIterations: opts.MaxIterations, Tolerance: opts.Tolerance}
}

// FitOptions converts a Config into the icc package's fitter options.
func (c Config) FitOptions() icc.FitOptions {
	return icc.FitOptions{Samples: c.Samples, MaxIterations: c.MaxIterations, Tolerance: c.Tolerance}
}

// Load reads and validates a fitter configuration from r.
func Load(r io.Reader) (Config, error) {
	var raw rawConfig
	raw.Samples = Default().Samples
	raw.MaxIterations = Default().MaxIterations
	raw.Tolerance = Default().Tolerance

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		return Config{}, errors.Wrap(err, "config: read")
	}
	if err := yaml.Unmarshal(buf.Bytes(), &raw); err != nil {
		return Config{}, errors.Wrap(err, "config: unmarshal")
	}

	if raw.Samples < 2 {
		return Config{}, errors.Errorf("config: samples must be >= 2, got %d", raw.Samples)
	}
	if raw.MaxIterations < 1 {
		return Config{}, errors.Errorf("config: maxIterations must be >= 1, got %d", raw.MaxIterations)
	}
	if raw.Tolerance <= 0 {
		return Config{}, errors.Errorf("config: tolerance must be > 0, got %f", raw.Tolerance)
	}

	return Config{Samples: raw.Samples, MaxIterations: raw.MaxIterations, Tolerance: raw.Tolerance}, nil
}

// LoadFile reads and validates a fitter configuration from a YAML file
// on disk.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: open")
	}
	defer f.Close()
	return Load(f)
}
