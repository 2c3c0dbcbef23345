// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"dario.cat/mergo"
	"github.com/katalvlaran/graphon/internal/ioformat"
	"github.com/katalvlaran/graphon/usvt"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Decomposer names accepted by --decomposer.
const (
	decomposerGonum  = "gonum"
	decomposerJacobi = "jacobi"
)

// Config is the resolved run configuration. Eta is a pointer so an explicit
// zero survives merging and is rejected by the estimator.
type Config struct {
	Eta         *float64 `yaml:"eta"`
	Decomposer  string   `yaml:"decomposer"`
	Format      string   `yaml:"format"`
	InputFormat string   `yaml:"input-format"`
	Output      string   `yaml:"output"`
}

func defaultConfig() Config {
	eta := usvt.DefaultEta
	return Config{
		Eta:         &eta,
		Decomposer:  decomposerGonum,
		Format:      ioformat.FormatJSON,
		InputFormat: ioformat.FormatYAML,
	}
}

// loadConfigFile decodes a YAML config file. An empty path yields a zero Config.
func loadConfigFile(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// resolveConfig layers explicitly set flags over the config file over defaults.
func resolveConfig(fs *pflag.FlagSet, flags *Config, path string) (Config, error) {
	var cfg Config
	if fs.Changed("eta") {
		cfg.Eta = flags.Eta
	}
	if fs.Changed("decomposer") {
		cfg.Decomposer = flags.Decomposer
	}
	if fs.Changed("format") {
		cfg.Format = flags.Format
	}
	if fs.Changed("input-format") {
		cfg.InputFormat = flags.InputFormat
	}
	if fs.Changed("output") {
		cfg.Output = flags.Output
	}

	file, err := loadConfigFile(path)
	if err != nil {
		return cfg, err
	}
	if err := mergo.Merge(&cfg, file, mergo.WithoutDereference); err != nil {
		return cfg, err
	}
	if err := mergo.Merge(&cfg, defaultConfig(), mergo.WithoutDereference); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func (c Config) decomposer() (usvt.Decomposer, error) {
	switch c.Decomposer {
	case decomposerGonum:
		return usvt.GonumSVD{}, nil
	case decomposerJacobi:
		return usvt.JacobiSVD{}, nil
	default:
		return nil, fmt.Errorf("unknown decomposer %q (want %s or %s)", c.Decomposer, decomposerGonum, decomposerJacobi)
	}
}
