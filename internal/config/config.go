// SPDX-License-Identifier: MIT

// Package config resolves lscopy settings: LSCOPY_* environment variables
// first, then command-line flags on top.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/katalvlaran/lscopy/forward"
	"github.com/sirupsen/logrus"
)

var (
	// ErrMissingPanel indicates no panel FASTA path was configured.
	ErrMissingPanel = errors.New("config: panel path is required")

	// ErrMissingQuery indicates neither a query file nor a literal query was given.
	ErrMissingQuery = errors.New("config: one of query path or query sequence is required")

	// ErrUnknownReadout indicates a readout name other than max or sum.
	ErrUnknownReadout = errors.New("config: unknown readout")
)

// Config holds everything one lscopy run needs.
type Config struct {
	PanelPath     string  `env:"LSCOPY_PANEL"`
	QueryPath     string  `env:"LSCOPY_QUERY"`
	QuerySeq      string  `env:"LSCOPY_QUERY_SEQ"`
	Mutation      float64 `env:"LSCOPY_MUTATION_PROB" envDefault:"0.01"`
	Recombination float64 `env:"LSCOPY_RECOMBINATION_PROB" envDefault:"0.01"`
	Readout       string  `env:"LSCOPY_READOUT" envDefault:"max"`
	Rescale       bool    `env:"LSCOPY_RESCALE"`
	Parallel      int     `env:"LSCOPY_PARALLEL"`
	FoldQueryCase bool    `env:"LSCOPY_FOLD_QUERY_CASE"`
	LogLevel      string  `env:"LSCOPY_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv loads environment defaults into cfg.
func ParseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// Load reads the environment, then parses args (without the program name)
// with the environment values as flag defaults, then validates.
func Load(name string, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&cfg.PanelPath, "panel", cfg.PanelPath, "FASTA file of reference haplotypes")
	fs.StringVar(&cfg.QueryPath, "query", cfg.QueryPath, "FASTA file of query sequences")
	fs.StringVar(&cfg.QuerySeq, "seq", cfg.QuerySeq, "single literal query sequence")
	fs.Float64Var(&cfg.Mutation, "mu", cfg.Mutation, "per-site mutation probability")
	fs.Float64Var(&cfg.Recombination, "rho", cfg.Recombination, "per-site recombination probability")
	fs.StringVar(&cfg.Readout, "readout", cfg.Readout, "final column reduction: max or sum")
	fs.BoolVar(&cfg.Rescale, "rescale", cfg.Rescale, "rescale columns to avoid underflow")
	fs.IntVar(&cfg.Parallel, "parallel", cfg.Parallel, "fill rows concurrently from this many haplotypes (0 = off)")
	fs.BoolVar(&cfg.FoldQueryCase, "fold-query-case", cfg.FoldQueryCase, "upper-case queries before scoring")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "logrus level")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks the fields Load cannot check by type alone.
// Probability ranges are left to the forward pass.
func (c Config) Validate() error {
	if c.PanelPath == "" {
		return ErrMissingPanel
	}
	if c.QueryPath == "" && c.QuerySeq == "" {
		return ErrMissingQuery
	}
	if _, err := forward.ParseReadout(c.Readout); err != nil {
		return fmt.Errorf("%w: %q", ErrUnknownReadout, c.Readout)
	}
	if c.Parallel < 0 {
		return fmt.Errorf("config: parallel must be >= 0, got %d", c.Parallel)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	return nil
}

// ForwardOptions translates the config into forward pass options.
// It assumes Validate has passed.
func (c Config) ForwardOptions(logger logrus.FieldLogger) []forward.Option {
	readout, _ := forward.ParseReadout(c.Readout)
	opts := []forward.Option{
		forward.WithReadout(readout),
		forward.WithMemoryMode(forward.RollingColumns),
	}
	if c.Rescale {
		opts = append(opts, forward.WithRescale())
	}
	if c.Parallel > 0 {
		opts = append(opts, forward.WithParallel(c.Parallel))
	}
	if logger != nil {
		opts = append(opts, forward.WithLogger(logger))
	}

	return opts
}

// Level returns the parsed log level, defaulting to Info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}

	return lvl
}
