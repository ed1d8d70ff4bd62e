// SPDX-License-Identifier: MIT

// Command lscopy scores query sequences against a haplotype panel with the
// Li–Stephens forward pass.
//
//	lscopy -panel panel.fa (-query q.fa | -seq ACGT) [-mu 0.01] [-rho 0.01]
//	       [-readout max|sum] [-rescale] [-parallel N] [-fold-query-case]
//	       [-log-level info]
//
// Every flag can also be set with its LSCOPY_* environment variable.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/katalvlaran/lscopy/internal/app"
	"github.com/katalvlaran/lscopy/internal/config"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cfg, err := config.Load(os.Args[0], os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		logger.WithError(err).Error("invalid configuration")
		os.Exit(2)
	}
	logger.SetLevel(cfg.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.WithError(err).Error("lscopy failed")
		stop()
		os.Exit(1)
	}
}
