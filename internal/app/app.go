// SPDX-License-Identifier: MIT

// Package app runs lscopy: it loads the panel and the queries named by a
// config.Config, scores every query and writes one TSV line per query.
package app

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/lscopy/forward"
	"github.com/katalvlaran/lscopy/internal/config"
	"github.com/katalvlaran/lscopy/panel"
	"github.com/sirupsen/logrus"
)

// LiteralQueryID names the query given with -seq.
const LiteralQueryID = "seq"

// Header is the first line written by Run.
const Header = "query_id\tlikelihood\tlog_likelihood\tbest_haplotype_id\n"

// Run scores every configured query against the configured panel.
// Cancellation is checked between queries; a pass in flight completes.
func Run(ctx context.Context, cfg config.Config, out io.Writer, logger *logrus.Logger) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	haps, err := panel.LoadFASTA(cfg.PanelPath)
	if err != nil {
		return fmt.Errorf("load panel %q: %w", cfg.PanelPath, err)
	}
	logger.WithFields(logrus.Fields{
		"panel":      cfg.PanelPath,
		"haplotypes": len(haps),
	}).Info("panel loaded")

	queries, err := loadQueries(cfg)
	if err != nil {
		return err
	}

	var encOpts []panel.EncodeOption
	if cfg.FoldQueryCase {
		encOpts = append(encOpts, panel.WithQueryCaseFolding())
	}
	pnl, err := panel.NewPanel(panel.Sequences(haps))
	if err != nil {
		return fmt.Errorf("load panel %q: %w", cfg.PanelPath, err)
	}
	params := forward.Params{Mutation: cfg.Mutation, Recombination: cfg.Recombination}

	if _, err = io.WriteString(out, Header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, q := range queries {
		if err = ctx.Err(); err != nil {
			return err
		}

		qlog := logger.WithField("query", q.ID)
		h, qb, encErr := pnl.Encode(q.Seq, encOpts...)
		if encErr != nil {
			return fmt.Errorf("encode query %q: %w", q.ID, encErr)
		}
		res, runErr := forward.Run(h, qb, params, cfg.ForwardOptions(qlog)...)
		if runErr != nil {
			return fmt.Errorf("score query %q: %w", q.ID, runErr)
		}
		if _, err = fmt.Fprintf(out, "%s\t%g\t%g\t%s\n", q.ID, res.Likelihood, res.LogLikelihood, haps[res.Best].ID); err != nil {
			return fmt.Errorf("write result: %w", err)
		}
	}
	logger.WithField("queries", len(queries)).Info("done")

	return nil
}

// loadQueries returns the literal query when set, the query FASTA otherwise.
func loadQueries(cfg config.Config) ([]panel.Record, error) {
	if cfg.QuerySeq != "" {
		return []panel.Record{{ID: LiteralQueryID, Seq: cfg.QuerySeq}}, nil
	}
	recs, err := panel.LoadFASTA(cfg.QueryPath)
	if err != nil {
		return nil, fmt.Errorf("load queries %q: %w", cfg.QueryPath, err)
	}

	return recs, nil
}
