// SPDX-License-Identifier: MIT

package app_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/katalvlaran/lscopy/forward"
	"github.com/katalvlaran/lscopy/internal/app"
	"github.com/katalvlaran/lscopy/internal/config"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile stores content under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func baseConfig(t *testing.T) config.Config {
	return config.Config{
		PanelPath:     writeFile(t, "panel.fa", ">hap1\nACGT\n>hap2\nTTTT\n"),
		Mutation:      0.01,
		Recombination: 0.01,
		Readout:       "max",
		LogLevel:      "info",
	}
}

func TestRun_LiteralQuery(t *testing.T) {
	cfg := baseConfig(t)
	cfg.QuerySeq = "ACGT"
	logger, hook := test.NewNullLogger()

	var out bytes.Buffer
	require.NoError(t, app.Run(context.Background(), cfg, &out, logger))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.TrimSpace(app.Header), lines[0])

	fields := strings.Split(lines[1], "\t")
	require.Len(t, fields, 4)
	assert.Equal(t, app.LiteralQueryID, fields[0])
	assert.Equal(t, "hap1", fields[3])

	want, err := forward.Likelihood(mustPanel(t, "ACGT", "TTTT"), []byte("ACGT"), 0.01, 0.01)
	require.NoError(t, err)
	got, err := strconv.ParseFloat(fields[1], 64)
	require.NoError(t, err)
	assert.InEpsilon(t, want, got, 1e-9)

	assert.Equal(t, "done", hook.LastEntry().Message)
}

func TestRun_QueryFile(t *testing.T) {
	cfg := baseConfig(t)
	cfg.QueryPath = writeFile(t, "q.fa", ">q1\nTTTT\n>q2\nacgt\n")
	cfg.FoldQueryCase = true
	cfg.Readout = "sum"
	cfg.Rescale = true
	cfg.Parallel = 1
	logger, _ := test.NewNullLogger()

	var out bytes.Buffer
	require.NoError(t, app.Run(context.Background(), cfg, &out, logger))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[1], "q1\t"))
	assert.True(t, strings.HasSuffix(lines[1], "\thap2"))
	assert.True(t, strings.HasPrefix(lines[2], "q2\t"))
	assert.True(t, strings.HasSuffix(lines[2], "\thap1"), "folded query matches hap1")
}

func TestRun_Errors(t *testing.T) {
	logger, _ := test.NewNullLogger()
	var out bytes.Buffer

	cfg := baseConfig(t)
	err := app.Run(context.Background(), cfg, &out, logger)
	require.ErrorIs(t, err, config.ErrMissingQuery)

	cfg.QuerySeq = "ACGX"
	err = app.Run(context.Background(), cfg, &out, logger)
	require.ErrorIs(t, err, forward.ErrInvalidBase)
	assert.Contains(t, err.Error(), `score query "seq"`)

	cfg.QuerySeq = "ACGT"
	cfg.Mutation = 2
	err = app.Run(context.Background(), cfg, &out, logger)
	require.ErrorIs(t, err, forward.ErrInvalidProbability)

	cfg = baseConfig(t)
	cfg.QuerySeq = "ACGT"
	cfg.PanelPath = filepath.Join(t.TempDir(), "missing.fa")
	err = app.Run(context.Background(), cfg, &out, logger)
	require.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "load panel")
}

func TestRun_Canceled(t *testing.T) {
	cfg := baseConfig(t)
	cfg.QuerySeq = "ACGT"
	logger, _ := test.NewNullLogger()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	err := app.Run(ctx, cfg, &out, logger)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, app.Header, out.String(), "no query scored")
}

func TestRun_MixedQueryLengths(t *testing.T) {
	cfg := baseConfig(t)
	cfg.QueryPath = writeFile(t, "q.fa", ">long\nACGTAA\n>short\nTT\n>exact\nACGT\n")
	logger, _ := test.NewNullLogger()

	var out bytes.Buffer
	require.NoError(t, app.Run(context.Background(), cfg, &out, logger))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[1], "\thap1"), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], "\thap2"), lines[2])
	assert.True(t, strings.HasSuffix(lines[3], "\thap1"), lines[3])

	// The longer query pads the panel with wildcards, which emit 1.
	want, err := forward.Likelihood(mustPanel(t, "ACGTNN", "TTTTNN"), []byte("ACGTAA"), 0.01, 0.01)
	require.NoError(t, err)
	got, err := strconv.ParseFloat(strings.Split(lines[1], "\t")[1], 64)
	require.NoError(t, err)
	assert.InEpsilon(t, want, got, 1e-9)
}
