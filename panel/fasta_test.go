// SPDX-License-Identifier: MIT

package panel_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lscopy/panel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const panelFASTA = `>hap1 first haplotype
ACGT
AC
>hap2
acgtnn
>hap3
TTTT
`

func TestReadFASTA(t *testing.T) {
	recs, err := panel.ReadFASTA(strings.NewReader(panelFASTA))
	require.NoError(t, err)
	require.Len(t, recs, 3)

	assert.Equal(t, panel.Record{ID: "hap1", Seq: "ACGTAC"}, recs[0], "lines joined, description dropped")
	assert.Equal(t, "acgtnn", recs[1].Seq, "case kept")
	assert.Equal(t, []string{"hap1", "hap2", "hap3"}, panel.IDs(recs))
	assert.Equal(t, []string{"ACGTAC", "acgtnn", "TTTT"}, panel.Sequences(recs))
}

func TestReadFASTA_Empty(t *testing.T) {
	_, err := panel.ReadFASTA(strings.NewReader(""))
	require.ErrorIs(t, err, panel.ErrNoRecords)
}

func TestLoadFASTA(t *testing.T) {
	path := filepath.Join(t.TempDir(), "panel.fa")
	require.NoError(t, os.WriteFile(path, []byte(panelFASTA), 0o600))

	recs, err := panel.LoadFASTA(path)
	require.NoError(t, err)
	require.Len(t, recs, 3)

	// The loaded panel feeds straight into the text entry point.
	l, err := panel.Likelihood(panel.Sequences(recs), "ACGTAC", 0.01, 0.01)
	require.NoError(t, err)
	assert.Greater(t, l, 0.0)

	_, err = panel.LoadFASTA(filepath.Join(t.TempDir(), "missing.fa"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
