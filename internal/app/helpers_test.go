// SPDX-License-Identifier: MIT

package app_test

import (
	"testing"

	"github.com/katalvlaran/lscopy/matrix"
	"github.com/stretchr/testify/require"
)

func mustPanel(t *testing.T, rows ...string) *matrix.Bases {
	t.Helper()
	h, err := matrix.BasesFromStrings(rows...)
	require.NoError(t, err)

	return h
}
