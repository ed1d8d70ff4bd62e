// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lscopy/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateVecLen(t *testing.T) {
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.ErrorIs(t, matrix.ValidateVecLen(nil, 0), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateWidth(t *testing.T) {
	b, err := matrix.BasesFromStrings("ACG")
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateWidth(b, 3))
	require.ErrorIs(t, matrix.ValidateWidth(b, 2), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateWidth(b, 4), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateWidth(nil, 3), matrix.ErrNilMatrix)
}

func TestValidateUniformRows(t *testing.T) {
	w, err := matrix.ValidateUniformRows([][]byte{[]byte("AC"), []byte("GT")})
	require.NoError(t, err)
	require.Equal(t, 2, w)

	_, err = matrix.ValidateUniformRows([][]byte{[]byte("AC"), []byte("G")})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.ValidateUniformRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
