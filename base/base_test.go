// SPDX-License-Identifier: MIT

package base_test

import (
	"testing"

	"github.com/katalvlaran/lscopy/base"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsBase covers the whole alphabet and a few outsiders.
func TestIsBase(t *testing.T) {
	for i := 0; i < len(base.Alphabet); i++ {
		assert.True(t, base.IsBase(base.Alphabet[i]), "alphabet byte %q", base.Alphabet[i])
	}
	for _, c := range []byte{'x', 'U', 'u', '-', '.', ' ', 0, 'R'} {
		assert.False(t, base.IsBase(c), "byte %q must be rejected", c)
	}
}

// TestIsWildcard accepts both cases of N only.
func TestIsWildcard(t *testing.T) {
	assert.True(t, base.IsWildcard('N'))
	assert.True(t, base.IsWildcard('n'))
	assert.False(t, base.IsWildcard('A'))
	assert.False(t, base.IsWildcard('x'))
	assert.True(t, base.IsWildcard(base.Wildcard))
}

// TestValidate checks that the last position is inspected and the position is reported.
func TestValidate(t *testing.T) {
	require.NoError(t, base.Validate([]byte("ACGTNacgtn")))
	require.NoError(t, base.Validate(nil))

	err := base.Validate([]byte("ACGx"))
	require.ErrorIs(t, err, base.ErrInvalidBase)
	assert.Contains(t, err.Error(), "position 3")

	err = base.Validate([]byte("xACG"))
	require.ErrorIs(t, err, base.ErrInvalidBase)
	assert.Contains(t, err.Error(), "position 0")
}
