// SPDX-License-Identifier: MIT

package base

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet lists every accepted base, lower case first.
const Alphabet = "acgtnACGTN"

// Wildcard is the base used to pad sequences; it matches anything.
const Wildcard byte = 'N'

// ErrInvalidBase indicates a byte outside Alphabet.
var ErrInvalidBase = errors.New("base: invalid base")

// IsBase reports whether c belongs to Alphabet.
// Complexity: O(len(Alphabet)).
func IsBase(c byte) bool {
	return strings.IndexByte(Alphabet, c) >= 0
}

// IsWildcard reports whether c is N or n.
func IsWildcard(c byte) bool {
	return c == 'N' || c == 'n'
}

// Validate checks every position of seq, the last one included.
// The first offending byte is reported with its 0-based position,
// wrapped around ErrInvalidBase.
// Complexity: O(len(seq)).
func Validate(seq []byte) error {
	for i, c := range seq {
		if !IsBase(c) {
			return fmt.Errorf("%q at position %d: %w", c, i, ErrInvalidBase)
		}
	}

	return nil
}
