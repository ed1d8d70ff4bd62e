// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for shape checks.
//  - Keep kernels minimal by delegating length/width checks here.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	// Disallow nil vectors to avoid subtle bugs in column routines.
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen: len %d, want %d", len(x), n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateWidth ensures a sequence of length n lines up with the columns of b.
//
// Inputs: a non-nil *Bases and the candidate length.
// Errors: ErrNilMatrix if b is nil, ErrDimensionMismatch on any difference.
// Complexity: O(1).
// AI-Hints: call before aligning a query to a panel; never truncate instead.
func ValidateWidth(b *Bases, n int) error {
	if b == nil {
		return validatorErrorf("ValidateWidth", ErrNilMatrix)
	}
	if b.c != n {
		return validatorErrorf(fmt.Sprintf("ValidateWidth: panel width %d, sequence length %d", b.c, n), ErrDimensionMismatch)
	}

	return nil
}

// ValidateUniformRows ensures every row has the same, positive length.
//
// Returns the common width on success.
// Errors: ErrInvalidDimensions for no rows or empty rows,
// ErrDimensionMismatch naming the first ragged row.
// Complexity: O(len(rows)).
func ValidateUniformRows(rows [][]byte) (int, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return 0, validatorErrorf("ValidateUniformRows", ErrInvalidDimensions)
	}
	width := len(rows[0])
	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != width {
			return 0, validatorErrorf(fmt.Sprintf("ValidateUniformRows: row %d has %d columns, want %d", i, len(rows[i]), width), ErrDimensionMismatch)
		}
	}

	return width, nil
}
