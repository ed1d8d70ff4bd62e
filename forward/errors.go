// SPDX-License-Identifier: MIT

package forward

import (
	"errors"

	"github.com/katalvlaran/lscopy/base"
	"github.com/katalvlaran/lscopy/matrix"
)

var (
	// ErrEmptyInput indicates a nil panel or an empty query.
	ErrEmptyInput = errors.New("forward: panel and query must be non-empty")

	// ErrInvalidProbability indicates a mutation or recombination probability
	// that is NaN or outside [0,1].
	ErrInvalidProbability = errors.New("forward: probability out of range")

	// ErrInvalidBase is returned (wrapped with "query" or "haplotype <i>" and the
	// position) when a byte outside the base alphabet is found.
	ErrInvalidBase = base.ErrInvalidBase

	// ErrDimensionMismatch is returned when the query length differs from the
	// panel width. Nothing is truncated or padded at this level.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
)
