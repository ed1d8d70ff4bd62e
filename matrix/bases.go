// SPDX-License-Identifier: MIT

// Package matrix - Bases: the haplotype panel as a row-major byte grid.
//
// Purpose:
//   - Hold H_count haplotypes of identical width L in one flat buffer.
//   - Make ragged input unrepresentable: NewBases rejects rows of unequal
//     length, so a kernel that trusts Cols() can never read past a row.
//
// The grid stores bytes verbatim; alphabet checks belong to package base.

package matrix

import (
	"fmt"
	"strings"
)

// Bases is an immutable r×c grid of base bytes (row = haplotype, column = position).
type Bases struct {
	r, c int
	data []byte // len == r*c, row-major
}

// basesErrorf wraps an error with Bases method context.
func basesErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Bases.%s(%d,%d): %w", method, row, col, err)
}

// NewBases copies rows into a new grid.
// MAIN DESCRIPTION:
//   - Build the panel matrix from already aligned rows.
//
// Implementation:
//   - Stage 1: ValidateUniformRows (non-empty, equal widths).
//   - Stage 2: copy each row into the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or rows are empty.
//   - ErrDimensionMismatch when a row's width differs from row 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// Notes:
//   - Callers holding unaligned text should pad first (package panel).
func NewBases(rows [][]byte) (*Bases, error) {
	width, err := ValidateUniformRows(rows)
	if err != nil {
		return nil, err
	}
	data := make([]byte, len(rows)*width)
	for i, row := range rows {
		copy(data[i*width:], row)
	}

	return &Bases{r: len(rows), c: width, data: data}, nil
}

// BasesFromStrings is NewBases over string rows.
func BasesFromStrings(rows ...string) (*Bases, error) {
	raw := make([][]byte, len(rows))
	for i, s := range rows {
		raw[i] = []byte(s)
	}

	return NewBases(raw)
}

// Rows returns the number of haplotypes.
func (b *Bases) Rows() int { return b.r }

// Cols returns the number of positions.
func (b *Bases) Cols() int { return b.c }

// RowView returns row i sharing the grid storage.
// The slice is read-only by contract; Bases is immutable after construction.
// Complexity: O(1).
func (b *Bases) RowView(i int) ([]byte, error) {
	if i < 0 || i >= b.r {
		return nil, basesErrorf(ctxRow, i, 0, ErrOutOfRange)
	}

	return b.data[i*b.c : (i+1)*b.c : (i+1)*b.c], nil
}

// String renders one haplotype per line.
func (b *Bases) String() string {
	var sb strings.Builder
	sb.Grow(b.r * (b.c + 1))
	for i := 0; i < b.r; i++ {
		sb.Write(b.data[i*b.c : (i+1)*b.c])
		sb.WriteByte('\n')
	}

	return sb.String()
}
