// SPDX-License-Identifier: MIT

package panel

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lscopy/base"
	"github.com/katalvlaran/lscopy/forward"
	"github.com/katalvlaran/lscopy/matrix"
)

// ErrEmptyPanel is returned when no haplotypes are given.
var ErrEmptyPanel = errors.New("panel: no haplotypes")

// EncodeOption configures Encode.
type EncodeOption func(*encodeOptions)

type encodeOptions struct {
	foldQuery bool
}

// WithQueryCaseFolding upper-cases the query as well as the panel.
func WithQueryCaseFolding() EncodeOption {
	return func(o *encodeOptions) { o.foldQuery = true }
}

// Panel is a set of haplotypes folded once and reused across queries.
// It is immutable after NewPanel and safe for concurrent Encode calls.
type Panel struct {
	rows  [][]byte      // upper-cased, unpadded
	width int           // longest haplotype
	bases *matrix.Bases // rows padded to width; nil when width == 0
}

// NewPanel upper-cases every haplotype (ASCII only, byte for byte) and packs
// them padded to the longest one.
//
// Errors: ErrEmptyPanel.
// Complexity: O(H_count·L) time and space.
func NewPanel(haplotypes []string) (*Panel, error) {
	if len(haplotypes) == 0 {
		return nil, ErrEmptyPanel
	}
	p := &Panel{rows: make([][]byte, len(haplotypes))}
	for i, h := range haplotypes {
		p.rows[i] = asciiUpper(h)
		p.width = max(p.width, len(h))
	}
	if p.width > 0 {
		bases, err := p.padded(p.width)
		if err != nil {
			return nil, err
		}
		p.bases = bases
	}

	return p, nil
}

// Len returns the number of haplotypes.
func (p *Panel) Len() int { return len(p.rows) }

// Width returns the length of the longest haplotype.
func (p *Panel) Width() int { return p.width }

// Encode aligns query with the panel.
//
// Implementation:
//   - Stage 1: L = max(panel width, len(query)).
//   - Stage 2: the packed panel is reused when L equals its width; a longer
//     query gets a copy of the panel padded with 'N' to L.
//   - Stage 3: the query is right-padded with 'N'; its case is kept unless
//     WithQueryCaseFolding is set.
//
// Alphabet checks are left to the forward pass.
//
// Errors: forward.ErrEmptyInput when the panel and the query are all empty.
// Complexity: O(L) when the panel is reused, O(H_count·L) otherwise.
func (p *Panel) Encode(query string, opts ...EncodeOption) (*matrix.Bases, []byte, error) {
	var o encodeOptions
	for _, set := range opts {
		set(&o)
	}

	width := max(p.width, len(query))
	if width == 0 {
		return nil, nil, fmt.Errorf("panel: %w", forward.ErrEmptyInput)
	}

	h := p.bases
	if width > p.width {
		var err error
		if h, err = p.padded(width); err != nil {
			return nil, nil, err
		}
	}

	var q []byte
	if o.foldQuery {
		q = asciiUpper(query)
	} else {
		q = []byte(query)
	}

	return h, pad(q, width), nil
}

// padded packs the folded rows right-filled to width.
func (p *Panel) padded(width int) (*matrix.Bases, error) {
	rows := make([][]byte, len(p.rows))
	for i, r := range p.rows {
		rows[i] = pad(r, width)
	}
	h, err := matrix.NewBases(rows)
	if err != nil {
		return nil, fmt.Errorf("panel: %w", err)
	}

	return h, nil
}

// Encode aligns text sequences to a common width. It is NewPanel followed
// by Panel.Encode; use a Panel directly when scoring many queries.
//
// Errors: ErrEmptyPanel, forward.ErrEmptyInput when every sequence is empty.
// Complexity: O(H_count·L) time and space.
func Encode(haplotypes []string, query string, opts ...EncodeOption) (*matrix.Bases, []byte, error) {
	p, err := NewPanel(haplotypes)
	if err != nil {
		return nil, nil, err
	}

	return p.Encode(query, opts...)
}

// asciiUpper copies s with a-z mapped to A-Z. Other bytes, including
// non-ASCII ones, are kept as they are so lengths never change.
func asciiUpper(s string) []byte {
	out := []byte(s)
	for i, c := range out {
		if 'a' <= c && c <= 'z' {
			out[i] = c - ('a' - 'A')
		}
	}

	return out
}

// pad returns a new buffer holding seq right-filled with the wildcard to width.
func pad(seq []byte, width int) []byte {
	out := make([]byte, width)
	n := copy(out, seq)
	for i := n; i < width; i++ {
		out[i] = base.Wildcard
	}

	return out
}

// Likelihood encodes the text inputs and runs forward.Likelihood on them.
// Pass forward options (readout, rescale, ...) through opts.
//
// The query keeps its case here. To fold it, call Encode with
// WithQueryCaseFolding and pass the result to forward.Likelihood.
func Likelihood(haplotypes []string, query string, mutation, recombination float64, opts ...forward.Option) (float64, error) {
	h, q, err := Encode(haplotypes, query)
	if err != nil {
		return 0, err
	}

	return forward.Likelihood(h, q, mutation, recombination, opts...)
}
