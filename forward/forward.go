// SPDX-License-Identifier: MIT

package forward

import (
	"fmt"
	"math"

	"github.com/exascience/pargo/parallel"
	"github.com/katalvlaran/lscopy/base"
	"github.com/katalvlaran/lscopy/matrix"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
)

// Forward pass - Li–Stephens copying model
//
// Algorithm Outline:
//  1. Let n = H_count (panel rows), L = panel width = len(q).
//  2. Column j = 0: P[i][0] = 1 · e(i,0)   (flat, unnormalised prior).
//  3. Column j > 0:
//     s      = Σ_k P[k][j-1]
//     t(i)   = (1-ρ)·P[i][j-1] + (ρ/n)·s
//     P[i][j] = t(i) · e(i,j)
//  4. Emission e(i,j):
//     1      if q[j] or H[i][j] is N/n
//     1-μ    if q[j] == H[i][j] (byte equality, case-sensitive)
//     μ/3    otherwise
//  5. Readout over the final column: max (default) or sum.
//
// s is the same for every row of a column, so it is computed once per column
// and the pass costs O(n·L) rather than O(n²·L).
//
// Errors:
//   - ErrEmptyInput         - nil panel or empty query.
//   - ErrDimensionMismatch  - len(q) != panel width.
//   - ErrInvalidBase        - byte outside the alphabet (query or haplotype).
//   - ErrInvalidProbability - μ or ρ outside [0,1] (unless WithoutParamCheck).

// Likelihood runs the forward pass and returns the readout value.
//
// Example:
//
//	h, _ := matrix.BasesFromStrings("AC")
//	l, err := Likelihood(h, []byte("AC"), 0.01, 0.01) // ≈ 0.9801
func Likelihood(h *matrix.Bases, q []byte, mutation, recombination float64, opts ...Option) (float64, error) {
	res, err := Run(h, q, Params{Mutation: mutation, Recombination: recombination}, opts...)
	if err != nil {
		return 0, err
	}

	return res.Likelihood, nil
}

// Run validates the inputs, then fills the forward matrix column by column.
// Validation is complete before the first allocation of P.
func Run(h *matrix.Bases, q []byte, p Params, opts ...Option) (*Result, error) {
	o := gatherOptions(opts...)
	if err := validate(h, q, p, o); err != nil {
		return nil, err
	}

	return run(h, q, p, o)
}

// validate performs every eager check in a fixed order:
// emptiness → width → query bases → haplotype bases → parameters.
func validate(h *matrix.Bases, q []byte, p Params, o Options) error {
	if h == nil || len(q) == 0 {
		return ErrEmptyInput
	}
	if err := matrix.ValidateWidth(h, len(q)); err != nil {
		return fmt.Errorf("forward: %w", err)
	}
	if err := base.Validate(q); err != nil {
		return fmt.Errorf("forward: query: %w", err)
	}
	for i := 0; i < h.Rows(); i++ {
		row, err := h.RowView(i)
		if err != nil {
			return fmt.Errorf("forward: %w", err)
		}
		if err = base.Validate(row); err != nil {
			return fmt.Errorf("forward: haplotype %d: %w", i, err)
		}
	}
	if o.checkParams {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("forward: %w", err)
		}
	}

	return nil
}

// emission returns the probability of observing q given the copied base h.
func emission(q, h byte, match, mismatch float64) float64 {
	if base.IsWildcard(q) || base.IsWildcard(h) {
		return 1.0
	}
	if q == h {
		return match
	}

	return mismatch
}

// run is the kernel; inputs are already validated.
func run(h *matrix.Bases, q []byte, p Params, o Options) (*Result, error) {
	hapCount := h.Rows() // mixing divisor: number of haplotypes, never r*c
	width := h.Cols()

	stay := 1 - p.Recombination
	jump := p.Recombination / float64(hapCount)
	match := 1 - p.Mutation
	mismatch := p.Mutation / 3.0

	// Row views are shared with h; the kernel only reads them.
	rows := make([][]byte, hapCount)
	for i := range rows {
		rows[i], _ = h.RowView(i)
	}

	var (
		pm  *matrix.Dense
		err error
	)
	if o.memory == FullMatrix {
		policy := matrix.WithValidateNaNInf()
		if !o.checkParams {
			policy = matrix.WithNoValidateNaNInf()
		}
		if pm, err = matrix.NewDense(hapCount, width, policy); err != nil {
			return nil, fmt.Errorf("forward: allocate P: %w", err)
		}
	}

	var logScales []float64
	if o.rescale {
		logScales = make([]float64, width)
	}

	log := o.logger
	if log != nil {
		log.WithFields(logrus.Fields{
			"haplotypes": hapCount,
			"positions":  width,
			"readout":    o.readout.String(),
			"rescale":    o.rescale,
		}).Debug("forward pass started")
	}

	parallelRows := o.parallelMin > 0 && hapCount >= o.parallelMin

	prev := make([]float64, hapCount)
	cur := make([]float64, hapCount)
	var (
		j   int
		mix float64
	)
	fill := func(lo, hi int) {
		qj := q[j]
		for i := lo; i < hi; i++ {
			transition := 1.0
			if j > 0 {
				transition = stay*prev[i] + mix
			}
			cur[i] = transition * emission(qj, rows[i][j], match, mismatch)
		}
	}

	for j = 0; j < width; j++ {
		if j > 0 {
			mix = jump * floats.Sum(prev)
		}
		if parallelRows {
			parallel.Range(0, hapCount, 0, fill)
		} else {
			fill(0, hapCount)
		}

		if o.rescale {
			if c := floats.Max(cur); c > 0 {
				floats.Scale(1/c, cur)
				logScales[j] = math.Log(c)
			} else if log != nil {
				log.WithField("column", j).Warn("forward column is all zero")
			}
		}
		if pm != nil {
			if err = pm.SetCol(j, cur); err != nil {
				return nil, fmt.Errorf("forward: column %d: %w", j, err)
			}
		}
		prev, cur = cur, prev
	}

	// prev now holds the final column.
	best := floats.MaxIdx(prev)
	value := prev[best]
	if o.readout == ReadoutSum {
		value = floats.Sum(prev)
	}

	res := &Result{
		Likelihood:    value,
		LogLikelihood: math.Log(value),
		Best:          best,
		Matrix:        pm,
		LogScales:     logScales,
	}
	if o.rescale {
		res.LogLikelihood += floats.Sum(logScales)
		res.Likelihood = math.Exp(res.LogLikelihood)
	}

	if log != nil {
		entry := log.WithFields(logrus.Fields{
			"likelihood":     res.Likelihood,
			"log_likelihood": res.LogLikelihood,
			"best":           best,
		})
		if res.Likelihood == 0 && !math.IsInf(res.LogLikelihood, -1) {
			entry.Warn("likelihood underflowed; use LogLikelihood")
		} else {
			entry.Debug("forward pass finished")
		}
	}

	return res, nil
}
