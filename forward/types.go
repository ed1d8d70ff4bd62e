// SPDX-License-Identifier: MIT

package forward

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lscopy/matrix"
	"github.com/sirupsen/logrus"
)

// Params holds the per-site model probabilities.
type Params struct {
	// Mutation (μ) is the probability of emitting a base other than the copied one.
	Mutation float64
	// Recombination (ρ) is the probability of switching the copied haplotype.
	Recombination float64
}

// Validate returns ErrInvalidProbability (naming the field) when either
// probability is NaN or outside [0,1].
func (p Params) Validate() error {
	if !isProbability(p.Mutation) {
		return fmt.Errorf("mutation %v: %w", p.Mutation, ErrInvalidProbability)
	}
	if !isProbability(p.Recombination) {
		return fmt.Errorf("recombination %v: %w", p.Recombination, ErrInvalidProbability)
	}

	return nil
}

func isProbability(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}

// Readout selects how the final column is reduced to one number.
type Readout int

const (
	// ReadoutMax returns the largest final forward value over haplotypes.
	ReadoutMax Readout = iota

	// ReadoutSum returns the sum of the final column.
	ReadoutSum
)

// String implements fmt.Stringer.
func (r Readout) String() string {
	switch r {
	case ReadoutMax:
		return "max"
	case ReadoutSum:
		return "sum"
	default:
		return fmt.Sprintf("Readout(%d)", int(r))
	}
}

// ParseReadout maps "max" / "sum" to a Readout.
func ParseReadout(s string) (Readout, error) {
	switch s {
	case "max":
		return ReadoutMax, nil
	case "sum":
		return ReadoutSum, nil
	default:
		return 0, fmt.Errorf("forward: unknown readout %q (want max or sum)", s)
	}
}

// MemoryMode controls how the forward pass stores P.
//
//   - FullMatrix     - keep the whole H_count×L matrix; Result.Matrix is set.
//     Memory: O(H_count·L).
//
//   - RollingColumns - keep only the previous and current columns.
//     Memory: O(H_count). Result.Matrix is nil.
type MemoryMode int

const (
	// FullMatrix stores every column.
	FullMatrix MemoryMode = iota

	// RollingColumns stores two columns only.
	RollingColumns
)

// Result is the outcome of one forward pass.
type Result struct {
	// Likelihood is the readout on the original (unscaled) scale.
	// It may underflow to 0 for long sequences; see LogLikelihood.
	Likelihood float64

	// LogLikelihood is ln(Likelihood). With rescaling it is assembled from the
	// per-column factors and stays finite where Likelihood underflows.
	LogLikelihood float64

	// Best is the haplotype row with the largest final forward value
	// (lowest index on ties).
	Best int

	// Matrix is P in FullMatrix mode, nil otherwise. With rescaling, column j
	// holds P[·][j] / exp(sum of LogScales[0..j]).
	Matrix *matrix.Dense

	// LogScales holds ln of the factor each column was divided by.
	// Nil unless rescaling was enabled; 0 for columns left unscaled.
	LogScales []float64
}

// Internal panic messages for option constructors.
const (
	panicReadoutInvalid  = "forward: WithReadout: unknown readout"
	panicMemoryInvalid   = "forward: WithMemoryMode: unknown memory mode"
	panicParallelInvalid = "forward: WithParallel: minRows must be >= 1"
)

// Option configures a forward pass.
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options is the resolved configuration. Fields are unexported; use Option setters.
type Options struct {
	readout     Readout
	memory      MemoryMode
	rescale     bool
	parallelMin int // 0 = sequential
	checkParams bool
	logger      logrus.FieldLogger // nil = silent
}

// WithReadout selects the final reduction (default ReadoutMax).
func WithReadout(r Readout) Option {
	if r != ReadoutMax && r != ReadoutSum {
		panic(panicReadoutInvalid)
	}

	return func(o *Options) { o.readout = r }
}

// WithMemoryMode selects FullMatrix (default) or RollingColumns.
func WithMemoryMode(m MemoryMode) Option {
	if m != FullMatrix && m != RollingColumns {
		panic(panicMemoryInvalid)
	}

	return func(o *Options) { o.memory = m }
}

// WithRescale divides every column by its maximum and tracks the factors in
// log space. The relative order of rows within a column is unchanged.
func WithRescale() Option {
	return func(o *Options) { o.rescale = true }
}

// WithParallel fills the rows of each column concurrently once the panel has
// at least minRows haplotypes. Columns are still computed in order.
func WithParallel(minRows int) Option {
	if minRows < 1 {
		panic(panicParallelInvalid)
	}

	return func(o *Options) { o.parallelMin = minRows }
}

// WithoutParamCheck skips the [0,1] range check on μ and ρ. Out-of-range
// values then flow into the recurrence unchanged, as in the classic
// formulation, and may yield values outside [0,1].
func WithoutParamCheck() Option {
	return func(o *Options) { o.checkParams = false }
}

// WithLogger enables debug tracing of a pass.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *Options) { o.logger = l }
}

// gatherOptions resolves defaults then applies user options in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		readout:     ReadoutMax,
		memory:      FullMatrix,
		checkParams: true,
	}
	for _, set := range user {
		set(&o)
	}

	return o
}
