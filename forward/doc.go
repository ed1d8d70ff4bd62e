// SPDX-License-Identifier: MIT

// Package forward computes Li–Stephens copying-model likelihoods with the
// forward dynamic program.
//
// 🚀 What is the copying model?
//
//	A test haplotype is explained as a mosaic of reference haplotypes.
//	Walking the positions left to right, the copied haplotype either stays
//	the same (probability 1−ρ) or jumps to one drawn uniformly from the panel
//	(probability ρ). At each position the copied base is emitted unchanged
//	with probability 1−μ, or replaced by one of the three other bases.
//	N (or n) on either side matches anything.
//
// ✨ Key features:
//   - full-matrix mode: the H_count×L forward matrix P is returned for inspection
//   - rolling mode: only two column buffers, O(H_count) memory
//   - optional per-column rescaling for long sequences, tracked in log space
//   - opt-in row-parallel column fill (columns stay strictly ordered)
//   - eager validation: invalid bases, misaligned widths and out-of-range
//     probabilities fail before any DP work
//
// ⚙️ Usage:
//
//	h, _ := matrix.BasesFromStrings("ACGT", "ACCT")
//	l, err := forward.Likelihood(h, []byte("ACGT"), 0.01, 0.01)
//
//	res, err := forward.Run(h, q, forward.Params{Mutation: 0.01, Recombination: 0.01},
//		forward.WithRescale(), forward.WithReadout(forward.ReadoutSum))
//
// Readout:
//
//	The default readout is the MAXIMUM over haplotypes of the final forward
//	value: the best-supported single-haplotype mass, not a normalised
//	likelihood. ReadoutSum returns the sum over the final column instead
//	(the marginal under a flat, unnormalised prior). The two differ in
//	statistical meaning; pick deliberately.
//
// Performance:
//
//   - Time:   O(H_count·L) (the mixing sum is shared by every row of a column)
//   - Memory: O(H_count·L) (FullMatrix) or O(H_count) (RollingColumns)
package forward
