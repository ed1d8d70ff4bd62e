// SPDX-License-Identifier: MIT

// Package panel turns text into the inputs of the forward pass.
//
// 📦 What is here:
//   - Encode        - upper-cases haplotypes, pads every sequence with 'N' to a
//     common width L and packs the panel into a *matrix.Bases.
//   - Panel         - a panel folded once and reused by Panel.Encode across
//     many queries.
//   - Likelihood    - Encode followed by forward.Likelihood.
//   - ReadFASTA     - parses a FASTA stream into Records (github.com/biogo/biogo).
//   - LoadFASTA     - ReadFASTA over a file path.
//
// ⚙️ Padding:
//
//	L = max(len(h) for h in haplotypes, len(query)).
//	Shorter sequences are right-padded with base.Wildcard ('N'), which matches
//	anything, so padding never changes which bases disagree. Nothing is ever
//	truncated.
//
// ⚠️ Case:
//
//	Haplotypes are always upper-cased, a-z only and byte by byte, so lengths
//	never change. The query keeps its case unless WithQueryCaseFolding is
//	given. An unfolded lower-case query base never equals an upper-case panel
//	base (n still acts as a wildcard).
//
// Usage:
//
//	recs, err := panel.LoadFASTA("panel.fa")
//	l, err := panel.Likelihood(panel.Sequences(recs), "ACGTN", 0.01, 0.01)
package panel
