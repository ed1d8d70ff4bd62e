// Package lscopy scores DNA query sequences against a panel of reference
// haplotypes under the Li–Stephens copying model.
//
// 🚀 What is lscopy?
//
//	A forward-probability engine that treats a query as a mosaic copied from
//	panel haplotypes, with per-site mutation (μ) and recombination (ρ):
//		• Alphabet checks over a c g t n A C G T N, with N as a wildcard
//		• Dense row-major storage for the panel and the forward matrix
//		• The forward pass itself, with max or sum readout
//		• Padding of unaligned text and FASTA loading
//		• A small CLI for batch scoring
//
// Everything is organized under these packages:
//
//	base/          - alphabet membership and sequence validation
//	matrix/        - Dense (float64) and Bases (byte) grids + validators
//	forward/       - the forward pass: Likelihood, Run, options, Result
//	panel/         - text entry point (Encode, Likelihood) and FASTA records
//	internal/      - config (env + flags) and the application runner
//	cmd/lscopy/    - command-line front-end
//
// Quick example:
//
//	haplotypes  AC      query  AC      μ = ρ = 0.01
//	likelihood  = (1-μ)·(1-μ) = 0.9801
//
//	go get github.com/katalvlaran/lscopy/forward
package lscopy
