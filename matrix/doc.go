// SPDX-License-Identifier: MIT

// Package matrix provides the dense storage used by the copying-model kernels.
//
// The package offers two row-major containers:
//
//   - Dense holds float64 values (forward probabilities). Accessors return
//     errors instead of panicking and an optional numeric policy rejects
//     NaN/±Inf on write.
//   - Bases holds the haplotype panel as a grid of base bytes. Construction
//     enforces a uniform row width, so consumers never index past the end of
//     a row.
//
// Both use the explicit offset formula i*cols + j over one flat buffer.
//
// Errors are package sentinels (errors.go) matched with errors.Is.
package matrix
