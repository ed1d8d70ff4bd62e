// SPDX-License-Identifier: MIT

// Package base validates nucleotide symbols accepted by the copying model.
//
// The alphabet is {A,C,G,T,N} in either case. Case carries no biological
// meaning but is preserved by every caller, so equality between two bases is
// byte equality. N (and n) is the wildcard: it matches any other base.
//
// Usage:
//
//	if err := base.Validate(seq); err != nil {
//		// errors.Is(err, base.ErrInvalidBase)
//	}
package base
