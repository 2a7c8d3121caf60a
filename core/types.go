// File: types.go
// Role: sentinel errors and numeric constants shared by every file in
//       this package.
package core

import "errors"

// LZ is the pseudo-zero floor substituted for log(0) throughout this
// package. It is a floor, not -Inf: summing several LZ contributions
// must still produce a finite number, so that one legitimately-zero
// input message renders an assignment merely very unlikely rather than
// propagating NaN through the rest of the update. Reproduced literally
// from the reference implementation; do not change this value.
const LZ = -100

// normTolerance is the maximum allowed deviation of a prior's sum from
// 1, used by Variable.SetPriors for prior validation.
const normTolerance = 1e-15

// Sentinel errors for the core package.
var (
	// ErrShape indicates a vector/row length does not match the
	// declared alphabet size (prior length, or table row width vs.
	// the number of variables a factor connects).
	ErrShape = errors.New("core: shape mismatch")

	// ErrNormalization indicates a prior vector does not sum to 1
	// within normTolerance, or has a negative or non-finite entry.
	ErrNormalization = errors.New("core: prior does not sum to 1")

	// ErrDegenerate indicates a belief could not be normalized because
	// its un-floored pre-normalization product was zero for every
	// alphabet value (all-zero evidence). Outgoing messages never report
	// it: a zero-sum factor message is left all-zero instead.
	ErrDegenerate = errors.New("core: degenerate distribution (zero evidence)")
)
