// File: variable.go
// Role: Variable — a discrete random variable with a finite alphabet, a
//       prior, and one Port per incident Factor.
//
// Update and GetBeliefs implement the sum-product marginalization
// equations, grounded on original_source/solvers/cpp/Variable.cpp
// (Update, GetBeliefs): both work in log space with the LZ floor so
// that a long cycle of messages does not underflow to zero before
// normalization.
package core

import (
	"fmt"
	"math"
)

// Variable is a discrete random variable of alphabet size M with a
// prior distribution over {0, ..., M-1}, connected to zero or more
// Factors via Ports (one per incident factor, in the order Connect was
// called — this order is the variable's port index on its own side).
type Variable struct {
	id    int
	m     int
	prior []float64
	ports []*Port
}

// NewVariable constructs a Variable with domain length m and a uniform
// prior. id is caller-assigned (typically by a registry or FactorGraph)
// and is purely a label; this package never interprets it.
func NewVariable(id, m int) (*Variable, error) {
	if m <= 0 {
		return nil, fmt.Errorf("%w: domain length must be positive, got %d", ErrShape, m)
	}

	prior := make([]float64, m)
	uniform := 1.0 / float64(m)
	for i := range prior {
		prior[i] = uniform
	}

	return &Variable{id: id, m: m, prior: prior}, nil
}

// ID returns this variable's caller-assigned identifier.
func (v *Variable) ID() int { return v.id }

// DomainLength returns M, the alphabet size.
func (v *Variable) DomainLength() int { return v.m }

// Prior returns the current prior. The returned slice aliases internal
// storage and must not be mutated by the caller; use SetPriors to
// change it.
func (v *Variable) Prior() []float64 { return v.prior }

// Ports returns this variable's ports, in the order Connect was called
// (i.e. insertion order, which is also the incident factor's port index
// on this variable's side).
func (v *Variable) Ports() []*Port { return v.ports }

// SetPriors replaces this variable's prior distribution.
//
// Fails with ErrShape if len(p) != M, or with ErrNormalization if any
// entry is negative or non-finite or |sum(p) - 1| exceeds
// normTolerance. On failure the variable's existing prior is left
// untouched.
func (v *Variable) SetPriors(p []float64) error {
	if len(p) != v.m {
		return fmt.Errorf("%w: prior has length %d, want %d", ErrShape, len(p), v.m)
	}

	sum := 0.0
	for i, x := range p {
		if x < 0 || math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("%w: prior entry %d (%v) must be finite and nonnegative", ErrNormalization, i, x)
		}
		sum += x
	}
	if math.Abs(sum-1) > normTolerance {
		return fmt.Errorf("%w: prior sums to %v", ErrNormalization, sum)
	}

	copy(v.prior, p)

	return nil
}

// Connect allocates this variable's endpoint of a new edge, paired with
// factorPort (the Factor-side endpoint already constructed by the
// caller), and seeds both directed messages to the uniform
// distribution. The new variable-side port is appended to v.Ports().
//
// This is the only way a Port belonging to a Variable is ever created.
func (v *Variable) Connect(factorPort *Port) {
	varPort := &Port{parent: v, inbound: make([]float64, v.m)}
	varPort.sibling = factorPort
	factorPort.sibling = varPort
	varPort.Initialize()
	factorPort.Initialize()
	v.ports = append(v.ports, varPort)
}

// Initialize resets every incident port's inbound message (i.e. both
// directed messages on every edge) to the uniform distribution. Priors
// are untouched.
func (v *Variable) Initialize() {
	for _, p := range v.ports {
		p.Initialize()
		p.sibling.Initialize()
	}
}

// Update performs one sum-product step for this variable, in place: for
// every outgoing edge out, it recomputes out.Outbound() from the prior
// and every port's current inbound message, using the log-floor scheme
// below.
//
// Let D = len(Ports()), M = DomainLength(). For each m:
//
//	alpha[m] = log(prior[m]) + sum_d log(ports[d].Inbound()[m])
//
// (each log term floored at LZ instead of -Inf when its operand is
// zero). For each outgoing port `out`:
//
//	beta[m]    = alpha[m] - log(ports[out].Inbound()[m])  (same floor)
//	maxBeta    = max_m beta[m]
//	out.Outbound()[m] = exp(beta[m] - maxBeta), then normalized to sum 1.
func (v *Variable) Update() {
	m := v.m

	alpha := make([]float64, m)
	for i := 0; i < m; i++ {
		alpha[i] = logFloor(v.prior[i])
		for _, p := range v.ports {
			alpha[i] += logFloor(p.Inbound()[i])
		}
	}

	for _, out := range v.ports {
		beta := make([]float64, m)
		maxBeta := math.Inf(-1)
		for i := 0; i < m; i++ {
			beta[i] = alpha[i] - logFloor(out.Inbound()[i])
			if beta[i] > maxBeta {
				maxBeta = beta[i]
			}
		}

		outbound := out.Outbound()
		sum := 0.0
		for i := 0; i < m; i++ {
			outbound[i] = math.Exp(beta[i] - maxBeta)
			sum += outbound[i]
		}
		for i := 0; i < m; i++ {
			outbound[i] /= sum
		}
	}
}

// GetBeliefs returns the normalized marginal belief over this
// variable's alphabet: b[m] proportional to prior[m] * product_d
// ports[d].Inbound()[m], computed with the same log-floor/max-subtract
// scheme as Update.
//
// Fails with ErrDegenerate if every value m has prior[m]*Π_d
// ports[d].Inbound()[m] exactly zero: no candidate value is
// simultaneously supported by the prior and every incoming message.
// This check has to run against the raw (un-floored) values: the log
// floor that keeps Update numerically stable across long cycles always
// ties at least one value's floored log-likelihood at the running
// maximum, so a sum taken only after flooring and max-subtracting can
// never come out to exactly zero and would silently mask real
// degeneracy.
func (v *Variable) GetBeliefs() ([]float64, error) {
	m := v.m

	degenerate := true
	for i := 0; i < m; i++ {
		raw := v.prior[i]
		for _, p := range v.ports {
			raw *= p.Inbound()[i]
		}
		if raw != 0 {
			degenerate = false
			break
		}
	}
	if degenerate {
		return nil, fmt.Errorf("%w: variable %d", ErrDegenerate, v.id)
	}

	logBelief := make([]float64, m)
	maxLog := math.Inf(-1)
	for i := 0; i < m; i++ {
		logBelief[i] = logFloor(v.prior[i])
		for _, p := range v.ports {
			logBelief[i] += logFloor(p.Inbound()[i])
		}
		if logBelief[i] > maxLog {
			maxLog = logBelief[i]
		}
	}

	belief := make([]float64, m)
	sum := 0.0
	for i := 0; i < m; i++ {
		belief[i] = math.Exp(logBelief[i] - maxLog)
		sum += belief[i]
	}

	for i := 0; i < m; i++ {
		belief[i] /= sum
	}

	return belief, nil
}

// logFloor returns log(x), floored at LZ instead of -Inf when x == 0.
// x is otherwise assumed nonnegative (message buffers and priors are
// maintained as such throughout this package).
func logFloor(x float64) float64 {
	if x == 0 {
		return LZ
	}
	return math.Log(x)
}
