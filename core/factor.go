// File: factor.go
// Role: Factor — a factor node referencing a shared CombinationTable
//       and one Port per incident Variable.
//
// Update implements the probability-space sum-product rule, grounded on
// original_source/solvers/cpp/Function.cpp (Update(int)).
package core

import "fmt"

// Factor is a factor node: a shared, immutable CombinationTable plus an
// ordered list of incident Variables. Port i faces vars[i], and column
// i of the table corresponds to that variable's alphabet.
type Factor struct {
	id    int
	table *CombinationTable
	vars  []*Variable
	ports []*Port
}

// NewFactor connects table to vars (in order) by creating one Port per
// variable and calling vars[i].Connect on it. id is caller-assigned
// (typically by a FactorGraph) and is not interpreted by this package.
//
// Fails with ErrShape if the table's arity does not equal len(vars).
func NewFactor(id int, table *CombinationTable, vars []*Variable) (*Factor, error) {
	if table.Arity() != len(vars) {
		return nil, fmt.Errorf("%w: table arity %d but %d variables given", ErrShape, table.Arity(), len(vars))
	}

	f := &Factor{id: id, table: table, vars: append([]*Variable(nil), vars...)}
	f.ports = make([]*Port, len(vars))
	for i, v := range vars {
		p := &Port{parent: f, inbound: make([]float64, v.DomainLength())}
		f.ports[i] = p
		v.Connect(p)
	}

	return f, nil
}

// ID returns this factor's caller-assigned identifier.
func (f *Factor) ID() int { return f.id }

// Table returns the shared CombinationTable this factor scores against.
func (f *Factor) Table() *CombinationTable { return f.table }

// Vars returns the ordered list of variables this factor is incident
// to; Vars()[i] is the variable facing Ports()[i].
func (f *Factor) Vars() []*Variable { return f.vars }

// Ports returns this factor's ports, in the same order as Vars().
func (f *Factor) Ports() []*Port { return f.ports }

// Initialize resets every incident port's inbound message to uniform.
func (f *Factor) Initialize() {
	for _, p := range f.ports {
		p.Initialize()
	}
}

// UpdatePort recomputes the outgoing message on ports[outIdx] by
// summing the table's weighted rows over every assignment consistent
// with each candidate output value, weighted by the other ports'
// current inbound messages:
//
//	for each row r with assignment a and weight w:
//	    prob = w * product_{q != outIdx} ports[q].Inbound()[a[q]]
//	    outbound[a[outIdx]] += prob
//
// then normalizes outbound to sum to 1. If the pre-normalization sum is
// zero, the buffer is left all-zero: the incident variable's Update
// treats the zeros as the LZ log floor, and its GetBeliefs reports
// ErrDegenerate through its raw-product check when no value remains
// supported.
func (f *Factor) UpdatePort(outIdx int) {
	outbound := f.ports[outIdx].Outbound()
	for i := range outbound {
		outbound[i] = 0
	}

	rows := f.table
	for r := 0; r < rows.NumRows(); r++ {
		assignment := rows.Row(r)
		prob := rows.Weight(r)
		for q, p := range f.ports {
			if q == outIdx {
				continue
			}
			prob *= p.Inbound()[assignment[q]]
		}
		outbound[assignment[outIdx]] += prob
	}

	sum := 0.0
	for _, x := range outbound {
		sum += x
	}
	if sum == 0 {
		return
	}
	for i := range outbound {
		outbound[i] /= sum
	}
}

// Update invokes UpdatePort for every port, in index order.
func (f *Factor) Update() {
	for i := range f.ports {
		f.UpdatePort(i)
	}
}
