/*
Copyright © 2020 ConsenSys

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package r1cs describes rank-1 constraint systems over the BN254 scalar
// field: lists of constraints ⟨L,w⟩·⟨R,w⟩ = ⟨O,w⟩ on a witness vector w
// whose entry 0 is pinned to the constant 1.
package r1cs

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"

	"github.com/consensys/quark/ecc/bn254/fr"
)

// ErrInvalidWitness is returned when a witness vector has the wrong length
// or does not carry the constant 1 at index 0.
var ErrInvalidWitness = errors.New("r1cs: witness must have one entry per variable, with witness[0] == 1")

// ErrInvalidMatrices is returned by FromMatrices on ragged or empty input.
var ErrInvalidMatrices = errors.New("r1cs: selector matrices must share the same m×n shape, n ≥ 1")

// Term is coeff·w[variable], one sparse entry of a linear combination.
type Term struct {
	Variable int
	Coeff    fr.Element
}

// NewTerm builds coeff·w[variable].
func NewTerm(variable int, coeff fr.Element) Term {
	return Term{Variable: variable, Coeff: coeff}
}

// LinearCombination is a sparse linear form Σ coeffᵢ·w[varᵢ] over the
// witness. Repeated variables are allowed and accumulate.
type LinearCombination []Term

// Evaluate returns ⟨lc, w⟩.
func (lc LinearCombination) Evaluate(w []fr.Element) fr.Element {
	var res, t fr.Element
	for _, term := range lc {
		t.Mul(&term.Coeff, &w[term.Variable])
		res.AddAssign(&t)
	}
	return res
}

// Clone returns a deep copy of lc.
func (lc LinearCombination) Clone() LinearCombination {
	r := make(LinearCombination, len(lc))
	for i, term := range lc {
		r[i].Variable = term.Variable
		r[i].Coeff.Set(&term.Coeff)
	}
	return r
}

// R1C is a single rank-1 constraint ⟨L,w⟩·⟨R,w⟩ = ⟨O,w⟩.
type R1C struct {
	L, R, O LinearCombination
}

// R1CS is a rank-1 constraint system: a variable count, the subset of
// variables exposed as public inputs, and the constraint list.
// Variable 0 is the constant wire, always public, always equal to 1.
type R1CS struct {
	nbVariables int
	public      *bitset.BitSet
	constraints []R1C
}

// New returns an empty system over nbVariables witness entries
// (including the constant wire). nbVariables must be at least 1.
func New(nbVariables int) *R1CS {
	if nbVariables < 1 {
		panic("r1cs.New: need at least the constant wire")
	}
	cs := &R1CS{
		nbVariables: nbVariables,
		public:      bitset.New(uint(nbVariables)),
	}
	cs.public.Set(0)
	return cs
}

// MarkPublic exposes variable i as a public input.
func (cs *R1CS) MarkPublic(i int) {
	if i < 0 || i >= cs.nbVariables {
		panic(fmt.Sprintf("r1cs: variable %d out of range [0, %d)", i, cs.nbVariables))
	}
	cs.public.Set(uint(i))
}

// IsPublic returns true if variable i is a public input.
func (cs *R1CS) IsPublic(i int) bool {
	return cs.public.Test(uint(i))
}

// AddConstraint appends ⟨l,w⟩·⟨r,w⟩ = ⟨o,w⟩. The combinations are copied;
// callers may reuse their slices.
func (cs *R1CS) AddConstraint(l, r, o LinearCombination) {
	for _, lc := range []LinearCombination{l, r, o} {
		for _, term := range lc {
			if term.Variable < 0 || term.Variable >= cs.nbVariables {
				panic(fmt.Sprintf("r1cs: variable %d out of range [0, %d)", term.Variable, cs.nbVariables))
			}
		}
	}
	cs.constraints = append(cs.constraints, R1C{
		L: l.Clone(),
		R: r.Clone(),
		O: o.Clone(),
	})
}

// NbConstraints returns the number of constraints.
func (cs *R1CS) NbConstraints() int {
	return len(cs.constraints)
}

// NbVariables returns the witness length, constant wire included.
func (cs *R1CS) NbVariables() int {
	return cs.nbVariables
}

// NbPublic returns the number of public variables, constant wire included.
func (cs *R1CS) NbPublic() int {
	return int(cs.public.Count())
}

// PublicVariables returns the public variable indices in ascending order;
// index 0 (the constant wire) is always first.
func (cs *R1CS) PublicVariables() []int {
	res := make([]int, 0, cs.NbPublic())
	for i, ok := cs.public.NextSet(0); ok; i, ok = cs.public.NextSet(i + 1) {
		res = append(res, int(i))
	}
	return res
}

// Constraints returns the constraint list. The slice is shared; treat it
// as read-only.
func (cs *R1CS) Constraints() []R1C {
	return cs.constraints
}

// Matrices exports the system as dense m×n selector matrices (A, B, C):
// row i is constraint i, column j is variable j, ⟨A[i],w⟩·⟨B[i],w⟩ =
// ⟨C[i],w⟩. This is the interchange format for systems produced by
// external compilers.
func (cs *R1CS) Matrices() (a, b, c [][]fr.Element) {
	m, n := len(cs.constraints), cs.nbVariables
	a = make([][]fr.Element, m)
	b = make([][]fr.Element, m)
	c = make([][]fr.Element, m)
	for i, constraint := range cs.constraints {
		a[i] = make([]fr.Element, n)
		b[i] = make([]fr.Element, n)
		c[i] = make([]fr.Element, n)
		for _, t := range constraint.L {
			a[i][t.Variable].AddAssign(&t.Coeff)
		}
		for _, t := range constraint.R {
			b[i][t.Variable].AddAssign(&t.Coeff)
		}
		for _, t := range constraint.O {
			c[i][t.Variable].AddAssign(&t.Coeff)
		}
	}
	return a, b, c
}

// FromMatrices builds a system from dense selector matrices, keeping only
// the non-zero entries, and marks public the variables listed in public.
// The matrices must share the same m×n shape with n ≥ 1.
func FromMatrices(a, b, c [][]fr.Element, public []int) (*R1CS, error) {
	m := len(a)
	if len(b) != m || len(c) != m {
		return nil, ErrInvalidMatrices
	}
	n := 0
	if m > 0 {
		n = len(a[0])
	}
	if n < 1 {
		return nil, ErrInvalidMatrices
	}

	sparse := func(row []fr.Element) (LinearCombination, bool) {
		if len(row) != n {
			return nil, false
		}
		var lc LinearCombination
		for j := range row {
			if !row[j].IsZero() {
				lc = append(lc, NewTerm(j, row[j]))
			}
		}
		return lc, true
	}

	cs := New(n)
	for i := 0; i < m; i++ {
		l, ok1 := sparse(a[i])
		r, ok2 := sparse(b[i])
		o, ok3 := sparse(c[i])
		if !ok1 || !ok2 || !ok3 {
			return nil, ErrInvalidMatrices
		}
		cs.AddConstraint(l, r, o)
	}
	for _, idx := range public {
		if idx < 0 || idx >= n {
			return nil, ErrInvalidMatrices
		}
		cs.MarkPublic(idx)
	}
	return cs, nil
}

// CheckWitness validates the shape of w against the system.
func (cs *R1CS) CheckWitness(w []fr.Element) error {
	if len(w) != cs.nbVariables || !w[0].IsOne() {
		return ErrInvalidWitness
	}
	return nil
}

// IsSatisfied returns true if w satisfies every constraint. It returns
// ErrInvalidWitness if w has the wrong shape.
func (cs *R1CS) IsSatisfied(w []fr.Element) (bool, error) {
	if err := cs.CheckWitness(w); err != nil {
		return false, err
	}
	var lhs fr.Element
	for _, c := range cs.constraints {
		l := c.L.Evaluate(w)
		r := c.R.Evaluate(w)
		o := c.O.Evaluate(w)
		lhs.Mul(&l, &r)
		if !lhs.Equal(&o) {
			return false, nil
		}
	}
	return true, nil
}
