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

// Package qap turns rank-1 constraint systems into quadratic arithmetic
// programs: one polynomial per variable and selector (A, B, C), built by
// Lagrange interpolation over the evaluation points 0..m-1, plus the
// vanishing polynomial Z(x) = ∏(x-i) of those points.
//
// A witness w satisfies the source system iff Z divides
// (Σ wᵢAᵢ)·(Σ wᵢBᵢ) - Σ wᵢCᵢ; the quotient H of that division is the
// prover's secret polynomial.
package qap

import (
	"errors"

	"github.com/consensys/quark/backend/r1cs"
	"github.com/consensys/quark/ecc/bn254/fr"
	"github.com/consensys/quark/polynomial"
)

var (
	// ErrEmptySystem is returned when building a QAP out of a system with
	// no constraints; there is nothing to interpolate over.
	ErrEmptySystem = errors.New("qap: constraint system has no constraints")

	// ErrUnsatisfyingWitness is returned when the witness quotient leaves
	// a non-zero remainder, i.e. the witness violates some constraint.
	ErrUnsatisfyingWitness = errors.New("qap: witness does not satisfy the constraint system")
)

// QAP is the polynomial form of a rank-1 constraint system. A, B and C
// hold one polynomial of degree < NbConstraints per variable; Z is the
// vanishing polynomial of the evaluation points.
type QAP struct {
	A, B, C []polynomial.Polynomial
	Z       polynomial.Polynomial

	NbConstraints int

	// Public lists the public variable indices in ascending order,
	// starting with the constant wire 0.
	Public []int
}

// NbVariables returns the witness length the QAP expects.
func (q *QAP) NbVariables() int {
	return len(q.A)
}

// Build interpolates cs into a QAP, using the field elements 0..m-1 as
// evaluation points (m constraints). The points are distinct since m is
// far below the field characteristic.
func Build(cs *r1cs.R1CS) (*QAP, error) {
	m := cs.NbConstraints()
	if m == 0 {
		return nil, ErrEmptySystem
	}
	n := cs.NbVariables()

	points := make([]fr.Element, m)
	for i := range points {
		points[i].SetUint64(uint64(i))
	}

	q := &QAP{
		A:             make([]polynomial.Polynomial, n),
		B:             make([]polynomial.Polynomial, n),
		C:             make([]polynomial.Polynomial, n),
		NbConstraints: m,
		Public:        cs.PublicVariables(),
	}

	// per-variable value columns for each selector
	colA := make([][]fr.Element, n)
	colB := make([][]fr.Element, n)
	colC := make([][]fr.Element, n)
	for j := 0; j < n; j++ {
		colA[j] = make([]fr.Element, m)
		colB[j] = make([]fr.Element, m)
		colC[j] = make([]fr.Element, m)
	}
	for i, c := range cs.Constraints() {
		for _, t := range c.L {
			colA[t.Variable][i].AddAssign(&t.Coeff)
		}
		for _, t := range c.R {
			colB[t.Variable][i].AddAssign(&t.Coeff)
		}
		for _, t := range c.O {
			colC[t.Variable][i].AddAssign(&t.Coeff)
		}
	}

	var err error
	for j := 0; j < n; j++ {
		if q.A[j], err = polynomial.Interpolate(points, colA[j]); err != nil {
			return nil, err
		}
		if q.B[j], err = polynomial.Interpolate(points, colB[j]); err != nil {
			return nil, err
		}
		if q.C[j], err = polynomial.Interpolate(points, colC[j]); err != nil {
			return nil, err
		}
	}

	// Z(x) = ∏ (x - i)
	z := polynomial.Polynomial{fr.One()}
	var minusI fr.Element
	for i := range points {
		minusI.Neg(&points[i])
		z = z.Mul(polynomial.Polynomial{minusI, fr.One()})
	}
	q.Z = z

	return q, nil
}

// Combine returns the witness combinations Σ wᵢAᵢ, Σ wᵢBᵢ, Σ wᵢCᵢ.
func (q *QAP) Combine(w []fr.Element) (a, b, c polynomial.Polynomial) {
	a = polynomial.New(q.NbConstraints)
	b = polynomial.New(q.NbConstraints)
	c = polynomial.New(q.NbConstraints)
	var t fr.Element
	for j := range w {
		if w[j].IsZero() {
			continue
		}
		for k := range q.A[j] {
			t.Mul(&q.A[j][k], &w[j])
			a[k].AddAssign(&t)
		}
		for k := range q.B[j] {
			t.Mul(&q.B[j][k], &w[j])
			b[k].AddAssign(&t)
		}
		for k := range q.C[j] {
			t.Mul(&q.C[j][k], &w[j])
			c[k].AddAssign(&t)
		}
	}
	return a, b, c
}

// WitnessQuotient computes H = (A·B - C)/Z for the combinations induced
// by w. It returns ErrUnsatisfyingWitness when the division leaves a
// remainder, which happens exactly when w violates a constraint.
func (q *QAP) WitnessQuotient(w []fr.Element) (polynomial.Polynomial, error) {
	if len(w) != q.NbVariables() {
		return nil, r1cs.ErrInvalidWitness
	}
	a, b, c := q.Combine(w)
	p := a.Mul(b).Sub(c)
	h, rem, err := p.QuoRem(q.Z)
	if err != nil {
		return nil, err
	}
	if !rem.IsZero() {
		return nil, ErrUnsatisfyingWitness
	}
	return h, nil
}

// EvaluateAt returns the per-variable evaluations Aᵢ(t), Bᵢ(t), Cᵢ(t) and
// Z(t). Trusted setup uses this with t the toxic evaluation point.
func (q *QAP) EvaluateAt(t *fr.Element) (a, b, c []fr.Element, z fr.Element) {
	n := q.NbVariables()
	a = make([]fr.Element, n)
	b = make([]fr.Element, n)
	c = make([]fr.Element, n)
	for j := 0; j < n; j++ {
		a[j] = q.A[j].Eval(t)
		b[j] = q.B[j].Eval(t)
		c[j] = q.C[j].Eval(t)
	}
	z = q.Z.Eval(t)
	return a, b, c, z
}
