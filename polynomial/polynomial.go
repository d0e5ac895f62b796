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

// Package polynomial provides dense univariate polynomials over the BN254
// scalar field: evaluation, arithmetic, euclidean division and Lagrange
// interpolation. Products switch to an FFT over the 2²⁸ roots of unity of
// 𝔽r once the operands are large enough to pay for it.
package polynomial

import (
	"errors"

	"github.com/consensys/quark/ecc/bn254/fr"
)

var (
	// ErrDivisionByZero is returned when dividing by the zero polynomial.
	ErrDivisionByZero = errors.New("polynomial: division by the zero polynomial")

	// ErrDuplicateEvaluationPoint is returned by Interpolate when two
	// evaluation points coincide.
	ErrDuplicateEvaluationPoint = errors.New("polynomial: duplicate evaluation point")
)

// Polynomial represents a polynomial by its coefficients, index i holding
// the coefficient of Xⁱ. Trailing zero coefficients are allowed; Degree
// ignores them.
type Polynomial []fr.Element

// New returns the zero polynomial with capacity for degree n-1.
func New(n int) Polynomial {
	return make(Polynomial, n)
}

// Degree returns the degree of p, with the convention that the zero
// polynomial has degree -1.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// IsZero returns true if every coefficient of p is zero.
func (p Polynomial) IsZero() bool {
	return p.Degree() == -1
}

// Clone returns a deep copy of p.
func (p Polynomial) Clone() Polynomial {
	r := make(Polynomial, len(p))
	for i := range p {
		r[i].Set(&p[i])
	}
	return r
}

// Equal compares p and q as polynomials, ignoring trailing zeros.
func (p Polynomial) Equal(q Polynomial) bool {
	d := p.Degree()
	if d != q.Degree() {
		return false
	}
	for i := 0; i <= d; i++ {
		if !p[i].Equal(&q[i]) {
			return false
		}
	}
	return true
}

// Eval returns p(v) by Horner's rule.
func (p Polynomial) Eval(v *fr.Element) fr.Element {
	var res fr.Element
	for i := len(p) - 1; i >= 0; i-- {
		res.MulAssign(v).AddAssign(&p[i])
	}
	return res
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	r := make(Polynomial, n)
	for i := range p {
		r[i].Set(&p[i])
	}
	for i := range q {
		r[i].AddAssign(&q[i])
	}
	return r
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	r := make(Polynomial, n)
	for i := range p {
		r[i].Set(&p[i])
	}
	for i := range q {
		r[i].SubAssign(&q[i])
	}
	return r
}

// Scale returns k·p.
func (p Polynomial) Scale(k *fr.Element) Polynomial {
	r := make(Polynomial, len(p))
	for i := range p {
		r[i].Mul(&p[i], k)
	}
	return r
}

// fftMulThreshold is the product size above which Mul switches from the
// quadratic schoolbook product to the FFT path.
const fftMulThreshold = 64

// Mul returns p * q. Small products are schoolbook; larger ones are
// computed by evaluation/interpolation over a power-of-two subgroup of 𝔽r*.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	dp, dq := p.Degree(), q.Degree()
	if dp == -1 || dq == -1 {
		return Polynomial{}
	}
	n := dp + dq + 1
	if n > fftMulThreshold {
		return mulFFT(p[:dp+1], q[:dq+1], n)
	}

	r := make(Polynomial, n)
	var t fr.Element
	for i := 0; i <= dp; i++ {
		if p[i].IsZero() {
			continue
		}
		for j := 0; j <= dq; j++ {
			t.Mul(&p[i], &q[j])
			r[i+j].AddAssign(&t)
		}
	}
	return r
}

// QuoRem computes the euclidean division p = quo·d + rem, deg(rem) < deg(d).
// It returns ErrDivisionByZero when d is the zero polynomial.
func (p Polynomial) QuoRem(d Polynomial) (quo, rem Polynomial, err error) {
	dd := d.Degree()
	if dd == -1 {
		return nil, nil, ErrDivisionByZero
	}
	dp := p.Degree()
	if dp < dd {
		return Polynomial{}, p.Clone(), nil
	}

	var lcInv fr.Element
	if _, err := lcInv.Inverse(&d[dd]); err != nil {
		// unreachable, d[dd] != 0
		return nil, nil, err
	}

	quo = make(Polynomial, dp-dd+1)
	rem = p.Clone()[:dp+1]
	var c, t fr.Element
	for i := dp; i >= dd; i-- {
		if rem[i].IsZero() {
			continue
		}
		c.Mul(&rem[i], &lcInv)
		quo[i-dd].Set(&c)
		for j := 0; j <= dd; j++ {
			t.Mul(&c, &d[j])
			rem[i-dd+j].SubAssign(&t)
		}
	}
	return quo, rem[:dd], nil
}

// Interpolate returns the unique polynomial of degree < len(points) taking
// value values[i] at points[i], by the Lagrange construction. It returns
// ErrDuplicateEvaluationPoint if two points coincide (the denominators
// would vanish).
func Interpolate(points, values []fr.Element) (Polynomial, error) {
	if len(points) != len(values) {
		panic("polynomial.Interpolate: mismatched slice lengths")
	}
	n := len(points)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if points[i].Equal(&points[j]) {
				return nil, ErrDuplicateEvaluationPoint
			}
		}
	}

	res := make(Polynomial, n)
	basis := make(Polynomial, 0, n)
	var t, den, w fr.Element
	for i := 0; i < n; i++ {
		if values[i].IsZero() {
			continue
		}

		// ℓᵢ(X) = ∏_{j≠i} (X - xⱼ) / (xᵢ - xⱼ)
		basis = basis[:1]
		basis[0].SetOne()
		den.SetOne()
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			basis = mulLinear(basis, &points[j])
			t.Sub(&points[i], &points[j])
			den.MulAssign(&t)
		}

		// w = yᵢ / den
		if _, err := w.Div(&values[i], &den); err != nil {
			// unreachable, points are distinct
			return nil, err
		}
		for k := range basis {
			t.Mul(&basis[k], &w)
			res[k].AddAssign(&t)
		}
	}
	return res, nil
}

// mulLinear multiplies p in place (reallocating) by (X - x).
func mulLinear(p Polynomial, x *fr.Element) Polynomial {
	r := make(Polynomial, len(p)+1)
	var t fr.Element
	for i := range p {
		r[i+1].AddAssign(&p[i])
		t.Mul(&p[i], x)
		r[i].SubAssign(&t)
	}
	return r
}
