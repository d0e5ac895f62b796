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

package bn254

import (
	"errors"
	"math/big"

	"github.com/consensys/quark/ecc/bn254/fp"
	"github.com/consensys/quark/ecc/bn254/fr"
)

// ErrInvalidPoint is returned when raw coordinates do not satisfy the
// curve equation.
var ErrInvalidPoint = errors.New("bn254: point is not on the curve")

// G1Affine is a point on E(𝔽p): y² = x³ + 3, in affine coordinates.
// The point at infinity (group identity) is encoded as (0, 0), which does
// not satisfy the curve equation and therefore cannot collide with an
// affine point.
type G1Affine struct {
	X, Y fp.Element
}

// Set p = a
func (p *G1Affine) Set(a *G1Affine) *G1Affine {
	p.X.Set(&a.X)
	p.Y.Set(&a.Y)
	return p
}

// SetInfinity sets p to the group identity.
func (p *G1Affine) SetInfinity() *G1Affine {
	p.X.SetZero()
	p.Y.SetZero()
	return p
}

// IsInfinity returns true if p is the group identity.
func (p *G1Affine) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// SetCoordinates sets p from raw affine coordinates, validating the curve
// equation. It returns ErrInvalidPoint if (x, y) is not on E.
func (p *G1Affine) SetCoordinates(x, y *fp.Element) (*G1Affine, error) {
	var c G1Affine
	c.X.Set(x)
	c.Y.Set(y)
	if !c.IsOnCurve() {
		return nil, ErrInvalidPoint
	}
	return p.Set(&c), nil
}

// IsOnCurve returns true if p satisfies y² = x³ + 3, or is the identity.
func (p *G1Affine) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}
	var lhs, rhs fp.Element
	lhs.Square(&p.Y)
	rhs.Square(&p.X).
		MulAssign(&p.X).
		AddAssign(&bCurveCoeff)
	return lhs.Equal(&rhs)
}

// IsInSubgroup returns true if p is in the r-torsion subgroup.
// G1 has cofactor 1, so this is [r]p == 0 for every curve point.
func (p *G1Affine) IsInSubgroup() bool {
	if !p.IsOnCurve() {
		return false
	}
	var t G1Affine
	t.ScalarMul(p, fr.Modulus())
	return t.IsInfinity()
}

// Equal returns true if p == a. Equality is on normalized affine
// coordinates; there is a single representation per point.
func (p *G1Affine) Equal(a *G1Affine) bool {
	return p.X.Equal(&a.X) && p.Y.Equal(&a.Y)
}

// Neg p = -a: (x, -y). The identity is its own negative.
func (p *G1Affine) Neg(a *G1Affine) *G1Affine {
	p.X.Set(&a.X)
	p.Y.Neg(&a.Y)
	return p
}

// Add p = a + b, handling the three cases of the group law:
// identity operand, mirror points (a = -b, including the tangent-vertical
// case y = 0), and the chord/tangent construction.
func (p *G1Affine) Add(a, b *G1Affine) *G1Affine {
	if a.IsInfinity() {
		return p.Set(b)
	}
	if b.IsInfinity() {
		return p.Set(a)
	}
	if a.X.Equal(&b.X) {
		if a.Y.Equal(&b.Y) && !a.Y.IsZero() {
			return p.Double(a)
		}
		// b = -a
		return p.SetInfinity()
	}

	// chord: λ = (y₂-y₁)/(x₂-x₁)
	var lambda, den fp.Element
	lambda.Sub(&b.Y, &a.Y)
	den.Sub(&b.X, &a.X)
	_, _ = den.Inverse(&den) // non-zero: x₁ ≠ x₂
	lambda.MulAssign(&den)

	p.set(a, b, &lambda)
	return p
}

// Double p = 2a, tangent construction.
func (p *G1Affine) Double(a *G1Affine) *G1Affine {
	if a.IsInfinity() {
		return p.SetInfinity()
	}
	if a.Y.IsZero() {
		// vertical tangent (no such point on this curve, but the group
		// law is total)
		return p.SetInfinity()
	}

	// λ = 3x²/2y
	var lambda, den fp.Element
	lambda.Square(&a.X)
	var three fp.Element
	three.SetUint64(3)
	lambda.MulAssign(&three)
	den.Double(&a.Y)
	_, _ = den.Inverse(&den) // non-zero: y ≠ 0
	lambda.MulAssign(&den)

	p.set(a, a, &lambda)
	return p
}

// set applies x₃ = λ²-x₁-x₂, y₃ = λ(x₁-x₃)-y₁.
func (p *G1Affine) set(a, b *G1Affine, lambda *fp.Element) {
	var x3, y3 fp.Element
	x3.Square(lambda).
		SubAssign(&a.X).
		SubAssign(&b.X)
	y3.Sub(&a.X, &x3).
		MulAssign(lambda).
		SubAssign(&a.Y)
	p.X.Set(&x3)
	p.Y.Set(&y3)
}

// ScalarMul p = [k]a for k ≥ 0, by an iterative double-and-add scan over
// the bits of k (no recursion, bounded stack).
func (p *G1Affine) ScalarMul(a *G1Affine, k *big.Int) *G1Affine {
	if k.Sign() < 0 {
		panic("bn254.G1Affine.ScalarMul: negative scalar")
	}
	var acc G1Affine
	acc.SetInfinity()
	base := *a
	for i := k.BitLen() - 1; i >= 0; i-- {
		acc.Double(&acc)
		if k.Bit(i) == 1 {
			acc.Add(&acc, &base)
		}
	}
	return p.Set(&acc)
}

// ScalarMulFr p = [k]a with k an 𝔽r scalar.
func (p *G1Affine) ScalarMulFr(a *G1Affine, k *fr.Element) *G1Affine {
	var kk big.Int
	k.BigInt(&kk)
	return p.ScalarMul(a, &kk)
}

// ScalarMulGen p = [k]g where g is the G1 generator.
func (p *G1Affine) ScalarMulGen(k *big.Int) *G1Affine {
	return p.ScalarMul(&g1Gen, k)
}

func (p *G1Affine) String() string {
	if p.IsInfinity() {
		return "O"
	}
	return "E([" + p.X.String() + "," + p.Y.String() + "])"
}
