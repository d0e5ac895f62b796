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
	"math/big"

	"github.com/consensys/quark/ecc/bn254/fr"
)

// G2Affine is a point on the sextic twist E'(𝔽p²): y² = x³ + 3/ξ, in
// affine coordinates. The r-torsion subgroup of E' is the pairing's second
// source group. The point at infinity is encoded as (0, 0).
type G2Affine struct {
	X, Y E2
}

// Set p = a
func (p *G2Affine) Set(a *G2Affine) *G2Affine {
	p.X.Set(&a.X)
	p.Y.Set(&a.Y)
	return p
}

// SetInfinity sets p to the group identity.
func (p *G2Affine) SetInfinity() *G2Affine {
	p.X.SetZero()
	p.Y.SetZero()
	return p
}

// IsInfinity returns true if p is the group identity.
func (p *G2Affine) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

// SetCoordinates sets p from raw affine coordinates, validating the twist
// equation. It returns ErrInvalidPoint if (x, y) is not on E'.
func (p *G2Affine) SetCoordinates(x, y *E2) (*G2Affine, error) {
	var c G2Affine
	c.X.Set(x)
	c.Y.Set(y)
	if !c.IsOnCurve() {
		return nil, ErrInvalidPoint
	}
	return p.Set(&c), nil
}

// IsOnCurve returns true if p satisfies y² = x³ + 3/ξ, or is the identity.
func (p *G2Affine) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}
	var lhs, rhs E2
	lhs.Square(&p.Y)
	rhs.Square(&p.X).
		Mul(&rhs, &p.X).
		Add(&rhs, &bTwistCurveCoeff)
	return lhs.Equal(&rhs)
}

// IsInSubgroup returns true if p is in the r-torsion subgroup. E' has a
// non-trivial cofactor, so this is strictly stronger than IsOnCurve.
func (p *G2Affine) IsInSubgroup() bool {
	if !p.IsOnCurve() {
		return false
	}
	var t G2Affine
	t.ScalarMul(p, fr.Modulus())
	return t.IsInfinity()
}

// Equal returns true if p == a.
func (p *G2Affine) Equal(a *G2Affine) bool {
	return p.X.Equal(&a.X) && p.Y.Equal(&a.Y)
}

// Neg p = -a: (x, -y).
func (p *G2Affine) Neg(a *G2Affine) *G2Affine {
	p.X.Set(&a.X)
	p.Y.Neg(&a.Y)
	return p
}

// Add p = a + b; same three-branch group law as G1, over 𝔽p².
func (p *G2Affine) Add(a, b *G2Affine) *G2Affine {
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
		return p.SetInfinity()
	}

	// λ = (y₂-y₁)/(x₂-x₁)
	var lambda, den E2
	lambda.Sub(&b.Y, &a.Y)
	den.Sub(&b.X, &a.X)
	den.Inverse(&den) // non-zero: x₁ ≠ x₂
	lambda.Mul(&lambda, &den)

	p.set(a, b, &lambda)
	return p
}

// Double p = 2a, tangent construction.
func (p *G2Affine) Double(a *G2Affine) *G2Affine {
	if a.IsInfinity() || a.Y.IsZero() {
		return p.SetInfinity()
	}

	// λ = 3x²/2y
	var lambda, den E2
	lambda.Square(&a.X)
	var t E2
	t.Double(&lambda).Add(&t, &lambda)
	lambda.Set(&t)
	den.Double(&a.Y)
	den.Inverse(&den) // non-zero: y ≠ 0
	lambda.Mul(&lambda, &den)

	p.set(a, a, &lambda)
	return p
}

// set applies x₃ = λ²-x₁-x₂, y₃ = λ(x₁-x₃)-y₁.
func (p *G2Affine) set(a, b *G2Affine, lambda *E2) {
	var x3, y3 E2
	x3.Square(lambda).
		Sub(&x3, &a.X).
		Sub(&x3, &b.X)
	y3.Sub(&a.X, &x3).
		Mul(&y3, lambda).
		Sub(&y3, &a.Y)
	p.X.Set(&x3)
	p.Y.Set(&y3)
}

// ScalarMul p = [k]a for k ≥ 0, iterative double-and-add.
func (p *G2Affine) ScalarMul(a *G2Affine, k *big.Int) *G2Affine {
	if k.Sign() < 0 {
		panic("bn254.G2Affine.ScalarMul: negative scalar")
	}
	var acc G2Affine
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
func (p *G2Affine) ScalarMulFr(a *G2Affine, k *fr.Element) *G2Affine {
	var kk big.Int
	k.BigInt(&kk)
	return p.ScalarMul(a, &kk)
}

// ScalarMulGen p = [k]g where g is the G2 generator.
func (p *G2Affine) ScalarMulGen(k *big.Int) *G2Affine {
	return p.ScalarMul(&g2Gen, k)
}

func (p *G2Affine) String() string {
	if p.IsInfinity() {
		return "O"
	}
	return "E'([" + p.X.String() + "," + p.Y.String() + "])"
}
