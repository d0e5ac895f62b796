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
	"github.com/consensys/quark/ecc/bn254/fp"
)

// E2 is a degree two finite field extension of fp.Element:
// 𝔽p² = 𝔽p[u]/(u²+1), an element is A0 + A1·u.
type E2 struct {
	A0, A1 fp.Element
}

// Set z = x
func (z *E2) Set(x *E2) *E2 {
	z.A0.Set(&x.A0)
	z.A1.Set(&x.A1)
	return z
}

// SetZero z = 0
func (z *E2) SetZero() *E2 {
	z.A0.SetZero()
	z.A1.SetZero()
	return z
}

// SetOne z = 1
func (z *E2) SetOne() *E2 {
	z.A0.SetOne()
	z.A1.SetZero()
	return z
}

// SetString sets z from base-10 strings for the two coefficients.
func (z *E2) SetString(a0, a1 string) *E2 {
	z.A0.SetString(a0)
	z.A1.SetString(a1)
	return z
}

// IsZero returns true if both coefficients are zero.
func (z *E2) IsZero() bool {
	return z.A0.IsZero() && z.A1.IsZero()
}

// Equal returns true if z == x
func (z *E2) Equal(x *E2) bool {
	return z.A0.Equal(&x.A0) && z.A1.Equal(&x.A1)
}

// Add z = x + y
func (z *E2) Add(x, y *E2) *E2 {
	z.A0.Add(&x.A0, &y.A0)
	z.A1.Add(&x.A1, &y.A1)
	return z
}

// Sub z = x - y
func (z *E2) Sub(x, y *E2) *E2 {
	z.A0.Sub(&x.A0, &y.A0)
	z.A1.Sub(&x.A1, &y.A1)
	return z
}

// Double z = 2*x
func (z *E2) Double(x *E2) *E2 {
	z.A0.Double(&x.A0)
	z.A1.Double(&x.A1)
	return z
}

// Neg z = -x
func (z *E2) Neg(x *E2) *E2 {
	z.A0.Neg(&x.A0)
	z.A1.Neg(&x.A1)
	return z
}

// Conjugate z = A0 - A1·u
func (z *E2) Conjugate(x *E2) *E2 {
	z.A0.Set(&x.A0)
	z.A1.Neg(&x.A1)
	return z
}

// Mul z = x * y, Karatsuba over the real/imaginary parts:
// (a0+a1u)(b0+b1u) = (a0b0 - a1b1) + ((a0+a1)(b0+b1) - a0b0 - a1b1)u
func (z *E2) Mul(x, y *E2) *E2 {
	var v0, v1, s0, s1, t fp.Element
	v0.Mul(&x.A0, &y.A0)
	v1.Mul(&x.A1, &y.A1)
	s0.Add(&x.A0, &x.A1)
	s1.Add(&y.A0, &y.A1)
	t.Mul(&s0, &s1).
		SubAssign(&v0).
		SubAssign(&v1)
	z.A0.Sub(&v0, &v1)
	z.A1.Set(&t)
	return z
}

// Square z = x * x
// (a+bu)² = (a+b)(a-b) + 2ab·u
func (z *E2) Square(x *E2) *E2 {
	var s, d, ab fp.Element
	s.Add(&x.A0, &x.A1)
	d.Sub(&x.A0, &x.A1)
	ab.Mul(&x.A0, &x.A1)
	z.A0.Mul(&s, &d)
	z.A1.Double(&ab)
	return z
}

// MulByElement z = x * y, y in 𝔽p
func (z *E2) MulByElement(x *E2, y *fp.Element) *E2 {
	z.A0.Mul(&x.A0, y)
	z.A1.Mul(&x.A1, y)
	return z
}

// MulByNonResidue z = x * (9+u), the sextic twist non-residue ξ.
// (a + bu)(9 + u) = (9a - b) + (a + 9b)u
func (z *E2) MulByNonResidue(x *E2) *E2 {
	var nine, t0, t1 fp.Element
	nine.SetUint64(9)
	t0.Mul(&x.A0, &nine).SubAssign(&x.A1)
	t1.Mul(&x.A1, &nine).AddAssign(&x.A0)
	z.A0.Set(&t0)
	z.A1.Set(&t1)
	return z
}

// Inverse z = x⁻¹: (a+bu)⁻¹ = (a-bu)/(a²+b²).
// The zero element maps to zero; callers that care must branch on IsZero.
func (z *E2) Inverse(x *E2) *E2 {
	var norm fp.Element
	var t0, t1 fp.Element
	t0.Square(&x.A0)
	t1.Square(&x.A1)
	norm.Add(&t0, &t1)
	if norm.IsZero() {
		return z.SetZero()
	}
	if _, err := norm.Inverse(&norm); err != nil {
		// unreachable, norm != 0
		panic(err)
	}
	z.A0.Mul(&x.A0, &norm)
	var na1 fp.Element
	na1.Neg(&x.A1)
	z.A1.Mul(&na1, &norm)
	return z
}

func (z *E2) String() string {
	return z.A0.String() + "+" + z.A1.String() + "*u"
}
