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

// E6 is a degree three extension of E2:
// 𝔽p⁶ = 𝔽p²[v]/(v³-ξ), ξ = 9+u; an element is B0 + B1·v + B2·v².
type E6 struct {
	B0, B1, B2 E2
}

// Set z = x
func (z *E6) Set(x *E6) *E6 {
	z.B0.Set(&x.B0)
	z.B1.Set(&x.B1)
	z.B2.Set(&x.B2)
	return z
}

// SetZero z = 0
func (z *E6) SetZero() *E6 {
	z.B0.SetZero()
	z.B1.SetZero()
	z.B2.SetZero()
	return z
}

// SetOne z = 1
func (z *E6) SetOne() *E6 {
	z.B0.SetOne()
	z.B1.SetZero()
	z.B2.SetZero()
	return z
}

// IsZero returns true if all coefficients are zero.
func (z *E6) IsZero() bool {
	return z.B0.IsZero() && z.B1.IsZero() && z.B2.IsZero()
}

// Equal returns true if z == x
func (z *E6) Equal(x *E6) bool {
	return z.B0.Equal(&x.B0) && z.B1.Equal(&x.B1) && z.B2.Equal(&x.B2)
}

// Add z = x + y
func (z *E6) Add(x, y *E6) *E6 {
	z.B0.Add(&x.B0, &y.B0)
	z.B1.Add(&x.B1, &y.B1)
	z.B2.Add(&x.B2, &y.B2)
	return z
}

// Sub z = x - y
func (z *E6) Sub(x, y *E6) *E6 {
	z.B0.Sub(&x.B0, &y.B0)
	z.B1.Sub(&x.B1, &y.B1)
	z.B2.Sub(&x.B2, &y.B2)
	return z
}

// Neg z = -x
func (z *E6) Neg(x *E6) *E6 {
	z.B0.Neg(&x.B0)
	z.B1.Neg(&x.B1)
	z.B2.Neg(&x.B2)
	return z
}

// Mul z = x * y, schoolbook over the v-basis with v³ = ξ reduction.
func (z *E6) Mul(x, y *E6) *E6 {
	var t0, t1, t2, tmp, c0, c1, c2 E2

	t0.Mul(&x.B0, &y.B0)
	t1.Mul(&x.B1, &y.B1)
	t2.Mul(&x.B2, &y.B2)

	// c0 = t0 + ξ(b1c2 + b2c1)
	c0.Mul(&x.B1, &y.B2)
	tmp.Mul(&x.B2, &y.B1)
	c0.Add(&c0, &tmp).
		MulByNonResidue(&c0).
		Add(&c0, &t0)

	// c1 = b0c1 + b1c0 + ξ·b2c2
	c1.Mul(&x.B0, &y.B1)
	tmp.Mul(&x.B1, &y.B0)
	c1.Add(&c1, &tmp)
	tmp.MulByNonResidue(&t2)
	c1.Add(&c1, &tmp)

	// c2 = b0c2 + b2c0 + b1c1
	c2.Mul(&x.B0, &y.B2)
	tmp.Mul(&x.B2, &y.B0)
	c2.Add(&c2, &tmp).
		Add(&c2, &t1)

	z.B0.Set(&c0)
	z.B1.Set(&c1)
	z.B2.Set(&c2)
	return z
}

// Square z = x * x
func (z *E6) Square(x *E6) *E6 {
	return z.Mul(x, x)
}

// MulByE2 z = x * y, y in 𝔽p²
func (z *E6) MulByE2(x *E6, y *E2) *E6 {
	z.B0.Mul(&x.B0, y)
	z.B1.Mul(&x.B1, y)
	z.B2.Mul(&x.B2, y)
	return z
}

// MulByNonResidue z = x * v: (b0, b1, b2) -> (ξ·b2, b0, b1)
func (z *E6) MulByNonResidue(x *E6) *E6 {
	var t E2
	t.MulByNonResidue(&x.B2)
	z.B2.Set(&x.B1)
	z.B1.Set(&x.B0)
	z.B0.Set(&t)
	return z
}

// Inverse z = x⁻¹, Algorithm 17 of "High-Speed Software Implementation of
// the Optimal Ate Pairing over Barreto-Naehrig Curves" (Beuchat et al.).
// The zero element maps to zero.
func (z *E6) Inverse(x *E6) *E6 {
	var t0, t1, t2, s, tmp E2

	// t0 = b0² - ξ·b1b2
	t0.Square(&x.B0)
	tmp.Mul(&x.B1, &x.B2).MulByNonResidue(&tmp)
	t0.Sub(&t0, &tmp)

	// t1 = ξ·b2² - b0b1
	t1.Square(&x.B2).MulByNonResidue(&t1)
	tmp.Mul(&x.B0, &x.B1)
	t1.Sub(&t1, &tmp)

	// t2 = b1² - b0b2
	t2.Square(&x.B1)
	tmp.Mul(&x.B0, &x.B2)
	t2.Sub(&t2, &tmp)

	// s = b0t0 + ξ(b2t1 + b1t2)
	s.Mul(&x.B2, &t1)
	tmp.Mul(&x.B1, &t2)
	s.Add(&s, &tmp).
		MulByNonResidue(&s)
	tmp.Mul(&x.B0, &t0)
	s.Add(&s, &tmp)

	if s.IsZero() {
		return z.SetZero()
	}
	s.Inverse(&s)
	z.B0.Mul(&t0, &s)
	z.B1.Mul(&t1, &s)
	z.B2.Mul(&t2, &s)
	return z
}

func (z *E6) String() string {
	return "(" + z.B0.String() + ")+(" + z.B1.String() + ")*v+(" + z.B2.String() + ")*v**2"
}
