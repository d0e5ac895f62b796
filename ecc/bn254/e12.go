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
)

// E12 is a degree two extension of E6:
// 𝔽p¹² = 𝔽p⁶[w]/(w²-v); an element is C0 + C1·w.
// Note w⁶ = v³ = ξ, which makes w the untwisting element for G2.
//
// The pairing's codomain GT is the subgroup of order r of E12*.
type E12 struct {
	C0, C1 E6
}

// Set z = x
func (z *E12) Set(x *E12) *E12 {
	z.C0.Set(&x.C0)
	z.C1.Set(&x.C1)
	return z
}

// SetZero z = 0
func (z *E12) SetZero() *E12 {
	z.C0.SetZero()
	z.C1.SetZero()
	return z
}

// SetOne z = 1, the identity of the target group.
func (z *E12) SetOne() *E12 {
	z.C0.SetOne()
	z.C1.SetZero()
	return z
}

// IsZero returns true if all coefficients are zero.
func (z *E12) IsZero() bool {
	return z.C0.IsZero() && z.C1.IsZero()
}

// IsOne returns true if z is the multiplicative identity.
func (z *E12) IsOne() bool {
	var one E12
	one.SetOne()
	return z.Equal(&one)
}

// Equal returns true if z == x
func (z *E12) Equal(x *E12) bool {
	return z.C0.Equal(&x.C0) && z.C1.Equal(&x.C1)
}

// Add z = x + y
func (z *E12) Add(x, y *E12) *E12 {
	z.C0.Add(&x.C0, &y.C0)
	z.C1.Add(&x.C1, &y.C1)
	return z
}

// Sub z = x - y
func (z *E12) Sub(x, y *E12) *E12 {
	z.C0.Sub(&x.C0, &y.C0)
	z.C1.Sub(&x.C1, &y.C1)
	return z
}

// Neg z = -x
func (z *E12) Neg(x *E12) *E12 {
	z.C0.Neg(&x.C0)
	z.C1.Neg(&x.C1)
	return z
}

// Mul z = x * y, Karatsuba over the w-basis with w² = v reduction:
// (a + bw)(c + dw) = (ac + bd·v) + (ad + bc)w
func (z *E12) Mul(x, y *E12) *E12 {
	var t0, t1, s0, s1, t E6
	t0.Mul(&x.C0, &y.C0)
	t1.Mul(&x.C1, &y.C1)
	s0.Add(&x.C0, &x.C1)
	s1.Add(&y.C0, &y.C1)
	t.Mul(&s0, &s1).
		Sub(&t, &t0).
		Sub(&t, &t1)
	t1.MulByNonResidue(&t1)
	z.C0.Add(&t0, &t1)
	z.C1.Set(&t)
	return z
}

// Square z = x * x
func (z *E12) Square(x *E12) *E12 {
	return z.Mul(x, x)
}

// Conjugate z = C0 - C1·w; for x in E12 this is x^(p⁶).
func (z *E12) Conjugate(x *E12) *E12 {
	z.C0.Set(&x.C0)
	z.C1.Neg(&x.C1)
	return z
}

// Inverse z = x⁻¹: (a+bw)⁻¹ = (a-bw)/(a²-b²·v).
// The zero element maps to zero.
func (z *E12) Inverse(x *E12) *E12 {
	var t0, t1 E6
	t0.Square(&x.C0)
	t1.Square(&x.C1).MulByNonResidue(&t1)
	t0.Sub(&t0, &t1)
	if t0.IsZero() {
		return z.SetZero()
	}
	t0.Inverse(&t0)
	z.C0.Mul(&x.C0, &t0)
	var nc1 E6
	nc1.Neg(&x.C1)
	z.C1.Mul(&nc1, &t0)
	return z
}

// Exp z = x**k, k ≥ 0, iterative square-and-multiply over the bits of k.
func (z *E12) Exp(x E12, k *big.Int) *E12 {
	if k.Sign() < 0 {
		panic("bn254.E12.Exp: negative exponent")
	}
	var base E12
	base.Set(&x) // fresh storage, z may alias x
	z.SetOne()
	for i := k.BitLen() - 1; i >= 0; i-- {
		z.Square(z)
		if k.Bit(i) == 1 {
			z.Mul(z, &base)
		}
	}
	return z
}

// Frobenius z = x^p, computed coefficient-wise: conjugation on each E2
// coordinate followed by multiplication with the precomputed γ constants
// (powers of ξ).
func (z *E12) Frobenius(x *E12) *E12 {
	var b0, b1, b2, c0, c1, c2 E2

	b0.Conjugate(&x.C0.B0)
	b1.Conjugate(&x.C0.B1).Mul(&b1, &gamma11)
	b2.Conjugate(&x.C0.B2).Mul(&b2, &gamma12)

	c0.Conjugate(&x.C1.B0).Mul(&c0, &gamma13)
	c1.Conjugate(&x.C1.B1).Mul(&c1, &gamma11).Mul(&c1, &gamma13)
	c2.Conjugate(&x.C1.B2).Mul(&c2, &gamma12).Mul(&c2, &gamma13)

	z.C0.B0.Set(&b0)
	z.C0.B1.Set(&b1)
	z.C0.B2.Set(&b2)
	z.C1.B0.Set(&c0)
	z.C1.B1.Set(&c1)
	z.C1.B2.Set(&c2)
	return z
}

// FrobeniusSquare z = x^(p²). Conjugation squared is the identity on E2,
// so only the γ factors remain (and they live in 𝔽p).
func (z *E12) FrobeniusSquare(x *E12) *E12 {
	var b1, b2, c0, c1, c2 E2

	b1.Mul(&x.C0.B1, &gamma21)
	b2.Mul(&x.C0.B2, &gamma22)

	c0.Mul(&x.C1.B0, &gamma23)
	c1.Mul(&x.C1.B1, &gamma21).Mul(&c1, &gamma23)
	c2.Mul(&x.C1.B2, &gamma22).Mul(&c2, &gamma23)

	z.C0.B0.Set(&x.C0.B0)
	z.C0.B1.Set(&b1)
	z.C0.B2.Set(&b2)
	z.C1.B0.Set(&c0)
	z.C1.B1.Set(&c1)
	z.C1.B2.Set(&c2)
	return z
}

func (z *E12) String() string {
	return "(" + z.C0.String() + ")+(" + z.C1.String() + ")*w"
}

// Frobenius constants for the tower maps. A monomial c·wᵏ of 𝔽p¹² picks
// up the factor ξ^(k(pⁱ-1)/6) under x ↦ x^(pⁱ); the even w-powers are the
// v-slots (k = 2j) and the odd ones the v·w-slots (k = 2j+1), so every
// factor is a product of the three generators below.
var (
	// ξ^(2(p-1)/6), the factor of v
	gamma11 = e2FromStrings(
		"21575463638280843010398324269430826099269044274347216827212613867836435027261",
		"10307601595873709700152284273816112264069230130616436755625194854815875713954")
	// ξ^(4(p-1)/6), the factor of v²
	gamma12 = e2FromStrings(
		"2581911344467009335267311115468803099551665605076196740867805258568234346338",
		"19937756971775647987995932169929341994314640652964949448313374472400716661030")
	// ξ^((p-1)/6), the factor of w
	gamma13 = e2FromStrings(
		"8376118865763821496583973867626364092589906065868298776909617916018768340080",
		"16469823323077808223889137241176536799009286646108169935659301613961712198316")
	// ξ^(2(p²-1)/6), in 𝔽p
	gamma21 = e2FromStrings(
		"21888242871839275220042445260109153167277707414472061641714758635765020556616",
		"0")
	// ξ^(4(p²-1)/6), in 𝔽p
	gamma22 = e2FromStrings(
		"2203960485148121921418603742825762020974279258880205651966",
		"0")
	// ξ^((p²-1)/6), in 𝔽p
	gamma23 = e2FromStrings(
		"21888242871839275220042445260109153167277707414472061641714758635765020556617",
		"0")
)

func e2FromStrings(a0, a1 string) E2 {
	var e E2
	e.SetString(a0, a1)
	return e
}
