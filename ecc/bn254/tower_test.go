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
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/consensys/quark/ecc/bn254/fp"
)

func randomE2(t *testing.T) E2 {
	t.Helper()
	var e E2
	for _, c := range []*fp.Element{&e.A0, &e.A1} {
		if _, err := c.SetRandom(rand.Reader); err != nil {
			t.Fatal(err)
		}
	}
	return e
}

func randomE6(t *testing.T) E6 {
	t.Helper()
	var e E6
	e.B0 = randomE2(t)
	e.B1 = randomE2(t)
	e.B2 = randomE2(t)
	return e
}

func randomE12(t *testing.T) E12 {
	t.Helper()
	var e E12
	e.C0 = randomE6(t)
	e.C1 = randomE6(t)
	return e
}

func TestE2Inverse(t *testing.T) {
	assert := require.New(t)

	a := randomE2(t)
	var inv, prod, one E2
	inv.Inverse(&a)
	prod.Mul(&a, &inv)
	one.SetOne()
	assert.True(prod.Equal(&one))

	// zero maps to zero
	var zero E2
	inv.Inverse(&zero)
	assert.True(inv.IsZero())
}

func TestE2MulByNonResidue(t *testing.T) {
	assert := require.New(t)

	// ξ·a must match the generic product (9+u)·a
	a := randomE2(t)
	var xi, want, got E2
	xi.SetString("9", "1")
	want.Mul(&xi, &a)
	got.MulByNonResidue(&a)
	assert.True(want.Equal(&got))
}

func TestE6Inverse(t *testing.T) {
	assert := require.New(t)

	a := randomE6(t)
	var inv, prod, one E6
	inv.Inverse(&a)
	prod.Mul(&a, &inv)
	one.SetOne()
	assert.True(prod.Equal(&one))
}

func TestE6MulByNonResidue(t *testing.T) {
	assert := require.New(t)

	// v·a must match the generic product by the monomial v
	a := randomE6(t)
	var v E6
	v.B1.SetOne()
	var want, got E6
	want.Mul(&v, &a)
	got.MulByNonResidue(&a)
	assert.True(want.Equal(&got))
}

func TestE12Inverse(t *testing.T) {
	assert := require.New(t)

	a := randomE12(t)
	var inv, prod, one E12
	inv.Inverse(&a)
	prod.Mul(&a, &inv)
	one.SetOne()
	assert.True(prod.Equal(&one))
}

func TestE12Frobenius(t *testing.T) {
	assert := require.New(t)

	a := randomE12(t)
	p := fp.Modulus()

	// the coefficient-wise map must agree with a plain exponentiation
	var viaGamma, viaExp E12
	viaGamma.Frobenius(&a)
	viaExp.Exp(a, p)
	assert.True(viaGamma.Equal(&viaExp), "Frobenius != x^p")

	var sq, frobTwice E12
	sq.FrobeniusSquare(&a)
	frobTwice.Frobenius(&a)
	frobTwice.Frobenius(&frobTwice)
	assert.True(sq.Equal(&frobTwice), "FrobeniusSquare != Frobenius²")
}

func TestE12TowerConsistency(t *testing.T) {
	assert := require.New(t)

	// w⁶ == ξ = 9+u
	var w, w6 E12
	w.C1.B0.SetOne()
	w6.Exp(w, big.NewInt(6))

	var xi E12
	xi.C0.B0.SetString("9", "1")
	assert.True(w6.Equal(&xi))

	// conjugation is the p⁶ power map: (a·conj(a)) lands in the even part
	a := randomE12(t)
	var conj, norm E12
	conj.Conjugate(&a)
	norm.Mul(&a, &conj)
	assert.True(norm.C1.IsZero())
}
