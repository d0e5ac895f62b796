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

package fp

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func genElement() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		var e Element
		v := new(big.Int).Rand(genParams.Rng, Modulus())
		e.SetBigInt(v)
		return gopter.NewGenResult(e, gopter.NoShrinker)
	}
}

func TestElementFieldLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("addition is commutative", prop.ForAll(
		func(a, b Element) bool {
			var ab, ba Element
			ab.Add(&a, &b)
			ba.Add(&b, &a)
			return ab.Equal(&ba)
		},
		genElement(), genElement(),
	))

	properties.Property("multiplication is commutative", prop.ForAll(
		func(a, b Element) bool {
			var ab, ba Element
			ab.Mul(&a, &b)
			ba.Mul(&b, &a)
			return ab.Equal(&ba)
		},
		genElement(), genElement(),
	))

	properties.Property("multiplication is associative", prop.ForAll(
		func(a, b, c Element) bool {
			var l, r Element
			l.Mul(&a, &b).MulAssign(&c)
			r.Mul(&b, &c).MulAssign(&a)
			return l.Equal(&r)
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("multiplication distributes over addition", prop.ForAll(
		func(a, b, c Element) bool {
			var l, r, t Element
			l.Add(&b, &c).MulAssign(&a)
			r.Mul(&a, &b)
			t.Mul(&a, &c)
			r.AddAssign(&t)
			return l.Equal(&r)
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("a + (-a) == 0", prop.ForAll(
		func(a Element) bool {
			var na, s Element
			na.Neg(&a)
			s.Add(&a, &na)
			return s.IsZero()
		},
		genElement(),
	))

	properties.Property("a * a⁻¹ == 1 for a != 0", prop.ForAll(
		func(a Element) bool {
			if a.IsZero() {
				return true
			}
			var inv Element
			if _, err := inv.Inverse(&a); err != nil {
				return false
			}
			inv.MulAssign(&a)
			return inv.IsOne()
		},
		genElement(),
	))

	properties.Property("square matches self-multiplication", prop.ForAll(
		func(a Element) bool {
			var sq, mul Element
			sq.Square(&a)
			mul.Mul(&a, &a)
			return sq.Equal(&mul)
		},
		genElement(),
	))

	properties.Property("double negation is the identity", prop.ForAll(
		func(a Element) bool {
			var nn Element
			nn.Neg(&a).Neg(&nn)
			return nn.Equal(&a)
		},
		genElement(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestElementInverseZero(t *testing.T) {
	assert := require.New(t)

	var zero, z Element
	_, err := z.Inverse(&zero)
	assert.ErrorIs(err, ErrUndefinedInverse)

	var one Element
	one.SetOne()
	_, err = z.Div(&one, &zero)
	assert.ErrorIs(err, ErrUndefinedInverse)
}

func TestElementExp(t *testing.T) {
	assert := require.New(t)

	// Fermat: a^(p-1) == 1 for a != 0
	var a Element
	_, err := a.SetRandom(rand.Reader)
	assert.NoError(err)
	if a.IsZero() {
		a.SetOne()
	}
	exp := new(big.Int).Sub(Modulus(), big.NewInt(1))
	var r Element
	r.Exp(a, exp)
	assert.True(r.IsOne(), "a^(p-1) != 1")

	// aliasing: z.Exp(*z, k)
	var b Element
	b.SetUint64(7)
	b.Exp(b, big.NewInt(3))
	assert.Equal("343", b.String())
}

func TestElementSqrt(t *testing.T) {
	assert := require.New(t)

	var a, sq Element
	_, err := a.SetRandom(rand.Reader)
	assert.NoError(err)
	sq.Square(&a)

	var root Element
	assert.NotNil(root.Sqrt(&sq))
	var check Element
	check.Square(&root)
	assert.True(check.Equal(&sq))

	assert.Equal(1, sq.Legendre())

	// a quadratic non-residue has no root
	one := One()
	var nqr Element
	nqr.SetUint64(2)
	for nqr.Legendre() != -1 {
		nqr.AddAssign(&one)
	}
	assert.Nil(root.Sqrt(&nqr))
}

func TestElementReduction(t *testing.T) {
	assert := require.New(t)

	// p reduces to zero
	var e Element
	e.SetBigInt(Modulus())
	assert.True(e.IsZero())

	// negative values land in [0, p)
	e.SetBigInt(big.NewInt(-1))
	var expected Element
	expected.SetBigInt(new(big.Int).Sub(Modulus(), big.NewInt(1)))
	assert.True(e.Equal(&expected))
}
