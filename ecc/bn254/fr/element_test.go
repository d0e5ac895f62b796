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

package fr

import (
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

	properties.Property("(a+b)+c == a+(b+c)", prop.ForAll(
		func(a, b, c Element) bool {
			var l, r Element
			l.Add(&a, &b).AddAssign(&c)
			r.Add(&b, &c).AddAssign(&a)
			return l.Equal(&r)
		},
		genElement(), genElement(), genElement(),
	))

	properties.Property("a·(b+c) == a·b + a·c", prop.ForAll(
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

	properties.Property("a - a == 0 and a·a⁻¹ == 1", prop.ForAll(
		func(a Element) bool {
			var d Element
			d.Sub(&a, &a)
			if !d.IsZero() {
				return false
			}
			if a.IsZero() {
				return true
			}
			var inv Element
			if _, err := inv.Inverse(&a); err != nil {
				return false
			}
			return inv.MulAssign(&a).IsOne()
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

	one := One()
	_, err = z.Div(&one, &zero)
	assert.ErrorIs(err, ErrUndefinedInverse)
}

func TestRootOfUnity(t *testing.T) {
	assert := require.New(t)

	w := RootOfUnity()

	// w^(2^MaxOrder) == 1
	var x Element
	exp := new(big.Int).Lsh(big.NewInt(1), MaxOrder)
	x.Exp(w, exp)
	assert.True(x.IsOne())

	// primitive: w^(2^(MaxOrder-1)) == -1
	exp.Rsh(exp, 1)
	x.Exp(w, exp)
	var minusOne Element
	minusOne.SetInt64(-1)
	assert.True(x.Equal(&minusOne))
}
