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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAteLoopCounter(t *testing.T) {
	assert := require.New(t)

	// 6x+2 for x = 4965661367192848881; the value exceeds 64 bits
	want, ok := new(big.Int).SetString("29793968203157093288", 10)
	assert.True(ok)
	assert.Zero(ateLoopCounter.Cmp(want))
	assert.Equal(65, ateLoopCounter.BitLen())
}

func TestPairingNonDegenerate(t *testing.T) {
	assert := require.New(t)

	g1 := G1Gen()
	g2 := G2Gen()

	e, err := Pair([]G1Affine{g1}, []G2Affine{g2})
	assert.NoError(err)
	assert.False(e.IsOne(), "e(g1, g2) must not be the identity")
	assert.False(e.IsZero())

	// e(g1, g2)^r == 1: the image lives in the order-r subgroup
	var er GT
	er.Exp(e, Order())
	assert.True(er.IsOne())
}

func TestPairingBilinear(t *testing.T) {
	assert := require.New(t)

	g1 := G1Gen()
	g2 := G2Gen()

	// e([3]P, [5]Q) == e(P, Q)^15
	var p3 G1Affine
	p3.ScalarMul(&g1, big.NewInt(3))
	var q5 G2Affine
	q5.ScalarMul(&g2, big.NewInt(5))

	lhs, err := Pair([]G1Affine{p3}, []G2Affine{q5})
	assert.NoError(err)

	base, err := Pair([]G1Affine{g1}, []G2Affine{g2})
	assert.NoError(err)
	var rhs GT
	rhs.Exp(base, big.NewInt(15))

	assert.True(lhs.Equal(&rhs), "pairing is not bilinear")

	// e(P+P', Q) == e(P, Q)·e(P', Q)
	var p2 G1Affine
	p2.Double(&g1)
	var sum G1Affine
	sum.Add(&g1, &p2)

	left, err := Pair([]G1Affine{sum}, []G2Affine{g2})
	assert.NoError(err)
	// the multi-pair form shares the final exponentiation
	right, err := Pair([]G1Affine{g1, p2}, []G2Affine{g2, g2})
	assert.NoError(err)
	assert.True(left.Equal(&right))
}

func TestPairingIdentity(t *testing.T) {
	assert := require.New(t)

	g1 := G1Gen()
	g2 := G2Gen()
	var inf1 G1Affine
	inf1.SetInfinity()
	var inf2 G2Affine
	inf2.SetInfinity()

	e, err := Pair([]G1Affine{inf1}, []G2Affine{g2})
	assert.NoError(err)
	assert.True(e.IsOne())

	e, err = Pair([]G1Affine{g1}, []G2Affine{inf2})
	assert.NoError(err)
	assert.True(e.IsOne())
}

func TestPairingInvalidInput(t *testing.T) {
	assert := require.New(t)

	g2 := G2Gen()
	var bad G1Affine
	bad.X.SetUint64(42)
	bad.Y.SetUint64(17)

	_, err := Pair([]G1Affine{bad}, []G2Affine{g2})
	assert.ErrorIs(err, ErrInvalidPoint)

	_, err = MillerLoop([]G1Affine{G1Gen()}, nil)
	assert.ErrorIs(err, ErrInvalidPoint)
}

func TestPairingCheck(t *testing.T) {
	assert := require.New(t)

	g1 := G1Gen()
	g2 := G2Gen()

	// e(P, Q)·e(-P, Q) == 1
	var np G1Affine
	np.Neg(&g1)
	ok, err := PairingCheck([]G1Affine{g1, np}, []G2Affine{g2, g2})
	assert.NoError(err)
	assert.True(ok)

	ok, err = PairingCheck([]G1Affine{g1}, []G2Affine{g2})
	assert.NoError(err)
	assert.False(ok)
}
