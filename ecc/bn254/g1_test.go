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

func randomG1(t *testing.T) G1Affine {
	t.Helper()
	k, err := rand.Int(rand.Reader, Order())
	require.NoError(t, err)
	var p G1Affine
	p.ScalarMulGen(k)
	return p
}

func TestG1Generator(t *testing.T) {
	assert := require.New(t)

	g := G1Gen()
	assert.True(g.IsOnCurve())
	assert.True(g.IsInSubgroup())

	// [r]g == O
	var p G1Affine
	p.ScalarMul(&g, Order())
	assert.True(p.IsInfinity())
}

func TestG1GroupLaws(t *testing.T) {
	assert := require.New(t)

	p := randomG1(t)
	q := randomG1(t)

	// commutativity
	var pq, qp G1Affine
	pq.Add(&p, &q)
	qp.Add(&q, &p)
	assert.True(pq.Equal(&qp))
	assert.True(pq.IsOnCurve())

	// identity
	var inf, s G1Affine
	inf.SetInfinity()
	s.Add(&p, &inf)
	assert.True(s.Equal(&p))

	// inverse
	var np G1Affine
	np.Neg(&p)
	s.Add(&p, &np)
	assert.True(s.IsInfinity())

	// doubling vs addition
	var d, a G1Affine
	d.Double(&p)
	a.Add(&p, &p)
	assert.True(d.Equal(&a))
}

func TestG1ScalarMul(t *testing.T) {
	assert := require.New(t)

	p := randomG1(t)

	// [a+b]P == [a]P + [b]P
	a, err := rand.Int(rand.Reader, Order())
	assert.NoError(err)
	b, err := rand.Int(rand.Reader, Order())
	assert.NoError(err)

	var lhs, pa, pb, rhs G1Affine
	lhs.ScalarMul(&p, new(big.Int).Add(a, b))
	pa.ScalarMul(&p, a)
	pb.ScalarMul(&p, b)
	rhs.Add(&pa, &pb)
	assert.True(lhs.Equal(&rhs))

	// [0]P == O, [1]P == P
	var z G1Affine
	z.ScalarMul(&p, big.NewInt(0))
	assert.True(z.IsInfinity())
	z.ScalarMul(&p, big.NewInt(1))
	assert.True(z.Equal(&p))
}

func TestG1SetCoordinates(t *testing.T) {
	assert := require.New(t)

	g := G1Gen()
	var p G1Affine
	_, err := p.SetCoordinates(&g.X, &g.Y)
	assert.NoError(err)
	assert.True(p.Equal(&g))

	// off-curve coordinates are rejected and leave p untouched
	var bad fp.Element
	bad.SetUint64(42)
	_, err = p.SetCoordinates(&bad, &bad)
	assert.ErrorIs(err, ErrInvalidPoint)
	assert.True(p.Equal(&g))
}
