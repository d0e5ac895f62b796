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
)

func randomG2(t *testing.T) G2Affine {
	t.Helper()
	k, err := rand.Int(rand.Reader, Order())
	require.NoError(t, err)
	var p G2Affine
	p.ScalarMulGen(k)
	return p
}

func TestG2Generator(t *testing.T) {
	assert := require.New(t)

	g := G2Gen()
	assert.True(g.IsOnCurve())
	assert.True(g.IsInSubgroup())

	var p G2Affine
	p.ScalarMul(&g, Order())
	assert.True(p.IsInfinity())
}

func TestG2GroupLaws(t *testing.T) {
	assert := require.New(t)

	p := randomG2(t)
	q := randomG2(t)

	var pq, qp G2Affine
	pq.Add(&p, &q)
	qp.Add(&q, &p)
	assert.True(pq.Equal(&qp))
	assert.True(pq.IsOnCurve())

	var inf, s G2Affine
	inf.SetInfinity()
	s.Add(&inf, &p)
	assert.True(s.Equal(&p))

	var np G2Affine
	np.Neg(&p)
	s.Add(&p, &np)
	assert.True(s.IsInfinity())

	var d, a G2Affine
	d.Double(&p)
	a.Add(&p, &p)
	assert.True(d.Equal(&a))
}

func TestG2ScalarMul(t *testing.T) {
	assert := require.New(t)

	p := randomG2(t)

	a, err := rand.Int(rand.Reader, Order())
	assert.NoError(err)
	b, err := rand.Int(rand.Reader, Order())
	assert.NoError(err)

	var lhs, pa, pb, rhs G2Affine
	lhs.ScalarMul(&p, new(big.Int).Add(a, b))
	pa.ScalarMul(&p, a)
	pb.ScalarMul(&p, b)
	rhs.Add(&pa, &pb)
	assert.True(lhs.Equal(&rhs))
}

func TestG2SetCoordinates(t *testing.T) {
	assert := require.New(t)

	g := G2Gen()
	var p G2Affine
	_, err := p.SetCoordinates(&g.X, &g.Y)
	assert.NoError(err)
	assert.True(p.Equal(&g))

	var bad E2
	bad.SetString("42", "17")
	_, err = p.SetCoordinates(&bad, &bad)
	assert.ErrorIs(err, ErrInvalidPoint)
}
