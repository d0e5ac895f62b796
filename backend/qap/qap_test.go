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

package qap

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/consensys/quark/backend/r1cs"
	"github.com/consensys/quark/ecc/bn254/fr"
)

// cubicSystem builds x³ + x + 5 = out over the wires
// (1, x, out, x², x³), with out public.
func cubicSystem() *r1cs.R1CS {
	cs := r1cs.New(5)
	cs.MarkPublic(2)
	one := fr.One()
	five := fr.NewElement(5)

	cs.AddConstraint(
		r1cs.LinearCombination{r1cs.NewTerm(1, one)},
		r1cs.LinearCombination{r1cs.NewTerm(1, one)},
		r1cs.LinearCombination{r1cs.NewTerm(3, one)},
	)
	cs.AddConstraint(
		r1cs.LinearCombination{r1cs.NewTerm(3, one)},
		r1cs.LinearCombination{r1cs.NewTerm(1, one)},
		r1cs.LinearCombination{r1cs.NewTerm(4, one)},
	)
	cs.AddConstraint(
		r1cs.LinearCombination{
			r1cs.NewTerm(4, one),
			r1cs.NewTerm(1, one),
			r1cs.NewTerm(0, five),
		},
		r1cs.LinearCombination{r1cs.NewTerm(0, one)},
		r1cs.LinearCombination{r1cs.NewTerm(2, one)},
	)
	return cs
}

func cubicWitness(x uint64, out uint64) []fr.Element {
	w := make([]fr.Element, 5)
	w[0].SetOne()
	w[1].SetUint64(x)
	w[2].SetUint64(out)
	w[3].SetUint64(x * x)
	w[4].SetUint64(x * x * x)
	return w
}

func TestBuildMatchesConstraints(t *testing.T) {
	assert := require.New(t)

	cs := cubicSystem()
	q, err := Build(cs)
	assert.NoError(err)
	assert.Equal(cs.NbConstraints(), q.NbConstraints)
	assert.Equal(cs.NbVariables(), q.NbVariables())
	assert.Empty(cmp.Diff([]int{0, 2}, q.Public))

	// at evaluation point i, the interpolated polynomials reproduce the
	// i-th constraint row
	w := cubicWitness(3, 35)
	a, b, c := q.Combine(w)
	for i, constraint := range cs.Constraints() {
		var pt fr.Element
		pt.SetUint64(uint64(i))
		av := a.Eval(&pt)
		bv := b.Eval(&pt)
		cv := c.Eval(&pt)

		lv := constraint.L.Evaluate(w)
		rv := constraint.R.Evaluate(w)
		ov := constraint.O.Evaluate(w)
		assert.True(av.Equal(&lv))
		assert.True(bv.Equal(&rv))
		assert.True(cv.Equal(&ov))
	}

	// Z vanishes exactly on the evaluation points
	for i := 0; i < q.NbConstraints; i++ {
		var pt fr.Element
		pt.SetUint64(uint64(i))
		zv := q.Z.Eval(&pt)
		assert.True(zv.IsZero())
	}
	var pt fr.Element
	pt.SetUint64(uint64(q.NbConstraints))
	zv := q.Z.Eval(&pt)
	assert.False(zv.IsZero())
}

func TestWitnessQuotient(t *testing.T) {
	assert := require.New(t)

	q, err := Build(cubicSystem())
	assert.NoError(err)

	// satisfying witness: Z | A·B - C
	w := cubicWitness(3, 35)
	h, err := q.WitnessQuotient(w)
	assert.NoError(err)

	a, b, c := q.Combine(w)
	recomposed := h.Mul(q.Z).Add(c)
	assert.True(recomposed.Equal(a.Mul(b)))

	// unsatisfying witness: non-zero remainder
	_, err = q.WitnessQuotient(cubicWitness(4, 35))
	assert.ErrorIs(err, ErrUnsatisfyingWitness)

	// wrong shape
	_, err = q.WitnessQuotient(w[:3])
	assert.ErrorIs(err, r1cs.ErrInvalidWitness)
}

func TestBuildEmptySystem(t *testing.T) {
	assert := require.New(t)

	_, err := Build(r1cs.New(1))
	assert.ErrorIs(err, ErrEmptySystem)
}

func TestEvaluateAt(t *testing.T) {
	assert := require.New(t)

	q, err := Build(cubicSystem())
	assert.NoError(err)

	var tau fr.Element
	tau.SetUint64(987654321)
	a, b, c, z := q.EvaluateAt(&tau)
	assert.Len(a, q.NbVariables())

	for j := 0; j < q.NbVariables(); j++ {
		av := q.A[j].Eval(&tau)
		bv := q.B[j].Eval(&tau)
		cv := q.C[j].Eval(&tau)
		assert.True(a[j].Equal(&av))
		assert.True(b[j].Equal(&bv))
		assert.True(c[j].Equal(&cv))
	}
	zv := q.Z.Eval(&tau)
	assert.True(z.Equal(&zv))
}
