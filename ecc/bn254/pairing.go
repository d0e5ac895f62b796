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

// GT is the target group of the pairing, the subgroup of order r of 𝔽p¹²*.
type GT = E12

// pointE12 is a point of E(𝔽p¹²) in affine coordinates, used to run the
// Miller loop on untwisted G2 points. Infinity is never reached here: the
// accumulator stays in <Ψ(Q)> and the loop count is below the group order.
type pointE12 struct {
	x, y E12
}

// untwist applies Ψ: E'(𝔽p²) → E(𝔽p¹²), (x, y) ↦ (x·w², y·w³).
// Since w² = v and w³ = v·w, the coordinates land in single tower slots.
func untwist(p *pointE12, q *G2Affine) {
	p.x.SetZero()
	p.x.C0.B1.Set(&q.X)
	p.y.SetZero()
	p.y.C1.B1.Set(&q.Y)
}

// fromG1 embeds a G1 point into E(𝔽p¹²) through 𝔽p ⊂ 𝔽p¹².
func fromG1(p *pointE12, a *G1Affine) {
	p.x.SetZero()
	p.x.C0.B0.A0.Set(&a.X)
	p.y.SetZero()
	p.y.C0.B0.A0.Set(&a.Y)
}

// lineEval evaluates at p the line through t and q (tangent at t when the
// points coincide, vertical when they mirror) and accumulates it into f.
func lineEval(f *E12, t, q, p *pointE12) {
	var num, den, l E12

	switch {
	case !t.x.Equal(&q.x):
		// chord
		num.Sub(&q.y, &t.y)
		den.Sub(&q.x, &t.x)
	case t.y.Equal(&q.y):
		// tangent: 3x²/2y
		num.Square(&t.x)
		var three E12
		three.Add(&num, &num).Add(&three, &num)
		num.Set(&three)
		den.Add(&t.y, &t.y)
	default:
		// vertical
		l.Sub(&p.x, &t.x)
		f.Mul(f, &l)
		return
	}

	// l = m(x_p - x_t) - (y_p - y_t)
	var m, u E12
	m.Mul(&num, den.Inverse(&den))
	l.Sub(&p.x, &t.x).Mul(&l, &m)
	u.Sub(&p.y, &t.y)
	l.Sub(&l, &u)
	f.Mul(f, &l)
}

// addStep t = t + q on E(𝔽p¹²), chord law. The operands are distinct
// non-mirror points throughout the Miller loop.
func addStep(t, q *pointE12) {
	var lambda, den, x3, y3 E12
	lambda.Sub(&q.y, &t.y)
	den.Sub(&q.x, &t.x)
	lambda.Mul(&lambda, den.Inverse(&den))

	x3.Square(&lambda).Sub(&x3, &t.x).Sub(&x3, &q.x)
	y3.Sub(&t.x, &x3).Mul(&y3, &lambda).Sub(&y3, &t.y)
	t.x.Set(&x3)
	t.y.Set(&y3)
}

// doubleStep t = 2t on E(𝔽p¹²), tangent law.
func doubleStep(t *pointE12) {
	var lambda, den, x3, y3 E12
	lambda.Square(&t.x)
	var three E12
	three.Add(&lambda, &lambda).Add(&three, &lambda)
	den.Add(&t.y, &t.y)
	lambda.Mul(&three, den.Inverse(&den))

	x3.Square(&lambda).Sub(&x3, &t.x).Sub(&x3, &t.x)
	y3.Sub(&t.x, &x3).Mul(&y3, &lambda).Sub(&y3, &t.y)
	t.x.Set(&x3)
	t.y.Set(&y3)
}

// MillerLoop computes the product of optimal ate Miller functions
// ∏ f_{6x+2,Q[i]}(P[i]), including the two Frobenius line corrections.
// Pairs with an infinity operand contribute the neutral factor 1.
// It returns ErrInvalidPoint if some input is not on its curve.
func MillerLoop(P []G1Affine, Q []G2Affine) (GT, error) {
	var f GT
	f.SetOne()
	if len(P) != len(Q) {
		return f, ErrInvalidPoint
	}
	for k := range P {
		if !P[k].IsOnCurve() || !Q[k].IsOnCurve() {
			return f, ErrInvalidPoint
		}
	}

	for k := range P {
		if P[k].IsInfinity() || Q[k].IsInfinity() {
			continue
		}

		var p, q, t pointE12
		fromG1(&p, &P[k])
		untwist(&q, &Q[k])
		t.x.Set(&q.x)
		t.y.Set(&q.y)

		var fk GT
		fk.SetOne()
		for i := ateLoopCounter.BitLen() - 2; i >= 0; i-- {
			fk.Square(&fk)
			lineEval(&fk, &t, &t, &p)
			doubleStep(&t)
			if ateLoopCounter.Bit(i) == 1 {
				lineEval(&fk, &t, &q, &p)
				addStep(&t, &q)
			}
		}

		// Frobenius corrections: Q1 = π(Q), Q2 = -π²(Q)
		var q1, q2 pointE12
		q1.x.Frobenius(&q.x)
		q1.y.Frobenius(&q.y)
		q2.x.FrobeniusSquare(&q.x)
		q2.y.FrobeniusSquare(&q.y).Neg(&q2.y)

		lineEval(&fk, &t, &q1, &p)
		addStep(&t, &q1)
		lineEval(&fk, &t, &q2, &p)

		f.Mul(&f, &fk)
	}
	return f, nil
}

// FinalExponentiation raises the product of z and _z to (p¹²-1)/r, mapping
// Miller loop outputs into GT. The easy part (p⁶-1)(p²+1) uses conjugation
// and Frobenius; the hard part (p⁴-p²+1)/r is a plain exponentiation.
func FinalExponentiation(z *GT, _z ...*GT) GT {
	var result GT
	result.Set(z)
	for _, e := range _z {
		result.Mul(&result, e)
	}

	// easy part: z^((p⁶-1)(p²+1))
	var t0, t1 GT
	t0.Conjugate(&result)
	t1.Inverse(&result)
	result.Mul(&t0, &t1)
	t0.FrobeniusSquare(&result)
	result.Mul(&t0, &result)

	// hard part
	result.Exp(result, finalExpHard)
	return result
}

// Pair computes the product of pairings ∏ e(P[i], Q[i]).
func Pair(P []G1Affine, Q []G2Affine) (GT, error) {
	f, err := MillerLoop(P, Q)
	if err != nil {
		return f, err
	}
	return FinalExponentiation(&f), nil
}

// PairingCheck returns true if ∏ e(P[i], Q[i]) == 1.
func PairingCheck(P []G1Affine, Q []G2Affine) (bool, error) {
	f, err := Pair(P, Q)
	if err != nil {
		return false, err
	}
	return f.IsOne(), nil
}
