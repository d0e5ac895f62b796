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

package groth16

import (
	"time"

	"github.com/consensys/quark/backend/qap"
	"github.com/consensys/quark/ecc/bn254"
	"github.com/consensys/quark/ecc/bn254/fr"
	"github.com/consensys/quark/internal/pool"
	"github.com/consensys/quark/logger"
)

// ProvingKey holds the G1/G2 commitments the prover combines with its
// witness: per-variable evaluations of the program polynomials at the
// toxic point τ, the powers of τ for the quotient, and the blinding
// anchors α, β, δ.
//
// K is indexed by variable; public slots hold the point at infinity so
// the prover's private linear combination can run over the full witness.
type ProvingKey struct {
	G1 struct {
		Alpha, Beta, Delta bn254.G1Affine
		A, B, K, Z         []bn254.G1Affine
	}
	G2 struct {
		Beta, Delta bn254.G2Affine
		B           []bn254.G2Affine
	}
}

// VerifyingKey is the public counterpart: one G1 point per public
// variable (ascending index, constant wire first), the γ/δ anchors and
// their negations, and the precomputed pairing e(α, β).
type VerifyingKey struct {
	// E = e(α, β), the constant side of the verification equation.
	E bn254.GT

	G1 struct {
		Alpha bn254.G1Affine
		K     []bn254.G1Affine
	}
	G2 struct {
		Beta, Gamma, Delta bn254.G2Affine
		GammaNeg, DeltaNeg bn254.G2Affine
	}
}

// NbPublicInputs returns the number of public inputs the verifier
// expects, constant wire excluded.
func (vk *VerifyingKey) NbPublicInputs() int {
	return len(vk.G1.K) - 1
}

// Setup generates a key pair for q. The toxic scalars α, β, γ, δ, τ are
// drawn from the configured random source, committed to the two source
// groups, and overwritten before returning; no API exposes them.
func Setup(q *qap.QAP, opts ...Option) (*ProvingKey, *VerifyingKey, error) {
	log := logger.Logger().With().
		Str("curve", "bn254").
		Str("backend", "groth16").
		Int("nbConstraints", q.NbConstraints).
		Int("nbVariables", q.NbVariables()).
		Logger()
	start := time.Now()

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, nil, err
	}

	// toxic waste
	var alpha, beta, gamma, delta, tau fr.Element
	for _, s := range []*fr.Element{&alpha, &beta, &gamma, &delta, &tau} {
		if *s, err = sampleNonZero(cfg.rand); err != nil {
			return nil, nil, err
		}
	}

	a, b, c, z := q.EvaluateAt(&tau)

	var gammaInv, deltaInv fr.Element
	if _, err := gammaInv.Inverse(&gamma); err != nil {
		return nil, nil, err
	}
	if _, err := deltaInv.Inverse(&delta); err != nil {
		return nil, nil, err
	}

	n := q.NbVariables()
	isPublic := make([]bool, n)
	for _, i := range q.Public {
		isPublic[i] = true
	}

	// kCoeff[i] = β·Aᵢ(τ) + α·Bᵢ(τ) + Cᵢ(τ), divided by δ (private) or
	// γ (public) before committing.
	kCoeff := make([]fr.Element, n)
	var t fr.Element
	for i := 0; i < n; i++ {
		kCoeff[i].Mul(&beta, &a[i])
		t.Mul(&alpha, &b[i])
		kCoeff[i].AddAssign(&t).AddAssign(&c[i])
	}

	// powers of τ for the quotient: τⁱ·Z(τ)/δ, i = 0..m-2.
	// The quotient of a satisfied m-constraint program has degree ≤ m-2;
	// keep at least one slot for the degenerate single-constraint case.
	nbZ := q.NbConstraints - 1
	if nbZ < 1 {
		nbZ = 1
	}
	zPow := make([]fr.Element, nbZ)
	var zd fr.Element
	zd.Mul(&z, &deltaInv)
	for i := range zPow {
		zPow[i].Set(&zd)
		zd.MulAssign(&tau)
	}

	pk := &ProvingKey{}
	vk := &VerifyingKey{}

	g1 := bn254.G1Gen()
	g2 := bn254.G2Gen()

	pk.G1.Alpha.ScalarMulFr(&g1, &alpha)
	pk.G1.Beta.ScalarMulFr(&g1, &beta)
	pk.G1.Delta.ScalarMulFr(&g1, &delta)
	pk.G2.Beta.ScalarMulFr(&g2, &beta)
	pk.G2.Delta.ScalarMulFr(&g2, &delta)

	vk.G1.Alpha.Set(&pk.G1.Alpha)
	vk.G2.Beta.Set(&pk.G2.Beta)
	vk.G2.Delta.Set(&pk.G2.Delta)
	vk.G2.Gamma.ScalarMulFr(&g2, &gamma)
	vk.G2.GammaNeg.Neg(&vk.G2.Gamma)
	vk.G2.DeltaNeg.Neg(&vk.G2.Delta)

	pk.G1.A = make([]bn254.G1Affine, n)
	pk.G1.B = make([]bn254.G1Affine, n)
	pk.G1.K = make([]bn254.G1Affine, n)
	pk.G2.B = make([]bn254.G2Affine, n)
	pool.Execute(0, n, func(startI, endI int) {
		var s fr.Element
		for i := startI; i < endI; i++ {
			pk.G1.A[i].ScalarMulFr(&g1, &a[i])
			pk.G1.B[i].ScalarMulFr(&g1, &b[i])
			pk.G2.B[i].ScalarMulFr(&g2, &b[i])
			if isPublic[i] {
				pk.G1.K[i].SetInfinity()
				continue
			}
			s.Mul(&kCoeff[i], &deltaInv)
			pk.G1.K[i].ScalarMulFr(&g1, &s)
			s.SetZero()
		}
	})

	vk.G1.K = make([]bn254.G1Affine, len(q.Public))
	for j, idx := range q.Public {
		var s fr.Element
		s.Mul(&kCoeff[idx], &gammaInv)
		vk.G1.K[j].ScalarMulFr(&g1, &s)
		s.SetZero()
	}

	pk.G1.Z = make([]bn254.G1Affine, len(zPow))
	pool.Execute(0, len(zPow), func(startI, endI int) {
		for i := startI; i < endI; i++ {
			pk.G1.Z[i].ScalarMulFr(&g1, &zPow[i])
		}
	})

	// e(α, β)
	ml, err := bn254.MillerLoop(
		[]bn254.G1Affine{pk.G1.Alpha},
		[]bn254.G2Affine{pk.G2.Beta})
	if err != nil {
		return nil, nil, err
	}
	vk.E = bn254.FinalExponentiation(&ml)

	// wipe the toxic scalars and everything derived from them
	for _, s := range []*fr.Element{&alpha, &beta, &gamma, &delta, &tau, &gammaInv, &deltaInv, &zd} {
		s.SetZero()
	}
	for i := range kCoeff {
		kCoeff[i].SetZero()
	}
	for i := range zPow {
		zPow[i].SetZero()
	}
	for i := range a {
		a[i].SetZero()
		b[i].SetZero()
		c[i].SetZero()
	}
	z.SetZero()

	log.Debug().Dur("took", time.Since(start)).Msg("setup done")
	return pk, vk, nil
}
