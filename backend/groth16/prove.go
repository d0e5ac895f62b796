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
	"github.com/consensys/quark/logger"
)

// Prove builds a proof that witness satisfies q, using the proving half
// of the key pair. The witness must span every variable, constant wire
// included; Prove returns ErrMalformedInput on a shape mismatch and
// qap.ErrUnsatisfyingWitness when the witness violates a constraint.
//
// Two blinding scalars r and s are drawn per call, so proofs are not
// deterministic.
func Prove(q *qap.QAP, pk *ProvingKey, witness []fr.Element, opts ...Option) (*Proof, error) {
	log := logger.Logger().With().
		Str("curve", "bn254").
		Str("backend", "groth16").
		Int("nbConstraints", q.NbConstraints).
		Logger()
	start := time.Now()

	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	if len(witness) != q.NbVariables() || len(pk.G1.A) != q.NbVariables() || !witness[0].IsOne() {
		return nil, ErrMalformedInput
	}

	// H = (A·B - C)/Z; fails exactly when the witness is unsatisfying
	h, err := q.WitnessQuotient(witness)
	if err != nil {
		return nil, err
	}
	hCoeffs := make([]fr.Element, len(pk.G1.Z))
	d := h.Degree()
	if d >= len(hCoeffs) {
		return nil, ErrMalformedInput
	}
	for i := 0; i <= d; i++ {
		hCoeffs[i].Set(&h[i])
	}

	// blinding
	var r, s fr.Element
	if _, err := r.SetRandom(cfg.rand); err != nil {
		return nil, err
	}
	if _, err := s.SetRandom(cfg.rand); err != nil {
		return nil, err
	}

	proof := &Proof{}

	// Ar = α + Σ wᵢ·Aᵢ(τ) + r·δ, in G1
	var t1 bn254.G1Affine
	proof.Ar = msmG1(pk.G1.A, witness)
	proof.Ar.Add(&proof.Ar, &pk.G1.Alpha)
	t1.ScalarMulFr(&pk.G1.Delta, &r)
	proof.Ar.Add(&proof.Ar, &t1)

	// Bs = β + Σ wᵢ·Bᵢ(τ) + s·δ, in G2; the same combination is needed
	// in G1 to fold the blinding into Krs
	var t2 bn254.G2Affine
	proof.Bs = msmG2(pk.G2.B, witness)
	proof.Bs.Add(&proof.Bs, &pk.G2.Beta)
	t2.ScalarMulFr(&pk.G2.Delta, &s)
	proof.Bs.Add(&proof.Bs, &t2)

	bs1 := msmG1(pk.G1.B, witness)
	bs1.Add(&bs1, &pk.G1.Beta)
	t1.ScalarMulFr(&pk.G1.Delta, &s)
	bs1.Add(&bs1, &t1)

	// Krs = Σ_priv wᵢ·Kᵢ + Σ hⱼ·τʲZ(τ)/δ + s·Ar + r·Bs1 - rs·δ
	// (public K slots are infinity, so the first sum can span the witness)
	proof.Krs = msmG1(pk.G1.K, witness)
	t1 = msmG1(pk.G1.Z, hCoeffs)
	proof.Krs.Add(&proof.Krs, &t1)
	t1.ScalarMulFr(&proof.Ar, &s)
	proof.Krs.Add(&proof.Krs, &t1)
	t1.ScalarMulFr(&bs1, &r)
	proof.Krs.Add(&proof.Krs, &t1)
	var rs fr.Element
	rs.Mul(&r, &s)
	t1.ScalarMulFr(&pk.G1.Delta, &rs)
	t1.Neg(&t1)
	proof.Krs.Add(&proof.Krs, &t1)

	r.SetZero()
	s.SetZero()
	rs.SetZero()

	log.Debug().Dur("took", time.Since(start)).Msg("prover done")
	return proof, nil
}
