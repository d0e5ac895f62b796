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

	"golang.org/x/sync/errgroup"

	"github.com/consensys/quark/ecc/bn254"
	"github.com/consensys/quark/ecc/bn254/fr"
	"github.com/consensys/quark/logger"
)

// Verify checks proof against the public inputs, constant wire excluded
// and ordered by ascending variable index. It returns nil for a valid
// proof, ErrInvalidProof when the pairing equation fails,
// ErrMalformedInput on an arity mismatch and bn254.ErrInvalidPoint when
// a proof point is off-curve or outside its prime-order group.
//
// The three Miller loops of e(Ar,Bs)·e(acc,-γ)·e(Krs,-δ) are independent
// and run concurrently; a single final exponentiation folds them.
func Verify(proof *Proof, vk *VerifyingKey, publicInputs []fr.Element) error {
	log := logger.Logger().With().
		Str("curve", "bn254").
		Str("backend", "groth16").
		Logger()
	start := time.Now()

	if len(publicInputs) != vk.NbPublicInputs() {
		return ErrMalformedInput
	}
	if !proof.isWellFormed() {
		return bn254.ErrInvalidPoint
	}

	// acc = K₀ + Σ xⱼ·Kⱼ₊₁
	var acc, t bn254.G1Affine
	acc.Set(&vk.G1.K[0])
	for j := range publicInputs {
		t.ScalarMulFr(&vk.G1.K[j+1], &publicInputs[j])
		acc.Add(&acc, &t)
	}

	pairs := [3]struct {
		p bn254.G1Affine
		q bn254.G2Affine
	}{
		{proof.Ar, proof.Bs},
		{acc, vk.G2.GammaNeg},
		{proof.Krs, vk.G2.DeltaNeg},
	}

	var ml [3]bn254.GT
	chDone := make(chan error, 3)
	for i := 0; i < 3; i++ {
		go func(i int) {
			var err error
			ml[i], err = bn254.MillerLoop(
				[]bn254.G1Affine{pairs[i].p},
				[]bn254.G2Affine{pairs[i].q})
			chDone <- err
		}(i)
	}
	for i := 0; i < 3; i++ {
		if err := <-chDone; err != nil {
			return err
		}
	}

	res := bn254.FinalExponentiation(&ml[0], &ml[1], &ml[2])
	if !res.Equal(&vk.E) {
		return ErrInvalidProof
	}

	log.Debug().Dur("took", time.Since(start)).Msg("verifier done")
	return nil
}

// BatchVerify checks len(proofs) independent proofs against the same
// verifying key, one goroutine per proof. It returns the first
// verification error, or nil if every proof is valid.
func BatchVerify(proofs []*Proof, vk *VerifyingKey, publicInputs [][]fr.Element) error {
	if len(proofs) != len(publicInputs) {
		return ErrMalformedInput
	}
	var g errgroup.Group
	for i := range proofs {
		i := i
		g.Go(func() error {
			return Verify(proofs[i], vk, publicInputs[i])
		})
	}
	return g.Wait()
}
