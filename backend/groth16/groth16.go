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

// Package groth16 implements the Groth16 proving scheme over BN254:
// a trusted setup binding a quadratic arithmetic program to a key pair,
// a prover producing three-element proofs, and a pairing-based verifier.
//
// The lifecycle is Setup once per program, Prove per witness, Verify per
// proof:
//
//	pk, vk, err := groth16.Setup(q)
//	proof, err := groth16.Prove(q, pk, witness)
//	err = groth16.Verify(proof, vk, publicInputs)
//
// Setup samples the toxic scalars (α, β, γ, δ, τ), commits to them in the
// two source groups and overwrites them before returning; they exist only
// on that call's stack. Proofs are randomized: proving the same witness
// twice yields distinct, equally valid proofs.
package groth16

import (
	"errors"

	"github.com/consensys/quark/ecc/bn254"
)

var (
	// ErrInvalidProof is the reject outcome: the proof points are well
	// formed and the inputs have the right shape, but the pairing equation
	// does not hold. Verify never wraps it with other failures; callers can
	// test it with errors.Is to tell "proof rejected" apart from
	// ErrMalformedInput and bn254.ErrInvalidPoint.
	ErrInvalidProof = errors.New("groth16: invalid proof")

	// ErrMalformedInput is returned when a witness or public input vector
	// does not match the shape the key pair was generated for.
	ErrMalformedInput = errors.New("groth16: input does not match the constraint system shape")
)

// Proof is a Groth16 proof: two G1 points and a G2 point, independent of
// the witness size.
type Proof struct {
	Ar  bn254.G1Affine
	Bs  bn254.G2Affine
	Krs bn254.G1Affine
}

// isWellFormed checks that the proof points are in their prime-order
// groups. Points outside the subgroup would make the pairing equation
// meaningless rather than merely unsatisfied.
func (proof *Proof) isWellFormed() bool {
	return proof.Ar.IsInSubgroup() &&
		proof.Bs.IsInSubgroup() &&
		proof.Krs.IsInSubgroup()
}
