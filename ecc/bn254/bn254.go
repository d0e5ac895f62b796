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

// Package bn254 implements the BN254 (alt_bn128) pairing-friendly curve
// from scratch: base and scalar fields, the 𝔽p²/𝔽p⁶/𝔽p¹² tower, the two
// torsion groups G1 ⊂ E(𝔽p) and G2 ⊂ E'(𝔽p²), and the optimal ate pairing
// e: G1 × G2 → GT ⊂ 𝔽p¹².
//
// Parameters follow the published EIP-196/EIP-197 values exactly:
//
//	E:  y² = x³ + 3        over 𝔽p,  generator (1, 2)
//	E': y² = x³ + 3/(9+u)  over 𝔽p², sextic D-twist
//	BN parameter x = 4965661367192848881, Miller loop count 6x+2
//
// Arithmetic is big.Int based and NOT constant time: timing side channels
// are a documented limitation, not an engineering goal.
package bn254

import (
	"math/big"

	"github.com/consensys/quark/ecc/bn254/fp"
	"github.com/consensys/quark/ecc/bn254/fr"
)

var (
	// bCurveCoeff is b in y² = x³ + b on E.
	bCurveCoeff fp.Element

	// bTwistCurveCoeff is b/ξ in y² = x³ + b/ξ on E'.
	bTwistCurveCoeff E2

	g1Gen G1Affine
	g2Gen G2Affine

	// bnParameter is the BN curve parameter x.
	bnParameter = new(big.Int).SetUint64(4965661367192848881)

	// ateLoopCounter = 6x+2, the Miller loop bound for the optimal ate
	// pairing. 65 bits, set in init.
	ateLoopCounter *big.Int

	// finalExpHard = (p⁴-p²+1)/r, the hard part of the final exponentiation.
	finalExpHard *big.Int
)

func init() {
	ateLoopCounter = new(big.Int).Mul(bnParameter, big.NewInt(6))
	ateLoopCounter.Add(ateLoopCounter, big.NewInt(2))

	bCurveCoeff.SetUint64(3)

	// ξ = 9+u, b' = 3/ξ
	var xi, three E2
	xi.A0.SetUint64(9)
	xi.A1.SetOne()
	three.A0.SetUint64(3)
	bTwistCurveCoeff.Inverse(&xi).Mul(&bTwistCurveCoeff, &three)

	g1Gen.X.SetUint64(1)
	g1Gen.Y.SetUint64(2)

	g2Gen.X.SetString(
		"10857046999023057135944570762232829481370756359578518086990519993285655852781",
		"11559732032986387107991004021392285783925812861821192530917403151452391805634")
	g2Gen.Y.SetString(
		"8495653923123431417604973247489272438418190587263600148770280649306958101930",
		"4082367875863433681332203403145435568316851327593401208105741076214120093531")

	// (p⁴-p²+1)/r
	p := fp.Modulus()
	p2 := new(big.Int).Mul(p, p)
	p4 := new(big.Int).Mul(p2, p2)
	finalExpHard = new(big.Int).Sub(p4, p2)
	finalExpHard.Add(finalExpHard, big.NewInt(1))
	finalExpHard.Div(finalExpHard, fr.Modulus())
}

// G1Gen returns a copy of the canonical generator of G1.
func G1Gen() G1Affine {
	var g G1Affine
	g.Set(&g1Gen)
	return g
}

// G2Gen returns a copy of the canonical generator of G2.
func G2Gen() G2Affine {
	var g G2Affine
	g.Set(&g2Gen)
	return g
}

// Order returns the order r of G1, G2 and GT.
func Order() *big.Int {
	return fr.Modulus()
}
