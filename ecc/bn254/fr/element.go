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

// Package fr implements arithmetic in the BN254 scalar field
// 𝔽r, r = 21888242871839275222246405745257275088548364400416034343698204186575808495617,
// the order of the G1/G2 subgroups. Constraint systems, witnesses and
// polynomials all live over 𝔽r.
//
// r-1 = 2²⁸ · odd, so 𝔽r carries a multiplicative subgroup of order 2²⁸
// used for FFT-based polynomial multiplication.
package fr

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

// Modulus is the prime defining 𝔽r.
const ModulusStr = "21888242871839275222246405745257275088548364400416034343698204186575808495617"

// RootOfUnityStr is a primitive 2^MaxOrder-th root of unity in 𝔽r.
const RootOfUnityStr = "19103219067921713944291392827692070036145651957329286315305642004821462161904"

// MaxOrder is the 2-adicity of r-1.
const MaxOrder = 28

var rElement, _ = new(big.Int).SetString(ModulusStr, 10)

// ErrUndefinedInverse is returned when inverting the additive identity.
var ErrUndefinedInverse = errors.New("fr: zero has no multiplicative inverse")

// Modulus returns a copy of r.
func Modulus() *big.Int {
	return new(big.Int).Set(rElement)
}

// RootOfUnity returns a primitive 2^MaxOrder-th root of unity.
func RootOfUnity() Element {
	var w Element
	w.SetString(RootOfUnityStr)
	return w
}

// Element represents a field element as its canonical representative in [0, r).
// The zero value is the field's additive identity and is ready to use.
type Element struct {
	v big.Int
}

// NewElement returns an element set to v mod r.
func NewElement(v uint64) Element {
	var e Element
	e.SetUint64(v)
	return e
}

// One returns the multiplicative identity.
func One() Element {
	var e Element
	e.SetOne()
	return e
}

// Set z = x
func (z *Element) Set(x *Element) *Element {
	z.v.Set(&x.v)
	return z
}

// SetZero z = 0
func (z *Element) SetZero() *Element {
	z.v.SetInt64(0)
	return z
}

// SetOne z = 1
func (z *Element) SetOne() *Element {
	z.v.SetInt64(1)
	return z
}

// SetUint64 z = v mod r
func (z *Element) SetUint64(v uint64) *Element {
	z.v.SetUint64(v)
	return z.reduce()
}

// SetInt64 z = v mod r. Negative values are brought back to [0, r).
func (z *Element) SetInt64(v int64) *Element {
	z.v.SetInt64(v)
	return z.reduce()
}

// SetBigInt z = v mod r. Negative values are brought back to [0, r).
func (z *Element) SetBigInt(v *big.Int) *Element {
	z.v.Mod(v, rElement)
	return z
}

// SetString sets z from a base-10 string, reduced mod r.
// It panics if s is not a valid number; use SetBigInt for checked input.
func (z *Element) SetString(s string) *Element {
	if _, ok := z.v.SetString(s, 10); !ok {
		panic("fr.Element.SetString: invalid number " + s)
	}
	return z.reduce()
}

// SetRandom sets z to a uniform element read from r and returns z.
func (z *Element) SetRandom(r io.Reader) (*Element, error) {
	v, err := rand.Int(r, rElement)
	if err != nil {
		return nil, err
	}
	z.v.Set(v)
	return z, nil
}

// BigInt returns the canonical representative of z in [0, r).
func (z *Element) BigInt(res *big.Int) *big.Int {
	return res.Set(&z.v)
}

// IsZero returns true if z is the additive identity.
func (z *Element) IsZero() bool {
	return z.v.Sign() == 0
}

// IsOne returns true if z is the multiplicative identity.
func (z *Element) IsOne() bool {
	return z.v.Cmp(bigOne) == 0
}

// Equal returns true if z == x
func (z *Element) Equal(x *Element) bool {
	return z.v.Cmp(&x.v) == 0
}

// Add z = x + y mod r
func (z *Element) Add(x, y *Element) *Element {
	z.v.Add(&x.v, &y.v)
	return z.reduce()
}

// Double z = 2*x mod r
func (z *Element) Double(x *Element) *Element {
	z.v.Lsh(&x.v, 1)
	return z.reduce()
}

// Sub z = x - y mod r
func (z *Element) Sub(x, y *Element) *Element {
	z.v.Sub(&x.v, &y.v)
	return z.reduce()
}

// Neg z = -x mod r
func (z *Element) Neg(x *Element) *Element {
	z.v.Neg(&x.v)
	return z.reduce()
}

// Mul z = x * y mod r
func (z *Element) Mul(x, y *Element) *Element {
	z.v.Mul(&x.v, &y.v)
	return z.reduce()
}

// Square z = x * x mod r
func (z *Element) Square(x *Element) *Element {
	return z.Mul(x, x)
}

// MulAssign z = z * x mod r
func (z *Element) MulAssign(x *Element) *Element {
	return z.Mul(z, x)
}

// AddAssign z = z + x mod r
func (z *Element) AddAssign(x *Element) *Element {
	return z.Add(z, x)
}

// SubAssign z = z - x mod r
func (z *Element) SubAssign(x *Element) *Element {
	return z.Sub(z, x)
}

// Exp z = x**k mod r, k ≥ 0, by an iterative square-and-multiply
// scan over the bits of k.
func (z *Element) Exp(x Element, k *big.Int) *Element {
	if k.Sign() < 0 {
		panic("fr.Element.Exp: negative exponent")
	}
	var base Element
	base.Set(&x) // fresh storage, z may alias x
	z.SetOne()
	for i := k.BitLen() - 1; i >= 0; i-- {
		z.Square(z)
		if k.Bit(i) == 1 {
			z.Mul(z, &base)
		}
	}
	return z
}

// Inverse sets z to x⁻¹ mod r and returns z.
// Inverting the additive identity returns ErrUndefinedInverse.
func (z *Element) Inverse(x *Element) (*Element, error) {
	if x.IsZero() {
		return nil, ErrUndefinedInverse
	}
	// extended Euclidean algorithm; r is prime so the inverse exists
	z.v.ModInverse(&x.v, rElement)
	return z, nil
}

// Div sets z = x / y mod r. Dividing by zero returns ErrUndefinedInverse.
func (z *Element) Div(x, y *Element) (*Element, error) {
	var yInv Element
	if _, err := yInv.Inverse(y); err != nil {
		return nil, err
	}
	return z.Mul(x, &yInv), nil
}

func (z *Element) String() string {
	return z.v.String()
}

func (z *Element) reduce() *Element {
	z.v.Mod(&z.v, rElement)
	return z
}

var bigOne = big.NewInt(1)
