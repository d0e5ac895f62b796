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

package polynomial

import (
	"math/big"
	"math/bits"

	"github.com/consensys/quark/ecc/bn254/fr"
)

// mulFFT multiplies p and q by evaluation/interpolation over the subgroup
// of 𝔽r* of order the next power of two ≥ n, n = deg(p)+deg(q)+1.
// n must not exceed 2^fr.MaxOrder, far beyond any constraint system this
// package is asked to handle.
func mulFFT(p, q Polynomial, n int) Polynomial {
	logN := uint(bits.Len(uint(n - 1)))
	if logN > fr.MaxOrder {
		panic("polynomial: product degree exceeds the 2-adicity of r-1")
	}
	size := 1 << logN

	// generator of the size-th roots of unity
	var w fr.Element
	w.Set(&rootOfUnity)
	for i := uint(0); i < fr.MaxOrder-logN; i++ {
		w.Square(&w)
	}
	var wInv fr.Element
	if _, err := wInv.Inverse(&w); err != nil {
		// unreachable, w is a root of unity
		panic(err)
	}

	a := make([]fr.Element, size)
	b := make([]fr.Element, size)
	for i := range p {
		a[i].Set(&p[i])
	}
	for i := range q {
		b[i].Set(&q[i])
	}

	fft(a, &w)
	fft(b, &w)
	for i := range a {
		a[i].MulAssign(&b[i])
	}
	fft(a, &wInv)

	// scale by 1/size
	var sizeInv fr.Element
	sizeInv.SetUint64(uint64(size))
	if _, err := sizeInv.Inverse(&sizeInv); err != nil {
		panic(err)
	}
	r := make(Polynomial, n)
	for i := range r {
		r[i].Mul(&a[i], &sizeInv)
	}
	return r
}

// fft runs an in-place iterative radix-2 Cooley-Tukey transform of a,
// whose length must be a power of two, using w as the generator of the
// matching subgroup of 𝔽r*. Passing w⁻¹ yields the inverse transform up
// to the 1/len(a) factor.
func fft(a []fr.Element, w *fr.Element) {
	n := len(a)
	logN := uint(bits.TrailingZeros(uint(n)))

	// bit-reversal permutation
	for i := 0; i < n; i++ {
		j := int(bits.Reverse(uint(i)) >> (bits.UintSize - logN))
		if i < j {
			a[i], a[j] = a[j], a[i]
		}
	}

	// butterfly passes, twiddle tables built per stage
	var wm, t, u fr.Element
	for s := uint(1); s <= logN; s++ {
		m := 1 << s
		half := m >> 1

		// wm = w^(n/m)
		wm.Set(w)
		for i := uint(0); i < logN-s; i++ {
			wm.Square(&wm)
		}

		for k := 0; k < n; k += m {
			var wj fr.Element
			wj.SetOne()
			for j := 0; j < half; j++ {
				t.Mul(&a[k+j+half], &wj)
				u.Set(&a[k+j])
				a[k+j].Add(&u, &t)
				a[k+j+half].Sub(&u, &t)
				wj.MulAssign(&wm)
			}
		}
	}
}

var rootOfUnity fr.Element

func init() {
	rootOfUnity = fr.RootOfUnity()

	// sanity: w^(2^MaxOrder) == 1 and w^(2^(MaxOrder-1)) != 1
	var t fr.Element
	exp := new(big.Int).Lsh(big.NewInt(1), fr.MaxOrder-1)
	t.Exp(rootOfUnity, exp)
	if t.IsOne() {
		panic("polynomial: root of unity has wrong order")
	}
	t.Square(&t)
	if !t.IsOne() {
		panic("polynomial: root of unity has wrong order")
	}
}
