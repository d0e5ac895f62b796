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
	"sync"

	"github.com/consensys/quark/ecc/bn254"
	"github.com/consensys/quark/ecc/bn254/fr"
	"github.com/consensys/quark/internal/pool"
)

// msmG1 returns Σ scalars[i]·points[i]. Zero scalars and infinity points
// are skipped. The ranges are split across CPUs; each worker folds its
// partial sum into the result under a lock.
func msmG1(points []bn254.G1Affine, scalars []fr.Element) bn254.G1Affine {
	if len(points) != len(scalars) {
		panic("groth16: mismatched multi-scalar multiplication lengths")
	}
	var (
		res bn254.G1Affine
		mu  sync.Mutex
	)
	res.SetInfinity()
	pool.Execute(0, len(points), func(start, end int) {
		var acc, t bn254.G1Affine
		acc.SetInfinity()
		for i := start; i < end; i++ {
			if scalars[i].IsZero() || points[i].IsInfinity() {
				continue
			}
			t.ScalarMulFr(&points[i], &scalars[i])
			acc.Add(&acc, &t)
		}
		mu.Lock()
		res.Add(&res, &acc)
		mu.Unlock()
	})
	return res
}

// msmG2 is msmG1 over the twist.
func msmG2(points []bn254.G2Affine, scalars []fr.Element) bn254.G2Affine {
	if len(points) != len(scalars) {
		panic("groth16: mismatched multi-scalar multiplication lengths")
	}
	var (
		res bn254.G2Affine
		mu  sync.Mutex
	)
	res.SetInfinity()
	pool.Execute(0, len(points), func(start, end int) {
		var acc, t bn254.G2Affine
		acc.SetInfinity()
		for i := start; i < end; i++ {
			if scalars[i].IsZero() || points[i].IsInfinity() {
				continue
			}
			t.ScalarMulFr(&points[i], &scalars[i])
			acc.Add(&acc, &t)
		}
		mu.Lock()
		res.Add(&res, &acc)
		mu.Unlock()
	})
	return res
}
