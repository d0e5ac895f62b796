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
	"crypto/rand"
	"io"

	"github.com/consensys/quark/ecc/bn254/fr"
)

// Option allows tweaking Setup and Prove behaviour.
type Option func(*config) error

// config holds the effective settings after applying options.
type config struct {
	rand io.Reader
}

// WithRandomSource overrides the source of the setup's toxic scalars and
// the prover's blinding factors. The default is crypto/rand.Reader; a
// deterministic reader makes key generation and proofs reproducible,
// which is only acceptable in tests.
func WithRandomSource(r io.Reader) Option {
	return func(cfg *config) error {
		cfg.rand = r
		return nil
	}
}

func newConfig(opts ...Option) (config, error) {
	cfg := config{
		rand: rand.Reader,
	}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}
	return cfg, nil
}

// sampleNonZero draws a uniform element of 𝔽r*.
func sampleNonZero(r io.Reader) (fr.Element, error) {
	var e fr.Element
	for {
		if _, err := e.SetRandom(r); err != nil {
			return fr.Element{}, err
		}
		if !e.IsZero() {
			return e, nil
		}
	}
}
