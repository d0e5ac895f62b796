// Package quark provides a Groth16 Zero Knowledge Proof (ZKP) system built
// from first principles: finite field and pairing arithmetic, quadratic
// arithmetic programs and the trusted-setup/prove/verify triple, with no
// external cryptographic backend.
//
// quark supports the following curve:
//   - BN254
//
// The arithmetic is big-integer based and not constant time; the package
// is written for auditability, not for production side-channel hardening.
package quark

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
