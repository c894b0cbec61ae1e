// Package field defines the prime-field contract consumed by the LSSS core and
// ships the concrete fields it is used with.
//
// Shares, reconstruction coefficients and secrets all live in a prime field
// Z/pZ. The LSSS code never does arithmetic on big integers directly; it only
// talks to the Field and Element interfaces defined here, so any scalar field
// (a pairing group order, an elliptic-curve group order, a small test prime)
// can be plugged in.
//
// # Elements
//
// Elements are immutable values. Every operation returns a new Element and
// leaves its receiver untouched, so elements may be shared freely between
// goroutines:
//
//	f := field.BN254()
//	a := f.FromInt64(3)
//	b := f.FromInt64(-1) // p - 1
//	c := a.Add(b)        // 2
//	inv, err := c.Inverse()
//
// Combining elements of two different fields is a programming error and
// panics with ErrFieldMismatch.
//
// # Fields
//
//   - BN254:     scalar field of the BN254 (alt_bn128) pairing curve
//   - BLS12381:  scalar field of the BLS12-381 pairing curve
//   - Secp256k1: group order of secp256k1, backed by btcec's constant-time ModNScalar
//   - NewPrime:  any prime modulus, backed by math/big
//
// # Randomness
//
// Field.Random samples uniformly from any io.Reader. Production callers pass
// crypto/rand.Reader; tests and conformance vectors use NewSeededReader, a
// SHAKE256 stream keyed by a seed, to get reproducible elements.
package field
