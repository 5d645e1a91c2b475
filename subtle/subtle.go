// Package subtle implements the low-level FE1 primitives: modulus
// factorization, round-key derivation, the HMAC-based round PRF, and the
// forward/reverse Feistel loops.
//
// This package works directly with raw keys and big integers. Most callers
// should use the higher-level fe1 package, which validates arguments and
// translates factorization failures into the documented error taxonomy.
// subtle is exported for callers who want the bare algorithm, or who want
// to swap in their own factorization cache.
package subtle

// MaxBytes bounds the unsigned big-endian encoding of the modulus n: n must
// fit in MaxBytes bytes, i.e. n < 2^(8*MaxBytes).
const MaxBytes = 16

// Rounds is the fixed Feistel round count used by Encrypt and Decrypt.
const Rounds = 3
