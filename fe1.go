// Package fe1 implements FE1, a format-preserving encryption (FPE) scheme
// built as a Feistel network over an arbitrary integer modulus, with the
// round function driven by HMAC-SHA256. Given a modulus n, a key, and a
// tweak, Encrypt and Decrypt provide a bijection on {0, 1, ..., n-1}: every
// plaintext maps to a unique ciphertext in the same range, and Decrypt
// inverts Encrypt exactly.
//
// The package operates on integers only (*big.Int). Callers that need
// alphanumeric FPE (e.g. preserving the format of an SSN or a credit card
// number) are expected to encode to and decode from an integer domain
// themselves; there is no string-alphabet wrapper here.
//
// FE1 does no key management, persistence, or networking: every call is
// self-contained, stateless, and safe for concurrent use by multiple
// goroutines, provided each caller owns its own input buffers.
package fe1

import (
	"math/big"

	"github.com/vdparikh/fe1/subtle"
)

// MaxBytes bounds the unsigned big-endian encoding of the modulus n: n must
// fit in MaxBytes bytes, i.e. n < 2^(8*MaxBytes).
const MaxBytes = subtle.MaxBytes

// Rounds is the fixed Feistel round count used by Encrypt and Decrypt.
const Rounds = subtle.Rounds

// defaultCache memoizes modulus factorizations across Encrypt/Decrypt calls
// made through this package's top-level functions. It is bounded and
// thread-safe; see subtle.Cache.
var defaultCache = subtle.NewCache(256)

// Encrypt maps plaintext x, 0 <= x < n, to a ciphertext y in the same
// range, using key and tweak to derive the round function.
//
// Encrypt returns an *Error with Kind KindInvalidArgument if n or x is nil,
// key or tweak is empty, x is out of [0, n), or n does not fit in MaxBytes
// bytes. It returns an *Error with Kind KindFPEError if n is well-formed but
// prime (has no nontrivial factorization). No partial result is ever
// returned: on any failure, y is nil.
func Encrypt(n, x *big.Int, key, tweak []byte) (*big.Int, error) {
	return run("fe1.Encrypt", n, x, key, tweak, subtle.FeistelEncrypt)
}

// Decrypt maps ciphertext y, 0 <= y < n, back to the plaintext x that
// Encrypt(n, x, key, tweak) would have produced. Failure semantics are
// identical to Encrypt.
func Decrypt(n, y *big.Int, key, tweak []byte) (*big.Int, error) {
	return run("fe1.Decrypt", n, y, key, tweak, subtle.FeistelDecrypt)
}

func run(op string, n, x *big.Int, key, tweak []byte, step func(a, b *big.Int, K []byte, x *big.Int) *big.Int) (*big.Int, error) {
	if err := validateArgs(n, x, key, tweak); err != nil {
		return nil, invalidArgument(op, err)
	}

	a, b, err := defaultCache.Factorize(n)
	if err != nil {
		return nil, fpeError(op, err)
	}

	K := subtle.DeriveRoundKey(n, tweak, key)
	defer subtle.Zero(K)

	return step(a, b, K, x), nil
}
