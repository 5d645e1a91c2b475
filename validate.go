package fe1

import (
	"errors"
	"math/big"
)

var (
	errNilModulus    = errors.New("modulus is nil")
	errNilValue      = errors.New("plaintext/ciphertext value is nil")
	errEmptyKey      = errors.New("key must be at least 1 byte")
	errEmptyTweak    = errors.New("tweak must be at least 1 byte")
	errValueOutOfRng = errors.New("value must satisfy 0 <= x < n")
	errModulusTooBig = errors.New("modulus exceeds MaxBytes")
)

// validateArgs enforces checks 1-6 of the validator contract: non-nil n and
// x, non-empty key, non-empty tweak, 0 <= x < n, and n representable in at
// most MaxBytes bytes. It does not check compositeness of n (check 7);
// that requires factorization and is handled by the caller once
// subtle.Factorize runs.
func validateArgs(n, x *big.Int, key, tweak []byte) error {
	if n == nil {
		return errNilModulus
	}
	if x == nil {
		return errNilValue
	}
	if len(key) < 1 {
		return errEmptyKey
	}
	if len(tweak) < 1 {
		return errEmptyTweak
	}
	if x.Sign() < 0 || x.Cmp(n) >= 0 {
		return errValueOutOfRng
	}
	if n.Sign() < 0 || len(n.Bytes()) > MaxBytes {
		return errModulusTooBig
	}
	return nil
}
