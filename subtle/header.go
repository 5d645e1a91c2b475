package subtle

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/big"
)

// encodeLenPrefixed appends a 4-byte big-endian length prefix followed by b
// itself. The prefix is emitted even when b is empty.
func encodeLenPrefixed(dst []byte, b []byte) []byte {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(b)))
	dst = append(dst, lenBuf[:]...)
	dst = append(dst, b...)
	return dst
}

// encodeHeader builds the canonical header H described in the round-key
// derivation: the length-prefixed modulus followed by the length-prefixed
// tweak, both big-endian. This framing domain-separates the derived round
// key across distinct (n, tweak) pairs.
func encodeHeader(n *big.Int, tweak []byte) []byte {
	h := make([]byte, 0, 8+len(n.Bytes())+len(tweak))
	h = encodeLenPrefixed(h, n.Bytes())
	h = encodeLenPrefixed(h, tweak)
	return h
}

// DeriveRoundKey computes the per-call MAC key K = HMAC-SHA256(key, H),
// where H is the canonical header built from n and tweak. The returned
// slice is exactly sha256.Size bytes and is scoped to one Encrypt/Decrypt
// call; callers should call Zero on it once the Feistel loop that consumes
// it has finished.
func DeriveRoundKey(n *big.Int, tweak, key []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write(encodeHeader(n, tweak))
	return mac.Sum(nil)
}

// Zero overwrites b with zeros in place. It is a best-effort measure for
// scrubbing a sensitive buffer (the derived round key, typically) once it
// is no longer needed; the Go runtime may have copied the backing array
// elsewhere, so this offers no hard guarantee.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
