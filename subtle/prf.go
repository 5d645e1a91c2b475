package subtle

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"
	"math/big"
)

// prf computes F(round, r) = OS2IP(HMAC-SHA256(K, enc32(round) ||
// enc_var(r))) mod a. The same reduction modulus a is used regardless of
// which Feistel half is logically "left" in the current round; this
// asymmetry is intentional, see feistel.go.
func prf(K []byte, round int, r, a *big.Int) *big.Int {
	mac := hmac.New(sha256.New, K)

	var roundBuf [4]byte
	binary.BigEndian.PutUint32(roundBuf[:], uint32(round))
	mac.Write(roundBuf[:])

	var lenBuf [4]byte
	rBytes := r.Bytes()
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(rBytes)))
	mac.Write(lenBuf[:])
	mac.Write(rBytes)

	sum := mac.Sum(nil)
	y := new(big.Int).SetBytes(sum)
	return y.Mod(y, a)
}
