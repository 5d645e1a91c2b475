package subtle

import "math/big"

// FeistelEncrypt runs the forward Feistel network over x using the halves
// (a, b) and round key K, for Rounds rounds. Callers must ensure 0 <= x <
// a*b; FeistelEncrypt does not itself validate the range.
//
// L0 = x mod a, R0 = x div a. Each round folds the current right half
// through prf and adds it into the left half mod a, then swaps. The final
// assembly reverses the usual half order: ciphertext = a*L3 + R3. This
// reversal, and the fact that every round reduces mod a (never b) even
// though R0 originally came from [0, b), are both load-bearing; see
// FeistelDecrypt for the matching inverse.
//
// One pass of the network permutes [0, a*a), not [0, a*b): when a > b its
// output can be a*b or more. Such an output is fed through the network
// again (cycle walking) until it lands in [0, a*b), so the result is always
// a ciphertext in [0, a*b). When a == b a single pass is always in range.
func FeistelEncrypt(a, b *big.Int, K []byte, x *big.Int) *big.Int {
	n := new(big.Int).Mul(a, b)
	y := new(big.Int).Set(x)
	for {
		l := new(big.Int).Mod(y, a)
		r := new(big.Int).Div(y, a)

		for i := 0; i < Rounds; i++ {
			w := prf(K, i, r, a)
			lPrime := new(big.Int).Add(l, w)
			lPrime.Mod(lPrime, a)
			l, r = r, lPrime
		}

		y = new(big.Int).Mul(a, l)
		y.Add(y, r)
		if y.Cmp(n) < 0 {
			return y
		}
	}
}

// FeistelDecrypt runs the reverse Feistel network over y, inverting
// FeistelEncrypt exactly given the same (a, b, K). Callers must ensure
// 0 <= y < a*b. Like FeistelEncrypt, it repeats the reverse network while
// the result is a*b or more.
func FeistelDecrypt(a, b *big.Int, K []byte, y *big.Int) *big.Int {
	n := new(big.Int).Mul(a, b)
	x := new(big.Int).Set(y)
	for {
		l := new(big.Int).Div(x, a)
		r := new(big.Int).Mod(x, a)

		for i := Rounds - 1; i >= 0; i-- {
			w := prf(K, i, l, a)
			rPrime := new(big.Int).Sub(r, w)
			rPrime.Mod(rPrime, a)
			r, l = l, rPrime
		}

		x = new(big.Int).Mul(a, r)
		x.Add(x, l)
		if x.Cmp(n) < 0 {
			return x
		}
	}
}
