package subtle

import (
	"math/big"
	"testing"
)

func TestFeistelRoundTrip(t *testing.T) {
	n := big.NewInt(9999999999999999)
	a, b, err := Factorize(n)
	if err != nil {
		t.Fatalf("Factorize: %v", err)
	}

	K := DeriveRoundKey(n, []byte{0x01, 0x02, 0x03}, []byte("key-bytes"))

	for _, xv := range []int64{0, 1, 4444333322221111, 9999999999999998} {
		x := big.NewInt(xv)
		y := FeistelEncrypt(a, b, K, x)
		if y.Sign() < 0 || y.Cmp(n) >= 0 {
			t.Fatalf("ciphertext %s out of range for n=%s", y, n)
		}
		got := FeistelDecrypt(a, b, K, y)
		if got.Cmp(x) != 0 {
			t.Fatalf("round-trip failed for x=%s: got %s via y=%s", x, got, y)
		}
	}
}

func TestFeistelModulus4Bijection(t *testing.T) {
	n := big.NewInt(4)
	a, b, err := Factorize(n)
	if err != nil {
		t.Fatalf("Factorize(4): %v", err)
	}
	if a.Int64() != 2 || b.Int64() != 2 {
		t.Fatalf("Factorize(4) = (%s, %s), want (2, 2)", a, b)
	}

	K := DeriveRoundKey(n, []byte{0xAB}, []byte("key"))
	seen := map[int64]bool{}
	for xv := int64(0); xv < 4; xv++ {
		x := big.NewInt(xv)
		y := FeistelEncrypt(a, b, K, x)
		if seen[y.Int64()] {
			t.Fatalf("collision at x=%d -> y=%s", xv, y)
		}
		seen[y.Int64()] = true

		back := FeistelDecrypt(a, b, K, y)
		if back.Cmp(x) != 0 {
			t.Fatalf("round-trip failed: x=%d -> y=%s -> %s", xv, y, back)
		}
	}
	if len(seen) != 4 {
		t.Fatalf("expected 4 distinct ciphertexts, got %d", len(seen))
	}
}

func TestFeistelBijectionSmallModulus(t *testing.T) {
	n := big.NewInt(10000)
	a, b, err := Factorize(n)
	if err != nil {
		t.Fatalf("Factorize: %v", err)
	}
	K := DeriveRoundKey(n, []byte{0x00, 0x01, 0x02, 0x03, 0x04}, []byte{0x20, 0x01, 0x30, 0x50, 0x60, 0x70})

	seen := make([]bool, 10000)
	for xv := int64(0); xv < 10000; xv++ {
		y := FeistelEncrypt(a, b, K, big.NewInt(xv))
		yi := y.Int64()
		if yi < 0 || yi >= 10000 {
			t.Fatalf("ciphertext %d out of range", yi)
		}
		if seen[yi] {
			t.Fatalf("collision producing ciphertext %d", yi)
		}
		seen[yi] = true
	}
	for i, ok := range seen {
		if !ok {
			t.Fatalf("ciphertext %d never produced: encryption is not onto [0, n)", i)
		}
	}
}

func TestFeistelDifferentRoundKeysDiverge(t *testing.T) {
	n := big.NewInt(9999999999999999)
	a, b, err := Factorize(n)
	if err != nil {
		t.Fatalf("Factorize: %v", err)
	}
	x := big.NewInt(123456789)

	K1 := DeriveRoundKey(n, []byte("tweak"), []byte("key-one"))
	K2 := DeriveRoundKey(n, []byte("tweak"), []byte("key-two"))

	y1 := FeistelEncrypt(a, b, K1, x)
	y2 := FeistelEncrypt(a, b, K2, x)
	if y1.Cmp(y2) == 0 {
		t.Fatalf("distinct round keys produced identical ciphertext %s", y1)
	}
}
