package shared

import (
	"errors"
	"strings"
	"testing"
)

// Hardhat's first development account.
const (
	testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
)

func TestParsePrivateKey(t *testing.T) {
	for _, raw := range []string{testPrivateKey, "0x" + testPrivateKey, "  " + testPrivateKey + "  "} {
		key, err := ParsePrivateKey(raw)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", raw, err)
		}
		if key == nil || key.D.Sign() == 0 {
			t.Fatalf("expected non-zero key for %q", raw)
		}
	}
}

func TestParsePrivateKeyInvalid(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"0x",
		"0xinvalidhex",
		"notavalidkey",
		testPrivateKey[:62],
		testPrivateKey + "00",
		strings.Repeat("0", 64),
		// secp256k1 group order n, one past the largest valid scalar.
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141",
		strings.Repeat("f", 64),
	}
	for _, raw := range cases {
		_, err := ParsePrivateKey(raw)
		if !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("expected ErrInvalidKey for %q, got %v", raw, err)
		}
	}
}
