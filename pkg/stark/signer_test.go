package stark

import (
	"errors"
	"math/big"
	"strings"
	"testing"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
	"github.com/consensys/gnark-crypto/ecc/stark-curve/fp"
)

const (
	testPrivateKey = "0x3c1e9550e66958296d11b60f8e8e7a7ad990d07fa65d5f7652c4a6c87d4e3cc"
	testPublicKey  = "0x077a3b314db07c45076d11f62b6f9e748a39790441823307743cf00d6597ea43"
	testPayload    = "0x5b4c7f1b3f1a9d0f3c1f5e4c8b2a07cbd39d1c2a58f8e1b7e6e4c4f1a2b3c4d"
)

func TestCurveParameters(t *testing.T) {
	_, generator := starkcurve.Generators()
	if !generator.IsOnCurve() {
		t.Fatal("generator is not on the curve")
	}
	if order := mulBase(curveOrder); !order.IsInfinity() {
		t.Fatal("generator order mismatch")
	}

	recovered, ok := pointFromX(xCoordinate(&generator))
	if !ok {
		t.Fatal("expected the generator x coordinate to lift")
	}
	if !recovered.Equal(&generator) && !recovered.Equal(new(starkcurve.G1Affine).Neg(&generator)) {
		t.Fatal("lifted point does not match the generator")
	}
	if _, ok := pointFromX(fp.Modulus()); ok {
		t.Fatal("expected x outside the field to be rejected")
	}
}

// Vector published with StarkWare's crypto-js signer.
func TestSignKnownAnswer(t *testing.T) {
	signer, err := NewSigner("0x2dccce1da22003777062ee0870e9881b460a8b7eca276870f57c601f182136c")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	serialized, err := signer.SignMessage("0xc465dd6b1bbffdb05442eb17f5ca38ad1aa78a6f56bf4415bdee219114a47")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "0x" +
		"05f496f6f210b5810b2711c74c15c05244dad43d18ecbbdbe6ed55584bc3b0a2" +
		"04e8657b153787f741a67c0666bad6426c3741b478c8eaa3155196fc571416f3"
	if serialized != expected {
		t.Fatalf("expected %s, got %s", expected, serialized)
	}

	// 251-bit hashes take the nibble-shifted nonce path.
	serialized, err = mustSigner(t).SignMessage(testPayload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected = "0x" +
		"071371c9633605f3d18985b16eeb8a251612932cd19bb5af81ff17e2e573eb3c" +
		"02bb844b59cf54e19e204a55d362bec1c9d5f8de8da397bb1a9a5eb088590a7a"
	if serialized != expected {
		t.Fatalf("expected %s, got %s", expected, serialized)
	}
}

func TestNonceRange(t *testing.T) {
	key, _ := new(big.Int).SetString(strings.TrimPrefix(testPrivateKey, "0x"), 16)
	message, _ := ParseMessage(testPayload)
	seen := map[string]bool{}
	for seed := uint64(0); seed < 16; seed++ {
		k := newNonceGenerator(key, message, seed).next()
		if k.Sign() <= 0 || k.Cmp(curveOrder) >= 0 {
			t.Fatalf("nonce out of range: %s", k)
		}
		seen[k.String()] = true
	}
	if len(seen) != 16 {
		t.Fatalf("expected distinct nonces per seed, got %d", len(seen))
	}

	first := newNonceGenerator(key, message, 0).next()
	if again := newNonceGenerator(key, message, 0).next(); again.Cmp(first) != 0 {
		t.Fatal("expected deterministic nonces")
	}
}

func mustSigner(t *testing.T) *Signer {
	t.Helper()
	signer, err := NewSigner(testPrivateKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return signer
}

func TestNewSignerPublicKey(t *testing.T) {
	signer, err := NewSigner(testPrivateKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signer.PublicKey() != testPublicKey {
		t.Fatalf("expected %s, got %s", testPublicKey, signer.PublicKey())
	}

	unprefixed, err := NewSigner(strings.TrimPrefix(testPrivateKey, "0x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unprefixed.PublicKey() != testPublicKey {
		t.Fatalf("expected %s, got %s", testPublicKey, unprefixed.PublicKey())
	}
}

func TestNewSignerInvalid(t *testing.T) {
	cases := []string{
		"",
		"0x",
		"zz",
		"0x0",
		"-1",
		"0x800000000000010ffffffffffffffffb781126dcae7b2321e66a241adc64d2f",
	}
	for _, raw := range cases {
		if _, err := NewSigner(raw); !errors.Is(err, ErrInvalidKey) {
			t.Fatalf("expected ErrInvalidKey for %q, got %v", raw, err)
		}
	}
}

func TestSignMessageVerifies(t *testing.T) {
	signer, err := NewSigner(testPrivateKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	serialized, err := signer.SignMessage(testPayload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(serialized, "0x") || len(serialized) != 130 {
		t.Fatalf("unexpected signature encoding: %s", serialized)
	}

	signature, err := ParseSignature(serialized)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	message, err := ParseMessage(testPayload)
	if err != nil {
		t.Fatalf("unexpected message error: %v", err)
	}
	if err := Verify(message, signature, signer.PublicKey()); err != nil {
		t.Fatalf("signature did not verify: %v", err)
	}

	again, err := signer.SignMessage(testPayload)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again != serialized {
		t.Fatal("expected deterministic signatures")
	}
}

func TestVerifyRejectsTampering(t *testing.T) {
	signer, _ := NewSigner(testPrivateKey)
	message, _ := ParseMessage(testPayload)
	signature, err := signer.Sign(message)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	other := new(big.Int).Add(message, big.NewInt(1))
	if err := Verify(other, signature, signer.PublicKey()); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature for altered message, got %v", err)
	}

	otherSigner, _ := NewSigner("0x1234")
	if err := Verify(message, signature, otherSigner.PublicKey()); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature for wrong key, got %v", err)
	}

	if err := Verify(message, Signature{}, signer.PublicKey()); !errors.Is(err, ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature for empty signature, got %v", err)
	}
}

func TestSignRejectsOversizedMessage(t *testing.T) {
	signer, _ := NewSigner(testPrivateKey)
	if _, err := signer.Sign(new(big.Int).Set(elementBound)); !errors.Is(err, ErrInvalidMessage) {
		t.Fatalf("expected ErrInvalidMessage, got %v", err)
	}
}

func TestParseMessage(t *testing.T) {
	message, err := ParseMessage("0x0001")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if message.Int64() != 1 {
		t.Fatalf("expected 1, got %s", message)
	}

	for _, raw := range []string{"", "0x", "xyz", "0x" + strings.Repeat("f", 64)} {
		if _, err := ParseMessage(raw); !errors.Is(err, ErrInvalidMessage) {
			t.Fatalf("expected ErrInvalidMessage for %q, got %v", raw, err)
		}
	}
}

func TestParseSignatureInvalid(t *testing.T) {
	for _, raw := range []string{"", "0x1234", "0x" + strings.Repeat("g", 128)} {
		if _, err := ParseSignature(raw); !errors.Is(err, ErrInvalidSignature) {
			t.Fatalf("expected ErrInvalidSignature for %q, got %v", raw, err)
		}
	}
}
