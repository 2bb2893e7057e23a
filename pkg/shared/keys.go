package shared

import (
	"crypto/ecdsa"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/ethereum/go-ethereum/crypto"
)

var ErrInvalidKey = errors.New("invalid private key")

// ParsePrivateKey parses a raw secp256k1 private key in hex, with or without
// a 0x prefix.
func ParsePrivateKey(raw string) (*ecdsa.PrivateKey, error) {
	keyBytes, err := decodeKeyHex(raw)
	if err != nil {
		return nil, err
	}
	if len(keyBytes) != 32 {
		return nil, fmt.Errorf("%w: expected 32 bytes, got %d", ErrInvalidKey, len(keyBytes))
	}

	var scalar btcec.ModNScalar
	if overflow := scalar.SetByteSlice(keyBytes); overflow || scalar.IsZero() {
		return nil, fmt.Errorf("%w: scalar out of range", ErrInvalidKey)
	}

	privateKey, err := crypto.ToECDSA(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return privateKey, nil
}

func decodeKeyHex(raw string) ([]byte, error) {
	candidate := strings.TrimSpace(raw)
	candidate = strings.TrimPrefix(strings.TrimPrefix(candidate, "0x"), "0X")
	if candidate == "" {
		return nil, fmt.Errorf("%w: key cannot be empty", ErrInvalidKey)
	}
	decoded, err := hex.DecodeString(candidate)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}
	return decoded, nil
}
