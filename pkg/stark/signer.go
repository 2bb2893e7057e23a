package stark

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	starkcurve "github.com/consensys/gnark-crypto/ecc/stark-curve"
)

var (
	ErrInvalidKey       = errors.New("invalid stark private key")
	ErrInvalidMessage   = errors.New("invalid stark message hash")
	ErrInvalidSignature = errors.New("invalid stark signature")
)

// Signer signs Immutable X payload hashes with a Stark private key.
type Signer struct {
	privateKey *big.Int
	publicKey  starkcurve.G1Affine
}

// Signature is an ECDSA signature over the Stark curve.
type Signature struct {
	R *big.Int
	S *big.Int
}

// NewSigner parses a hex encoded Stark private key, with or without a 0x prefix.
func NewSigner(rawKey string) (*Signer, error) {
	candidate := trimHexPrefix(strings.TrimSpace(rawKey))
	if candidate == "" {
		return nil, fmt.Errorf("%w: key cannot be empty", ErrInvalidKey)
	}

	privateKey, ok := new(big.Int).SetString(candidate, 16)
	if !ok {
		return nil, fmt.Errorf("%w: key is not hex", ErrInvalidKey)
	}
	if privateKey.Sign() <= 0 || privateKey.Cmp(curveOrder) >= 0 {
		return nil, fmt.Errorf("%w: key out of range", ErrInvalidKey)
	}

	return &Signer{
		privateKey: privateKey,
		publicKey:  mulBase(privateKey),
	}, nil
}

// PublicKey returns the Stark key: the x coordinate of the public point as
// 0x-prefixed, zero-padded hex.
func (s *Signer) PublicKey() string {
	return fmt.Sprintf("0x%064x", xCoordinate(&s.publicKey))
}

// SignMessage signs a hex payload hash and returns the serialized signature.
func (s *Signer) SignMessage(messageHash string) (string, error) {
	message, err := ParseMessage(messageHash)
	if err != nil {
		return "", err
	}
	signature, err := s.Sign(message)
	if err != nil {
		return "", err
	}
	return signature.String(), nil
}

// Sign produces a signature over message, which must be below 2^251. The
// nonce follows RFC 6979, so signing is deterministic.
func (s *Signer) Sign(message *big.Int) (Signature, error) {
	if message.Sign() < 0 || message.Cmp(elementBound) >= 0 {
		return Signature{}, fmt.Errorf("%w: message exceeds 251 bits", ErrInvalidMessage)
	}

	for seed := uint64(0); ; seed++ {
		k := newNonceGenerator(s.privateKey, message, seed).next()

		kG := mulBase(k)
		r := xCoordinate(&kG)
		if r.Sign() == 0 || r.Cmp(elementBound) >= 0 {
			continue
		}

		// s = (message + r*privateKey) / k, and w = 1/s must also fit in 251 bits.
		sum := new(big.Int).Mul(r, s.privateKey)
		sum.Add(sum, message)
		sum.Mod(sum, curveOrder)
		if sum.Sign() == 0 {
			continue
		}
		w := scalarDiv(k, sum)
		if w.Sign() == 0 || w.Cmp(elementBound) >= 0 {
			continue
		}

		return Signature{R: r, S: scalarInverse(w)}, nil
	}
}

// String serializes the signature as 0x followed by 64 hex digits each of r and s.
func (sig Signature) String() string {
	return fmt.Sprintf("0x%064x%064x", sig.R, sig.S)
}

// Verify checks a signature against a message and a Stark public key.
func Verify(message *big.Int, signature Signature, publicKey string) error {
	keyX, ok := new(big.Int).SetString(trimHexPrefix(strings.TrimSpace(publicKey)), 16)
	if !ok {
		return fmt.Errorf("%w: public key is not hex", ErrInvalidSignature)
	}
	publicPoint, ok := pointFromX(keyX)
	if !ok {
		return fmt.Errorf("%w: public key is not on the curve", ErrInvalidSignature)
	}
	if signature.R == nil || signature.S == nil {
		return fmt.Errorf("%w: missing component", ErrInvalidSignature)
	}
	if signature.R.Sign() <= 0 || signature.R.Cmp(elementBound) >= 0 {
		return fmt.Errorf("%w: r out of range", ErrInvalidSignature)
	}
	if signature.S.Sign() <= 0 || signature.S.Cmp(curveOrder) >= 0 {
		return fmt.Errorf("%w: s out of range", ErrInvalidSignature)
	}
	if message.Sign() < 0 || message.Cmp(elementBound) >= 0 {
		return fmt.Errorf("%w: message exceeds 251 bits", ErrInvalidMessage)
	}

	w := scalarInverse(signature.S)
	u1 := new(big.Int).Mul(message, w)
	u1.Mod(u1, curveOrder)
	u2 := new(big.Int).Mul(signature.R, w)
	u2.Mod(u2, curveOrder)

	base := mulBase(u1)
	negated := new(starkcurve.G1Affine).Neg(&publicPoint)
	// Only x of the public key is known, so either y may be the signer's.
	for _, candidate := range []*starkcurve.G1Affine{&publicPoint, negated} {
		var term, result starkcurve.G1Affine
		term.ScalarMultiplication(candidate, u2)
		result.Add(&base, &term)
		if !result.IsInfinity() && xCoordinate(&result).Cmp(signature.R) == 0 {
			return nil
		}
	}
	return fmt.Errorf("%w: verification failed", ErrInvalidSignature)
}

// ParseSignature parses the serialized form produced by Signature.String.
func ParseSignature(serialized string) (Signature, error) {
	candidate := trimHexPrefix(strings.TrimSpace(serialized))
	if len(candidate) != 128 {
		return Signature{}, fmt.Errorf("%w: expected 128 hex digits, got %d", ErrInvalidSignature, len(candidate))
	}
	r, okR := new(big.Int).SetString(candidate[:64], 16)
	s, okS := new(big.Int).SetString(candidate[64:], 16)
	if !okR || !okS {
		return Signature{}, fmt.Errorf("%w: not hex", ErrInvalidSignature)
	}
	return Signature{R: r, S: s}, nil
}

// ParseMessage parses a hex payload hash of at most 63 significant hex digits.
func ParseMessage(messageHash string) (*big.Int, error) {
	candidate := trimHexPrefix(strings.TrimSpace(messageHash))
	if candidate == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", ErrInvalidMessage)
	}
	message, ok := new(big.Int).SetString(candidate, 16)
	if !ok {
		return nil, fmt.Errorf("%w: message is not hex", ErrInvalidMessage)
	}
	if message.BitLen() > 252 {
		return nil, fmt.Errorf("%w: message has %d bits", ErrInvalidMessage, message.BitLen())
	}
	return message, nil
}

func trimHexPrefix(value string) string {
	return strings.TrimPrefix(strings.TrimPrefix(value, "0x"), "0X")
}
