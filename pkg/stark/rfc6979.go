package stark

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"math/big"
)

// nonceGenerator is the HMAC-SHA256 DRBG of RFC 6979 section 3.2 over the
// curve order. Candidates are drawn by rejection, so they are unbiased.
type nonceGenerator struct {
	k, v []byte
}

// newNonceGenerator seeds the generator the way StarkWare's reference signer
// does, so signatures match theirs for the same key and message.
func newNonceGenerator(privateKey *big.Int, message *big.Int, seed uint64) *nonceGenerator {
	hashed := new(big.Int).Set(message)
	// Hashes of 248+ bits whose length is not byte aligned are shifted by one
	// nibble, mirroring how the reference JS library reads hex.
	if bits := hashed.BitLen(); bits >= 248 && bits%8 >= 1 && bits%8 <= 4 {
		hashed.Lsh(hashed, 4)
	}

	var seedMaterial []byte
	seedMaterial = append(seedMaterial, privateKey.FillBytes(make([]byte, 32))...)
	seedMaterial = append(seedMaterial, bitsToOctets(hashed.Bytes())...)
	if seed > 0 {
		seedMaterial = append(seedMaterial, new(big.Int).SetUint64(seed).Bytes()...)
	}

	g := &nonceGenerator{
		k: make([]byte, sha256.Size),
		v: bytes.Repeat([]byte{0x01}, sha256.Size),
	}
	g.k = g.mac(g.v, []byte{0x00}, seedMaterial)
	g.v = g.mac(g.v)
	g.k = g.mac(g.v, []byte{0x01}, seedMaterial)
	g.v = g.mac(g.v)
	return g
}

// next returns the first candidate in [1, n).
func (g *nonceGenerator) next() *big.Int {
	for {
		g.v = g.mac(g.v)
		candidate := bitsToInt(g.v)
		if candidate.Sign() > 0 && candidate.Cmp(curveOrder) < 0 {
			return candidate
		}
		g.k = g.mac(g.v, []byte{0x00})
		g.v = g.mac(g.v)
	}
}

func (g *nonceGenerator) mac(parts ...[]byte) []byte {
	h := hmac.New(sha256.New, g.k)
	for _, part := range parts {
		h.Write(part)
	}
	return h.Sum(nil)
}

// bitsToInt keeps the leftmost qlen bits of data.
func bitsToInt(data []byte) *big.Int {
	value := new(big.Int).SetBytes(data)
	if excess := len(data)*8 - curveOrder.BitLen(); excess > 0 {
		value.Rsh(value, uint(excess))
	}
	return value
}

func bitsToOctets(data []byte) []byte {
	value := bitsToInt(data)
	if reduced := new(big.Int).Sub(value, curveOrder); reduced.Sign() >= 0 {
		value = reduced
	}
	return value.FillBytes(make([]byte, 32))
}
