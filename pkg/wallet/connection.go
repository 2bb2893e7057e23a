package wallet

import (
	"crypto/ecdsa"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/transak/immutablex-sdk-go/pkg/provider"
	"github.com/transak/immutablex-sdk-go/pkg/shared"
	"github.com/transak/immutablex-sdk-go/pkg/stark"
)

// EthSigner is a base-chain signing handle bound to a provider. Signing is
// offline and never touches the provider; it is kept so callers can reach the
// base chain through the same handle. BuildConnection must stay free of I/O.
type EthSigner struct {
	key      *ecdsa.PrivateKey
	address  common.Address
	provider provider.Provider
}

// NewEthSigner parses a raw secp256k1 private key and binds it to p, which may be nil.
func NewEthSigner(privateKey string, p provider.Provider) (*EthSigner, error) {
	key, err := shared.ParsePrivateKey(privateKey)
	if err != nil {
		return nil, err
	}
	return &EthSigner{
		key:      key,
		address:  crypto.PubkeyToAddress(key.PublicKey),
		provider: p,
	}, nil
}

// Address returns the checksummed signer address.
func (s *EthSigner) Address() string {
	return s.address.Hex()
}

// Provider returns the base-chain provider the signer is bound to.
func (s *EthSigner) Provider() provider.Provider {
	return s.provider
}

// SignMessage signs message with the EIP-191 personal message prefix and
// returns the 65-byte signature as hex, with v in {27, 28}.
func (s *EthSigner) SignMessage(message string) (string, error) {
	signature, err := crypto.Sign(accounts.TextHash([]byte(message)), s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign message: %w", err)
	}
	signature[crypto.RecoveryIDOffset] += 27
	return hexutil.Encode(signature), nil
}

// Connection pairs the base-chain and L2 signers required to authorize a transfer.
type Connection struct {
	EthSigner   *EthSigner
	StarkSigner *stark.Signer
}

// BuildConnection builds the signer pair. It performs no network I/O.
func BuildConnection(ethPrivateKey string, starkPrivateKey string, p provider.Provider) (Connection, error) {
	ethSigner, err := NewEthSigner(ethPrivateKey, p)
	if err != nil {
		return Connection{}, fmt.Errorf("base-chain key: %w", err)
	}

	starkSigner, err := stark.NewSigner(starkPrivateKey)
	if err != nil {
		return Connection{}, fmt.Errorf("%w: stark key: %w", shared.ErrInvalidKey, err)
	}

	return Connection{
		EthSigner:   ethSigner,
		StarkSigner: starkSigner,
	}, nil
}
