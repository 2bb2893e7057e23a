package wallet

import (
	"context"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/transak/immutablex-sdk-go/pkg/shared"
)

// Hardhat's first development account.
const (
	testPrivateKey = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	testAddress    = "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"
	testStarkKey   = "0x3c1e9550e66958296d11b60f8e8e7a7ad990d07fa65d5f7652c4a6c87d4e3cc"
)

func TestIsValidAddress(t *testing.T) {
	valid := []string{
		testAddress,
		strings.ToLower(testAddress),
		"0x" + strings.ToUpper(testAddress[2:]),
		"0x7EE860cDCc157998EaEF68f6B5387DE77fe3D02F",
		"0x0000000000000000000000000000000000000000",
		strings.ToLower(testAddress[2:]),
	}
	for _, address := range valid {
		if !IsValidAddress(address) {
			t.Fatalf("expected %q to be valid", address)
		}
	}
}

func TestIsValidAddressInvalid(t *testing.T) {
	invalid := []string{
		"",
		"0x",
		testAddress[:41],
		testAddress + "00",
		"0xg39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		// checksum broken by flipping the case of one letter
		"0xF39Fd6e51aad88F6F4ce6aB8827279cffFb92266",
		"not an address",
		"0X" + testAddress[2:],
		"0X" + strings.ToLower(testAddress[2:]),
	}
	for _, address := range invalid {
		if IsValidAddress(address) {
			t.Fatalf("expected %q to be invalid", address)
		}
	}
}

func TestDeriveAddress(t *testing.T) {
	for _, raw := range []string{testPrivateKey, "0x" + testPrivateKey} {
		address, err := DeriveAddress(raw)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if address != testAddress {
			t.Fatalf("expected %s, got %s", testAddress, address)
		}
	}
}

func TestDeriveAddressInvalid(t *testing.T) {
	for _, raw := range []string{"", "zz", "0x1234"} {
		if _, err := DeriveAddress(raw); !errors.Is(err, shared.ErrInvalidKey) {
			t.Fatalf("expected ErrInvalidKey for %q, got %v", raw, err)
		}
	}
}

func TestEthSignerSignMessage(t *testing.T) {
	signer, err := NewEthSigner(testPrivateKey, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if signer.Address() != testAddress {
		t.Fatalf("expected %s, got %s", testAddress, signer.Address())
	}

	message := "Only sign this request if you've initiated an action with Immutable X."
	encoded, err := signer.SignMessage(message)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	signature, err := hexutil.Decode(encoded)
	if err != nil {
		t.Fatalf("signature is not hex: %v", err)
	}
	if len(signature) != 65 {
		t.Fatalf("expected 65-byte signature, got %d", len(signature))
	}
	if v := signature[64]; v != 27 && v != 28 {
		t.Fatalf("expected v in {27, 28}, got %d", v)
	}

	signature[64] -= 27
	publicKey, err := crypto.SigToPub(accounts.TextHash([]byte(message)), signature)
	if err != nil {
		t.Fatalf("failed to recover public key: %v", err)
	}
	if recovered := crypto.PubkeyToAddress(*publicKey).Hex(); recovered != testAddress {
		t.Fatalf("recovered %s, expected %s", recovered, testAddress)
	}
}

func TestBuildConnection(t *testing.T) {
	connection, err := BuildConnection(testPrivateKey, testStarkKey, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if connection.EthSigner.Address() != testAddress {
		t.Fatalf("unexpected eth address: %s", connection.EthSigner.Address())
	}
	if connection.StarkSigner.PublicKey() != "0x077a3b314db07c45076d11f62b6f9e748a39790441823307743cf00d6597ea43" {
		t.Fatalf("unexpected stark key: %s", connection.StarkSigner.PublicKey())
	}
	if connection.EthSigner.Provider() != nil {
		t.Fatal("expected nil provider")
	}
}

// countingProvider records every call so tests can assert signing stays offline.
type countingProvider struct {
	calls int
}

func (p *countingProvider) ChainID(context.Context) (*big.Int, error) {
	p.calls++
	return big.NewInt(1), nil
}

func (p *countingProvider) BalanceAt(context.Context, common.Address, *big.Int) (*big.Int, error) {
	p.calls++
	return big.NewInt(0), nil
}

func (p *countingProvider) Close() {
	p.calls++
}

func TestBuildConnectionKeepsProviderOffline(t *testing.T) {
	stub := &countingProvider{}
	connection, err := BuildConnection(testPrivateKey, testStarkKey, stub)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if connection.EthSigner.Provider() != stub {
		t.Fatal("expected the provider to be kept on the signer")
	}
	if _, err := connection.EthSigner.SignMessage("hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := connection.StarkSigner.SignMessage("0x1234"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stub.calls != 0 {
		t.Fatalf("expected no provider calls, got %d", stub.calls)
	}
}

func TestBuildConnectionInvalidKeys(t *testing.T) {
	if _, err := BuildConnection("bad", testStarkKey, nil); !errors.Is(err, shared.ErrInvalidKey) {
		t.Fatalf("expected ErrInvalidKey for bad eth key, got %v", err)
	}
	malformed := []string{
		"",
		"zz",
		"0x0",
		// the curve order itself
		"0x800000000000010ffffffffffffffffb781126dcae7b2321e66a241adc64d2f",
	}
	for _, starkKey := range malformed {
		if _, err := BuildConnection(testPrivateKey, starkKey, nil); !errors.Is(err, shared.ErrInvalidKey) {
			t.Fatalf("expected ErrInvalidKey for stark key %q, got %v", starkKey, err)
		}
	}
}
