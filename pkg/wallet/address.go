package wallet

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/transak/immutablex-sdk-go/pkg/shared"
)

// IsValidAddress reports whether address is a 20-byte hex address. All-lower
// and all-upper case bodies are accepted as-is; mixed case must match the
// EIP-55 checksum. Only the lower case 0x prefix is accepted.
func IsValidAddress(address string) bool {
	if strings.HasPrefix(address, "0X") || !common.IsHexAddress(address) {
		return false
	}

	body := address
	if len(body) == 2*common.AddressLength+2 {
		body = body[2:]
	}
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}

	return common.HexToAddress(address).Hex()[2:] == body
}

// DeriveAddress returns the checksummed address for a raw secp256k1 private
// key given in hex.
func DeriveAddress(privateKey string) (string, error) {
	key, err := shared.ParsePrivateKey(privateKey)
	if err != nil {
		return "", fmt.Errorf("derive address: %w", err)
	}
	return crypto.PubkeyToAddress(key.PublicKey).Hex(), nil
}
