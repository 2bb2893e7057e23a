package provider

import (
	"context"
	"fmt"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/rpc"

	"github.com/transak/immutablex-sdk-go/pkg/shared"
)

// Provider is the subset of base-chain RPC used by signers. *ethclient.Client
// satisfies it.
type Provider interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	Close()
}

type Config struct {
	// Network is the base-chain tag, for example shared.BaseChainMainnet.
	Network    string
	APIKey     string
	HTTPClient *http.Client
	// RPCURL overrides endpoint selection entirely.
	RPCURL string
}

var alchemyHosts = map[string]string{
	shared.BaseChainMainnet: "https://eth-mainnet.g.alchemy.com/v2/",
	shared.BaseChainSepolia: "https://eth-sepolia.g.alchemy.com/v2/",
}

var publicEndpoints = map[string]string{
	shared.BaseChainMainnet: "https://ethereum-rpc.publicnode.com",
	shared.BaseChainSepolia: "https://ethereum-sepolia-rpc.publicnode.com",
}

// EndpointURL selects the RPC endpoint for a base-chain tag: the keyed
// Alchemy endpoint when apiKey is set, a public endpoint otherwise.
func EndpointURL(network string, apiKey string) (string, error) {
	network = strings.ToLower(strings.TrimSpace(network))
	apiKey = strings.TrimSpace(apiKey)

	if apiKey != "" {
		host, ok := alchemyHosts[network]
		if !ok {
			return "", fmt.Errorf("unsupported base-chain network %q", network)
		}
		return host + apiKey, nil
	}

	endpoint, ok := publicEndpoints[network]
	if !ok {
		return "", fmt.Errorf("unsupported base-chain network %q", network)
	}
	return endpoint, nil
}

// New creates an RPC client for the configured endpoint. HTTP endpoints are
// dialed lazily; nothing is sent until the first call.
func New(ctx context.Context, config Config) (*ethclient.Client, error) {
	endpoint := strings.TrimSpace(config.RPCURL)
	if endpoint == "" {
		resolved, err := EndpointURL(config.Network, config.APIKey)
		if err != nil {
			return nil, err
		}
		endpoint = resolved
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	rpcClient, err := rpc.DialOptions(ctx, endpoint, rpc.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to dial base-chain provider: %w", err)
	}
	return ethclient.NewClient(rpcClient), nil
}
