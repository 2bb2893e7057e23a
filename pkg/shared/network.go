package shared

import (
	"errors"
	"fmt"
	"strings"
)

const (
	NetworkMain    = "main"
	NetworkTestnet = "testnet"
)

// NetworkName identifies the Immutable X environment a profile targets.
type NetworkName string

const (
	NetworkNameProduction NetworkName = "PRODUCTION"
	NetworkNameSandbox    NetworkName = "SANDBOX"
)

const (
	ProductionAPIURL = "https://api.x.immutable.com"
	SandboxAPIURL    = "https://api.sandbox.x.immutable.com"
)

// Base-chain network tags understood by the provider factory.
const (
	BaseChainMainnet = "mainnet"
	BaseChainSepolia = "sepolia"
)

var ErrUnknownNetwork = errors.New("unknown network")

// NetworkProfile is the static metadata for one Immutable X environment.
type NetworkProfile struct {
	Name            NetworkName
	APIBaseURL      string
	BaseChain       string
	TransactionLink func(id string) string
	WalletLink      func(address string) string
}

// NetworkRegistry maps network identifiers to profiles. It is immutable after
// construction and safe for concurrent use.
type NetworkRegistry struct {
	production NetworkProfile
	sandbox    NetworkProfile
}

// NewNetworkRegistry creates a registry from explicit production and sandbox profiles.
func NewNetworkRegistry(production NetworkProfile, sandbox NetworkProfile) NetworkRegistry {
	return NetworkRegistry{production: production, sandbox: sandbox}
}

// DefaultRegistry returns the registry for the public Immutable X environments.
func DefaultRegistry() NetworkRegistry {
	return NewNetworkRegistry(
		NetworkProfile{
			Name:       NetworkNameProduction,
			APIBaseURL: ProductionAPIURL,
			BaseChain:  BaseChainMainnet,
			TransactionLink: func(id string) string {
				return fmt.Sprintf("https://immutascan.io/tx/%s", id)
			},
			WalletLink: func(address string) string {
				return fmt.Sprintf("https://immutascan.io/address/%s", address)
			},
		},
		// immutascan does not index the sandbox, so links point at the sandbox API.
		NetworkProfile{
			Name:       NetworkNameSandbox,
			APIBaseURL: SandboxAPIURL,
			BaseChain:  BaseChainSepolia,
			TransactionLink: func(id string) string {
				return fmt.Sprintf("%s/v1/transfers/%s", SandboxAPIURL, id)
			},
			WalletLink: func(address string) string {
				return fmt.Sprintf("%s/v2/balances/%s", SandboxAPIURL, address)
			},
		},
	)
}

// Resolve returns the production profile for "main" and the sandbox profile
// for every other identifier.
func (r NetworkRegistry) Resolve(network string) NetworkProfile {
	if network == NetworkMain {
		return r.production
	}
	return r.sandbox
}

// ResolveStrict is Resolve restricted to the recognized identifiers.
func (r NetworkRegistry) ResolveStrict(network string) (NetworkProfile, error) {
	switch network {
	case NetworkMain:
		return r.production, nil
	case NetworkTestnet:
		return r.sandbox, nil
	default:
		return NetworkProfile{}, fmt.Errorf("%w %q", ErrUnknownNetwork, network)
	}
}

// TransactionLink returns the explorer link for a transaction on the given network.
func (r NetworkRegistry) TransactionLink(id string, network string) string {
	return r.Resolve(network).TransactionLink(id)
}

// WalletLink returns the explorer link for a wallet on the given network.
func (r NetworkRegistry) WalletLink(address string, network string) string {
	return r.Resolve(network).WalletLink(address)
}

// NormalizeNetwork trims and lower-cases a network identifier. Empty input
// defaults to testnet.
func NormalizeNetwork(network string) string {
	normalized := strings.ToLower(strings.TrimSpace(network))
	if normalized == "" {
		return NetworkTestnet
	}
	return normalized
}
