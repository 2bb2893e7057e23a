package adapter

import (
	"context"
	"errors"
	"net/http"

	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/ethereum/go-ethereum/log"

	"github.com/transak/immutablex-sdk-go/pkg/imx"
	"github.com/transak/immutablex-sdk-go/pkg/provider"
	"github.com/transak/immutablex-sdk-go/pkg/shared"
	"github.com/transak/immutablex-sdk-go/pkg/units"
	"github.com/transak/immutablex-sdk-go/pkg/wallet"
)

var (
	ErrLookupFailed   = errors.New("lookup failed")
	ErrTransferFailed = errors.New("transfer failed")

	ErrInvalidAmount  = units.ErrInvalidAmount
	ErrInvalidKey     = shared.ErrInvalidKey
	ErrUnknownNetwork = shared.ErrUnknownNetwork
)

// Config configures an Adapter. The zero value targets the public Immutable X
// networks with default clients.
type Config struct {
	// Registry defaults to shared.DefaultRegistry().
	Registry   *shared.NetworkRegistry
	HTTPClient *http.Client
	Logger     log.Logger
	// StrictNetworks rejects identifiers other than "main" and "testnet"
	// instead of folding them to the sandbox.
	StrictNetworks bool
	// ProviderRPCURL overrides base-chain endpoint selection.
	ProviderRPCURL string
}

// Adapter exposes wallet, balance and transfer operations against Immutable X.
// It holds configuration only and is safe for concurrent use.
type Adapter struct {
	registry       shared.NetworkRegistry
	httpClient     *http.Client
	logger         log.Logger
	strict         bool
	providerRPCURL string
}

// New creates an Adapter. No connection is opened.
func New(config Config) *Adapter {
	registry := shared.DefaultRegistry()
	if config.Registry != nil {
		registry = *config.Registry
	}
	logger := config.Logger
	if logger == nil {
		logger = log.Root()
	}
	return &Adapter{
		registry:       registry,
		httpClient:     config.HTTPClient,
		logger:         logger,
		strict:         config.StrictNetworks,
		providerRPCURL: config.ProviderRPCURL,
	}
}

func (a *Adapter) resolve(network string) (shared.NetworkProfile, error) {
	if a.strict {
		return a.registry.ResolveStrict(network)
	}
	return a.registry.Resolve(network), nil
}

// IsValidWalletAddress reports whether address is a well-formed Ethereum
// address with a valid checksum, if it carries one.
func (a *Adapter) IsValidWalletAddress(address string) bool {
	return wallet.IsValidAddress(address)
}

// GetTransactionLink returns the explorer link for a transaction. Links never
// fail, so unknown networks fold to the sandbox even in strict mode.
func (a *Adapter) GetTransactionLink(id string, network string) string {
	return a.registry.TransactionLink(id, network)
}

// GetWalletLink returns the explorer link for a wallet address.
func (a *Adapter) GetWalletLink(address string, network string) string {
	return a.registry.WalletLink(address, network)
}

// GetClient returns an Immutable X client bound to the network's environment.
func (a *Adapter) GetClient(network string) (*imx.Client, error) {
	profile, err := a.resolve(network)
	if err != nil {
		return nil, err
	}
	return imx.NewClient(imx.Config{
		Environment: profile.Name,
		BaseURL:     profile.APIBaseURL,
		HTTPClient:  a.httpClient,
	})
}

// GetProvider returns a base-chain provider for the network. A non-empty
// apiKey selects the keyed endpoint; otherwise a public endpoint is used.
func (a *Adapter) GetProvider(ctx context.Context, apiKey string, network string) (*ethclient.Client, error) {
	profile, err := a.resolve(network)
	if err != nil {
		return nil, err
	}
	return provider.New(ctx, provider.Config{
		Network:    profile.BaseChain,
		APIKey:     apiKey,
		HTTPClient: a.httpClient,
		RPCURL:     a.providerRPCURL,
	})
}
