// Package adapter is the entry point of the Immutable X SDK for Go. It exposes
// the wallet, balance and transfer operations an application needs against
// Immutable X and its Ethereum base chain.
//
// Network identifiers select the environment: "main" targets production and
// any other identifier targets the sandbox. Set Config.StrictNetworks to
// reject identifiers other than "main" and "testnet" with ErrUnknownNetwork.
//
//	a := adapter.New(adapter.Config{})
//	balance, err := a.GetBalance(ctx, "testnet", 18, owner, "")
//
// IsAccountRegistered and GetTransaction report every failure as false or
// nil. Use LookupAccount and LookupTransaction to tell a missing record from
// an unreachable API.
//
// SendTransaction submits exactly once and is not idempotent. Callers that
// retry after an ambiguous error risk a duplicate transfer.
package adapter
