// The Immutable X SDK for Go provides wallet, balance and transfer operations
// against the Immutable X layer-2 network and its Ethereum base chain.
//
// # Packages
//
//   - adapter: the public operations (balances, transfers, lookups, links)
//   - imx: the Immutable X REST client and signed transfer flow
//   - stark: Stark curve key handling and signing
//   - wallet: Ethereum address validation, key derivation and signers
//   - provider: base-chain JSON-RPC provider selection
//   - units: conversion between human amounts and base units
//   - shared: network registry, environment configuration and key parsing
//
// # Documentation
//
// Immutable X API reference: https://docs.x.immutable.com/reference
//
// # Installation
//
//	go get github.com/transak/immutablex-sdk-go@latest
package immutablex_sdk_go
