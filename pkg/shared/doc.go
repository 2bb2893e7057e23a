// Package shared provides common utilities used across the Immutable X SDK
// for Go. It includes the network registry (profiles, explorer links and
// base-chain tags), environment configuration loading, and secp256k1 key
// parsing helpers.
//
// This package is typically used internally by other SDK packages but is
// also available for direct use when building custom integrations.
//
// # Environment Variables
//
// ConfigFromEnv reads IMX_NETWORK, ETH_PRIVATE_KEY, STARK_PRIVATE_KEY and
// ALCHEMY_API_KEY, with MAINNET_ and TESTNET_ prefixed variants taking
// precedence for the selected network. A .env file found in the working
// directory or any parent is loaded first; variables already set in the
// process environment are never overridden.
package shared
