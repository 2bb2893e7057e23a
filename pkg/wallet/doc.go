// Package wallet provides base-chain wallet helpers: address validation,
// address derivation from a private key, the Ethereum signer, and the signer
// pair (Connection) that authorizes Immutable X transfers.
package wallet
