// Package stark implements the Stark key signer used to authorize Immutable X
// (StarkEx) requests: key parsing, public Stark key derivation and ECDSA over
// the STARK-friendly curve with RFC 6979 nonces.
package stark
