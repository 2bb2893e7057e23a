// Package provider builds base-chain (Ethereum) RPC providers. A keyed Alchemy
// endpoint is used when an API key is supplied; otherwise a public endpoint
// for the same network tag.
package provider
