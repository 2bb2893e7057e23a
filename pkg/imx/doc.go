// Package imx provides a REST client for the Immutable X public API. It
// covers user registration lookups, token balances, transfer retrieval and
// the signed transfer flow.
//
// A transfer is submitted in two requests. The client first asks the API for
// the signable transfer details, then signs the returned message with the
// base-chain key (EIP-191) and the payload hash with the Stark key before
// creating the transfer. Signers are supplied through WalletConnection; the
// wallet package provides implementations.
//
// Every decoded response also carries the untyped JSON object in its Raw
// field, with numbers preserved as json.Number. Non-2xx responses are
// returned as *APIError, and a 404 satisfies errors.Is(err, ErrNotFound).
//
// # Immutable X API
//
// API reference: https://docs.x.immutable.com/reference
package imx
