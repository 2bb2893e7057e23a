// Package langchaingo provides Immutable X tools for the tmc/langchaingo AI
// agent framework.
//
// The tools are read-only. They let an agent check whether a wallet is
// registered on Immutable X, read its native balance and look up a transfer.
// None of them can move funds.
//
// # Available Tools
//
//   - AccountTool: reports registration and native balance for an address.
//   - TransferLookupTool: resolves a transfer id into its receipt as JSON.
//
// # Usage
//
//	lookup := langchaingo.NewTransferLookupTool(nil, "testnet")
//	agent := initialize.NewSingleActionAgent(llm, []tools.Tool{lookup})
//
// # Documentation
//
// Langchaingo: https://github.com/tmc/langchaingo
package langchaingo
