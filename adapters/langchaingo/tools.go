package langchaingo

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/callbacks"
	"github.com/tmc/langchaingo/tools"

	"github.com/transak/immutablex-sdk-go/pkg/adapter"
)

// TransferLookupTool is a langchaingo compatible Tool that resolves an
// Immutable X transfer id to its receipt.
type TransferLookupTool struct {
	adapter   *adapter.Adapter
	network   string
	Callbacks callbacks.Handler
}

var _ tools.Tool = &TransferLookupTool{}

// NewTransferLookupTool creates a tool bound to network. If a is nil, a
// default adapter is used.
func NewTransferLookupTool(a *adapter.Adapter, network string) *TransferLookupTool {
	if a == nil {
		a = adapter.New(adapter.Config{})
	}
	return &TransferLookupTool{adapter: a, network: network}
}

func (t *TransferLookupTool) Name() string {
	return "Immutable_X_Transfer_Lookup"
}

func (t *TransferLookupTool) Description() string {
	return `Looks up an Immutable X transfer by its numeric id and returns its status, timestamp and explorer link as JSON.
Use this tool when you need to confirm whether a transfer succeeded.`
}

// Call resolves the transfer id given as input. Lookup failures are reported
// to the agent as text rather than as an error.
func (t *TransferLookupTool) Call(ctx context.Context, input string) (string, error) {
	if t.Callbacks != nil {
		t.Callbacks.HandleToolStart(ctx, input)
	}

	id := strings.TrimSpace(input)
	lookup := t.adapter.LookupTransaction(ctx, id, t.network)
	if lookup.Err != nil {
		if t.Callbacks != nil {
			t.Callbacks.HandleToolError(ctx, lookup.Err)
		}
		if lookup.Status == adapter.StatusNotFound {
			return fmt.Sprintf("Transfer %s was not found", id), nil
		}
		return fmt.Sprintf("Failed to look up transfer: %v", lookup.Err), nil
	}

	receipt := lookup.Result.Receipt
	output, err := encode(map[string]any{
		"id":         receipt.TransactionHash,
		"network":    receipt.Network,
		"successful": receipt.IsSuccessful,
		"date":       receipt.Date,
		"link":       receipt.TransactionLink,
	})
	if err != nil {
		return "", err
	}

	if t.Callbacks != nil {
		t.Callbacks.HandleToolEnd(ctx, output)
	}
	return output, nil
}

// AccountTool reports whether an address is registered on Immutable X and
// its native balance.
type AccountTool struct {
	adapter   *adapter.Adapter
	network   string
	Callbacks callbacks.Handler
}

var _ tools.Tool = &AccountTool{}

// NewAccountTool creates a tool bound to network. If a is nil, a default
// adapter is used.
func NewAccountTool(a *adapter.Adapter, network string) *AccountTool {
	if a == nil {
		a = adapter.New(adapter.Config{})
	}
	return &AccountTool{adapter: a, network: network}
}

func (t *AccountTool) Name() string {
	return "Immutable_X_Account"
}

func (t *AccountTool) Description() string {
	return `Checks an Ethereum wallet address on Immutable X. Returns JSON with whether the address is registered, its ETH balance and an explorer link.
Input must be a 0x-prefixed wallet address.`
}

func (t *AccountTool) Call(ctx context.Context, input string) (string, error) {
	if t.Callbacks != nil {
		t.Callbacks.HandleToolStart(ctx, input)
	}

	address := strings.TrimSpace(input)
	if !t.adapter.IsValidWalletAddress(address) {
		return fmt.Sprintf("%q is not a valid wallet address", address), nil
	}

	lookup := t.adapter.LookupAccount(ctx, address, t.network)
	if lookup.Status == adapter.StatusUnavailable {
		if t.Callbacks != nil {
			t.Callbacks.HandleToolError(ctx, lookup.Err)
		}
		return fmt.Sprintf("Failed to look up account: %v", lookup.Err), nil
	}

	summary := map[string]any{
		"address":    address,
		"network":    t.network,
		"registered": lookup.Registered(),
		"link":       t.adapter.GetWalletLink(address, t.network),
	}
	if lookup.Registered() {
		balance, err := t.adapter.GetBalanceDecimal(ctx, t.network, 18, address, "")
		if err != nil {
			if t.Callbacks != nil {
				t.Callbacks.HandleToolError(ctx, err)
			}
			return fmt.Sprintf("Failed to fetch balance: %v", err), nil
		}
		summary["eth_balance"] = balance.String()
	}

	output, err := encode(summary)
	if err != nil {
		return "", err
	}

	if t.Callbacks != nil {
		t.Callbacks.HandleToolEnd(ctx, output)
	}
	return output, nil
}

func encode(value any) (string, error) {
	jsonData, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode tool output: %w", err)
	}
	return string(jsonData), nil
}
