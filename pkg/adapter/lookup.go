package adapter

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/transak/immutablex-sdk-go/pkg/imx"
	"github.com/transak/immutablex-sdk-go/pkg/units"
)

const transferStatusSuccess = "success"

// LookupStatus distinguishes a missing record from a failed query.
type LookupStatus int

// Lookup outcomes. StatusUnavailable covers transport and server failures.
const (
	StatusFound LookupStatus = iota
	StatusNotFound
	StatusUnavailable
)

func (s LookupStatus) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not_found"
	case StatusUnavailable:
		return "unavailable"
	default:
		return "unknown"
	}
}

func lookupStatus(err error) LookupStatus {
	switch {
	case err == nil:
		return StatusFound
	case errors.Is(err, imx.ErrNotFound):
		return StatusNotFound
	default:
		return StatusUnavailable
	}
}

// AccountLookup is the outcome of a registration query. Err is set unless
// Status is StatusFound.
type AccountLookup struct {
	Status LookupStatus
	User   imx.User
	Err    error
}

// Registered reports whether the account exists on Immutable X.
func (l AccountLookup) Registered() bool {
	return l.Status == StatusFound
}

// LookupAccount queries whether address is registered on the network.
func (a *Adapter) LookupAccount(ctx context.Context, address string, network string) AccountLookup {
	client, err := a.GetClient(network)
	if err != nil {
		return AccountLookup{Status: StatusUnavailable, Err: err}
	}

	a.logger.Debug("Looking up account", "network", network, "address", address)
	user, err := client.GetUser(ctx, address)
	if err != nil {
		return AccountLookup{Status: lookupStatus(err), Err: err}
	}
	return AccountLookup{Status: StatusFound, User: user}
}

// IsAccountRegistered reports whether address is registered. Any failure,
// including transport errors, yields false.
func (a *Adapter) IsAccountRegistered(ctx context.Context, address string, network string) bool {
	lookup := a.LookupAccount(ctx, address, network)
	if lookup.Err != nil {
		a.logger.Warn("Account lookup failed", "network", network, "address", address, "status", lookup.Status, "err", lookup.Err)
	}
	return lookup.Registered()
}

// GetBalanceDecimal returns the owner's balance in human units. An empty
// tokenAddress selects the native asset.
func (a *Adapter) GetBalanceDecimal(
	ctx context.Context,
	network string,
	decimals int,
	owner string,
	tokenAddress string,
) (decimal.Decimal, error) {
	client, err := a.GetClient(network)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	balance := "0"
	if tokenAddress != "" {
		a.logger.Debug("Fetching token balance", "network", network, "owner", owner, "token", tokenAddress)
		response, err := client.GetBalance(ctx, imx.BalanceRequest{Owner: owner, Address: tokenAddress})
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %w", ErrLookupFailed, err)
		}
		balance = response.Balance.Balance
	} else {
		// The native asset has no contract, so it is only reachable through the list.
		a.logger.Debug("Fetching native balance", "network", network, "owner", owner)
		list, err := client.ListBalances(ctx, imx.ListBalancesRequest{Owner: owner})
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: %w", ErrLookupFailed, err)
		}
		for _, entry := range list.Result {
			if entry.TokenAddress == "" {
				balance = entry.Balance
				break
			}
		}
	}

	human, err := units.ToDecimal(balance, decimals)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}
	return decimal.RequireFromString(human), nil
}

// GetBalance is GetBalanceDecimal returning a float64.
func (a *Adapter) GetBalance(
	ctx context.Context,
	network string,
	decimals int,
	owner string,
	tokenAddress string,
) (float64, error) {
	balance, err := a.GetBalanceDecimal(ctx, network, decimals, owner, tokenAddress)
	if err != nil {
		return 0, err
	}
	value, _ := balance.Float64()
	return value, nil
}

// TransactionReceipt summarizes a transfer fetched by id. Gas fields do not
// apply to Immutable X and are always zero.
type TransactionReceipt struct {
	Date                  *time.Time
	GasCostCryptoCurrency string
	GasCostInCrypto       float64
	GasLimit              uint64
	IsPending             bool
	IsExecuted            bool
	IsSuccessful          bool
	IsFailed              bool
	IsInvalid             bool
	Network               string
	Nonce                 uint64
	TransactionHash       string
	TransactionLink       string
}

// TransactionResult pairs the raw transfer record with its receipt.
type TransactionResult struct {
	TransactionData imx.JSONObject
	Receipt         TransactionReceipt
}

// TransactionLookup is the outcome of a transfer query. Result is set only
// when Status is StatusFound.
type TransactionLookup struct {
	Status LookupStatus
	Result *TransactionResult
	Err    error
}

// LookupTransaction fetches a transfer by id.
func (a *Adapter) LookupTransaction(ctx context.Context, id string, network string) TransactionLookup {
	client, err := a.GetClient(network)
	if err != nil {
		return TransactionLookup{Status: StatusUnavailable, Err: err}
	}

	a.logger.Debug("Fetching transfer", "network", network, "id", id)
	transfer, err := client.GetTransfer(ctx, imx.GetTransferRequest{ID: id})
	if err != nil {
		return TransactionLookup{Status: lookupStatus(err), Err: err}
	}

	successful := transfer.Status == transferStatusSuccess
	return TransactionLookup{
		Status: StatusFound,
		Result: &TransactionResult{
			TransactionData: transfer.Raw,
			Receipt: TransactionReceipt{
				Date:            parseTimestamp(transfer.Timestamp),
				IsExecuted:      true,
				IsSuccessful:    successful,
				IsFailed:        !successful,
				IsInvalid:       !successful,
				Network:         network,
				TransactionHash: strconv.FormatInt(transfer.TransactionID, 10),
				TransactionLink: a.registry.TransactionLink(id, network),
			},
		},
	}
}

// GetTransaction fetches a transfer by id. Any failure yields nil.
func (a *Adapter) GetTransaction(ctx context.Context, id string, network string) *TransactionResult {
	lookup := a.LookupTransaction(ctx, id, network)
	if lookup.Err != nil {
		a.logger.Warn("Transfer lookup failed", "network", network, "id", id, "status", lookup.Status, "err", lookup.Err)
	}
	return lookup.Result
}

func parseTimestamp(value string) *time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	parsed, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil
	}
	return &parsed
}
