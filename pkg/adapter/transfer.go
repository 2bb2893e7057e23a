package adapter

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/transak/immutablex-sdk-go/pkg/imx"
	"github.com/transak/immutablex-sdk-go/pkg/units"
	"github.com/transak/immutablex-sdk-go/pkg/wallet"
)

// TransferRequest describes a transfer to submit. Amount is a human decimal
// string scaled by Decimals. An empty TokenAddress sends the native asset.
type TransferRequest struct {
	To              string
	Amount          string
	Network         string
	Decimals        int
	PrivateKey      string
	StarkPrivateKey string
	TokenAddress    string
	ProviderAPIKey  string
}

// TransferReceipt summarizes a submitted transfer. Nonce and gas cost are
// never set on Immutable X.
type TransferReceipt struct {
	Amount                string
	Date                  *time.Time
	From                  string
	GasCostCryptoCurrency string
	Network               string
	Nonce                 uint64
	To                    string
	TransactionHash       string
	TransactionLink       string
}

// TransferResult pairs the raw transfer response with its receipt.
type TransferResult struct {
	TransactionData imx.JSONObject
	Receipt         TransferReceipt
}

// SendTransaction submits a single transfer. It is not idempotent: retrying
// after an ambiguous failure may submit the transfer twice.
func (a *Adapter) SendTransaction(ctx context.Context, request TransferRequest) (TransferResult, error) {
	var result TransferResult

	client, err := a.GetClient(request.Network)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	amount, err := units.ToBaseUnits(request.Amount, request.Decimals)
	if err != nil {
		return result, err
	}

	from, err := wallet.DeriveAddress(request.PrivateKey)
	if err != nil {
		return result, err
	}

	baseChain, err := a.GetProvider(ctx, request.ProviderAPIKey, request.Network)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}
	defer baseChain.Close()

	connection, err := wallet.BuildConnection(request.PrivateKey, request.StarkPrivateKey, baseChain)
	if err != nil {
		return result, err
	}

	instruction := imx.TransferRequest{
		Receiver: request.To,
		Amount:   amount,
		Type:     imx.TokenTypeETH,
	}
	if tokenAddress := strings.TrimSpace(request.TokenAddress); tokenAddress != "" {
		instruction.Type = imx.TokenTypeERC20
		instruction.TokenAddress = tokenAddress
	}

	a.logger.Debug("Submitting transfer",
		"network", request.Network,
		"from", from,
		"to", request.To,
		"amount", amount,
		"type", instruction.Type,
		"token", instruction.TokenAddress,
	)
	response, err := client.Transfer(ctx, imx.WalletConnection{
		EthSigner:   connection.EthSigner,
		StarkSigner: connection.StarkSigner,
	}, instruction)
	if err != nil {
		return result, fmt.Errorf("%w: %w", ErrTransferFailed, err)
	}

	transactionHash := strconv.FormatInt(response.TransferID, 10)
	a.logger.Info("Transfer submitted", "network", request.Network, "id", transactionHash, "status", response.Status)

	var date *time.Time
	if response.Time > 0 {
		submitted := time.Unix(response.Time, 0).UTC()
		date = &submitted
	}

	result.TransactionData = response.Raw
	result.Receipt = TransferReceipt{
		Amount:          request.Amount,
		Date:            date,
		From:            from,
		Network:         request.Network,
		To:              request.To,
		TransactionHash: transactionHash,
		TransactionLink: a.registry.TransactionLink(transactionHash, request.Network),
	}
	return result, nil
}
