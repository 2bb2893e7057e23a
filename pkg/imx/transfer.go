package imx

import (
	"context"
	"fmt"
	"net/http"
	"strings"
)

// EthSigner signs EIP-191 messages with the base-chain key.
type EthSigner interface {
	Address() string
	SignMessage(message string) (string, error)
}

// StarkSigner signs payload hashes with the L2 key.
type StarkSigner interface {
	PublicKey() string
	SignMessage(messageHash string) (string, error)
}

// WalletConnection is the signer pair that authorizes a transfer.
type WalletConnection struct {
	EthSigner   EthSigner
	StarkSigner StarkSigner
}

const (
	headerEthAddress   = "x-imx-eth-address"
	headerEthSignature = "x-imx-eth-signature"
	ethDecimals        = 18
)

// Transfer submits a transfer in a single attempt: it requests the signable
// transfer details, signs them with both keys and creates the transfer.
func (c *Client) Transfer(
	ctx context.Context,
	connection WalletConnection,
	request TransferRequest,
) (TransferResponse, error) {
	var response TransferResponse
	if connection.EthSigner == nil || connection.StarkSigner == nil {
		return response, fmt.Errorf("wallet connection requires both signers")
	}
	token, err := transferToken(request)
	if err != nil {
		return response, err
	}
	if strings.TrimSpace(request.Receiver) == "" {
		return response, fmt.Errorf("transfer receiver is required")
	}
	if strings.TrimSpace(request.Amount) == "" {
		return response, fmt.Errorf("transfer amount is required")
	}

	sender := connection.EthSigner.Address()

	var signable signableTransferResponse
	if _, err := c.requestJSON(
		ctx,
		http.MethodPost,
		"/v1/signable-transfer-details",
		signableTransferRequest{
			SenderEtherKey: strings.ToLower(sender),
			Token:          token,
			Amount:         request.Amount,
			Receiver:       strings.ToLower(strings.TrimSpace(request.Receiver)),
		},
		nil,
		&signable,
	); err != nil {
		return response, err
	}

	ethSignature, err := connection.EthSigner.SignMessage(signable.SignableMessage)
	if err != nil {
		return response, fmt.Errorf("failed to sign transfer message: %w", err)
	}
	starkSignature, err := connection.StarkSigner.SignMessage(signable.PayloadHash)
	if err != nil {
		return response, fmt.Errorf("failed to sign transfer payload: %w", err)
	}

	raw, err := c.requestJSON(
		ctx,
		http.MethodPost,
		"/v1/transfers",
		createTransferRequest{
			SenderStarkKey:      signable.SenderStarkKey,
			SenderVaultID:       signable.SenderVaultID,
			ReceiverStarkKey:    signable.ReceiverStarkKey,
			ReceiverVaultID:     signable.ReceiverVaultID,
			Amount:              signable.Amount,
			AssetID:             signable.AssetID,
			ExpirationTimestamp: signable.ExpirationTimestamp,
			Nonce:               signable.Nonce,
			StarkSignature:      starkSignature,
		},
		map[string]string{
			headerEthAddress:   strings.ToLower(sender),
			headerEthSignature: ethSignature,
		},
		&response,
	)
	if err != nil {
		return response, err
	}
	response.Raw = raw
	return response, nil
}

func transferToken(request TransferRequest) (Token, error) {
	switch request.Type {
	case TokenTypeETH:
		return Token{Type: TokenTypeETH, Data: TokenData{Decimals: ethDecimals}}, nil
	case TokenTypeERC20:
		tokenAddress := strings.TrimSpace(request.TokenAddress)
		if tokenAddress == "" {
			return Token{}, fmt.Errorf("ERC20 transfer requires a token address")
		}
		return Token{Type: TokenTypeERC20, Data: TokenData{TokenAddress: strings.ToLower(tokenAddress)}}, nil
	default:
		return Token{}, fmt.Errorf("unsupported token type %q", request.Type)
	}
}
