package imx

// JSONObject is a decoded response body kept alongside its typed form.
type JSONObject map[string]any

// TokenType tags the asset moved by a transfer.
type TokenType string

// Supported token types.
const (
	TokenTypeETH   TokenType = "ETH"
	TokenTypeERC20 TokenType = "ERC20"
)

// User is the registration record of an address; a registered user has at
// least one Stark account.
type User struct {
	Accounts []string   `json:"accounts"`
	Raw      JSONObject `json:"-"`
}

// BalanceRequest selects the balance of one token held by Owner.
type BalanceRequest struct {
	Owner   string
	Address string
}

// ListBalancesRequest selects every balance held by Owner.
type ListBalancesRequest struct {
	Owner string
}

// Balance is a single token balance in base units. The native asset has an
// empty TokenAddress.
type Balance struct {
	Symbol              string `json:"symbol"`
	TokenAddress        string `json:"token_address"`
	Balance             string `json:"balance"`
	PreparingWithdrawal string `json:"preparing_withdrawal"`
	Withdrawable        string `json:"withdrawable"`
}

// BalanceResponse is the result of GetBalance.
type BalanceResponse struct {
	Balance
	Raw JSONObject `json:"-"`
}

// BalanceList is one page of ListBalances.
type BalanceList struct {
	Result    []Balance  `json:"result"`
	Cursor    string     `json:"cursor"`
	Remaining int        `json:"remaining"`
	Raw       JSONObject `json:"-"`
}

// GetTransferRequest identifies a transfer by its numeric id.
type GetTransferRequest struct {
	ID string
}

// TokenData carries the token details sent with a transfer.
type TokenData struct {
	TokenAddress string `json:"token_address,omitempty"`
	Decimals     int    `json:"decimals,omitempty"`
	Quantity     string `json:"quantity,omitempty"`
}

// Token is the typed asset descriptor used by the transfer endpoints.
type Token struct {
	Type TokenType `json:"type"`
	Data TokenData `json:"data"`
}

// Transfer is a transfer record as returned by GetTransfer.
type Transfer struct {
	TransactionID int64      `json:"transaction_id"`
	Status        string     `json:"status"`
	User          string     `json:"user"`
	Receiver      string     `json:"receiver"`
	Token         Token      `json:"token"`
	Timestamp     string     `json:"timestamp"`
	Raw           JSONObject `json:"-"`
}

// TransferRequest describes a transfer. Amount is in base units; TokenAddress
// is only used for ERC20 transfers. ETH transfers always declare 18 decimals,
// so the request carries no decimals of its own.
type TransferRequest struct {
	Receiver     string
	Amount       string
	Type         TokenType
	TokenAddress string
}

// TransferResponse is the result of creating a transfer.
type TransferResponse struct {
	SentSignature string     `json:"sent_signature"`
	Status        string     `json:"status"`
	Time          int64      `json:"time"`
	TransferID    int64      `json:"transfer_id"`
	Raw           JSONObject `json:"-"`
}

type signableTransferRequest struct {
	SenderEtherKey string `json:"sender_ether_key"`
	Token          Token  `json:"token"`
	Amount         string `json:"amount"`
	Receiver       string `json:"receiver"`
}

type signableTransferResponse struct {
	SenderStarkKey      string `json:"sender_stark_key"`
	SenderVaultID       int64  `json:"sender_vault_id"`
	ReceiverStarkKey    string `json:"receiver_stark_key"`
	ReceiverVaultID     int64  `json:"receiver_vault_id"`
	AssetID             string `json:"asset_id"`
	Amount              string `json:"amount"`
	Nonce               int64  `json:"nonce"`
	ExpirationTimestamp int64  `json:"expiration_timestamp"`
	PayloadHash         string `json:"payload_hash"`
	SignableMessage     string `json:"signable_message"`
}

type createTransferRequest struct {
	SenderStarkKey      string `json:"sender_stark_key"`
	SenderVaultID       int64  `json:"sender_vault_id"`
	ReceiverStarkKey    string `json:"receiver_stark_key"`
	ReceiverVaultID     int64  `json:"receiver_vault_id"`
	Amount              string `json:"amount"`
	AssetID             string `json:"asset_id"`
	ExpirationTimestamp int64  `json:"expiration_timestamp"`
	Nonce               int64  `json:"nonce"`
	StarkSignature      string `json:"stark_signature"`
}
