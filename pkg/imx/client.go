package imx

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andybalholm/brotli"

	"github.com/transak/immutablex-sdk-go/pkg/shared"
)

// DefaultUserAgent is sent when Config.Headers sets no User-Agent.
const DefaultUserAgent = "immutablex-sdk-go"

// Config configures a Client.
type Config struct {
	// Environment selects the default base URL. Anything other than
	// shared.NetworkNameProduction targets the sandbox.
	Environment shared.NetworkName
	BaseURL     string
	HTTPClient  *http.Client
	Headers     map[string]string
}

// Client is a thin Immutable X REST client. It holds configuration only and
// is safe for concurrent use.
type Client struct {
	environment shared.NetworkName
	baseURL     string
	httpClient  *http.Client
	headers     map[string]string
}

// NewClient creates a new Client. No connection is opened.
func NewClient(config Config) (*Client, error) {
	environment := config.Environment
	if environment != shared.NetworkNameProduction {
		environment = shared.NetworkNameSandbox
	}

	baseURL := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if baseURL == "" {
		if environment == shared.NetworkNameProduction {
			baseURL = shared.ProductionAPIURL
		} else {
			baseURL = shared.SandboxAPIURL
		}
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid immutable x base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid immutable x base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedBaseURL.Host) == "" {
		return nil, fmt.Errorf("invalid immutable x base URL: host is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	headers := map[string]string{}
	for key, value := range config.Headers {
		headers[key] = value
	}

	return &Client{
		environment: environment,
		baseURL:     strings.TrimRight(parsedBaseURL.String(), "/"),
		httpClient:  httpClient,
		headers:     headers,
	}, nil
}

// BaseURL returns the API root the client targets.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Environment returns PRODUCTION or SANDBOX.
func (c *Client) Environment() shared.NetworkName {
	return c.environment
}

// GetUser returns the Stark keys registered for an Ethereum address.
func (c *Client) GetUser(ctx context.Context, address string) (User, error) {
	var user User
	normalized := strings.TrimSpace(address)
	if normalized == "" {
		return user, fmt.Errorf("user address is required")
	}

	raw, err := c.requestJSON(ctx, http.MethodGet, "/v1/users/"+url.PathEscape(normalized), nil, nil, &user)
	if err != nil {
		return user, err
	}
	user.Raw = raw
	return user, nil
}

// GetBalance returns the owner's balance of a single token contract.
func (c *Client) GetBalance(ctx context.Context, request BalanceRequest) (BalanceResponse, error) {
	var balance BalanceResponse
	owner := strings.TrimSpace(request.Owner)
	address := strings.TrimSpace(request.Address)
	if owner == "" {
		return balance, fmt.Errorf("balance owner is required")
	}
	if address == "" {
		return balance, fmt.Errorf("token address is required")
	}

	path := fmt.Sprintf("/v2/balances/%s/%s", url.PathEscape(owner), url.PathEscape(address))
	raw, err := c.requestJSON(ctx, http.MethodGet, path, nil, nil, &balance)
	if err != nil {
		return balance, err
	}
	balance.Raw = raw
	return balance, nil
}

// ListBalances returns the first page of the owner's balances. The native
// asset is listed with an empty token address.
func (c *Client) ListBalances(ctx context.Context, request ListBalancesRequest) (BalanceList, error) {
	var list BalanceList
	owner := strings.TrimSpace(request.Owner)
	if owner == "" {
		return list, fmt.Errorf("balance owner is required")
	}

	raw, err := c.requestJSON(ctx, http.MethodGet, "/v2/balances/"+url.PathEscape(owner), nil, nil, &list)
	if err != nil {
		return list, err
	}
	list.Raw = raw
	return list, nil
}

// GetTransfer returns a transfer by id.
func (c *Client) GetTransfer(ctx context.Context, request GetTransferRequest) (Transfer, error) {
	var transfer Transfer
	id := strings.TrimSpace(request.ID)
	if id == "" {
		return transfer, fmt.Errorf("transfer ID is required")
	}

	raw, err := c.requestJSON(ctx, http.MethodGet, "/v1/transfers/"+url.PathEscape(id), nil, nil, &transfer)
	if err != nil {
		return transfer, err
	}
	transfer.Raw = raw
	return transfer, nil
}

// requestJSON performs a request, decodes a 2xx body into target and also
// returns it as an untyped object.
func (c *Client) requestJSON(
	ctx context.Context,
	method string,
	path string,
	body any,
	headers map[string]string,
	target any,
) (JSONObject, error) {
	var requestBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		requestBody = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, requestBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	request.Header.Set("Accept-Encoding", "br, gzip")
	request.Header.Set("User-Agent", DefaultUserAgent)
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}
	for key, value := range headers {
		request.Header.Set(key, value)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("immutable x request failed: %w", err)
	}
	defer response.Body.Close()

	responseBody, err := readBody(response)
	if err != nil {
		return nil, fmt.Errorf("failed to read immutable x response: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return nil, &APIError{
			Message:    fmt.Sprintf("immutable x %s %s failed", method, path),
			Status:     response.StatusCode,
			StatusText: http.StatusText(response.StatusCode),
			Body:       parseErrorBody(responseBody),
		}
	}

	if err := json.Unmarshal(responseBody, target); err != nil {
		return nil, fmt.Errorf("failed to decode immutable x response: %w", err)
	}

	raw := JSONObject{}
	decoder := json.NewDecoder(bytes.NewReader(responseBody))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode immutable x response: %w", err)
	}
	return raw, nil
}

func readBody(response *http.Response) ([]byte, error) {
	var reader io.Reader = response.Body
	switch strings.ToLower(strings.TrimSpace(response.Header.Get("Content-Encoding"))) {
	case "br":
		reader = brotli.NewReader(response.Body)
	case "gzip":
		gzipReader, err := gzip.NewReader(response.Body)
		if err != nil {
			return nil, err
		}
		defer gzipReader.Close()
		reader = gzipReader
	}
	return io.ReadAll(reader)
}

func parseErrorBody(body []byte) any {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil
	}
	var parsed JSONObject
	if err := json.Unmarshal(trimmed, &parsed); err == nil {
		return parsed
	}
	return string(trimmed)
}
