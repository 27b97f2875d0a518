package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RESTClient talks to a chain node over its HTTP API.
type RESTClient struct {
	baseURL    string
	httpClient *http.Client
}

var _ Client = (*RESTClient)(nil)

func NewRESTClient(baseURL string, timeout time.Duration) *RESTClient {
	return &RESTClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *RESTClient) GetReceipt(ctx context.Context, txID string) (*Receipt, error) {
	if txID == "" {
		return nil, fmt.Errorf("empty transaction id")
	}
	body, status, err := c.get(ctx, "/api/v1/receipts/"+txID)
	if err != nil {
		return nil, err
	}
	// The node answers 404 until the transaction lands in a block.
	if status == http.StatusNotFound {
		return nil, nil
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("get receipt: unexpected status %d", status)
	}
	var rcpt Receipt
	if err := json.Unmarshal(body, &rcpt); err != nil {
		return nil, fmt.Errorf("decode receipt: %w", err)
	}
	return &rcpt, nil
}

func (c *RESTClient) GetBalance(ctx context.Context, account string, asset string) (int64, error) {
	path := fmt.Sprintf("/api/v1/balances/%s?asset=%s", account, asset)
	body, status, err := c.get(ctx, path)
	if err != nil {
		return 0, err
	}
	if status != http.StatusOK {
		return 0, fmt.Errorf("get balance: unexpected status %d", status)
	}
	var resp balanceResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return 0, fmt.Errorf("decode balance: %w", err)
	}
	return resp.Amount, nil
}

func (c *RESTClient) ReadContract(ctx context.Context, contractID string, method string, payload string) ([]byte, error) {
	req := readRequest{Method: method, Payload: payload}
	body, status, err := c.post(ctx, "/api/v1/contracts/"+contractID+"/read", req)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, fmt.Errorf("read contract %s.%s: unexpected status %d", contractID, method, status)
	}
	var resp readResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode contract result: %w", err)
	}
	return []byte(resp.Result), nil
}

func (c *RESTClient) get(ctx context.Context, path string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, 0, err
	}
	return c.do(req)
}

func (c *RESTClient) post(ctx context.Context, path string, payload any) ([]byte, int, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, 0, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return nil, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

func (c *RESTClient) do(req *http.Request) ([]byte, int, error) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, fmt.Errorf("request %s: %w", req.URL.Path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}
