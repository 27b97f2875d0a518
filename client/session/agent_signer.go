package session

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"buymeacoffee/client/transport"
	"buymeacoffee/pkg/errno"
)

// AgentSigner delegates signing to a local wallet agent over HTTP. The agent
// owns the keys and may ask its user for approval, so a request can hang
// until the user decides.
type AgentSigner struct {
	agentURL   string
	httpClient *http.Client
}

var _ Signer = (*AgentSigner)(nil)

func NewAgentSigner(agentURL string, timeout time.Duration) *AgentSigner {
	return &AgentSigner{
		agentURL:   agentURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type signRequest struct {
	Clauses []transport.Clause `json:"clauses"`
}

type signResponse struct {
	TxID string `json:"tx_id"`
}

// SignAndSend submits the clauses once. There is no retry here: a rejected
// or failed submission surfaces immediately and never double-spends.
func (a *AgentSigner) SignAndSend(ctx context.Context, clauses []transport.Clause) (string, error) {
	raw, err := json.Marshal(signRequest{Clauses: clauses})
	if err != nil {
		return "", fmt.Errorf("%w: %v", errno.ErrBroadcastFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.agentURL+"/sign", bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("%w: %v", errno.ErrBroadcastFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errno.ErrBroadcastFailed, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusForbidden, http.StatusConflict:
		// The wallet holder looked at the request and said no.
		return "", errno.ErrUserRejected
	default:
		return "", fmt.Errorf("%w: agent status %d", errno.ErrBroadcastFailed, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errno.ErrBroadcastFailed, err)
	}
	var sr signResponse
	if err := json.Unmarshal(body, &sr); err != nil {
		return "", fmt.Errorf("%w: %v", errno.ErrBroadcastFailed, err)
	}
	if sr.TxID == "" {
		return "", fmt.Errorf("%w: agent returned no transaction id", errno.ErrBroadcastFailed)
	}
	return sr.TxID, nil
}
