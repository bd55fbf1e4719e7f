package outcome

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxResponseBody = 1024 // 1KB cap on error excerpts from the relay

// DefaultTimeout bounds a single outcome report when the caller's context
// carries no deadline of its own.
const DefaultTimeout = 10 * time.Second

// Reporter delivers outcome reports to the relay's HTTP API.
type Reporter struct {
	client  *http.Client
	baseURL string
	secret  string
}

// NewReporter creates a reporter for the given API base URL, authenticated
// with the shared secret. A nil client falls back to one with DefaultTimeout.
func NewReporter(baseURL, secret string, client *http.Client) *Reporter {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Reporter{
		client:  client,
		baseURL: strings.TrimRight(baseURL, "/"),
		secret:  secret,
	}
}

// Send POSTs the report to /v1/events/{eventID}/outcome. Any response status
// in the 2xx range counts as delivered; anything else is an error carrying
// the status code and a capped excerpt of the response body.
func (r *Reporter) Send(ctx context.Context, eventID string, rep Report) error {
	body, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("outcome: marshal report: %w", err)
	}

	reportURL := r.baseURL + "/v1/events/" + url.PathEscape(eventID) + "/outcome"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reportURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("outcome: create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+r.secret)
	req.Header.Set("User-Agent", "hookrelay-go/1.0")

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("outcome: send report: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
		return fmt.Errorf("outcome: report for event %s rejected: status %d: %s",
			eventID, resp.StatusCode, strings.TrimSpace(string(excerpt)))
	}

	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBody))
	return nil
}
