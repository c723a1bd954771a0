package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SheetsSink appends rows to a Google Sheets document through an
// Apps Script web app. The script receives a JSON body and writes
// the row itself, so no Google credentials live in this service.
type SheetsSink struct {
	webhookURL string
	httpClient *http.Client
}

// NewSheetsSink creates a sink posting to the given Apps Script URL
func NewSheetsSink(webhookURL string, timeout time.Duration) *SheetsSink {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &SheetsSink{
		webhookURL: webhookURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Append posts the event to the webhook
func (s *SheetsSink) Append(ctx context.Context, event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("sheets: failed to marshal event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("sheets: failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sheets: request failed: %w", err)
	}
	defer resp.Body.Close()

	// Drain so the connection can be reused
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	// Apps Script answers 302 to a result page on success
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("sheets: webhook returned status %d", resp.StatusCode)
	}

	return nil
}

var _ Sink = (*SheetsSink)(nil)
