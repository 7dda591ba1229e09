package sheetrow

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// WebhookPusher posts the member-name choice list to the form provider's
// update endpoint so new enrollments become selectable
type WebhookPusher struct {
	URL    string
	Token  string
	Client *http.Client
}

// NewWebhookPusher builds a pusher with a client timeout
func NewWebhookPusher(url, token string, timeout time.Duration) *WebhookPusher {
	return &WebhookPusher{URL: url, Token: token, Client: &http.Client{Timeout: timeout}}
}

type pushPayload struct {
	Choices []string `json:"choices"`
}

// Push replaces the form's name choices with the given list
func (p *WebhookPusher) Push(ctx context.Context, names []string) error {
	body, err := json.Marshal(pushPayload{Choices: names})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if p.Token != "" {
		req.Header.Set("Authorization", "Bearer "+p.Token)
	}
	resp, err := p.Client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("sheetrow: webhook push status %d", resp.StatusCode)
	}
	return nil
}
