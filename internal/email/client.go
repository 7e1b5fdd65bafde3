// Package email sends transactional mail through the Resend HTTP API.
// Dispatch failures are reported as errors, never swallowed; callers decide
// whether a failed send fails their operation.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const resendAPIURL = "https://api.resend.com/emails"

// Message is the dispatcher contract: to, subject, html.
type Message struct {
	To      string
	Subject string
	HTML    string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

type Client struct {
	apiURL     string
	apiKey     string
	from       string
	httpClient *http.Client
	logger     *slog.Logger
}

type Config struct {
	APIURL string
	APIKey string
	From   string
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	apiURL := cfg.APIURL
	if apiURL == "" {
		apiURL = resendAPIURL
	}
	return &Client{
		apiURL: apiURL,
		apiKey: cfg.APIKey,
		from:   cfg.From,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendError struct {
	Message string `json:"message"`
}

func (c *Client) Send(ctx context.Context, msg Message) error {
	payload, err := json.Marshal(sendRequest{
		From:    c.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("marshal email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr sendError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return fmt.Errorf("email provider rejected send: %s", apiErr.Message)
		}
		return fmt.Errorf("email provider rejected send: %s", resp.Status)
	}

	c.logger.Info("email dispatched", "to", msg.To, "subject", msg.Subject)
	return nil
}

// NoopSender logs instead of sending; used when no API key is configured so
// development environments work without an email provider.
type NoopSender struct {
	logger *slog.Logger
}

func NewNoopSender(logger *slog.Logger) *NoopSender {
	return &NoopSender{logger: logger}
}

func (n *NoopSender) Send(ctx context.Context, msg Message) error {
	n.logger.Warn("email sender not configured, skipping send",
		"to", msg.To,
		"subject", msg.Subject)
	return nil
}
