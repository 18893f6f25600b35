package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"affiliateforge/internal/domain/sites"
)

const (
	defaultBaseURL     = "https://oi-server.onrender.com"
	defaultModel       = "openrouter/anthropic/claude-3-5-sonnet-20241022"
	defaultMaxTokens   = 3000
	defaultTemperature = 0.7
	defaultTimeout     = 30 * time.Second
)

type Config struct {
	BaseURL     string
	APIKey      string
	CustomerID  string
	Model       string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
}

// Client talks the chat-completions wire format. It implements
// sites.Generator: every failure mode (transport, timeout, non-2xx,
// malformed envelope) collapses to an Unavailable result, never to an
// error the pipeline would have to handle.
type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
}

func NewClient(cfg Config, log *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = defaultTemperature
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: cfg.Timeout},
		log:  log,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	MaxTokens   int           `json:"max_tokens"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Complete issues a single completion request. One shot, no retry; the
// timeout on the underlying http.Client bounds the call even when ctx
// carries no deadline.
func (c *Client) Complete(ctx context.Context, system, prompt string) sites.RawResult {
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		MaxTokens:   c.cfg.MaxTokens,
		Temperature: c.cfg.Temperature,
	})
	if err != nil {
		return c.unavailable("encode request: " + err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return c.unavailable("build request: " + err.Error())
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	}
	if c.cfg.CustomerID != "" {
		req.Header.Set("customerId", c.cfg.CustomerID)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.unavailable("request failed: " + err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return c.unavailable(fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	var envelope chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return c.unavailable("malformed response envelope: " + err.Error())
	}
	if len(envelope.Choices) == 0 || envelope.Choices[0].Message.Content == "" {
		return c.unavailable("empty completion")
	}

	return sites.Ok(envelope.Choices[0].Message.Content)
}

func (c *Client) unavailable(reason string) sites.RawResult {
	c.log.Warn("completion unavailable", zap.String("reason", reason))
	return sites.Unavailable(reason)
}
