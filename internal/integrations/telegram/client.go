// Package telegram is a minimal Bot API client covering the two calls the
// bridge needs: sendMessage and setWebhook.
package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxMessageRunes is the Bot API per-message size limit. Longer replies are
// delivered as fixed-offset windows of this size.
const maxMessageRunes = 4096

// apiResponse is the generic Telegram API response wrapper.
type apiResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// Client sends messages to one destination chat.
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
	chatID     string
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Client for the given bot token and destination chat.
// chatID may be empty for callers that only register webhooks; Send rejects
// an empty chat ID at call time.
func NewClient(token, chatID string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("telegram: bot token must not be empty")
	}
	c := &Client{
		baseURL:    "https://api.telegram.org",
		httpClient: &http.Client{Timeout: 10 * time.Second},
		token:      strings.TrimSpace(token),
		chatID:     strings.TrimSpace(chatID),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Send delivers text to the destination chat, split into windows of at most
// 4096 runes. Windows that are empty after trimming are skipped. Chunks go
// out sequentially so the recipient sees them in original order; the first
// failing chunk aborts the rest.
func (c *Client) Send(ctx context.Context, text string) error {
	if c.chatID == "" {
		return errors.New("telegram: chat id is not configured")
	}
	for i, chunk := range splitChunks(text, maxMessageRunes) {
		if strings.TrimSpace(chunk) == "" {
			continue
		}
		if err := c.sendChunk(ctx, chunk); err != nil {
			return fmt.Errorf("telegram: send chunk %d: %w", i+1, err)
		}
	}
	return nil
}

func (c *Client) sendChunk(ctx context.Context, chunk string) error {
	endpoint := fmt.Sprintf("%s/bot%s/sendMessage?chat_id=%s&text=%s",
		c.baseURL, c.token, url.QueryEscape(c.chatID), url.QueryEscape(chunk))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return err
	}

	var resp apiResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fmt.Errorf("parse sendMessage response: %w", err)
	}
	if !resp.OK {
		return fmt.Errorf("sendMessage rejected: %s", resp.Description)
	}
	return nil
}

// RegisterWebhook points the bot's webhook at the given public URL and
// returns the raw platform response body.
func (c *Client) RegisterWebhook(ctx context.Context, webhookURL string) (string, error) {
	webhookURL = strings.TrimSpace(webhookURL)
	if webhookURL == "" {
		return "", errors.New("telegram: webhook url must not be empty")
	}
	endpoint := fmt.Sprintf("%s/bot%s/setWebhook?url=%s",
		c.baseURL, c.token, url.QueryEscape(webhookURL))

	body, err := c.get(ctx, endpoint)
	if err != nil {
		return "", fmt.Errorf("telegram: set webhook: %w", err)
	}
	return string(body), nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// splitChunks slices s into rune windows of at most size, starting at offset
// zero. Concatenating the result reproduces s exactly.
func splitChunks(s string, size int) []string {
	runes := []rune(s)
	if len(runes) == 0 {
		return nil
	}
	chunks := make([]string, 0, (len(runes)+size-1)/size)
	for start := 0; start < len(runes); start += size {
		end := start + size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}
