package messaging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/DIMO-Network/line-bot-api/internal/linebot/message"
)

const (
	// ReplyPath is the Messaging API path replies are posted to.
	ReplyPath = "v2/bot/message/reply"

	userAgent = "line-bot-api/1.0"
	// Default timeout for Messaging API requests
	defaultTimeout = 30 * time.Second
	// Maximum response body size to read for error reporting
	maxResponseBodySize = 1024
)

// Client for the LINE Messaging API.
type Client struct {
	endpoint     *url.URL
	channelToken string
	httpClient   *http.Client
}

// New creates a new Client. apiEndpoint is the base URL of the API, e.g. https://api.line.me/.
// A nil httpClient gets a client with a 30 second timeout.
func New(apiEndpoint, channelToken string, httpClient *http.Client) (*Client, error) {
	if !strings.HasSuffix(apiEndpoint, "/") {
		apiEndpoint += "/"
	}
	endpoint, err := url.Parse(apiEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to parse messaging API endpoint: %w", err)
	}
	if endpoint.Scheme == "" || endpoint.Host == "" {
		return nil, fmt.Errorf("messaging API endpoint must be an absolute URL: %q", apiEndpoint)
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultTimeout,
		}
	}
	return &Client{
		endpoint:     endpoint,
		channelToken: channelToken,
		httpClient:   httpClient,
	}, nil
}

// Reply sends reply messages for an event's reply token.
func (c *Client) Reply(ctx context.Context, reply *message.ReplyMessage) error {
	if err := reply.Validate(); err != nil {
		return fmt.Errorf("invalid reply: %w", err)
	}
	return c.post(ctx, ReplyPath, reply)
}

func (c *Client) post(ctx context.Context, path string, payload any) error {
	body, err := message.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.JoinPath(path).String(), bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.channelToken)
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to POST %s: %w", path, err)
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode >= 400 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return newAPIError(resp.StatusCode, respBody)
	}
	// drain so the connection can be reused
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}
