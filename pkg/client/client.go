// Package client is the Bot API transport: it posts method calls over
// HTTP, unwraps the response envelope, and hands results to pkg/message
// for normalization. It never retries; rate-limit hints are surfaced on
// APIError for the caller to act on.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"telewire/pkg/message"
	"telewire/pkg/wire"
)

const defaultBaseURL = "https://api.telegram.org"
const defaultRequestTimeout = 90 * time.Second

// Client calls Bot API methods for one bot token.
type Client struct {
	token   string
	baseURL string
	http    *http.Client
	log     *slog.Logger
}

// Option mutates Client construction.
type Option func(*Client)

// WithBaseURL points the client at a different API host, typically a test
// server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if trimmed := strings.TrimRight(strings.TrimSpace(baseURL), "/"); trimmed != "" {
			c.baseURL = trimmed
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.http = httpClient
		}
	}
}

// New validates the token and constructs a client.
func New(token string, log *slog.Logger, options ...Option) (*Client, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, errors.New("bot token is required")
	}

	if log == nil {
		log = slog.Default()
	}

	client := &Client{
		token:   token,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: defaultRequestTimeout},
		log:     log.With("component", "client"),
	}
	for _, option := range options {
		option(client)
	}

	return client, nil
}

// ResponseParameters carries upstream hints attached to some failures.
type ResponseParameters struct {
	// The group migrated to a supergroup with this identifier.
	MigrateToChatID *wire.ChatID `json:"migrate_to_chat_id,omitempty"`
	// Seconds to wait before repeating the request.
	RetryAfter *int64 `json:"retry_after,omitempty"`
}

// APIError is a non-ok Bot API response envelope.
type APIError struct {
	Description string
	ErrorCode   int
	Parameters  *ResponseParameters
}

func (e *APIError) Error() string {
	if e == nil {
		return ""
	}
	if e.ErrorCode != 0 {
		return fmt.Sprintf("api error %d: %s", e.ErrorCode, e.Description)
	}
	return fmt.Sprintf("api error: %s", e.Description)
}

// RetryAfter reports the upstream rate-limit hint when one was attached.
func (e *APIError) RetryAfter() (time.Duration, bool) {
	if e == nil || e.Parameters == nil || e.Parameters.RetryAfter == nil {
		return 0, false
	}
	return time.Duration(*e.Parameters.RetryAfter) * time.Second, true
}

// envelope is the wire response wrapper shared by every method.
type envelope struct {
	OK          bool                `json:"ok"`
	Result      json.RawMessage     `json:"result,omitempty"`
	Description string              `json:"description,omitempty"`
	ErrorCode   int                 `json:"error_code,omitempty"`
	Parameters  *ResponseParameters `json:"parameters,omitempty"`
}

// invoke posts one method call and unmarshals the unwrapped result into
// out. A non-ok envelope becomes an APIError.
func (c *Client) invoke(ctx context.Context, method string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s payload: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("call %s: %w", method, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return fmt.Errorf("read %s response: %w", method, err)
	}

	var wrapped envelope
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return fmt.Errorf("decode %s envelope: %w", method, err)
	}

	if !wrapped.OK {
		c.log.Debug("API call rejected", "method", method, "error_code", wrapped.ErrorCode)
		return &APIError{
			Description: wrapped.Description,
			ErrorCode:   wrapped.ErrorCode,
			Parameters:  wrapped.Parameters,
		}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(wrapped.Result, out); err != nil {
		return fmt.Errorf("decode %s result: %w", method, err)
	}

	return nil
}

// GetMe returns the bot's own account.
func (c *Client) GetMe(ctx context.Context) (wire.User, error) {
	var me wire.User
	if err := c.invoke(ctx, "getMe", struct{}{}, &me); err != nil {
		return wire.User{}, err
	}
	return me, nil
}

// SendMessage sends a text message and returns the normalized result.
func (c *Client) SendMessage(ctx context.Context, request *SendMessage) (message.Message, error) {
	var sent message.Message
	if err := c.invoke(ctx, "sendMessage", request, &sent); err != nil {
		return message.Message{}, err
	}
	return sent, nil
}

// ForwardMessage forwards a message and returns the normalized result.
func (c *Client) ForwardMessage(ctx context.Context, request *ForwardMessage) (message.Message, error) {
	var forwarded message.Message
	if err := c.invoke(ctx, "forwardMessage", request, &forwarded); err != nil {
		return message.Message{}, err
	}
	return forwarded, nil
}

// GetUserProfilePhotos returns one page of a user's profile pictures.
func (c *Client) GetUserProfilePhotos(ctx context.Context, request *GetUserProfilePhotos) (wire.UserProfilePhotos, error) {
	var photos wire.UserProfilePhotos
	if err := c.invoke(ctx, "getUserProfilePhotos", request, &photos); err != nil {
		return wire.UserProfilePhotos{}, err
	}
	return photos, nil
}

// UpdateResult is one long-poll envelope, normalized when possible. Err is
// set when normalization of that single update failed; the rest of the
// batch is unaffected.
type UpdateResult struct {
	UpdateID int64
	Update   message.Update
	Err      error
}

// GetUpdates fetches one long-poll batch. Each update is normalized
// independently so one malformed record cannot poison its batch.
func (c *Client) GetUpdates(ctx context.Context, request *GetUpdates) ([]UpdateResult, error) {
	var rawUpdates []wire.RawUpdate
	if err := c.invoke(ctx, "getUpdates", request, &rawUpdates); err != nil {
		return nil, err
	}

	results := make([]UpdateResult, 0, len(rawUpdates))
	for _, raw := range rawUpdates {
		result := UpdateResult{UpdateID: raw.UpdateID}
		result.Update, result.Err = message.DecodeUpdate(raw)
		results = append(results, result)
	}

	return results, nil
}
