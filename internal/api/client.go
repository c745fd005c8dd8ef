package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"

	"github.com/quocvuong92/learn-cli/internal/config"
	"github.com/quocvuong92/learn-cli/internal/constants"
	"github.com/quocvuong92/learn-cli/internal/logging"
)

const completionsPath = "/chat/completions"

// Errors
var (
	ErrEmptyPrompt   = errors.New("question must not be empty")
	ErrEmptyResponse = errors.New("AI API returned no choices")
)

// Suggester answers a free-text question. The interactive session depends
// on this interface so tests can substitute a fake.
type Suggester interface {
	Suggest(ctx context.Context, prompt string) (string, error)
}

var _ Suggester = (*Client)(nil)

// Client sends single-turn questions to the completion endpoint.
type Client struct {
	http      *resty.Client
	model     string
	maxTokens int
	hasKey    bool
	logger    *logging.Logger
}

// NewClient creates a client from the resolved configuration. A missing
// credential is reported by Suggest, not here, so the REPL can start
// without one.
func NewClient(cfg *config.Config, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Nop()
	}
	timeout := cfg.APITimeout
	if timeout <= 0 {
		timeout = constants.DefaultAPITimeout
	}
	maxTokens := cfg.MaxTokens
	if maxTokens <= 0 {
		maxTokens = constants.DefaultMaxTokens
	}

	rc := resty.New().
		SetBaseURL(cfg.AIEndpoint).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetLogger(restyLogger{logger})
	if cfg.APIKey != "" {
		rc.SetAuthToken(cfg.APIKey)
	}
	attachHTTPLogging(rc, logging.NewHTTPLogger(logger))

	return &Client{
		http:      rc,
		model:     cfg.Model,
		maxTokens: maxTokens,
		hasKey:    cfg.APIKey != "",
		logger:    logger,
	}
}

// Suggest asks the model prompt and returns its trimmed answer.
func (c *Client) Suggest(ctx context.Context, prompt string) (string, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return "", ErrEmptyPrompt
	}
	if !c.hasKey {
		return "", config.ErrAPIKeyNotFound
	}

	resp, err := c.complete(ctx, ChatRequest{
		Model: c.model,
		Messages: []Message{
			{Role: "system", Content: constants.DefaultSystemMessage},
			{Role: "user", Content: prompt},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}
	return resp.GetContent(), nil
}

func (c *Client) complete(ctx context.Context, body ChatRequest) (*ChatResponse, error) {
	requestID := uuid.NewString()
	start := time.Now()

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("X-Request-ID", requestID).
		SetBody(body).
		SetResult(&ChatResponse{}).
		SetError(&ErrorResponse{}).
		Post(completionsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	c.logger.Debug("completion finished", logging.Fields{
		"request_id":  requestID,
		"status":      resp.StatusCode(),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.IsError() {
		return nil, newAPIError(resp)
	}
	result, ok := resp.Result().(*ChatResponse)
	if !ok || result == nil {
		return nil, fmt.Errorf("failed to parse response from %s", completionsPath)
	}
	return result, nil
}

func newAPIError(resp *resty.Response) *APIError {
	msg := http.StatusText(resp.StatusCode())
	if e, ok := resp.Error().(*ErrorResponse); ok && e != nil && e.Error.Message != "" {
		msg = e.Error.Message
	} else if body := strings.TrimSpace(resp.String()); body != "" && len(body) < 300 && !json.Valid([]byte(body)) {
		msg = body
	}
	return &APIError{StatusCode: resp.StatusCode(), Message: msg}
}
