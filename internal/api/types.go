package api

import (
	"fmt"
	"net/http"
	"strings"
)

// Message represents a chat message
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest represents the Chat Completions API request
type ChatRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens,omitempty"`
}

// Usage represents token usage statistics
type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Choice represents a response choice
type Choice struct {
	Index        int     `json:"index"`
	Message      Message `json:"message"`
	FinishReason string  `json:"finish_reason,omitempty"`
}

// ChatResponse represents the API response
type ChatResponse struct {
	ID      string   `json:"id"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

// GetContent returns the trimmed text of the first choice.
func (r *ChatResponse) GetContent() string {
	if r == nil || len(r.Choices) == 0 {
		return ""
	}
	return strings.TrimSpace(r.Choices[0].Message.Content)
}

// ErrorResponse is the error body returned by OpenAI-compatible endpoints.
type ErrorResponse struct {
	Error struct {
		Message string `json:"message"`
		Type    string `json:"type"`
		Code    string `json:"code"`
	} `json:"error"`
}

// APIError represents a non-2xx answer from the completion endpoint.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	switch {
	case e.IsAuth():
		return fmt.Sprintf("authentication rejected (%d): %s", e.StatusCode, e.Message)
	case e.IsQuota():
		return fmt.Sprintf("quota or rate limit exceeded (%d): %s", e.StatusCode, e.Message)
	default:
		return fmt.Sprintf("AI API error (%d): %s", e.StatusCode, e.Message)
	}
}

// IsAuth reports whether the credential was rejected.
func (e *APIError) IsAuth() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsQuota reports whether the account ran out of quota or hit a rate limit.
func (e *APIError) IsQuota() bool {
	return e.StatusCode == http.StatusTooManyRequests
}
