package logging

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// HTTPLogger records HTTP exchanges at debug level with credentials redacted.
type HTTPLogger struct {
	logger      *Logger
	maxBodySize int
}

// NewHTTPLogger creates a new HTTP logger
func NewHTTPLogger(logger *Logger) *HTTPLogger {
	return &HTTPLogger{
		logger:      logger,
		maxBodySize: 10000,
	}
}

// LogRequest logs an outgoing request.
func (h *HTTPLogger) LogRequest(method, url string, header http.Header, body []byte) {
	if !h.logger.Enabled(LevelDebug) {
		return
	}
	fields := Fields{
		"method":  method,
		"url":     url,
		"headers": redactHeaders(header),
	}
	h.addBody(fields, body, true)
	h.logger.Debug("HTTP Request", fields)
}

// LogResponse logs a received response.
func (h *HTTPLogger) LogResponse(status int, header http.Header, body []byte, duration time.Duration) {
	if !h.logger.Enabled(LevelDebug) {
		return
	}
	fields := Fields{
		"status":      status,
		"duration_ms": duration.Milliseconds(),
		"headers":     redactHeaders(header),
	}
	h.addBody(fields, body, false)
	h.logger.Debug("HTTP Response", fields)
}

// LogError logs a transport failure.
func (h *HTTPLogger) LogError(err error, method, url string) {
	h.logger.Error("HTTP Error", err, Fields{
		"method": method,
		"url":    url,
	})
}

func (h *HTTPLogger) addBody(fields Fields, body []byte, redact bool) {
	if len(body) == 0 {
		return
	}
	fields["body_size"] = len(body)
	if json.Valid(body) {
		var parsed interface{}
		if err := json.Unmarshal(body, &parsed); err == nil {
			if redact {
				parsed = redactSensitiveFields(parsed)
			}
			fields["body"] = parsed
			return
		}
	}
	fields["body"] = truncateBody(body, h.maxBodySize)
}

func redactHeaders(header http.Header) map[string]string {
	headers := make(map[string]string, len(header))
	for k, v := range header {
		switch {
		case isSensitiveHeader(k):
			headers[k] = "[REDACTED]"
		case len(v) > 0:
			headers[k] = v[0]
		}
	}
	return headers
}

func isSensitiveHeader(name string) bool {
	switch strings.ToLower(name) {
	case "authorization", "api-key", "x-api-key", "x-auth-token", "cookie", "set-cookie":
		return true
	}
	return false
}

func truncateBody(body []byte, maxSize int) string {
	if len(body) <= maxSize {
		return string(body)
	}
	return string(body[:maxSize]) + "...[truncated]"
}

var sensitiveKeys = []string{"api_key", "apikey", "api-key", "password", "secret", "token", "authorization"}

func redactSensitiveFields(data interface{}) interface{} {
	switch v := data.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for k, val := range v {
			if isSensitiveKey(k) {
				result[k] = "[REDACTED]"
			} else {
				result[k] = redactSensitiveFields(val)
			}
		}
		return result
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			result[i] = redactSensitiveFields(item)
		}
		return result
	default:
		return data
	}
}

// isSensitiveKey matches whole-key fragments; "max_tokens" is not a secret.
func isSensitiveKey(key string) bool {
	k := strings.ToLower(key)
	if strings.HasSuffix(k, "_tokens") {
		return false
	}
	for _, s := range sensitiveKeys {
		if strings.Contains(k, s) {
			return true
		}
	}
	return false
}
