// Package api is the client for the AI suggestion endpoint.
//
// # Architecture
//
//   - client.go: Suggester interface, Client and NewClient
//   - types.go: chat-completions request/response types and APIError
//   - hooks.go: resty hooks feeding the diagnostic HTTP log
//
// One question is one POST to {endpoint}/chat/completions with a system
// message and the user's text, bounded by max_tokens. The request carries an
// X-Request-ID header that also appears in the diagnostic log. There are no
// retries: a failed question is reported and the user may ask again.
//
// # Usage
//
//	cfg := config.NewConfig()
//	_ = cfg.Validate()
//	client := api.NewClient(cfg, logger)
//	ctx, cancel := context.WithTimeout(context.Background(), cfg.APITimeout)
//	defer cancel()
//	answer, err := client.Suggest(ctx, "how do I list open ports?")
//
// # Errors
//
// Suggest returns config.ErrAPIKeyNotFound without touching the network when
// no credential is configured, *APIError for non-2xx answers (IsAuth and
// IsQuota classify the common cases) and wrapped transport errors otherwise.
package api
