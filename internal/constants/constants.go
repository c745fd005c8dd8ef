// Package constants provides shared constants used across the application
// to avoid circular dependencies between packages.
package constants

import "time"

// AppName is used for settings directories and the REPL title.
const AppName = "learn"

// Timeout constants used across the application
const (
	// DefaultAPITimeout bounds a single AI suggestion request
	DefaultAPITimeout = 30 * time.Second
	// DefaultCommandTimeout bounds a "!" passthrough command
	DefaultCommandTimeout = 10 * time.Minute
)

// Application defaults
const (
	DefaultAliasesFile   = "command_config.json"
	DefaultAIEndpoint    = "https://api.openai.com/v1"
	DefaultModel         = "gpt-4o-mini"
	DefaultMaxTokens     = 100
	DefaultSystemMessage = "Be precise and concise."
	DefaultHistoryLimit  = 500
)

// SimilarityCutoff is the minimum ratio a candidate needs to be accepted
// by auto-correction.
const SimilarityCutoff = 0.6
