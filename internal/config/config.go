// Package config resolves learn's settings from, in increasing priority,
// the YAML settings file, dotenv files, the environment, and CLI flags.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/quocvuong92/learn-cli/internal/constants"
)

// Environment variable names
const (
	EnvAPIKey         = "LEARN_AI_API_KEY"
	EnvOpenAIAPIKey   = "OPENAI_API_KEY"
	EnvAIEndpoint     = "LEARN_AI_ENDPOINT"
	EnvAIModel        = "LEARN_AI_MODEL"
	EnvAliasesFile    = "LEARN_ALIASES_FILE"
	EnvLogLevel       = "LEARN_LOG_LEVEL"
	EnvSearchPathName = "PATH"
)

// Errors
var (
	ErrAPIKeyNotFound  = errors.New("AI API key not found. Set LEARN_AI_API_KEY (or OPENAI_API_KEY) or add it to ~/.config/learn/.env")
	ErrInvalidTimeout  = errors.New("timeouts must not be negative")
	ErrInvalidMaxToken = errors.New("ai.max_tokens must be positive")
)

// Config holds the application configuration
type Config struct {
	// Files
	AliasesFile string
	HistoryFile string
	SourceFile  string // settings file that was applied, if any

	// AI suggestion endpoint
	AIEndpoint string
	Model      string
	APIKey     string
	fileAPIKey string // ai.api_key, used only when no variable supplies a key
	MaxTokens  int
	APITimeout time.Duration

	// "!" passthrough
	CommandTimeout time.Duration
	AllowDangerous bool

	// Output
	Render bool

	// Diagnostics
	Verbose   bool
	LogLevel  string
	LogFile   string
	LogFormat string

	// Flags
	AutoCorrect bool
	Interactive bool
	Customize   bool
	ListAliases bool
	InitConfig  bool
}

// NewConfig creates a new Config with defaults
func NewConfig() *Config {
	return &Config{}
}

// Validate loads the settings file, dotenv files and environment, fills
// defaults for anything still unset, and checks the result.
func (c *Config) Validate() error {
	fileConfig, path, err := LoadConfigFile()
	if err != nil {
		return err
	}
	c.ApplyFileConfig(fileConfig)
	c.SourceFile = path

	loadEnvFiles(GetEnvFilePaths())
	c.applyEnv()
	c.applyDefaults()

	if c.APITimeout < 0 || c.CommandTimeout < 0 {
		return ErrInvalidTimeout
	}
	if c.MaxTokens < 0 {
		return ErrInvalidMaxToken
	}
	return nil
}

// applyEnv lets environment variables override values coming from the
// settings file. The key is taken from LEARN_AI_API_KEY, then
// OPENAI_API_KEY, then ai.api_key.
func (c *Config) applyEnv() {
	if c.APIKey == "" {
		for _, v := range []string{os.Getenv(EnvAPIKey), os.Getenv(EnvOpenAIAPIKey), c.fileAPIKey} {
			if v = strings.TrimSpace(v); v != "" {
				c.APIKey = v
				break
			}
		}
	}
	if v := os.Getenv(EnvAIEndpoint); v != "" {
		c.AIEndpoint = v
	}
	if v := os.Getenv(EnvAIModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvAliasesFile); v != "" {
		c.AliasesFile = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" && !c.Verbose {
		c.LogLevel = v
	}
}

func (c *Config) applyDefaults() {
	if c.AliasesFile == "" {
		c.AliasesFile = constants.DefaultAliasesFile
	}
	if c.HistoryFile == "" {
		c.HistoryFile = defaultHistoryFile()
	}
	c.HistoryFile = expandHome(c.HistoryFile)
	c.LogFile = expandHome(c.LogFile)

	if c.AIEndpoint == "" {
		c.AIEndpoint = constants.DefaultAIEndpoint
	}
	c.AIEndpoint = strings.TrimSuffix(c.AIEndpoint, "/")
	if c.Model == "" {
		c.Model = constants.DefaultModel
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = constants.DefaultMaxTokens
	}
	if c.APITimeout == 0 {
		c.APITimeout = constants.DefaultAPITimeout
	}
	if c.CommandTimeout == 0 {
		c.CommandTimeout = constants.DefaultCommandTimeout
	}
	if c.Verbose {
		c.LogLevel = "debug"
	}
}

// HasAPIKey reports whether an AI credential is configured.
func (c *Config) HasAPIKey() bool {
	return c.APIKey != ""
}

// SearchPath returns the raw search-path environment variable.
func (c *Config) SearchPath() string {
	return os.Getenv(EnvSearchPathName)
}

// loadEnvFiles loads dotenv files that exist. godotenv never overrides
// variables already present in the environment.
func loadEnvFiles(paths []string) {
	var existing []string
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			existing = append(existing, p)
		}
	}
	if len(existing) == 0 {
		return
	}
	_ = godotenv.Load(existing...)
}

func defaultHistoryFile() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, constants.AppName, "history.json")
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
