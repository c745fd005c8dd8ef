package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/quocvuong92/learn-cli/internal/constants"
)

// ConfigFileName is the name of the settings file
const ConfigFileName = "config.yaml"

// EnvFileName is the dotenv file consulted for credentials
const EnvFileName = ".env"

// FileConfig represents the settings file structure
type FileConfig struct {
	AliasesFile string `yaml:"aliases_file,omitempty"`
	HistoryFile string `yaml:"history_file,omitempty"`

	AI      *AIConfig      `yaml:"ai,omitempty"`
	Shell   *ShellConfig   `yaml:"shell,omitempty"`
	Display *DisplayConfig `yaml:"display,omitempty"`
	Log     *LogConfig     `yaml:"log,omitempty"`
}

// AIConfig holds settings for the suggestion endpoint
type AIConfig struct {
	Endpoint  string        `yaml:"endpoint,omitempty"`
	Model     string        `yaml:"model,omitempty"`
	APIKey    string        `yaml:"api_key,omitempty"`
	MaxTokens int           `yaml:"max_tokens,omitempty"`
	Timeout   time.Duration `yaml:"timeout,omitempty"`
}

// ShellConfig holds settings for the "!" passthrough
type ShellConfig struct {
	Timeout        time.Duration `yaml:"timeout,omitempty"`
	AllowDangerous bool          `yaml:"allow_dangerous,omitempty"`
}

// DisplayConfig holds output settings
type DisplayConfig struct {
	Render bool `yaml:"render,omitempty"`
}

// LogConfig holds diagnostic log settings
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	File   string `yaml:"file,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// GetConfigPaths returns the paths to check for settings files (in order of priority)
func GetConfigPaths() []string {
	paths := []string{filepath.Join(".", "."+constants.AppName, ConfigFileName)}

	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, constants.AppName, ConfigFileName))
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(homeDir, ".config", constants.AppName, ConfigFileName))
	}
	return paths
}

// GetEnvFilePaths returns the dotenv files to load, most specific first.
func GetEnvFilePaths() []string {
	paths := []string{filepath.Join(".", EnvFileName)}
	if configDir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(configDir, constants.AppName, EnvFileName))
	}
	return paths
}

// LoadConfigFile loads the first settings file found. No file is not an error.
func LoadConfigFile() (*FileConfig, string, error) {
	for _, path := range GetConfigPaths() {
		if _, err := os.Stat(path); err == nil {
			cfg, err := loadConfigFromPath(path)
			return cfg, path, err
		}
	}
	return &FileConfig{}, "", nil
}

func loadConfigFromPath(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyFileConfig copies file values into c where c has no value yet.
// File config has lower priority than environment variables and CLI flags.
func (c *Config) ApplyFileConfig(fc *FileConfig) {
	if fc == nil {
		return
	}

	if c.AliasesFile == "" {
		c.AliasesFile = fc.AliasesFile
	}
	if c.HistoryFile == "" {
		c.HistoryFile = fc.HistoryFile
	}

	if fc.AI != nil {
		if c.AIEndpoint == "" {
			c.AIEndpoint = fc.AI.Endpoint
		}
		if c.Model == "" {
			c.Model = fc.AI.Model
		}
		c.fileAPIKey = fc.AI.APIKey
		if c.MaxTokens == 0 {
			c.MaxTokens = fc.AI.MaxTokens
		}
		if c.APITimeout == 0 {
			c.APITimeout = fc.AI.Timeout
		}
	}

	if fc.Shell != nil {
		if c.CommandTimeout == 0 {
			c.CommandTimeout = fc.Shell.Timeout
		}
		if fc.Shell.AllowDangerous {
			c.AllowDangerous = true
		}
	}

	// Only "true" can be applied: an unset flag and an explicit false look the same.
	if fc.Display != nil && fc.Display.Render {
		c.Render = true
	}

	if fc.Log != nil {
		if c.LogLevel == "" {
			c.LogLevel = fc.Log.Level
		}
		if c.LogFile == "" {
			c.LogFile = fc.Log.File
		}
		if c.LogFormat == "" {
			c.LogFormat = fc.Log.Format
		}
	}
}

// CreateDefaultConfigFile writes a commented settings template to the user
// config directory and returns its path.
func CreateDefaultConfigFile() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not determine config directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config")
	}
	return writeDefaultConfigFile(filepath.Join(configDir, constants.AppName))
}

func writeDefaultConfigFile(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); err == nil {
		return path, fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, []byte(defaultConfigTemplate), 0600); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	return path, nil
}

const defaultConfigTemplate = `# learn configuration
# Location: ~/.config/learn/config.yaml

# Alias file (JSON object of alias -> command), relative to the working directory
# aliases_file: command_config.json

# Interactive input history
# history_file: ~/.config/learn/history.json

# AI suggestions (Ctrl+G in interactive mode)
# Put the key in LEARN_AI_API_KEY or ~/.config/learn/.env rather than here.
# ai:
#   endpoint: https://api.openai.com/v1
#   model: gpt-4o-mini
#   max_tokens: 100
#   timeout: 30s

# "!" passthrough
# shell:
#   timeout: 10m
#   allow_dangerous: false

# display:
#   render: true   # render AI answers as markdown

# log:
#   level: debug   # debug, info, warn, error, none
#   file: /tmp/learn.log
#   format: text   # text or json
`
