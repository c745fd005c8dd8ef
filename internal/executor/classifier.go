package executor

import (
	"regexp"
	"strings"
)

// RiskLevel represents the risk level of a command
type RiskLevel int

const (
	// Safe commands only read state
	Safe RiskLevel = iota
	// Normal commands may modify state and run without prompting
	Normal
	// Dangerous commands are refused unless explicitly allowed
	Dangerous
)

var safeCommands = map[string]bool{
	"ls": true, "cat": true, "pwd": true, "echo": true, "head": true, "tail": true,
	"grep": true, "find": true, "which": true, "whoami": true, "date": true,
	"wc": true, "sort": true, "uniq": true, "diff": true, "env": true,
	"printenv": true, "df": true, "du": true, "ps": true, "tree": true,
	"file": true, "stat": true, "basename": true, "dirname": true, "true": true,
	"false": true, "type": true, "man": true,
}

var dangerousPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\brm\s+(-[a-zA-Z]*\s+)*(/|/\*|~|~/|\$HOME)\s*$`), // rm of /, ~ or $HOME
	regexp.MustCompile(`\bmkfs(\.\w+)?\b`),                                // format filesystem
	regexp.MustCompile(`\bdd\s+.*\bof=/dev/`),                             // raw write to a device
	regexp.MustCompile(`>\s*/dev/(sd|nvme|hd|disk)`),                      // redirect onto a disk
	regexp.MustCompile(`:\(\)\s*\{\s*:\|:&\s*\};:`),                       // fork bomb
	regexp.MustCompile(`(curl|wget)\b[^|]*\|\s*(sudo\s+)?(sh|bash|zsh)\b`), // pipe download to shell
	regexp.MustCompile(`\bchmod\s+(-R\s+)?777\s+/\s*$`),                   // world-writable root
}

// ClassifyCommand determines the risk level of a shell command
func ClassifyCommand(cmd string) RiskLevel {
	cmd = strings.TrimSpace(cmd)

	for _, pattern := range dangerousPatterns {
		if pattern.MatchString(cmd) {
			return Dangerous
		}
	}

	fields := strings.Fields(cmd)
	if len(fields) == 0 {
		return Safe
	}
	if strings.ContainsAny(cmd, ";&|>`$(") {
		return Normal
	}
	if safeCommands[fields[0]] {
		return Safe
	}
	return Normal
}

// GetRiskDescription returns a human-readable description of the risk level
func GetRiskDescription(level RiskLevel) string {
	switch level {
	case Safe:
		return "Safe read-only command"
	case Normal:
		return "Command may modify system state"
	case Dangerous:
		return "Potentially destructive command"
	default:
		return "Unknown risk level"
	}
}
