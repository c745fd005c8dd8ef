package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"github.com/quocvuong92/learn-cli/internal/constants"
	"github.com/quocvuong92/learn-cli/internal/logging"
)

// ErrEmptyCommand is returned for blank input after "!".
var ErrEmptyCommand = errors.New("no command given after '!'")

// ErrDangerousCommand is returned when a command is refused by the classifier.
var ErrDangerousCommand = errors.New("refused, set shell.allow_dangerous to run it")

// ExecutionResult holds the outcome of one command.
type ExecutionResult struct {
	Command  string
	Output   string // combined stdout and stderr
	ExitCode int
	Error    string
	Duration time.Duration
}

// IsSuccess reports whether the command exited with status zero.
func (r *ExecutionResult) IsSuccess() bool {
	return r != nil && r.ExitCode == 0 && r.Error == ""
}

// FormatResult returns the text to show for a failed command: the captured
// output when there is any, the failure reason otherwise.
func (r *ExecutionResult) FormatResult() string {
	if strings.TrimSpace(r.Output) != "" {
		return r.Output
	}
	if r.Error != "" {
		return r.Error
	}
	return fmt.Sprintf("command exited with status %d", r.ExitCode)
}

// Executor runs commands through the platform shell.
type Executor struct {
	timeout        time.Duration
	allowDangerous bool
	logger         *logging.Logger
}

// NewExecutor creates an executor with the default timeout.
func NewExecutor(logger *logging.Logger) *Executor {
	if logger == nil {
		logger = logging.Nop()
	}
	return &Executor{
		timeout: constants.DefaultCommandTimeout,
		logger:  logger,
	}
}

// SetTimeout sets the command execution timeout; zero or less keeps the default.
func (e *Executor) SetTimeout(timeout time.Duration) {
	if timeout > 0 {
		e.timeout = timeout
	}
}

// AllowDangerous lifts the refusal of commands classified as Dangerous.
func (e *Executor) AllowDangerous(allow bool) {
	e.allowDangerous = allow
}

// Execute runs command and captures its combined output. A non-zero exit
// is reported in the result, not as an error; the error return covers
// commands that were refused or could not be started.
func (e *Executor) Execute(ctx context.Context, command string) (*ExecutionResult, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil, ErrEmptyCommand
	}
	risk := ClassifyCommand(command)
	if risk == Dangerous && !e.allowDangerous {
		e.logger.Warn("command refused", logging.Fields{"command": command})
		return nil, fmt.Errorf("%s: %w", GetRiskDescription(risk), ErrDangerousCommand)
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	name, args := shellCommand(command)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = os.Environ()
	cmd.Stdin = os.Stdin
	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out
	cmd.WaitDelay = time.Second

	start := time.Now()
	runErr := cmd.Run()
	result := &ExecutionResult{
		Command:  command,
		Output:   out.String(),
		Duration: time.Since(start),
	}

	var exitErr *exec.ExitError
	switch {
	case runErr == nil:
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		result.ExitCode = -1
		result.Error = fmt.Sprintf("command timed out after %v", e.timeout)
	case errors.As(runErr, &exitErr):
		result.ExitCode = exitErr.ExitCode()
		result.Error = exitErr.Error()
	default:
		e.logger.Error("command failed to start", runErr, logging.Fields{"command": command})
		return nil, fmt.Errorf("failed to run command: %w", runErr)
	}

	e.logger.Debug("command finished", logging.Fields{
		"command":     command,
		"risk":        GetRiskDescription(risk),
		"exit_code":   result.ExitCode,
		"duration_ms": result.Duration.Milliseconds(),
		"output_size": len(result.Output),
	})
	return result, nil
}

// shellCommand returns the platform shell invocation for command.
func shellCommand(command string) (string, []string) {
	if runtime.GOOS == "windows" {
		return "cmd", []string{"/C", command}
	}
	shell := "/bin/sh"
	if _, err := os.Stat(shell); err != nil {
		shell = "sh"
	}
	return shell, []string{"-c", command}
}
