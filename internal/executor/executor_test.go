package executor

import (
	"bytes"
	"context"
	"errors"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/quocvuong92/learn-cli/internal/logging"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses POSIX shell commands")
	}
}

func TestExecute_Success(t *testing.T) {
	skipOnWindows(t)

	result, err := NewExecutor(nil).Execute(context.Background(), "echo hi")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !result.IsSuccess() {
		t.Errorf("IsSuccess() = false, result = %+v", result)
	}
	if strings.TrimSpace(result.Output) != "hi" {
		t.Errorf("Output = %q, want %q", result.Output, "hi\n")
	}
}

func TestExecute_CombinedOutput(t *testing.T) {
	skipOnWindows(t)

	result, err := NewExecutor(nil).Execute(context.Background(), "echo out; echo err 1>&2")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(result.Output, "out") || !strings.Contains(result.Output, "err") {
		t.Errorf("Output = %q, want stdout and stderr", result.Output)
	}
}

func TestExecute_Failure(t *testing.T) {
	skipOnWindows(t)

	tests := []struct {
		name     string
		command  string
		exitCode int
		display  string
	}{
		{"false", "false", 1, "exit status 1"},
		{"stderr shown", "echo boom 1>&2; exit 3", 3, "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewExecutor(nil).Execute(context.Background(), tt.command)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if result.IsSuccess() {
				t.Error("IsSuccess() = true for a failing command")
			}
			if result.ExitCode != tt.exitCode {
				t.Errorf("ExitCode = %d, want %d", result.ExitCode, tt.exitCode)
			}
			if !strings.Contains(result.FormatResult(), tt.display) {
				t.Errorf("FormatResult() = %q, want it to contain %q", result.FormatResult(), tt.display)
			}
		})
	}
}

func TestExecute_Timeout(t *testing.T) {
	skipOnWindows(t)

	exec := NewExecutor(nil)
	exec.SetTimeout(100 * time.Millisecond)

	start := time.Now()
	result, err := exec.Execute(context.Background(), "sleep 5")
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if result.ExitCode != -1 {
		t.Errorf("ExitCode = %d, want -1", result.ExitCode)
	}
	if !strings.Contains(result.Error, "timed out") {
		t.Errorf("Error = %q", result.Error)
	}
	if time.Since(start) > 3*time.Second {
		t.Errorf("timeout not enforced, took %v", time.Since(start))
	}
}

func TestExecute_Empty(t *testing.T) {
	if _, err := NewExecutor(nil).Execute(context.Background(), "  "); !errors.Is(err, ErrEmptyCommand) {
		t.Errorf("Execute() error = %v, want ErrEmptyCommand", err)
	}
}

func TestExecute_DangerousRefused(t *testing.T) {
	exec := NewExecutor(nil)
	_, err := exec.Execute(context.Background(), "rm -rf /")
	if !errors.Is(err, ErrDangerousCommand) {
		t.Fatalf("Execute() error = %v, want ErrDangerousCommand", err)
	}
	if !strings.HasPrefix(err.Error(), GetRiskDescription(Dangerous)) {
		t.Errorf("error = %q, want the risk description first", err)
	}
}

func TestExecute_LogsRisk(t *testing.T) {
	skipOnWindows(t)

	tests := []struct {
		command string
		want    string
	}{
		{"echo hi", GetRiskDescription(Safe)},
		{"echo hi > /dev/null", GetRiskDescription(Normal)},
	}

	for _, tt := range tests {
		t.Run(tt.command, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.New(logging.Options{Level: logging.LevelDebug, Output: &buf})
			if _, err := NewExecutor(logger).Execute(context.Background(), tt.command); err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if !strings.Contains(buf.String(), tt.want) {
				t.Errorf("debug log = %q, want risk %q", buf.String(), tt.want)
			}
		})
	}
}

func TestSetTimeout_IgnoresNonPositive(t *testing.T) {
	exec := NewExecutor(nil)
	before := exec.timeout
	exec.SetTimeout(0)
	if exec.timeout != before {
		t.Errorf("timeout = %v, want unchanged %v", exec.timeout, before)
	}
}
