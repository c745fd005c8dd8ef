// Package cmd implements the CLI commands for learn.
//
// # Architecture
//
//   - root.go: Main entry point, App struct, cobra command setup, flags and
//     one-shot dispatch (check an app, add or list aliases, write settings)
//   - interactive.go: Interactive REPL session, key dispatch table and
//     completion
//
// # Key Components
//
// ## App
//
// The App struct holds the resolved configuration, the printer and the
// logger. It is created in Run and the command inventory is scanned at most
// once per process.
//
// ## InteractiveSession
//
// Handles one submitted line at a time:
//   - "exit" ends the session
//   - "learn <command>" prints a short explanation
//   - an exact command name reports whether it is installed
//   - "!<command>" runs the command through the platform shell
//   - anything else is reported as unknown, with close matches as hints
//
// Keys are bound through a KeyAction table: Ctrl+G asks the AI, Ctrl+T
// shows help and Ctrl+X lists installation status of every command.
//
// # Usage
//
//	// Main entry point
//	func main() {
//	    cmd.Execute()
//	}
package cmd
