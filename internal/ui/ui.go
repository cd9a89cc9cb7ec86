// Package ui provides unified output formatting for the camelgen CLI.
//
// Overview:
//   - Responsibility: Leveled console output, banner, prompting for missing answers
//   - Key Types: Message, Prompter
//   - Concurrency Model: Thread-safe output operations
//   - Error Semantics: User-friendly error messages with suggestions
//   - Performance Notes: One write per message
//
// Usage:
//
//	ui.Info("Creating folders")
//	ui.Error("Failed to render template: %v", err)
package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

var (
	verbose        bool
	nonInteractive bool
	jsonOutput     bool
	stdout         io.Writer = os.Stdout
	stderr         io.Writer = os.Stderr
	mu             sync.RWMutex
	writeMu        sync.Mutex
)

// OutputLevel represents the severity level of a message.
type OutputLevel string

const (
	LevelDebug   OutputLevel = "debug"
	LevelInfo    OutputLevel = "info"
	LevelWarning OutputLevel = "warning"
	LevelError   OutputLevel = "error"
	LevelSuccess OutputLevel = "success"
)

// Message represents a structured output message.
type Message struct {
	Level     OutputLevel `json:"level"`
	Text      string      `json:"text"`
	Timestamp time.Time   `json:"timestamp"`
}

var prefixes = map[OutputLevel]struct {
	label string
	color *color.Color
}{
	LevelDebug:   {"DEBUG:", color.New(color.FgMagenta)},
	LevelInfo:    {"INFO:", color.New(color.FgCyan)},
	LevelWarning: {"WARN:", color.New(color.FgYellow)},
	LevelError:   {"ERROR:", color.New(color.FgRed, color.Bold)},
	LevelSuccess: {"SUCCESS:", color.New(color.FgGreen)},
}

// SetVerbose enables or disables debug messages.
func SetVerbose(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = enabled
}

// IsVerbose reports whether debug messages are shown.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetNonInteractive disables interactive prompts.
func SetNonInteractive(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	nonInteractive = enabled
}

// IsNonInteractive reports whether prompts are disabled.
func IsNonInteractive() bool {
	mu.RLock()
	defer mu.RUnlock()
	return nonInteractive
}

// SetJSONOutput enables JSON-formatted output.
func SetJSONOutput(enabled bool) {
	mu.Lock()
	defer mu.Unlock()
	jsonOutput = enabled
}

// SetOutput redirects regular and error output. Nil keeps the current writer.
func SetOutput(out, errOut io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if out != nil {
		stdout = out
	}
	if errOut != nil {
		stderr = errOut
	}
}

// Stdout returns the writer regular output goes to.
func Stdout() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return stdout
}

// output writes a message to the appropriate output stream.
func output(level OutputLevel, format string, args ...interface{}) {
	mu.RLock()
	useJSON := jsonOutput
	useVerbose := verbose
	out, errOut := stdout, stderr
	mu.RUnlock()

	if level == LevelDebug && !useVerbose {
		return
	}

	text := fmt.Sprintf(format, args...)

	writeMu.Lock()
	defer writeMu.Unlock()

	if useJSON {
		encoder := json.NewEncoder(out)
		if err := encoder.Encode(Message{Level: level, Text: text, Timestamp: time.Now()}); err != nil {
			fmt.Fprintf(errOut, "Failed to encode JSON output: %v\n", err)
		}
		return
	}

	writer := out
	if level == LevelError {
		writer = errOut
	}

	prefix := prefixes[level]
	fmt.Fprintf(writer, "%s %s\n", prefix.color.Sprint(prefix.label), text)
}

// Debug outputs a debug message, shown only in verbose mode.
func Debug(format string, args ...interface{}) {
	output(LevelDebug, format, args...)
}

// Info outputs an informational message.
func Info(format string, args ...interface{}) {
	output(LevelInfo, format, args...)
}

// Warning outputs a warning message.
func Warning(format string, args ...interface{}) {
	output(LevelWarning, format, args...)
}

// Error outputs an error message to the error stream.
func Error(format string, args ...interface{}) {
	output(LevelError, format, args...)
}

// Success outputs a success message.
func Success(format string, args ...interface{}) {
	output(LevelSuccess, format, args...)
}

// Step outputs a step indicator with message.
func Step(step, total int, format string, args ...interface{}) {
	mu.RLock()
	useJSON := jsonOutput
	out := stdout
	mu.RUnlock()

	if useJSON {
		Info(format, args...)
		return
	}

	writeMu.Lock()
	defer writeMu.Unlock()
	fmt.Fprintf(out, "  [%d/%d] %s\n", step, total, fmt.Sprintf(format, args...))
}

// KeyValue prints an aligned "key: value" line used for answer summaries.
func KeyValue(key, value string) {
	mu.RLock()
	useJSON := jsonOutput
	out := stdout
	mu.RUnlock()

	if useJSON {
		Info("%s: %s", key, value)
		return
	}

	writeMu.Lock()
	defer writeMu.Unlock()
	fmt.Fprintf(out, "  %-20s %s\n", key, color.New(color.Bold).Sprint(value))
}

// Banner prints the generator banner. Suppressed in JSON mode.
func Banner() {
	mu.RLock()
	useJSON := jsonOutput
	out := stdout
	mu.RUnlock()

	if useJSON {
		return
	}

	writeMu.Lock()
	defer writeMu.Unlock()
	title := color.New(color.FgYellow, color.Bold)
	fmt.Fprintln(out, " -----------------------------------------------")
	fmt.Fprintln(out, title.Sprint("            Camel Project Generator"))
	fmt.Fprintln(out, " -----------------------------------------------")
	fmt.Fprintln(out)
}
