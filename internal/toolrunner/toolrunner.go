// Package toolrunner provides execution of external tools and commands.
//
// Overview:
//   - Responsibility: Execute java and other external tools, capture or stream their output
//   - Key Types: Runner, CommandResult
//   - Concurrency Model: One command per call; streamed output is read by two
//     goroutines (stdout, stderr) whose sink writes are serialized
//   - Error Semantics: NOT_FOUND when the tool cannot be started, ABORTED for
//     nonzero exits and expired contexts
//   - Performance Notes: Line-oriented streaming, output also kept in memory
//
// Usage:
//
//	runner := toolrunner.NewRunner(dir)
//	result, err := runner.Stream(ctx, os.Stdout, "java", "-jar", jar)
package toolrunner

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"
	"time"

	"go.eggybyte.com/camelgen/internal/core/errors"
	"go.eggybyte.com/camelgen/internal/ui"
)

const maxLineSize = 1024 * 1024

// DefaultWaitDelay bounds how long output is still read after the tool exited
// or was killed.
const DefaultWaitDelay = 2 * time.Second

// Runner provides execution of external tools.
//
// Parameters:
//   - workDir: Working directory for commands
//   - verbose: Whether to show command lines
//   - env: Extra environment entries appended to the process environment
//
// Concurrency:
//   - Safe for concurrent use once configured
type Runner struct {
	workDir   string
	verbose   bool
	env       []string
	waitDelay time.Duration
}

// CommandResult represents the result of a command execution.
type CommandResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// NewRunner creates a runner executing commands in workDir. An empty workDir
// uses the current directory.
func NewRunner(workDir string) *Runner {
	return &Runner{workDir: workDir, waitDelay: DefaultWaitDelay}
}

// SetWaitDelay changes the output grace period.
func (r *Runner) SetWaitDelay(d time.Duration) {
	r.waitDelay = d
}

// SetVerbose enables or disables printing of command lines.
func (r *Runner) SetVerbose(enabled bool) {
	r.verbose = enabled
}

// SetEnv sets extra KEY=VALUE environment entries for every command.
func (r *Runner) SetEnv(env ...string) {
	r.env = env
}

func (r *Runner) command(ctx context.Context, name string, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.workDir
	cmd.WaitDelay = r.waitDelay
	if len(r.env) > 0 {
		cmd.Env = append(os.Environ(), r.env...)
	}
	if r.verbose {
		ui.Debug("Running: %s %s", name, strings.Join(args, " "))
	}
	return cmd
}

// Exec runs a command to completion and captures its output.
//
// Parameters:
//   - ctx: Context for cancellation and timeouts
//   - name: Executable name or path
//   - args: Command arguments
//
// Returns:
//   - *CommandResult: Exit code and captured output (also returned on failure)
//   - error: NOT_FOUND if the command cannot start, ABORTED on nonzero exit
func (r *Runner) Exec(ctx context.Context, name string, args ...string) (*CommandResult, error) {
	start := time.Now()
	cmd := r.command(ctx, name, args)

	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if errors.Is(err, exec.ErrWaitDelay) && cmd.ProcessState.Success() {
		err = nil
	}
	result := &CommandResult{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	return result, classify(ctx, name, result, err)
}

// Stream runs a command and forwards every output line to sink as it
// arrives, prefixed with "stdout: " or "stderr: ". A nil sink only captures.
// Stream always waits for the process to exit; output still held open by a
// descendant afterwards is cut off after the wait delay.
//
// Concurrency:
//   - Two reader goroutines are joined after the process is reaped; sink
//     writes never interleave within a line
func (r *Runner) Stream(ctx context.Context, sink io.Writer, name string, args ...string) (*CommandResult, error) {
	start := time.Now()
	cmd := r.command(ctx, name, args)

	// Wait owns the OS pipes and closes them after WaitDelay if a descendant
	// of the tool keeps them open.
	stdoutR, stdoutW := io.Pipe()
	stderrR, stderrW := io.Pipe()
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW

	if err := cmd.Start(); err != nil {
		result := &CommandResult{ExitCode: -1, Duration: time.Since(start)}
		return result, classify(ctx, name, result, err)
	}

	var (
		sinkMu         sync.Mutex
		wg             sync.WaitGroup
		stdout, stderr strings.Builder
	)
	forward := func(label string, src io.Reader, capture *strings.Builder) {
		defer wg.Done()
		scanner := bufio.NewScanner(src)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			line := scanner.Text()
			capture.WriteString(line)
			capture.WriteByte('\n')
			if sink == nil {
				continue
			}
			sinkMu.Lock()
			fmt.Fprintf(sink, "%s: %s\n", label, line)
			sinkMu.Unlock()
		}
		// Drain whatever the scanner refused so the child never blocks on a full pipe.
		_, _ = io.Copy(io.Discard, src)
	}

	wg.Add(2)
	go forward("stdout", stdoutR, &stdout)
	go forward("stderr", stderrR, &stderr)

	err := cmd.Wait()
	_ = stdoutW.Close()
	_ = stderrW.Close()
	wg.Wait()

	// The tool itself succeeded; only a descendant outlived it.
	if errors.Is(err, exec.ErrWaitDelay) && cmd.ProcessState.Success() {
		err = nil
	}

	result := &CommandResult{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	return result, classify(ctx, name, result, err)
}

func classify(ctx context.Context, name string, result *CommandResult, err error) error {
	if err == nil {
		return nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return errors.Wrapf(errors.CodeAborted, "run "+name, ctxErr, "%s did not finish in time", name)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return errors.Wrapf(errors.CodeAborted, "run "+name, err, "%s exited with code %d", name, result.ExitCode)
	}
	return errors.Wrapf(errors.CodeNotFound, "run "+name, err, "failed to start %s", name)
}

// CheckToolAvailability checks if a tool is available in PATH.
func CheckToolAvailability(toolName string) (bool, error) {
	if _, err := exec.LookPath(toolName); err != nil {
		return false, errors.Wrapf(errors.CodeNotFound, "lookup "+toolName, err, "tool not found in PATH: %s", toolName)
	}
	return true, nil
}
