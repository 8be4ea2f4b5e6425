// Package shell provides the external process adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"
	"sync"

	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/symup/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner implements ports.CommandRunner using os/exec.
type Runner struct {
	logger ports.Logger
}

// NewRunner creates a new Runner.
func NewRunner(logger ports.Logger) *Runner {
	return &Runner{
		logger: logger,
	}
}

var _ ports.CommandRunner = (*Runner)(nil)

// Output runs the command and returns its stdout.
// Stdout is mirrored into the vertex carried by ctx, stderr lines are logged at debug level.
func (r *Runner) Output(ctx context.Context, name string, args []string) ([]byte, error) {
	if name == "" {
		return nil, zerr.Wrap(domain.ErrCommandFailed, "empty command")
	}

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // tool path is operator provided

	var out io.Writer = &stdout
	if v, ok := ports.VertexFromContext(ctx); ok {
		out = io.MultiWriter(&stdout, v.Stdout())
	}
	cmd.Stdout = out

	stderr := &lineWriter{logger: r.logger}
	cmd.Stderr = stderr

	err := cmd.Run()
	stderr.flush()
	if err != nil {
		exitCode := -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		wrapped := zerr.With(zerr.Wrap(domain.ErrCommandFailed, err.Error()), "command", name)
		return nil, zerr.With(wrapped, "exit_code", exitCode)
	}

	return stdout.Bytes(), nil
}

// lineWriter forwards complete lines to the logger, buffering partial writes.
type lineWriter struct {
	logger ports.Logger
	mu     sync.Mutex
	buf    []byte
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf = append(w.buf, p...)
	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.emit(string(w.buf[:i]))
		w.buf = w.buf[i+1:]
	}
	return len(p), nil
}

func (w *lineWriter) flush() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.buf) > 0 {
		w.emit(string(w.buf))
		w.buf = nil
	}
}

func (w *lineWriter) emit(line string) {
	line = strings.TrimRight(line, "\r")
	if line == "" {
		return
	}
	w.logger.Debug(line)
}
