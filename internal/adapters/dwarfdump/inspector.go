// Package dwarfdump extracts build identifiers from debug-symbol bundles with the dwarfdump tool.
package dwarfdump

import (
	"context"
	"os"
	"regexp"
	"strings"

	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/symup/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// DefaultTool is the inspector binary looked up on PATH.
	DefaultTool = "dwarfdump"
	// ToolEnv overrides the inspector binary.
	ToolEnv = "DWARFDUMP_PATH"
)

var uuidLine = regexp.MustCompile(`(?m)^UUID: (\S+) \(([^)]+)\) (.+)$`)

// Inspector implements ports.BinaryInspector by running "<tool> -u <bundle>".
type Inspector struct {
	runner ports.CommandRunner
	tool   string
}

// NewInspector creates an Inspector running tool through runner.
// An empty tool selects DefaultTool.
func NewInspector(runner ports.CommandRunner, tool string) *Inspector {
	if tool == "" {
		tool = DefaultTool
	}
	return &Inspector{
		runner: runner,
		tool:   tool,
	}
}

// ToolFromEnv returns the configured inspector binary.
func ToolFromEnv() string {
	if tool := os.Getenv(ToolEnv); tool != "" {
		return tool
	}
	return DefaultTool
}

var _ ports.BinaryInspector = (*Inspector)(nil)

// Inspect runs the tool against path and parses the first UUID line of its output.
func (i *Inspector) Inspect(ctx context.Context, path string) (*domain.DebugSymbolInfo, error) {
	out, err := i.runner.Output(ctx, i.tool, []string{"-u", path})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to inspect bundle"), "path", path)
	}

	return Parse(path, out)
}

// Parse extracts the first "UUID: <uuid> (<arch>) <binary>" record from output.
func Parse(path string, output []byte) (*domain.DebugSymbolInfo, error) {
	m := uuidLine.FindSubmatch(output)
	if m == nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInspectionSkipped, "no UUID in inspector output"), "path", path)
	}
	return domain.NewDebugSymbolInfo(path, strings.TrimSpace(string(m[3])), string(m[2]), string(m[1]))
}
