// Package app implements the application layer for symup.
package app

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"go.trai.ch/symup/internal/adapters/dwarfdump"
	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/symup/internal/core/ports"
	"go.trai.ch/symup/internal/engine/pipeline"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	pipeline       *pipeline.Pipeline
	settingsLoader ports.SettingsLoader
	logger         ports.Logger
	goos           string
	inspectorTool  string
}

// New creates a new App instance.
func New(p *pipeline.Pipeline, loader ports.SettingsLoader, log ports.Logger) *App {
	return &App{
		pipeline:       p,
		settingsLoader: loader,
		logger:         log,
		goos:           runtime.GOOS,
		inspectorTool:  os.Getenv(dwarfdump.ToolEnv),
	}
}

// WithHost overrides the operating system the App believes it runs on.
// This is primarily used for testing the host check.
func (a *App) WithHost(goos string) *App {
	a.goos = goos
	return a
}

// WithInspectorTool records a custom inspector binary, which lifts the Darwin host requirement.
func (a *App) WithInspectorTool(tool string) *App {
	a.inspectorTool = tool
	return a
}

// SetVerbose toggles debug logging when the configured logger supports it.
func (a *App) SetVerbose(verbose bool) {
	if v, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		v.SetVerbose(verbose)
	}
}

// SetJSON switches log records to JSON when the configured logger supports it.
func (a *App) SetJSON(enable bool) {
	if j, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		j.SetJSON(enable)
	}
}

// LoadSettings reads the settings file at path.
// A missing file yields nil settings unless required is set.
func (a *App) LoadSettings(path string, required bool) (*domain.Settings, error) {
	settings, err := a.settingsLoader.Load(path)
	if err != nil {
		return nil, err
	}
	if settings == nil && required {
		return nil, zerr.With(zerr.Wrap(domain.ErrSettingsReadFailed, "settings file not found"), "path", path)
	}
	return settings, nil
}

// checkHost rejects apple uploads on hosts without a usable dwarfdump.
func (a *App) checkHost(req domain.UploadRequest) error {
	if req.Platform != domain.PlatformApple || a.goos == "darwin" || a.inspectorTool != "" {
		return nil
	}
	err := zerr.Wrap(domain.ErrUnsupportedHost, "apple symbol upload requires macOS")
	err = zerr.With(err, "host", a.goos)
	return zerr.With(err, "hint", "set "+dwarfdump.ToolEnv+" to a dwarfdump-compatible binary")
}

// Upload sends the symbol files described by req to the ingestion API.
// Apple uploads are checked against the host once the request has validated.
func (a *App) Upload(ctx context.Context, req domain.UploadRequest) error {
	res, err := a.pipeline.Run(ctx, req, a.checkHost)
	if err != nil {
		return zerr.With(err, "stage", res.FailedAt.String())
	}

	sent := res.Request
	switch sent.Platform {
	case domain.PlatformApple:
		msg := fmt.Sprintf("uploaded %d debug symbol bundles for %s %s", len(res.Artifacts), sent.BundleID, sent.AppVersion)
		if n := len(res.Skipped); n > 0 {
			msg += fmt.Sprintf(" (%d skipped)", n)
		}
		a.logger.Info(msg)
	default:
		a.logger.Info(fmt.Sprintf("uploaded mapping file %s for %s %s", sent.Path, sent.BundleID, sent.AppVersion))
	}
	return nil
}
