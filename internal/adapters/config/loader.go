// Package config provides the settings file loader for symup.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/symup/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.SettingsLoader = (*Loader)(nil)

// Loader implements ports.SettingsLoader for YAML files.
type Loader struct {
	logger ports.Logger
}

// NewLoader creates a new Loader.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger}
}

// Load reads the settings at path. A missing file yields nil settings and no error.
func (l *Loader) Load(path string) (*domain.Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.logger.Debug(fmt.Sprintf("no settings file at %s", path))
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrSettingsReadFailed, err.Error()), "path", path)
	}

	settings, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.logger.Debug(fmt.Sprintf("loaded settings from %s", path))
	return settings, nil
}

// Parse decodes settings from YAML. Unknown keys are rejected.
func Parse(data []byte) (*domain.Settings, error) {
	var file Settingsfile

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.Wrap(domain.ErrSettingsParseFailed, err.Error())
	}

	return file.toDomain(), nil
}
