// Package plist resolves application identifiers from Info.plist metadata.
package plist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/symup/internal/core/ports"
	"howett.net/plist"
)

const (
	// MetadataPattern finds Info.plist files at any depth.
	MetadataPattern = "**/Info.plist"

	keyApplicationProperties = "ApplicationProperties"
	keyShortVersion          = "CFBundleShortVersionString"
	keyBundleVersion         = "CFBundleVersion"
	keyBundleIdentifier      = "CFBundleIdentifier"
)

var _ ports.IdentifierResolver = (*Resolver)(nil)

// Resolver implements ports.IdentifierResolver by reading Info.plist files.
type Resolver struct {
	logger ports.Logger
}

// NewResolver creates a new Resolver.
func NewResolver(logger ports.Logger) *Resolver {
	return &Resolver{logger: logger}
}

// Resolve reads the identifiers from the shallowest Info.plist under root.
// Any failure is logged and yields nil.
func (r *Resolver) Resolve(_ context.Context, root string) *domain.AppIdentifiers {
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		r.logger.Debug(fmt.Sprintf("no metadata directory at %s", root))
		return nil
	}

	matches, err := doublestar.Glob(os.DirFS(root), MetadataPattern, doublestar.WithFilesOnly())
	if err != nil {
		r.logger.Warn(fmt.Sprintf("failed to search metadata in %s: %v", root, err))
		return nil
	}
	if len(matches) == 0 {
		r.logger.Debug(fmt.Sprintf("no Info.plist found in %s", root))
		return nil
	}

	sortCandidates(matches)
	path := filepath.Join(root, filepath.FromSlash(matches[0]))

	data, err := os.ReadFile(path) //nolint:gosec // path is discovered under the user supplied root
	if err != nil {
		r.logger.Warn(fmt.Sprintf("failed to read %s: %v", path, err))
		return nil
	}

	ids, err := Decode(data)
	if err != nil {
		r.logger.Warn(fmt.Sprintf("failed to parse %s: %v", path, err))
		return nil
	}

	r.logger.Debug(fmt.Sprintf("resolved identifiers from %s", path))
	return ids
}

// Decode extracts identifiers from an XML or binary property list.
// When the top-level dictionary has an ApplicationProperties dictionary, keys are read from it.
func Decode(data []byte) (*domain.AppIdentifiers, error) {
	var top map[string]any
	if _, err := plist.Unmarshal(data, &top); err != nil {
		return nil, err
	}

	props := top
	if nested, ok := top[keyApplicationProperties].(map[string]any); ok {
		props = nested
	}

	return &domain.AppIdentifiers{
		AppVersion:         stringValue(props, keyShortVersion),
		InternalAppVersion: stringValue(props, keyBundleVersion),
		BundleID:           stringValue(props, keyBundleIdentifier),
	}, nil
}

func stringValue(props map[string]any, key string) string {
	s, _ := props[key].(string)
	return s
}

// sortCandidates orders slash-separated paths by depth, then length, then lexically.
func sortCandidates(paths []string) {
	slices.SortFunc(paths, func(a, b string) int {
		if d := strings.Count(a, "/") - strings.Count(b, "/"); d != 0 {
			return d
		}
		if d := len(a) - len(b); d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})
}
