package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/symup/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// ArchiveSuffix marks an Xcode archive, a container of debug-symbol bundles.
	ArchiveSuffix = ".xcarchive"
	// BundleSuffix marks a debug-symbol bundle.
	BundleSuffix = ".dSYM"
)

var _ ports.BundleLocator = (*Locator)(nil)

// Locator implements ports.BundleLocator on the local file system.
type Locator struct {
	walker *Walker
	logger ports.Logger
}

// NewLocator creates a new Locator.
func NewLocator(walker *Walker, logger ports.Logger) *Locator {
	return &Locator{
		walker: walker,
		logger: logger,
	}
}

// Locate returns the bundle paths for root.
// For android, root itself is the mapping file. For apple, an .xcarchive root is searched
// recursively for .dSYM entries and any other root is taken as a single bundle.
// Returned paths are absolute with symlinks resolved.
func (l *Locator) Locate(ctx context.Context, root string, platform domain.Platform) ([]string, error) {
	if platform == domain.PlatformAndroid {
		return []string{root}, nil
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", root)
	}

	if !IsContainer(abs) {
		resolved, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to resolve bundle"), "path", abs)
		}
		return []string{resolved}, nil
	}

	seen := make(map[string]struct{})
	var bundles []string
	for path, walkErr := range l.walker.WalkSuffix(abs, BundleSuffix) {
		if walkErr != nil {
			return nil, zerr.With(zerr.Wrap(walkErr, "failed to search for bundles"), "path", abs)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		resolved, err := filepath.EvalSymlinks(path)
		if err != nil {
			l.logger.Warn(fmt.Sprintf("skipping unresolvable bundle %s: %v", path, err))
			continue
		}
		if _, dup := seen[resolved]; dup {
			continue
		}
		seen[resolved] = struct{}{}
		bundles = append(bundles, resolved)
	}

	slices.Sort(bundles)
	l.logger.Debug(fmt.Sprintf("found %d bundles in %s", len(bundles), abs))
	return bundles, nil
}

// IsContainer reports whether path names an archive holding several bundles.
func IsContainer(path string) bool {
	return strings.HasSuffix(strings.ToLower(filepath.Clean(path)), ArchiveSuffix)
}
