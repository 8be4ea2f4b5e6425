// Package archive packages debug-symbol bundles into gzip-compressed tarballs.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.trai.ch/symup/internal/core/domain"
	"go.trai.ch/symup/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// TempDirEnv overrides the directory work dirs are created in.
	TempDirEnv = "TMP_DIR"
	// Extension is appended to the binary name to form the archive file name.
	Extension = ".tar.gz"

	workDirPattern = "symup-"
)

var _ ports.Packager = (*Packager)(nil)

// Packager implements ports.Packager writing tar.gz archives to the local file system.
type Packager struct {
	logger   ports.Logger
	tempRoot string
}

// NewPackager creates a Packager creating work dirs under tempRoot.
// An empty tempRoot selects the OS temp dir.
func NewPackager(logger ports.Logger, tempRoot string) *Packager {
	return &Packager{
		logger:   logger,
		tempRoot: tempRoot,
	}
}

// TempRootFromEnv returns $TMP_DIR when set, otherwise the OS temp dir.
func TempRootFromEnv() string {
	if dir := os.Getenv(TempDirEnv); dir != "" {
		return dir
	}
	return os.TempDir()
}

// Workspace creates a fresh symup-* directory.
func (p *Packager) Workspace() (string, error) {
	root := p.tempRoot
	if root == "" {
		root = os.TempDir()
	}
	dir, err := os.MkdirTemp(root, workDirPattern)
	if err != nil {
		return "", zerr.With(zerr.Wrap(domain.ErrPackagingFailed, err.Error()), "temp_root", root)
	}
	return dir, nil
}

// Cleanup removes a work dir and everything in it.
func (p *Packager) Cleanup(workDir string) error {
	if workDir == "" {
		return nil
	}
	if err := os.RemoveAll(workDir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove work dir"), "path", workDir)
	}
	return nil
}

// Pack writes <workDir>/<uuid>/<binary name>.tar.gz holding the bundle at info.Path.
// The archive is rooted at the bundle's base name.
func (p *Packager) Pack(ctx context.Context, workDir string, info *domain.DebugSymbolInfo) (*domain.PackagedArtifact, error) {
	dir := filepath.Join(workDir, uuid.NewString())
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, packagingError(err, info.Path)
	}

	out := filepath.Join(dir, archiveName(info))
	checksum, err := p.writeArchive(ctx, info.Path, out)
	if err != nil {
		_ = os.Remove(out)
		return nil, err
	}

	p.logger.Debug(fmt.Sprintf("packaged %s into %s (xxh64 %s)", info.Path, out, checksum))
	return &domain.PackagedArtifact{
		UUID:        info.UUID,
		ArchivePath: out,
		Checksum:    checksum,
	}, nil
}

func archiveName(info *domain.DebugSymbolInfo) string {
	name := filepath.Base(info.Binary)
	if name == "." || name == string(filepath.Separator) {
		name = strings.TrimSuffix(filepath.Base(info.Path), filepath.Ext(info.Path))
	}
	return name + Extension
}

func (p *Packager) writeArchive(ctx context.Context, src, dst string) (string, error) {
	//nolint:gosec // dst is built from the work dir and a generated name
	file, err := os.OpenFile(dst, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o600)
	if err != nil {
		return "", packagingError(err, src)
	}

	hasher := xxhash.New()
	gzipWriter := gzip.NewWriter(io.MultiWriter(file, hasher))
	tarWriter := tar.NewWriter(gzipWriter)

	writeErr := p.addBundle(ctx, tarWriter, src)

	// Every layer must close cleanly before the archive is usable.
	if err := tarWriter.Close(); err != nil && writeErr == nil {
		writeErr = err
	}
	if err := gzipWriter.Close(); err != nil && writeErr == nil {
		writeErr = err
	}
	if err := file.Close(); err != nil && writeErr == nil {
		writeErr = err
	}
	if writeErr != nil {
		return "", packagingError(writeErr, src)
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// addBundle archives src under its own base name. A symlinked src is followed so the
// archive holds the bundle contents, not the link.
func (p *Packager) addBundle(ctx context.Context, tw *tar.Writer, src string) error {
	root, err := filepath.EvalSymlinks(src)
	if err != nil {
		return err
	}
	info, err := os.Stat(root)
	if err != nil {
		return err
	}

	base := filepath.Base(src)
	if !info.IsDir() {
		return addEntry(tw, root, base, info, "")
	}

	return filepath.WalkDir(root, func(path string, d iofs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		name := base
		if rel != "." {
			name = base + "/" + filepath.ToSlash(rel)
		}

		fi, err := d.Info()
		if err != nil {
			return err
		}

		var link string
		if fi.Mode()&os.ModeSymlink != 0 {
			link, err = os.Readlink(path)
			if err != nil {
				p.logger.Warn(fmt.Sprintf("skipping unreadable symlink %s: %v", path, err))
				return nil
			}
		}

		return addEntry(tw, path, name, fi, link)
	})
}

func addEntry(tw *tar.Writer, path, name string, fi os.FileInfo, link string) error {
	header, err := tar.FileInfoHeader(fi, link)
	if err != nil {
		return err
	}
	header.Name = name
	if fi.IsDir() {
		header.Name += "/"
	}

	if err := tw.WriteHeader(header); err != nil {
		return err
	}
	if !fi.Mode().IsRegular() {
		return nil
	}

	f, err := os.Open(path) //nolint:gosec // path is inside the bundle being packaged
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck // read-only handle

	_, err = io.Copy(tw, f)
	return err
}

func packagingError(err error, path string) error {
	return zerr.With(zerr.Wrap(domain.ErrPackagingFailed, err.Error()), "path", path)
}
