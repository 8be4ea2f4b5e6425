package ports

import (
	"context"

	"go.trai.ch/symup/internal/core/domain"
)

// Packager turns inspected bundles into archives on disk.
//
//go:generate mockgen -source=packager.go -destination=mocks/mock_packager.go -package=mocks
type Packager interface {
	// Workspace creates a fresh directory for the archives of one run.
	Workspace() (string, error)
	// Pack archives the bundle described by info into workDir.
	// Pack is safe for concurrent use with distinct infos.
	Pack(ctx context.Context, workDir string, info *domain.DebugSymbolInfo) (*domain.PackagedArtifact, error)
	// Cleanup removes a directory created by Workspace.
	Cleanup(workDir string) error
}
