package ports

import (
	"context"

	"go.trai.ch/symup/internal/core/domain"
)

// BundleLocator enumerates the symbol files to upload.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type BundleLocator interface {
	// Locate returns the bundle paths found at root for the given platform.
	// An empty result is not an error.
	Locate(ctx context.Context, root string, platform domain.Platform) ([]string, error)
}
