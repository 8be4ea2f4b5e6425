package ports

import (
	"context"

	"go.trai.ch/symup/internal/core/domain"
)

// BinaryInspector extracts build identifiers from a debug-symbol bundle.
//
//go:generate mockgen -source=inspector.go -destination=mocks/mock_inspector.go -package=mocks
type BinaryInspector interface {
	// Inspect returns the identifiers of the first binary found in the bundle at path.
	// It returns an error wrapping domain.ErrInspectionSkipped when the bundle has no usable binary.
	Inspect(ctx context.Context, path string) (*domain.DebugSymbolInfo, error)
}
