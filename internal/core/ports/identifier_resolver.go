package ports

import (
	"context"

	"go.trai.ch/symup/internal/core/domain"
)

// IdentifierResolver reads application identifiers from bundle metadata.
//
//go:generate mockgen -source=identifier_resolver.go -destination=mocks/mock_identifier_resolver.go -package=mocks
type IdentifierResolver interface {
	// Resolve returns the identifiers found under root, or nil when none could be read.
	Resolve(ctx context.Context, root string) *domain.AppIdentifiers
}
