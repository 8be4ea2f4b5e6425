package ports

import (
	"context"

	"go.trai.ch/symup/internal/core/domain"
)

// Uploader sends an assembled request to the ingestion endpoint.
//
//go:generate mockgen -source=uploader.go -destination=mocks/mock_uploader.go -package=mocks
type Uploader interface {
	// Upload posts opts to destination. The request body is always closed.
	Upload(ctx context.Context, destination string, opts *domain.RequestOptions) error
}
