package ingest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/symup/internal/adapters/logger"
	"go.trai.ch/symup/internal/core/ports"
)

// NodeID is the unique identifier for the uploader Graft node.
const NodeID graft.ID = "adapter.uploader"

func init() {
	graft.Register(graft.Node[ports.Uploader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Uploader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewUploader(NewHTTPClient(), log), nil
		},
	})
}
