package plist

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/symup/internal/adapters/logger"
	"go.trai.ch/symup/internal/core/ports"
)

// NodeID is the unique identifier for the identifier resolver Graft node.
const NodeID graft.ID = "adapter.identifier_resolver"

func init() {
	graft.Register(graft.Node[ports.IdentifierResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.IdentifierResolver, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(log), nil
		},
	})
}
