package archive

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/symup/internal/adapters/logger"
	"go.trai.ch/symup/internal/core/ports"
)

// NodeID is the unique identifier for the packager Graft node.
const NodeID graft.ID = "adapter.packager"

func init() {
	graft.Register(graft.Node[ports.Packager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.Packager, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewPackager(log, TempRootFromEnv()), nil
		},
	})
}
