package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/symup/internal/adapters/logger"
	"go.trai.ch/symup/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// LocatorNodeID is the unique identifier for the bundle locator Graft node.
	LocatorNodeID graft.ID = "adapter.fs.locator"
)

func init() {
	// Walker Node (Concrete implementation needed by Locator)
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.BundleLocator]{
		ID:        LocatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.BundleLocator, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLocator(walker, log), nil
		},
	})
}
