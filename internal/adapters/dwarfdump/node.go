package dwarfdump

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/symup/internal/adapters/shell"
	"go.trai.ch/symup/internal/core/ports"
)

// NodeID is the unique identifier for the binary inspector Graft node.
const NodeID graft.ID = "adapter.binary_inspector"

func init() {
	graft.Register(graft.Node[ports.BinaryInspector]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.BinaryInspector, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewInspector(runner, ToolFromEnv()), nil
		},
	})
}
