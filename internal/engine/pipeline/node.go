package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/symup/internal/adapters/archive"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/symup/internal/adapters/dwarfdump"          //nolint:depguard // Wired in engine wiring
	"go.trai.ch/symup/internal/adapters/fs"                 //nolint:depguard // Wired in engine wiring
	"go.trai.ch/symup/internal/adapters/ingest"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/symup/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/symup/internal/adapters/plist"              //nolint:depguard // Wired in engine wiring
	"go.trai.ch/symup/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/symup/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			plist.NodeID,
			fs.LocatorNodeID,
			dwarfdump.NodeID,
			archive.NodeID,
			ingest.NodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			resolver, err := graft.Dep[ports.IdentifierResolver](ctx)
			if err != nil {
				return nil, err
			}

			locator, err := graft.Dep[ports.BundleLocator](ctx)
			if err != nil {
				return nil, err
			}

			inspector, err := graft.Dep[ports.BinaryInspector](ctx)
			if err != nil {
				return nil, err
			}

			packager, err := graft.Dep[ports.Packager](ctx)
			if err != nil {
				return nil, err
			}

			uploader, err := graft.Dep[ports.Uploader](ctx)
			if err != nil {
				return nil, err
			}

			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewPipeline(resolver, locator, inspector, packager, uploader, telemetry, log), nil
		},
	})
}
