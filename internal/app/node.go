package app

import (
	"context"
	"fmt"

	"github.com/grindlemire/graft"
	"go.trai.ch/symup/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/symup/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/symup/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/symup/internal/core/ports"
	"go.trai.ch/symup/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains the initialized components needed by the CLI layer.
type Components struct {
	App       *App
	Logger    ports.Logger
	Telemetry ports.Telemetry
}

// Close flushes the progress recording. Failures are only logged.
func (c *Components) Close() {
	if c.Telemetry == nil {
		return
	}
	if err := c.Telemetry.Close(); err != nil {
		c.Logger.Warn(fmt.Sprintf("failed to flush progress: %v", err))
	}
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pipeline.NodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			p, err := graft.Dep[*pipeline.Pipeline](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[ports.SettingsLoader](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(p, loader, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	tel, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:       a,
		Logger:    log,
		Telemetry: tel,
	}, nil
}
