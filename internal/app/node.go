package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/macroscope/internal/adapters/config"
	"go.trai.ch/macroscope/internal/adapters/logger"
	"go.trai.ch/macroscope/internal/adapters/manifest"
	"go.trai.ch/macroscope/internal/adapters/telemetry"
	"go.trai.ch/macroscope/internal/core/ports"
)

// NodeID is the unique identifier for the application components Graft node.
const NodeID graft.ID = "app.components"

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, manifest.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Components, error) {
			configLoader, err := graft.Dep[ports.ConfigLoader](ctx)
			if err != nil {
				return nil, err
			}
			manifests, err := graft.Dep[ports.ManifestSource](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{
				App:    New(configLoader, manifests, log, tracer),
				Logger: log,
			}, nil
		},
	})
}
