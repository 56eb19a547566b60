package manifest

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/macroscope/internal/adapters/logger"
	"go.trai.ch/macroscope/internal/adapters/telemetry"
	"go.trai.ch/macroscope/internal/core/ports"
)

// NodeID is the unique identifier for the manifest cache Graft node.
const NodeID graft.ID = "adapter.manifest_cache"

func init() {
	graft.Register(graft.Node[ports.ManifestSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (ports.ManifestSource, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(NewFileLoader(""), log, tracer), nil
		},
	})
}
