package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rerun/internal/core/ports"
)

const (
	// WalkerNodeID is the unique identifier for the walker Graft node.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ExpanderNodeID is the unique identifier for the path expander Graft node.
	ExpanderNodeID graft.ID = "adapter.fs.expander"
	// ToucherNodeID is the unique identifier for the toucher Graft node.
	ToucherNodeID graft.ID = "adapter.fs.toucher"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.PathExpander]{
		ID:        ExpanderNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.PathExpander, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewExpander(walker), nil
		},
	})

	graft.Register(graft.Node[ports.Toucher]{
		ID:        ToucherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Toucher, error) {
			return NewToucher(), nil
		},
	})
}
