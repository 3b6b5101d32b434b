package instance

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the instance producer Graft node.
const NodeID graft.ID = "adapter.producer.instance"

func init() {
	graft.Register(graft.Node[*Producer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Producer, error) {
			return New(), nil
		},
	})
}
