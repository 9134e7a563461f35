package interfaces

import (
	"context"

	"github.com/ternarybob/responsa/internal/models"
)

// CollectionService runs scheduled topic collection into document storage.
type CollectionService interface {
	// Start begins the collection schedule. No-op when collection is
	// disabled.
	Start() error

	// Stop halts the schedule and waits for a running collection to finish.
	Stop()

	// CollectNow runs a full collection pass immediately. Returns an error
	// when a pass is already running.
	CollectNow(ctx context.Context) error

	// CollectTopic collects documents for a single topic immediately.
	CollectTopic(ctx context.Context, topic string) (int, error)

	// Status returns a snapshot of the collector state.
	Status() models.CollectionStatus
}
