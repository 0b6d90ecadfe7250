package repo

import (
	"fmt"

	"github.com/beka-birhanu/vinom-wumpus/config"
	"github.com/beka-birhanu/vinom-wumpus/service/i"
	"go.mongodb.org/mongo-driver/mongo"
)

const runsCollection = "runs"

// NewStore picks the run repository for the configured backend.
// client may be nil unless kind is config.StoreMongo.
func NewStore(kind string, client *mongo.Client, dbName string) (i.RunRepo, error) {
	switch kind {
	case "", config.StoreMemory:
		return NewMemoryRunRepo(), nil
	case config.StoreMongo:
		if client == nil {
			return nil, fmt.Errorf("mongo store requires a client")
		}
		return NewRunRepo(client, dbName, runsCollection), nil
	default:
		return nil, fmt.Errorf("unsupported store backend: %s", kind)
	}
}
