package ledger

import (
	"context"
	"time"
)

// Client reads from a ledger node.
type Client interface {
	// Query runs an application query and returns the raw response value.
	Query(ctx context.Context, path string, data []byte) ([]byte, error)
	Status(ctx context.Context) (*Status, error)
	Genesis(ctx context.Context) (*Genesis, error)
}

type Status struct {
	LatestBlockHeight uint64
	LatestBlockTime   time.Time
}

type Genesis struct {
	GenesisTime time.Time
	ChainID     string
}
