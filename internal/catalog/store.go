package catalog

import "context"

// Store supplies the canonical game list. List order is the display
// order and is stable across calls.
type Store interface {
	List(ctx context.Context) ([]Game, error)
	Get(ctx context.Context, id string) (Game, bool, error)
	Ping(ctx context.Context) error
}
