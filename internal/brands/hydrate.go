package brands

import (
	"context"

	"go.uber.org/zap"
)

// Fetcher loads the featured brands from the content backend.
type Fetcher interface {
	FetchBrands(ctx context.Context) ([]Brand, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context) ([]Brand, error)

func (f FetcherFunc) FetchBrands(ctx context.Context) ([]Brand, error) { return f(ctx) }

// Hydrate runs the one-shot startup fetch into store. A fetch failure is
// logged and leaves the store empty; readers never see the error.
func Hydrate(ctx context.Context, store *Store, f Fetcher, log *zap.Logger) {
	list, err := f.FetchBrands(ctx)
	if err != nil {
		log.Error("fetch brands failed", zap.Error(err))
		store.Set(nil)
		return
	}
	store.Set(list)
	log.Info("brands hydrated", zap.Int("count", len(list)))
}
