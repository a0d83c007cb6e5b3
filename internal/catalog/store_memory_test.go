package catalog

import (
	"context"
	"reflect"
	"testing"
)

func TestMemStore_ListStable(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	first, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(first) == 0 {
		t.Fatalf("empty catalog")
	}

	// Callers may do whatever they want with the returned slice.
	first[0].Title = "clobbered"

	second, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if second[0].Title == "clobbered" {
		t.Fatalf("List handed out the canonical slice")
	}

	third, _ := s.List(ctx)
	if !reflect.DeepEqual(second, third) {
		t.Fatalf("List is not deterministic")
	}
}

func TestMemStore_Get(t *testing.T) {
	s := NewMemStore()
	ctx := context.Background()

	g, ok, err := s.Get(ctx, "aether-legends")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if g.Price != 0 {
		t.Fatalf("aether-legends should be free, price=%v", g.Price)
	}

	_, ok, err = s.Get(ctx, "no-such-game")
	if err != nil {
		t.Fatalf("Get miss: %v", err)
	}
	if ok {
		t.Fatalf("expected miss")
	}
}

func TestMemStore_SeedInvariants(t *testing.T) {
	games, _ := NewMemStore().List(context.Background())

	seen := map[string]bool{}
	for _, g := range games {
		if g.ID == "" || g.Title == "" || g.Description == "" || g.ShortDescription == "" {
			t.Errorf("game %q has empty required fields", g.ID)
		}
		if seen[g.ID] {
			t.Errorf("duplicate id %q", g.ID)
		}
		seen[g.ID] = true

		if g.Price < 0 {
			t.Errorf("game %q has negative price", g.ID)
		}
		if g.OriginalPrice != nil && *g.OriginalPrice < g.Price {
			t.Errorf("game %q original price below price", g.ID)
		}
		if g.Rating < 0 || g.Rating > 5 {
			t.Errorf("game %q rating out of range: %v", g.ID, g.Rating)
		}
		if len(g.Genres) == 0 || len(g.Platforms) == 0 {
			t.Errorf("game %q missing genres or platforms", g.ID)
		}
	}
}
