package catalog

import (
	"reflect"
	"testing"
)

func testGames() []Game {
	return []Game{
		{
			ID:        "a",
			Title:     "Dungeon Saga",
			Genres:    []string{"RPG", "Adventure"},
			Platforms: []string{"PC"},
			Tags:      []string{"Single Player"},
			Status:    StatusAvailable,
		},
		{
			ID:        "b",
			Title:     "Arena Clash",
			Genres:    []string{"MOBA"},
			Platforms: []string{"PC", "Mobile"},
			Tags:      []string{"Competitive"},
			Status:    StatusAvailable,
		},
	}
}

func ids(games []Game) []string {
	out := make([]string, 0, len(games))
	for _, g := range games {
		out = append(out, g.ID)
	}
	return out
}

func TestFilter_Identity(t *testing.T) {
	games := testGames()
	got := Filter(games, NewFilterState())
	if !reflect.DeepEqual(got, games) {
		t.Fatalf("identity filter changed the list: %v", ids(got))
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	got := Filter(nil, FilterState{Query: "anything", Genre: "RPG", Platform: "PC"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %v", ids(got))
	}
}

func TestFilter_Scenarios(t *testing.T) {
	games := testGames()

	cases := []struct {
		name  string
		state FilterState
		want  []string
	}{
		{"genre exact", FilterState{Genre: "RPG", Platform: All}, []string{"a"}},
		{"platform exact", FilterState{Genre: All, Platform: "Mobile"}, []string{"b"}},
		{"query matches genre", FilterState{Query: "moba", Genre: All, Platform: All}, []string{"b"}},
		{"unknown genre", FilterState{Genre: "Strategy", Platform: All}, nil},
		{"impossible combination", FilterState{Genre: "MOBA", Platform: "PC"}, []string{"b"}},
		{"genre and wrong platform", FilterState{Genre: "RPG", Platform: "Mobile"}, nil},
		{"query substring mid-word", FilterState{Query: "saga", Genre: All, Platform: All}, []string{"a"}},
		{"query trimmed", FilterState{Query: "  arena  ", Genre: All, Platform: All}, []string{"b"}},
		{"genre is case sensitive", FilterState{Genre: "rpg", Platform: All}, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(Filter(games, tc.state))
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFilterState_IsZero(t *testing.T) {
	if !NewFilterState().IsZero() {
		t.Fatalf("fresh state should be zero")
	}
	if (FilterState{Query: "   "}).IsZero() == false {
		t.Fatalf("whitespace query should still be zero")
	}
	if (FilterState{Genre: "RPG", Platform: All}).IsZero() {
		t.Fatalf("constrained state reported zero")
	}
}

func TestFilter_CaseInsensitiveQuery(t *testing.T) {
	games := testGames()

	upper := Filter(games, FilterState{Query: "RPG", Genre: All, Platform: All})
	lower := Filter(games, FilterState{Query: "rpg", Genre: All, Platform: All})
	if !reflect.DeepEqual(ids(upper), ids(lower)) {
		t.Fatalf("case changed results: %v vs %v", ids(upper), ids(lower))
	}
}

func TestFilter_Idempotent(t *testing.T) {
	games := testGames()
	state := FilterState{Query: "a", Genre: All, Platform: "PC"}

	once := Filter(games, state)
	twice := Filter(once, state)
	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("re-filtering changed the result: %v vs %v", ids(once), ids(twice))
	}
}

func TestFilter_PreservesOrderAndInput(t *testing.T) {
	games := testGames()
	before := make([]Game, len(games))
	copy(before, games)

	got := Filter(games, FilterState{Platform: "PC", Genre: All})
	if want := []string{"a", "b"}; !reflect.DeepEqual(ids(got), want) {
		t.Fatalf("order not preserved: %v", ids(got))
	}
	if !reflect.DeepEqual(games, before) {
		t.Fatalf("input slice was mutated")
	}
}

func TestFacets(t *testing.T) {
	games := testGames()

	genres := Genres(games)
	want := []string{"all", "RPG", "Adventure", "MOBA"}
	if !reflect.DeepEqual(genres, want) {
		t.Fatalf("genres = %v, want %v", genres, want)
	}

	platforms := Platforms(games)
	wantP := []string{"all", "PC", "Mobile"}
	if !reflect.DeepEqual(platforms, wantP) {
		t.Fatalf("platforms = %v, want %v", platforms, wantP)
	}
}

func TestFacets_NoDuplicates(t *testing.T) {
	games := append(testGames(), Game{
		ID:        "c",
		Genres:    []string{"RPG", "MOBA"},
		Platforms: []string{"PC"},
	})

	seen := map[string]int{}
	for _, g := range Genres(games) {
		seen[g]++
	}
	for v, n := range seen {
		if n > 1 {
			t.Fatalf("facet %q appears %d times", v, n)
		}
	}
	if Genres(games)[0] != All {
		t.Fatalf("sentinel not first: %v", Genres(games))
	}
}

func TestToggleWishlist(t *testing.T) {
	empty := WishlistSet{}

	added := ToggleWishlist(empty, "a")
	if !added.Has("a") {
		t.Fatalf("expected a in set after toggle")
	}
	if empty.Has("a") {
		t.Fatalf("input set was mutated")
	}

	removed := ToggleWishlist(added, "a")
	if removed.Has("a") {
		t.Fatalf("expected a removed after second toggle")
	}
	if len(removed) != len(empty) {
		t.Fatalf("double toggle is not the identity: %v", removed)
	}

	// Ids outside the catalog are allowed; the set is opaque.
	foreign := ToggleWishlist(empty, "not-a-game")
	if !foreign.Has("not-a-game") {
		t.Fatalf("foreign id rejected")
	}
}

func TestStatusLabel(t *testing.T) {
	cases := map[Status]string{
		StatusAvailable:  "Available",
		StatusComingSoon: "Coming Soon",
		StatusPreOrder:   "Pre-Order",
		Status("beta"):   "Unknown",
	}
	for s, want := range cases {
		if got := s.Label(); got != want {
			t.Errorf("Label(%q) = %q, want %q", s, got, want)
		}
	}
}

func TestFormatPrice(t *testing.T) {
	if got := FormatPrice(0); got != "Free" {
		t.Fatalf("FormatPrice(0) = %q", got)
	}
	if got := FormatPrice(29.99); got != "$29.99" {
		t.Fatalf("FormatPrice(29.99) = %q", got)
	}
}
