package catalog

import "strings"

// All is the sentinel facet value meaning "no constraint on this
// dimension".
const All = "all"

// FilterState is the store listing's full filter selection. It is a
// plain value with no identity: the view rebuilds it wholesale on every
// control change.
type FilterState struct {
	Query    string
	Genre    string
	Platform string
}

// NewFilterState returns the unconstrained selection.
func NewFilterState() FilterState {
	return FilterState{Genre: All, Platform: All}
}

// IsZero reports whether the state imposes no constraint.
func (s FilterState) IsZero() bool {
	return strings.TrimSpace(s.Query) == "" &&
		(s.Genre == "" || s.Genre == All) &&
		(s.Platform == "" || s.Platform == All)
}

// Filter returns the games matching state, preserving the relative order
// of items. The three predicates are ANDed; each matches everything at
// its sentinel or empty value. The input slice is never modified.
func Filter(items []Game, state FilterState) []Game {
	query := strings.ToLower(strings.TrimSpace(state.Query))
	out := make([]Game, 0, len(items))

	for _, g := range items {
		if query != "" && !matchesQuery(g, query) {
			continue
		}
		if constrained(state.Genre) && !containsExact(g.Genres, state.Genre) {
			continue
		}
		if constrained(state.Platform) && !containsExact(g.Platforms, state.Platform) {
			continue
		}
		out = append(out, g)
	}
	return out
}

// matchesQuery reports whether the lowercased query is a substring of
// the title, either description, any genre, or any tag. Substring, not
// token: "rpg" hits a tag "RPG" and a title containing "rpg" mid-word.
func matchesQuery(g Game, query string) bool {
	if strings.Contains(strings.ToLower(g.Title), query) ||
		strings.Contains(strings.ToLower(g.Description), query) ||
		strings.Contains(strings.ToLower(g.ShortDescription), query) {
		return true
	}
	for _, genre := range g.Genres {
		if strings.Contains(strings.ToLower(genre), query) {
			return true
		}
	}
	for _, tag := range g.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

func constrained(facet string) bool {
	return facet != "" && facet != All
}

// Facet membership is exact and case-sensitive, unlike query matching.
func containsExact(vals []string, want string) bool {
	for _, v := range vals {
		if v == want {
			return true
		}
	}
	return false
}

// Genres returns the distinct genre facets across items: the "all"
// sentinel first, then each genre in order of first occurrence.
func Genres(items []Game) []string {
	return facets(items, func(g Game) []string { return g.Genres })
}

// Platforms is the platform counterpart of Genres.
func Platforms(items []Game) []string {
	return facets(items, func(g Game) []string { return g.Platforms })
}

func facets(items []Game, pick func(Game) []string) []string {
	out := []string{All}
	seen := map[string]bool{All: true}

	for _, g := range items {
		for _, v := range pick(g) {
			if seen[v] {
				continue
			}
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

// WishlistSet holds the ids the visitor hearted this session. It is
// opaque to catalog membership and never persisted.
type WishlistSet map[string]bool

// Has reports wishlist membership.
func (s WishlistSet) Has(id string) bool { return s[id] }

// ToggleWishlist returns a copy of set with id added if absent, removed
// if present. The input is left untouched so callers can rely on
// reference inequality for change detection.
func ToggleWishlist(set WishlistSet, id string) WishlistSet {
	out := make(WishlistSet, len(set)+1)
	for k := range set {
		out[k] = true
	}
	if out[id] {
		delete(out, id)
	} else {
		out[id] = true
	}
	return out
}
