package catalog

import "fmt"

// Status is a game's availability in the store listing. The set below is
// what the site renders today; unrecognized values are carried through
// untouched and only the display label degrades.
type Status string

const (
	StatusAvailable  Status = "available"
	StatusComingSoon Status = "coming-soon"
	StatusPreOrder   Status = "pre-order"
)

// Label returns the badge text shown for the status.
func (s Status) Label() string {
	switch s {
	case StatusAvailable:
		return "Available"
	case StatusComingSoon:
		return "Coming Soon"
	case StatusPreOrder:
		return "Pre-Order"
	default:
		return "Unknown"
	}
}

// Game is one catalog entry. The canonical list is fixed data loaded
// once; nothing in the service mutates it.
type Game struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ShortDescription string   `json:"short_description"`
	Image            string   `json:"image"`
	Price            float64  `json:"price"`
	OriginalPrice    *float64 `json:"original_price,omitempty"`
	Rating           float64  `json:"rating"`
	ReviewCount      int      `json:"review_count"`
	Players          string   `json:"players"`
	ReleaseDate      string   `json:"release_date"`
	Platforms        []string `json:"platforms"`
	Genres           []string `json:"genres"`
	Features         []string `json:"features"`
	Tags             []string `json:"tags"`
	Status           Status   `json:"status"`
	// IsOnSale is a display flag and deliberately not derived from
	// OriginalPrice being set.
	IsFeatured bool   `json:"is_featured"`
	IsOnSale   bool   `json:"is_on_sale"`
	Color      string `json:"color"`
}

// FormatPrice renders a price for display; zero means free to play.
func FormatPrice(p float64) string {
	if p == 0 {
		return "Free"
	}
	return fmt.Sprintf("$%.2f", p)
}
