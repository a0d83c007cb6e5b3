package content

import (
	"context"
	"time"
)

// MemSource serves fixed home-page content when no database is
// configured.
type MemSource struct {
	hero    []HeroVideo
	games   []FeaturedGame
	contact ContactInfo
}

func str(s string) *string { return &s }

func NewMemSource() *MemSource {
	base := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	release := time.Date(2024, time.December, 1, 0, 0, 0, 0, time.UTC)

	return &MemSource{
		hero: []HeroVideo{
			{
				ID:           1,
				Title:        str("Studio Reel 2024"),
				VideoURL:     "/videos/hero/studio-reel.mp4",
				ThumbnailURL: str("/images/hero/studio-reel.jpg"),
				IsActive:     true,
				CreatedAt:    base,
			},
			{
				ID:        2,
				VideoURL:  "/videos/hero/gameplay-montage.mp4",
				IsActive:  true,
				CreatedAt: base.Add(24 * time.Hour),
			},
		},
		games: []FeaturedGame{
			{
				ID:            "echoes-of-tomorrow",
				Title:         "Echoes of Tomorrow",
				Description:   "Narrative-driven mystery where you unravel secrets in a haunted futuristic city.",
				CoverImageURL: str("/images/games/echoes-tomorrow.jpg"),
				ReleaseDate:   &release,
				LinkURL:       str("/games/echoes-of-tomorrow"),
				IsActive:      true,
				CreatedAt:     base.Add(48 * time.Hour),
			},
			{
				ID:            "shadow-protocol",
				Title:         "Shadow Protocol",
				Description:   "A tactical stealth game set in a cyberpunk future.",
				CoverImageURL: str("/images/games/shadow-protocol.jpg"),
				LinkURL:       str("/games/shadow-protocol"),
				IsActive:      true,
				CreatedAt:     base,
			},
		},
		contact: ContactInfo{
			Email:        "hello@studio.example",
			Phone:        "+1 (415) 555-0137",
			Address:      "123 Innovation Street, Tech District, San Francisco, CA 94103",
			WorkingHours: "Monday - Friday: 9:00 AM - 6:00 PM PST",
			ResponseNote: "We typically respond to all inquiries within 2-4 hours during business days",
		},
	}
}

func (s *MemSource) Ping(ctx context.Context) error { return nil }

func (s *MemSource) HeroVideos(ctx context.Context) ([]HeroVideo, error) {
	out := make([]HeroVideo, 0, len(s.hero))
	for _, v := range s.hero {
		if v.IsActive {
			out = append(out, v)
		}
	}
	return out, nil
}

func (s *MemSource) FeaturedGames(ctx context.Context) ([]FeaturedGame, error) {
	out := make([]FeaturedGame, 0, len(s.games))
	for _, g := range s.games {
		if g.IsActive {
			out = append(out, g)
		}
	}
	return out, nil
}

func (s *MemSource) ContactInfo(ctx context.Context) (*ContactInfo, error) {
	c := s.contact
	return &c, nil
}
