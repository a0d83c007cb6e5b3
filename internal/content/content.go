// Package content loads the home page's server-fetched sections: hero
// videos, the featured-games carousel, and the contact card.
package content

import (
	"context"
	"time"
)

type HeroVideo struct {
	ID           int64     `json:"id"`
	Title        *string   `json:"title,omitempty"`
	VideoURL     string    `json:"video_url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type FeaturedGame struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	CoverImageURL *string    `json:"cover_image_url,omitempty"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	LinkURL       *string    `json:"link_url,omitempty"`
	IsActive      bool       `json:"is_active"`
	CreatedAt     time.Time  `json:"created_at"`
}

type ContactInfo struct {
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	WorkingHours string `json:"working_hours"`
	ResponseNote string `json:"response_note"`
}

// Source is the remote content backend. Each method returns its full
// result set or an error; the loader decides what a failure means.
type Source interface {
	HeroVideos(ctx context.Context) ([]HeroVideo, error)
	FeaturedGames(ctx context.Context) ([]FeaturedGame, error)
	ContactInfo(ctx context.Context) (*ContactInfo, error)
	Ping(ctx context.Context) error
}

// HomeContent is everything the home page needs in one shot.
type HomeContent struct {
	Hero    []HeroVideo    `json:"hero"`
	Games   []FeaturedGame `json:"games"`
	Contact *ContactInfo   `json:"contact"`
}
