package content

import (
	"context"
	"database/sql"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second

	featuredGamesLimit = 10
)

// PostgresSource reads the website_content tables. Query shapes mirror
// the upstream contract: active hero videos oldest-first, active
// featured games newest-first capped at ten, a single contact row.
type PostgresSource struct {
	db *sql.DB
}

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{db: db}
}

func (s *PostgresSource) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return s.db.PingContext(ctx)
}

func (s *PostgresSource) HeroVideos(ctx context.Context) ([]HeroVideo, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, video_url, thumbnail_url, is_active, created_at
		FROM hero_videos
		WHERE is_active = true
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]HeroVideo, 0, 4)
	for rows.Next() {
		var v HeroVideo
		if err := rows.Scan(&v.ID, &v.Title, &v.VideoURL, &v.ThumbnailURL, &v.IsActive, &v.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *PostgresSource) FeaturedGames(ctx context.Context) ([]FeaturedGame, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, cover_image_url, release_date, link_url, is_active, created_at
		FROM featured_games
		WHERE is_active = true
		ORDER BY created_at DESC
		LIMIT $1
	`, featuredGamesLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]FeaturedGame, 0, featuredGamesLimit)
	for rows.Next() {
		var g FeaturedGame
		if err := rows.Scan(&g.ID, &g.Title, &g.Description, &g.CoverImageURL, &g.ReleaseDate, &g.LinkURL, &g.IsActive, &g.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *PostgresSource) ContactInfo(ctx context.Context) (*ContactInfo, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var c ContactInfo
	err := s.db.QueryRowContext(ctx, `
		SELECT email, phone, address, working_hours, response_note
		FROM contact_info
		LIMIT 1
	`).Scan(&c.Email, &c.Phone, &c.Address, &c.WorkingHours, &c.ResponseNote)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}
