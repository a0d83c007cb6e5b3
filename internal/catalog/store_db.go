package catalog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

// PostgresStore reads the catalog from the games table. The list
// columns (platforms, genres, features, tags) are jsonb.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Ping(ctx context.Context) error {
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return s.db.PingContext(ctx)
	})
}

const gameColumns = `
	id, title, description, short_description, image,
	price, original_price, rating, review_count, players, release_date,
	platforms, genres, features, tags,
	status, is_featured, is_on_sale, color
`

func (s *PostgresStore) List(ctx context.Context) ([]Game, error) {
	var out []Game

	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		rows, err := s.db.QueryContext(ctx, `
			SELECT `+gameColumns+`
			FROM games
			ORDER BY position ASC
		`)
		if err != nil {
			return err
		}
		defer rows.Close()

		out = make([]Game, 0, 16)
		for rows.Next() {
			g, err := scanGame(rows)
			if err != nil {
				return err
			}
			out = append(out, g)
		}
		return rows.Err()
	})

	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Game, bool, error) {
	var (
		g   Game
		err error
	)

	err = withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		row := s.db.QueryRowContext(ctx, `
			SELECT `+gameColumns+`
			FROM games
			WHERE id = $1
		`, id)
		g, err = scanGame(row)
		return err
	})

	if err == sql.ErrNoRows {
		return Game{}, false, nil
	}
	if err != nil {
		return Game{}, false, err
	}
	return g, true, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGame(row rowScanner) (Game, error) {
	var (
		g             Game
		originalPrice sql.NullFloat64
		platforms     []byte
		genres        []byte
		features      []byte
		tags          []byte
	)

	err := row.Scan(
		&g.ID, &g.Title, &g.Description, &g.ShortDescription, &g.Image,
		&g.Price, &originalPrice, &g.Rating, &g.ReviewCount, &g.Players, &g.ReleaseDate,
		&platforms, &genres, &features, &tags,
		&g.Status, &g.IsFeatured, &g.IsOnSale, &g.Color,
	)
	if err != nil {
		return Game{}, err
	}

	if originalPrice.Valid {
		g.OriginalPrice = &originalPrice.Float64
	}

	for _, col := range []struct {
		name string
		raw  []byte
		dst  *[]string
	}{
		{"platforms", platforms, &g.Platforms},
		{"genres", genres, &g.Genres},
		{"features", features, &g.Features},
		{"tags", tags, &g.Tags},
	} {
		if len(col.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(col.raw, col.dst); err != nil {
			return Game{}, fmt.Errorf("decode %s for game %s: %w", col.name, g.ID, err)
		}
	}

	return g, nil
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}
