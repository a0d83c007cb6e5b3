package brands

import (
	"context"
	"database/sql"
	"time"
)

const queryTimeout = 3 * time.Second

// PostgresFetcher reads featured_brands in id order, matching the
// upstream display contract.
type PostgresFetcher struct {
	db *sql.DB
}

func NewPostgresFetcher(db *sql.DB) *PostgresFetcher {
	return &PostgresFetcher{db: db}
}

func (f *PostgresFetcher) FetchBrands(ctx context.Context) ([]Brand, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := f.db.QueryContext(ctx, `
		SELECT id, name, description, logo_url, color
		FROM featured_brands
		ORDER BY id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Brand, 0, 8)
	for rows.Next() {
		var b Brand
		if err := rows.Scan(&b.ID, &b.Name, &b.Description, &b.LogoURL, &b.Color); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
