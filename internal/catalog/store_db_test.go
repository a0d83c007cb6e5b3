package catalog

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gameCols = []string{
	"id", "title", "description", "short_description", "image",
	"price", "original_price", "rating", "review_count", "players", "release_date",
	"platforms", "genres", "features", "tags",
	"status", "is_featured", "is_on_sale", "color",
}

func TestPostgresStore_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(gameCols).
		AddRow(
			"chrono-nexus", "Chrono Nexus", "desc", "short", "/img.jpg",
			29.99, 39.99, 4.8, 1250, "500K+", "2023-03-15",
			[]byte(`["PC","PS5"]`), []byte(`["Action RPG"]`), []byte(`["Open World"]`), []byte(`["RPG"]`),
			"available", true, true, "from-blue-500 to-cyan-500",
		).
		AddRow(
			"nebula-drift", "Nebula Drift", "desc", "short", "/img.jpg",
			24.99, nil, 4.6, 890, "300K+", "2023-07-22",
			[]byte(`["PC"]`), []byte(`["Space Sim"]`), nil, []byte(`["Space"]`),
			"available", false, false, "",
		)

	mock.ExpectQuery("(?s)SELECT(.+)FROM games(.+)ORDER BY position ASC").WillReturnRows(rows)

	games, err := NewPostgresStore(db).List(context.Background())
	require.NoError(t, err)
	require.Len(t, games, 2)

	assert.Equal(t, "chrono-nexus", games[0].ID)
	require.NotNil(t, games[0].OriginalPrice)
	assert.InDelta(t, 39.99, *games[0].OriginalPrice, 0.001)
	assert.Equal(t, []string{"PC", "PS5"}, games[0].Platforms)
	assert.Equal(t, StatusAvailable, games[0].Status)

	assert.Nil(t, games[1].OriginalPrice)
	assert.Nil(t, games[1].Features)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_GetMiss(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("(?s)SELECT(.+)FROM games(.+)WHERE id").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(gameCols))

	_, ok, err := NewPostgresStore(db).Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresStore_BadListColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows(gameCols).
		AddRow(
			"x", "X", "d", "s", "/i.jpg",
			1.0, nil, 1.0, 1, "1", "2024-01-01",
			[]byte(`not-json`), []byte(`[]`), []byte(`[]`), []byte(`[]`),
			"available", false, false, "",
		)
	mock.ExpectQuery("(?s)SELECT(.+)FROM games").WillReturnRows(rows)

	_, err = NewPostgresStore(db).List(context.Background())
	assert.ErrorContains(t, err, "decode platforms")
}
