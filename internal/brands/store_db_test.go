package brands

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresFetcher(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "name", "description", "logo_url", "color"}).
		AddRow(1, "Unity", "Engine partner", "/images/brands/unity.svg", "from-gray-500 to-slate-600").
		AddRow(2, "Xbox", "Game Pass releases", "/images/brands/xbox.svg", "from-green-500 to-emerald-600")

	mock.ExpectQuery("(?s)SELECT(.+)FROM featured_brands(.+)ORDER BY id ASC").WillReturnRows(rows)

	got, err := NewPostgresFetcher(db).FetchBrands(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, Brand{
		ID:          1,
		Name:        "Unity",
		Description: "Engine partner",
		LogoURL:     "/images/brands/unity.svg",
		Color:       "from-gray-500 to-slate-600",
	}, got[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresFetcher_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("(?s)SELECT(.+)FROM featured_brands").WillReturnError(assert.AnError)

	_, err = NewPostgresFetcher(db).FetchBrands(context.Background())
	assert.Error(t, err)
}
