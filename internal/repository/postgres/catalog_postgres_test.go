package postgres

import (
	"context"
	"database/sql"
	"testing"

	"cinesport/internal/model"
	"cinesport/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSportPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewSportPostgres(db)
	ctx := context.Background()

	t.Run("list", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, name, icon_url, photo_url FROM sports ORDER BY name").
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "icon_url", "photo_url"}).
				AddRow(int64(1), "Futsal", "", "").
				AddRow(int64(2), "Padel", "/i.png", ""))

		items, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Len(t, items, 2)
		assert.Equal(t, "Padel", items[1].Name)
	})

	t.Run("update missing", func(t *testing.T) {
		mock.ExpectQuery("UPDATE sports").
			WithArgs(int64(9), "Golf", "", "").
			WillReturnError(sql.ErrNoRows)

		out, err := repo.Update(ctx, &model.Sport{ID: 9, Name: "Golf"})
		assert.Nil(t, out)
		assert.ErrorIs(t, err, sql.ErrNoRows)
	})

	t.Run("delete referenced", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM sports").
			WithArgs(int64(1)).
			WillReturnError(&pgconn.PgError{Code: "23503"})

		assert.ErrorIs(t, repo.Delete(ctx, 1), repository.ErrInUse)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationPostgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewLocationPostgres(db)
	ctx := context.Background()

	t.Run("create duplicate", func(t *testing.T) {
		mock.ExpectQuery("INSERT INTO locations").
			WithArgs("Porto").
			WillReturnError(&pgconn.PgError{Code: "23505"})

		out, err := repo.Create(ctx, &model.Location{Name: "Porto"})
		assert.Nil(t, out)
		assert.ErrorIs(t, err, repository.ErrConflict)
	})

	t.Run("delete missing", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM locations").
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, 5), sql.ErrNoRows)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
