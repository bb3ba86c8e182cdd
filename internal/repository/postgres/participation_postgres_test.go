package postgres

import (
	"context"
	"testing"
	"time"

	"cinesport/internal/model"
	"cinesport/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParticipationPostgres_CreateConfirmed(t *testing.T) {
	p := &model.Participation{EventID: "e-1", UserID: "u-2"}

	t.Run("seat available", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT 1 FROM events WHERE id = \\$1 FOR UPDATE").
			WithArgs("e-1").
			WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM participations").
			WithArgs("e-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
		mock.ExpectQuery("INSERT INTO participations").
			WithArgs("e-1", "u-2", "", true, false, false).
			WillReturnRows(sqlmock.NewRows([]string{"id", "joined_at"}).AddRow("p-1", time.Now()))
		mock.ExpectCommit()

		out, err := NewParticipationPostgres(db).CreateConfirmed(context.Background(), p, 4)
		require.NoError(t, err)
		assert.Equal(t, "p-1", out.ID)
		assert.True(t, out.Confirmed)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("event full", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT 1 FROM events").
			WithArgs("e-1").
			WillReturnRows(sqlmock.NewRows([]string{"one"}).AddRow(1))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM participations").
			WithArgs("e-1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
		mock.ExpectRollback()

		out, err := NewParticipationPostgres(db).CreateConfirmed(context.Background(), p, 4)
		assert.Nil(t, out)
		assert.ErrorIs(t, err, repository.ErrCapacityReached)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestParticipationPostgres_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("INSERT INTO participations").
		WithArgs("e-1", "u-2", "", false, true, true).
		WillReturnError(&pgconn.PgError{Code: "23505"})

	out, err := NewParticipationPostgres(db).Create(context.Background(), &model.Participation{
		EventID: "e-1", UserID: "u-2", Invited: true, PendingRequest: true,
	})
	assert.Nil(t, out)
	assert.ErrorIs(t, err, repository.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestParticipationPostgres_ListByEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	cols := []string{"id", "event_id", "user_id", "name", "participant_name", "confirmed", "invited", "pending", "external", "joined_at"}
	mock.ExpectQuery("SELECT p.id").
		WithArgs("e-1").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow("p-1", "e-1", "u-1", "Ana", "", true, false, false, false, time.Now()).
			AddRow("p-2", "e-1", nil, "", "Rui", true, false, false, true, time.Now()))

	items, err := NewParticipationPostgres(db).ListByEvent(context.Background(), "e-1")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Ana", items[0].UserName)
	assert.Equal(t, "", items[1].UserID)
	assert.True(t, items[1].External)
	assert.NoError(t, mock.ExpectationsWereMet())
}
