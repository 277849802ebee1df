package availability

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/pkg/dbmetrics"
)

func newRepo(t *testing.T) (*Repository, *dbmetrics.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db := dbmetrics.Wrap(sqlDB, nil, "")
	return NewRepository(db), db, mock
}

func TestRepository_GetByCaretakerID(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("decodes arrays and weekly pattern", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectQuery(`SELECT .+ FROM caretaker_availability WHERE caretaker_id = \$1`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(availabilityColumns).
				AddRow(int64(5), 3, "{2025-06-01,2025-06-02}", []byte(`{"sun":false}`), now, now))

		a, err := repo.GetByCaretakerID(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, 3, a.MaxPets)
		assert.Equal(t, []string{"2025-06-01", "2025-06-02"}, a.BlockedDates)
		assert.False(t, a.WeeklyOpen.IsOpen(time.Sunday))
		assert.True(t, a.WeeklyOpen.IsOpen(time.Monday))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectQuery(`SELECT .+ FROM caretaker_availability`).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByCaretakerID(context.Background(), 5)
		assert.ErrorIs(t, err, ErrAvailabilityNotFound)
	})
}

func TestRepository_LockByCaretakerID(t *testing.T) {
	t.Run("requires transaction", func(t *testing.T) {
		repo, _, _ := newRepo(t)
		_, err := repo.LockByCaretakerID(context.Background(), 5)
		assert.ErrorIs(t, err, ErrTransactionRequired)
	})

	t.Run("ensures row then locks it", func(t *testing.T) {
		repo, db, mock := newRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO caretaker_availability .+ ON CONFLICT \(caretaker_id\) DO NOTHING`).
			WithArgs(int64(5), domain.DefaultMaxPets, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(`SELECT .+ FROM caretaker_availability WHERE caretaker_id = \$1 FOR UPDATE`).
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows(availabilityColumns).
				AddRow(int64(5), 2, "{}", []byte(`{}`), time.Now(), time.Now()))
		mock.ExpectCommit()

		tx, err := db.BeginTx(context.Background(), nil)
		require.NoError(t, err)

		a, err := repo.LockByCaretakerID(dbmetrics.WithTx(context.Background(), tx), 5)
		require.NoError(t, err)
		assert.Equal(t, 2, a.Capacity())
		assert.Empty(t, a.BlockedDates)
		assert.Equal(t, domain.AllDaysOpen(), a.WeeklyOpen)

		require.NoError(t, tx.Commit())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Upsert(t *testing.T) {
	repo, _, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO caretaker_availability .+ ON CONFLICT \(caretaker_id\) DO UPDATE SET`).
		WithArgs(int64(5), 4, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	saved, err := repo.Upsert(context.Background(), &domain.Availability{
		CaretakerID: 5,
		MaxPets:     4,
		WeeklyOpen:  domain.AllDaysOpen(),
	})

	require.NoError(t, err)
	assert.Equal(t, []string{}, saved.BlockedDates)
	assert.Equal(t, now, saved.UpdatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}
