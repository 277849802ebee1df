package booking

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

func bookingRows() *sqlmock.Rows {
	return sqlmock.NewRows(bookingColumns)
}

var (
	jun1 = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	jun3 = time.Date(2025, 6, 3, 10, 0, 0, 0, time.UTC)
)

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newRepo(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`INSERT INTO bookings \(owner_id,caretaker_id,service_id,pet_id,start_at,end_at,status,total_price\)`).
		WithArgs(int64(1), int64(2), int64(3), int64(4), jun1, jun3, "pending", 75.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(10), now, now))

	b, err := repo.Create(context.Background(), &domain.Booking{
		OwnerID:     1,
		CaretakerID: 2,
		ServiceID:   3,
		PetID:       4,
		Start:       jun1,
		End:         jun3,
		Status:      domain.StatusPending,
		TotalPrice:  75,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(10), b.ID)
	assert.Equal(t, now, b.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1$`).
			WithArgs(int64(10)).
			WillReturnRows(bookingRows().AddRow(int64(10), int64(1), int64(2), int64(3), int64(4), jun1, jun3, "accepted", 75.0, jun1, jun1))

		b, err := repo.GetByID(context.Background(), 10)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, b.Status)
		assert.Equal(t, jun3, b.End)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1`).
			WithArgs(int64(99)).
			WillReturnError(sql.ErrNoRows)

		_, err := repo.GetByID(context.Background(), 99)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("locks row inside transaction", func(t *testing.T) {
		repo, db, mock := newRepo(t)
		mock.ExpectBegin()
		mock.ExpectQuery(`SELECT .+ FROM bookings WHERE id = \$1 FOR UPDATE`).
			WithArgs(int64(10)).
			WillReturnRows(bookingRows().AddRow(int64(10), int64(1), int64(2), int64(3), int64(4), jun1, jun3, "pending", 75.0, jun1, jun1))
		mock.ExpectCommit()

		tx, err := db.BeginTx(context.Background(), nil)
		require.NoError(t, err)

		_, err = repo.GetByID(dbmetrics.WithTx(context.Background(), tx), 10)
		require.NoError(t, err)
		require.NoError(t, tx.Commit())
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_GetActiveOverlapping(t *testing.T) {
	repo, _, mock := newRepo(t)

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE caretaker_id = \$1 AND status IN \(\$2,\$3\) AND start_at < \$4 AND end_at > \$5 ORDER BY start_at ASC`).
		WithArgs(int64(2), "pending", "accepted", jun3, jun1).
		WillReturnRows(bookingRows().
			AddRow(int64(1), int64(7), int64(2), int64(3), int64(4), jun1, jun3, "pending", 75.0, jun1, jun1).
			AddRow(int64(2), int64(8), int64(2), int64(3), int64(5), jun1, jun3, "accepted", 75.0, jun1, jun1))

	bookings, err := repo.GetActiveOverlapping(context.Background(), 2, domain.Interval{Start: jun1, End: jun3})
	require.NoError(t, err)
	assert.Len(t, bookings, 2)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByParticipant(t *testing.T) {
	repo, _, mock := newRepo(t)
	status := domain.StatusPending

	mock.ExpectQuery(`SELECT .+ FROM bookings WHERE \(owner_id = \$1 OR caretaker_id = \$2\) AND status = \$3 ORDER BY start_at ASC, id ASC`).
		WithArgs(int64(7), int64(7), "pending").
		WillReturnRows(bookingRows())

	bookings, err := repo.GetByParticipant(context.Background(), 7, &status)
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NotNil(t, bookings)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCaretakerWithFilter(t *testing.T) {
	t.Run("active only by default", func(t *testing.T) {
		repo, _, mock := newRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM bookings WHERE caretaker_id = \$1 AND status IN \(\$2,\$3\) ORDER BY start_at ASC, id ASC`).
			WithArgs(int64(2), "pending", "accepted").
			WillReturnRows(bookingRows().
				AddRow(int64(1), int64(7), int64(2), int64(3), int64(4), jun1, jun3, "accepted", 75.0, jun1, jun1))

		bookings, err := repo.GetByCaretakerWithFilter(context.Background(), domain.CaretakerBookingsFilter{CaretakerID: 2})
		require.NoError(t, err)
		require.Len(t, bookings, 1)
		assert.Equal(t, domain.StatusAccepted, bookings[0].Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("status and day window", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		status := domain.StatusCompleted
		from := time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC)
		to := from.AddDate(0, 0, 1)

		mock.ExpectQuery(`SELECT .+ FROM bookings WHERE caretaker_id = \$1 AND status = \$2 AND start_at < \$3 AND end_at > \$4 ORDER BY start_at ASC, id ASC`).
			WithArgs(int64(2), "completed", to, from).
			WillReturnRows(bookingRows())

		bookings, err := repo.GetByCaretakerWithFilter(context.Background(), domain.CaretakerBookingsFilter{
			CaretakerID: 2,
			Status:      &status,
			From:        &from,
			To:          &to,
		})
		require.NoError(t, err)
		assert.Empty(t, bookings)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("include inactive", func(t *testing.T) {
		repo, _, mock := newRepo(t)

		mock.ExpectQuery(`SELECT .+ FROM bookings WHERE caretaker_id = \$1 ORDER BY start_at ASC, id ASC`).
			WithArgs(int64(2)).
			WillReturnRows(bookingRows())

		_, err := repo.GetByCaretakerWithFilter(context.Background(), domain.CaretakerBookingsFilter{
			CaretakerID:     2,
			IncludeInactive: true,
		})
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	t.Run("transition applied", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectQuery(`UPDATE bookings SET status = \$1, updated_at = NOW\(\) WHERE id = \$2 AND status = \$3 RETURNING`).
			WithArgs("accepted", int64(10), "pending").
			WillReturnRows(bookingRows().AddRow(int64(10), int64(1), int64(2), int64(3), int64(4), jun1, jun3, "accepted", 75.0, jun1, jun1))

		b, err := repo.UpdateStatus(context.Background(), 10, domain.StatusPending, domain.StatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusAccepted, b.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("status changed concurrently", func(t *testing.T) {
		repo, _, mock := newRepo(t)
		mock.ExpectQuery(`UPDATE bookings`).
			WillReturnRows(bookingRows())

		_, err := repo.UpdateStatus(context.Background(), 10, domain.StatusPending, domain.StatusAccepted)
		assert.ErrorIs(t, err, ErrStatusConflict)
	})
}
