package booking

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/barbershop-booking/internal/domain"
	"github.com/m04kA/barbershop-booking/pkg/dbmetrics"
)

func newMockRepo(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewRepository(db), db, mock
}

func bookingRow(mock sqlmock.Sqlmock) *sqlmock.Rows {
	now := time.Now()
	return mock.NewRows(bookingColumns).AddRow(
		int64(1), int64(10), int64(7), int64(3),
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		"10:00:00", "10:45:00",
		"confirmed", 30.0, "regular",
		nil, nil, nil, nil,
		now, now,
	)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(`SELECT .* FROM bookings WHERE id = \$1`).
		WithArgs(int64(1)).
		WillReturnRows(bookingRow(mock))

	b, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, int64(7), b.BarberID)
	assert.Equal(t, "10:00", b.StartTime.String())
	assert.Equal(t, "10:45", b.EndTime.String())
	assert.Equal(t, domain.StatusConfirmed, b.Status)
	assert.Equal(t, domain.PeriodRegular, b.TimePeriod)
	assert.Nil(t, b.RecurringSeriesID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(`FROM bookings`).WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRepository_GetByBarberWithFilter_LocksSingleDateInTx(t *testing.T) {
	repo, db, mock := newMockRepo(t)
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE barber_id = \$1 AND booking_date >= \$2 AND booking_date <= \$3 AND status <> \$4 ORDER BY start_time ASC FOR UPDATE`).
		WithArgs(int64(7), "2024-01-01", "2024-01-01", "cancelled").
		WillReturnRows(bookingRow(mock))

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	bookings, err := repo.GetByBarberWithFilter(ctx, domain.BarberBookingsFilter{
		BarberID:  7,
		StartDate: &date,
		EndDate:   &date,
	})
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByBarberWithFilter_LockSerializationFailure(t *testing.T) {
	repo, db, mock := newMockRepo(t)
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`FOR UPDATE`).
		WithArgs(int64(7), "2024-01-01", "2024-01-01", "cancelled").
		WillReturnError(&pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"})

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	_, err = repo.GetByBarberWithFilter(ctx, domain.BarberBookingsFilter{
		BarberID:  7,
		StartDate: &date,
		EndDate:   &date,
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByBarberWithFilter_NoLockOutsideTx(t *testing.T) {
	repo, _, mock := newMockRepo(t)
	status := domain.StatusCancelled

	mock.ExpectQuery(`WHERE barber_id = \$1 AND status = \$2 ORDER BY booking_date ASC, start_time ASC$`).
		WithArgs(int64(7), "cancelled").
		WillReturnRows(mock.NewRows(bookingColumns))

	bookings, err := repo.GetByBarberWithFilter(context.Background(), domain.BarberBookingsFilter{BarberID: 7, Status: &status})
	require.NoError(t, err)
	assert.Empty(t, bookings)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCustomerID(t *testing.T) {
	repo, _, mock := newMockRepo(t)
	status := domain.StatusConfirmed

	mock.ExpectQuery(`WHERE customer_id = \$1 AND status = \$2 ORDER BY booking_date DESC, start_time DESC`).
		WithArgs(int64(10), "confirmed").
		WillReturnRows(bookingRow(mock))

	bookings, err := repo.GetByCustomerID(context.Background(), 10, &status)
	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, int64(10), bookings[0].CustomerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetBySeriesID(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(`WHERE recurring_series_id = \$1 ORDER BY booking_date ASC`).
		WithArgs("0b9f5c1e-series").
		WillReturnRows(bookingRow(mock))

	bookings, err := repo.GetBySeriesID(context.Background(), "0b9f5c1e-series")
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_OverlapIsSlotNotAvailable(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectQuery(`INSERT INTO bookings`).
		WillReturnError(&pq.Error{Code: pqExclusionViolation, Message: "conflicting key value violates exclusion constraint"})

	_, err := repo.Create(context.Background(), &domain.Booking{
		BarberID:    7,
		BookingDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "10:30",
		Status:      domain.StatusPending,
	})
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := newMockRepo(t)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO bookings .* RETURNING id, created_at, updated_at`).
		WillReturnRows(mock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(55), now, now))

	b, err := repo.Create(context.Background(), &domain.Booking{BarberID: 7, StartTime: "10:00", EndTime: "10:30"})
	require.NoError(t, err)
	assert.Equal(t, int64(55), b.ID)
	assert.Equal(t, now, b.CreatedAt)
}

func TestRepository_Cancel_NotFound(t *testing.T) {
	repo, _, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE bookings SET status = \$1, cancellation_reason = \$2, cancelled_at = NOW\(\)`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Cancel(context.Background(), 99, nil)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}
