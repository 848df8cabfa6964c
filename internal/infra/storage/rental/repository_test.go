package rental

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

func rentalRows(t *testing.T) *sqlmock.Rows {
	t.Helper()

	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	created := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	return sqlmock.NewRows([]string{
		"id", "renter_id", "vehicle_id", "station_pickup_id", "station_return_id",
		"reservation_id", "scheduled_start_at", "scheduled_return_at",
		"actual_start_at", "actual_return_at", "status", "deposit_amount",
		"created_at", "updated_at",
	}).AddRow(
		int64(1), int64(10), int64(20), int64(3), nil,
		nil, start, nil,
		nil, nil, string(domain.RentalStatusBooked), int64(100000),
		created, created,
	)
}

func TestRepository_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectQuery("SELECT .+ FROM rentals WHERE id = ?").
			WithArgs(int64(1)).
			WillReturnRows(rentalRows(t))

		rental, err := repo.GetByID(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, int64(1), rental.ID)
		assert.Equal(t, int64(10), rental.RenterID)
		assert.Equal(t, domain.RentalStatusBooked, rental.Status)
		assert.Nil(t, rental.ActualStartAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectQuery("SELECT .+ FROM rentals WHERE id = ?").
			WithArgs(int64(404)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err = repo.GetByID(context.Background(), 404)
		assert.ErrorIs(t, err, ErrRentalNotFound)
	})
}

func TestRepository_GetActiveByVehicleID(t *testing.T) {
	t.Run("vehicle occupied", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectQuery("SELECT .+ FROM rentals WHERE vehicle_id = .+ AND status IN").
			WithArgs(int64(20), string(domain.RentalStatusBooked), string(domain.RentalStatusInUse)).
			WillReturnRows(rentalRows(t))

		rental, err := repo.GetActiveByVehicleID(context.Background(), 20)
		require.NoError(t, err)

		assert.Equal(t, int64(20), rental.VehicleID)
	})

	t.Run("vehicle free", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectQuery("SELECT .+ FROM rentals WHERE vehicle_id = .+ AND status IN").
			WithArgs(int64(20), string(domain.RentalStatusBooked), string(domain.RentalStatusInUse)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err = repo.GetActiveByVehicleID(context.Background(), 20)
		assert.ErrorIs(t, err, ErrRentalNotFound)
	})
}

func TestRepository_GetByFilter(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT .+ FROM rentals WHERE renter_id = .+ AND status = .+ ORDER BY scheduled_start_at DESC, id DESC").
		WithArgs(int64(10), string(domain.RentalStatusBooked)).
		WillReturnRows(rentalRows(t))

	status := domain.RentalStatusBooked
	rentals, err := repo.GetByFilter(context.Background(), domain.RentalFilter{
		RenterID: ptr.Ptr(int64(10)),
		Status:   &status,
	})
	require.NoError(t, err)

	require.Len(t, rentals, 1)
	assert.Equal(t, int64(1), rentals[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateStatus(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectExec("UPDATE rentals SET status = .+, updated_at = NOW\\(\\) WHERE id = ?").
			WithArgs(string(domain.RentalStatusCancelled), int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err = repo.UpdateStatus(context.Background(), 1, domain.RentalStatusCancelled)
		assert.NoError(t, err)
	})

	t.Run("missing rental", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectExec("UPDATE rentals SET status = .+, updated_at = NOW\\(\\) WHERE id = ?").
			WithArgs(string(domain.RentalStatusCancelled), int64(404)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err = repo.UpdateStatus(context.Background(), 404, domain.RentalStatusCancelled)
		assert.ErrorIs(t, err, ErrRentalNotFound)
	})
}

func TestRepository_SetReturned(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	at := time.Date(2025, 6, 1, 12, 35, 0, 0, time.UTC)

	mock.ExpectExec("UPDATE rentals SET status = .+, actual_return_at = .+, updated_at = NOW\\(\\), station_return_id = .+ WHERE id = ?").
		WithArgs(string(domain.RentalStatusReturned), at, int64(4), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.SetReturned(context.Background(), 1, at, ptr.Ptr(int64(4)))
	assert.NoError(t, err)
}
