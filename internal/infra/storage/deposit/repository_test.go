package deposit

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

func TestRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO deposit_records").
		WithArgs(int64(1), domain.DepositHold, int64(100000)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), createdAt))

	record, err := repo.Create(context.Background(), &domain.DepositRecord{
		RentalID:  1,
		Direction: domain.DepositHold,
		Amount:    100000,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), record.ID)
	assert.Equal(t, createdAt, record.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_OutstandingAmount(t *testing.T) {
	t.Run("hold minus returns", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(CASE WHEN direction = 'hold' THEN amount ELSE -amount END\\), 0\\) FROM deposit_records").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(40000)))

		outstanding, err := repo.OutstandingAmount(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, int64(40000), outstanding)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty ledger", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		repo := NewRepository(db)

		mock.ExpectQuery("SELECT COALESCE").
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(int64(0)))

		outstanding, err := repo.OutstandingAmount(context.Background(), 1)
		require.NoError(t, err)

		assert.Equal(t, int64(0), outstanding)
	})
}

func TestRepository_ListByRentalID(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	createdAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"id", "rental_id", "direction", "amount", "created_at"}).
		AddRow(int64(1), int64(1), string(domain.DepositHold), int64(100000), createdAt).
		AddRow(int64(2), int64(1), string(domain.DepositReturn), int64(100000), createdAt.Add(2*time.Hour))

	mock.ExpectQuery("SELECT id, rental_id, direction, amount, created_at FROM deposit_records").
		WithArgs(int64(1)).
		WillReturnRows(rows)

	records, err := repo.ListByRentalID(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, records, 2)
	assert.Equal(t, domain.DepositHold, records[0].Direction)
	assert.Equal(t, domain.DepositReturn, records[1].Direction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListByRentalID_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)

	mock.ExpectQuery("SELECT id, rental_id, direction, amount, created_at FROM deposit_records").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "rental_id", "direction", "amount", "created_at"}))

	records, err := repo.ListByRentalID(context.Background(), 1)
	require.NoError(t, err)

	assert.Empty(t, records)
}
