package rental

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

var rentalColumns = []string{
	"id",
	"renter_id",
	"vehicle_id",
	"station_pickup_id",
	"station_return_id",
	"reservation_id",
	"scheduled_start_at",
	"scheduled_return_at",
	"actual_start_at",
	"actual_return_at",
	"status",
	"deposit_amount",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с rental
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория rental
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый rental в статусе booked
func (r *Repository) Create(ctx context.Context, rental *domain.Rental) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rentals").
		Columns(
			"renter_id",
			"vehicle_id",
			"station_pickup_id",
			"station_return_id",
			"reservation_id",
			"scheduled_start_at",
			"scheduled_return_at",
			"actual_start_at",
			"actual_return_at",
			"status",
			"deposit_amount",
		).
		Values(
			rental.RenterID,
			rental.VehicleID,
			rental.StationPickupID,
			rental.StationReturnID,
			rental.ReservationID,
			rental.ScheduledStartAt,
			rental.ScheduledReturnAt,
			rental.ActualStartAt,
			rental.ActualReturnAt,
			rental.Status,
			rental.DepositAmount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rental.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return rental, nil
}

// GetByID получает rental по ID
// Внутри транзакции берет блокировку FOR UPDATE - это критическая секция rental:
// все мутирующие операции сериализуются на этой строке
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From("rentals").
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) && !dbmetrics.IsReadOnlyTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	rental, err := scanRental(row)
	if err == sql.ErrNoRows {
		return nil, ErrRentalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan rental: %v", ErrScanRow, err)
	}

	return rental, nil
}

// GetActiveByVehicleID получает rental, занимающий транспортное средство
// (статус booked или in_use). Возвращает ErrRentalNotFound, если средство свободно.
// Внутри транзакции блокирует найденную строку - используется на check-in
func (r *Repository) GetActiveByVehicleID(ctx context.Context, vehicleID int64) (*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	occupying := make([]string, len(domain.VehicleOccupyingStatuses))
	for i, s := range domain.VehicleOccupyingStatuses {
		occupying[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From("rentals").
		Where(squirrel.Eq{"vehicle_id": vehicleID}).
		Where(squirrel.Eq{"status": occupying}).
		OrderBy("id DESC").
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) && !dbmetrics.IsReadOnlyTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByVehicleID - build select query: %v", ErrBuildQuery, err)
	}

	row := executor.QueryRowContext(ctx, query, args...)
	rental, err := scanRental(row)
	if err == sql.ErrNoRows {
		return nil, ErrRentalNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByVehicleID - scan rental: %v", ErrScanRow, err)
	}

	return rental, nil
}

// GetByFilter получает список rental по фильтру
// Все предикаты опциональны и комбинируются конъюнктивно
// Сортировка стабильная: scheduled_start_at DESC, id DESC (сначала новые)
func (r *Repository) GetByFilter(ctx context.Context, filter domain.RentalFilter) ([]*domain.Rental, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(rentalColumns...).
		From("rentals")

	if filter.RenterID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"renter_id": *filter.RenterID})
	}
	if filter.VehicleID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"vehicle_id": *filter.VehicleID})
	}
	if filter.StationPickupID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"station_pickup_id": *filter.StationPickupID})
	}
	if filter.StationReturnID != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"station_return_id": *filter.StationReturnID})
	}
	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.StartFrom != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"scheduled_start_at": *filter.StartFrom})
	}
	if filter.StartTo != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"scheduled_start_at": *filter.StartTo})
	}

	selectBuilder = selectBuilder.OrderBy("scheduled_start_at DESC", "id DESC")

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRentals(rows)
}

// UpdateStatus обновляет статус rental
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rentals").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateStatus")
}

// SetPickedUp переводит rental в in_use и фиксирует фактическое время выдачи
func (r *Repository) SetPickedUp(ctx context.Context, id int64, at time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("rentals").
		Set("status", domain.RentalStatusInUse).
		Set("actual_start_at", at).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetPickedUp - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SetPickedUp")
}

// SetReturned переводит rental в returned и фиксирует фактическое время возврата
func (r *Repository) SetReturned(ctx context.Context, id int64, at time.Time, stationReturnID *int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update("rentals").
		Set("status", domain.RentalStatusReturned).
		Set("actual_return_at", at).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if stationReturnID != nil {
		updateBuilder = updateBuilder.Set("station_return_id", *stationReturnID)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetReturned - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SetReturned")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrRentalNotFound
	}

	return nil
}

// rowScanner общий интерфейс *sql.Row и *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRental(row rowScanner) (*domain.Rental, error) {
	var rental domain.Rental
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&rental.ID,
		&rental.RenterID,
		&rental.VehicleID,
		&rental.StationPickupID,
		&rental.StationReturnID,
		&rental.ReservationID,
		&rental.ScheduledStartAt,
		&rental.ScheduledReturnAt,
		&rental.ActualStartAt,
		&rental.ActualReturnAt,
		&rental.Status,
		&rental.DepositAmount,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	rental.CreatedAt = createdAt.Time
	rental.UpdatedAt = updatedAt.Time

	return &rental, nil
}

func scanRentals(rows *sql.Rows) ([]*domain.Rental, error) {
	rentals := make([]*domain.Rental, 0)

	for rows.Next() {
		rental, err := scanRental(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRentals - scan row: %v", ErrScanRow, err)
		}
		rentals = append(rentals, rental)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRentals - rows error: %v", ErrScanRow, err)
	}

	return rentals, nil
}
