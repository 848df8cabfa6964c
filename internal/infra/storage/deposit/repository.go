package deposit

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

var depositColumns = []string{
	"id",
	"rental_id",
	"direction",
	"amount",
	"created_at",
}

// Repository репозиторий депозитного ledger
// Только append и чтение: баланс всегда выводится из полной истории событий
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория депозитов
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет событие hold или return в ledger
func (r *Repository) Create(ctx context.Context, record *domain.DepositRecord) (*domain.DepositRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("deposit_records").
		Columns(
			"rental_id",
			"direction",
			"amount",
		).
		Values(
			record.RentalID,
			record.Direction,
			record.Amount,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&record.ID,
		&record.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return record, nil
}

// OutstandingAmount возвращает текущий удержанный депозит rental:
// сумма hold минус сумма return по всей истории
func (r *Repository) OutstandingAmount(ctx context.Context, rentalID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"COALESCE(SUM(CASE WHEN direction = 'hold' THEN amount ELSE -amount END), 0)",
	).
		From("deposit_records").
		Where(squirrel.Eq{"rental_id": rentalID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: OutstandingAmount - build select query: %v", ErrBuildQuery, err)
	}

	var outstanding int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&outstanding); err != nil {
		return 0, fmt.Errorf("%w: OutstandingAmount - scan amount: %v", ErrScanRow, err)
	}

	return outstanding, nil
}

// ListByRentalID возвращает полную историю депозитных событий rental
// в порядке добавления
func (r *Repository) ListByRentalID(ctx context.Context, rentalID int64) ([]*domain.DepositRecord, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(depositColumns...).
		From("deposit_records").
		Where(squirrel.Eq{"rental_id": rentalID}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByRentalID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByRentalID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]*domain.DepositRecord, error) {
	records := make([]*domain.DepositRecord, 0)

	for rows.Next() {
		var record domain.DepositRecord
		err := rows.Scan(
			&record.ID,
			&record.RentalID,
			&record.Direction,
			&record.Amount,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanRecords - scan row: %v", ErrScanRow, err)
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanRecords - rows error: %v", ErrScanRow, err)
	}

	return records, nil
}
