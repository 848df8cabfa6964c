package violation

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

var violationColumns = []string{
	"id",
	"rental_id",
	"description",
	"amount",
	"recorded_by",
	"created_at",
}

// Repository репозиторий для работы с violation
// Append-only: записи никогда не изменяются и не удаляются
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория violation
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create добавляет violation к rental
func (r *Repository) Create(ctx context.Context, v *domain.Violation) (*domain.Violation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("violations").
		Columns(
			"rental_id",
			"description",
			"amount",
			"recorded_by",
		).
		Values(
			v.RentalID,
			v.Description,
			v.Amount,
			v.RecordedBy,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&v.ID,
		&v.CreatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return v, nil
}

// ListByRentalID возвращает все violation rental в порядке добавления
func (r *Repository) ListByRentalID(ctx context.Context, rentalID int64) ([]*domain.Violation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(violationColumns...).
		From("violations").
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

	return scanViolations(rows)
}

// SumByRentalID возвращает сумму всех violation rental
func (r *Repository) SumByRentalID(ctx context.Context, rentalID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COALESCE(SUM(amount), 0)").
		From("violations").
		Where(squirrel.Eq{"rental_id": rentalID}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: SumByRentalID - build select query: %v", ErrBuildQuery, err)
	}

	var sum int64
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&sum); err != nil {
		return 0, fmt.Errorf("%w: SumByRentalID - scan sum: %v", ErrScanRow, err)
	}

	return sum, nil
}

func scanViolations(rows *sql.Rows) ([]*domain.Violation, error) {
	violations := make([]*domain.Violation, 0)

	for rows.Next() {
		var v domain.Violation
		err := rows.Scan(
			&v.ID,
			&v.RentalID,
			&v.Description,
			&v.Amount,
			&v.RecordedBy,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanViolations - scan row: %v", ErrScanRow, err)
		}
		violations = append(violations, &v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanViolations - rows error: %v", ErrScanRow, err)
	}

	return violations, nil
}
