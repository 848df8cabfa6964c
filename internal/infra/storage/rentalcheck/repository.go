package rentalcheck

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

// Код ошибки unique_violation в PostgreSQL
const pqUniqueViolation = "23505"

// Repository репозиторий для работы с rental check
// Записи иммутабельны: только INSERT и SELECT, никаких UPDATE/DELETE
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория rental check
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает evidence-запись о выдаче или возврате
// Уникальный индекс (rental_id, check_type) гарантирует не больше одной записи
// каждого типа на rental даже при гонке
func (r *Repository) Create(ctx context.Context, check *domain.RentalCheck) (*domain.RentalCheck, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("rental_checks").
		Columns(
			"rental_id",
			"check_type",
			"condition_report",
			"photo_ref",
			"staff_sig_ref",
			"customer_sig_ref",
		).
		Values(
			check.RentalID,
			check.CheckType,
			check.ConditionReport,
			check.PhotoRef,
			check.StaffSigRef,
			check.CustomerSigRef,
		).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&check.ID,
		&check.CreatedAt,
	)

	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && string(pqErr.Code) == pqUniqueViolation {
			return nil, ErrCheckAlreadyExists
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return check, nil
}

// ExistsByRentalAndType проверяет наличие check указанного типа для rental
func (r *Repository) ExistsByRentalAndType(ctx context.Context, rentalID int64, checkType domain.CheckType) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("1").
		From("rental_checks").
		Where(squirrel.Eq{"rental_id": rentalID}).
		Where(squirrel.Eq{"check_type": checkType}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: ExistsByRentalAndType - build select query: %v", ErrBuildQuery, err)
	}

	var one int
	err = executor.QueryRowContext(ctx, query, args...).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: ExistsByRentalAndType - scan row: %v", ErrScanRow, err)
	}

	return true, nil
}
