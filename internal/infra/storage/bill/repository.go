package bill

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/dbmetrics"
	"github.com/m04kA/SMC-RentalService/pkg/psqlbuilder"
)

var billColumns = []string{
	"id",
	"rental_id",
	"billed_units",
	"rate_per_hour",
	"base_charge",
	"violation_subtotal",
	"deposit_adjustment",
	"total_due",
	"refund_due",
	"computed_at",
}

// Repository репозиторий снапшотов bill
// Каждый расчет добавляет новый снапшот; существующие никогда не изменяются.
// Актуальным считается последний снапшот rental
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает новый экземпляр репозитория bill
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет снапшот рассчитанного bill
func (r *Repository) Create(ctx context.Context, b *domain.Bill) (*domain.Bill, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bills").
		Columns(
			"rental_id",
			"billed_units",
			"rate_per_hour",
			"base_charge",
			"violation_subtotal",
			"deposit_adjustment",
			"total_due",
			"refund_due",
		).
		Values(
			b.RentalID,
			b.BilledUnits,
			b.RatePerHour,
			b.BaseCharge,
			b.ViolationSubtotal,
			b.DepositAdjustment,
			b.TotalDue,
			b.RefundDue,
		).
		Suffix("RETURNING id, computed_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.ComputedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return b, nil
}

// GetLatestByRentalID возвращает последний рассчитанный bill rental
func (r *Repository) GetLatestByRentalID(ctx context.Context, rentalID int64) (*domain.Bill, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(billColumns...).
		From("bills").
		Where(squirrel.Eq{"rental_id": rentalID}).
		OrderBy("id DESC").
		Limit(1).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestByRentalID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Bill
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.RentalID,
		&b.BilledUnits,
		&b.RatePerHour,
		&b.BaseCharge,
		&b.ViolationSubtotal,
		&b.DepositAdjustment,
		&b.TotalDue,
		&b.RefundDue,
		&b.ComputedAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrBillNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetLatestByRentalID - scan bill: %v", ErrScanRow, err)
	}

	return &b, nil
}
