package rentals

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/vehicleservice"
)

// RentalRepository интерфейс репозитория rental
type RentalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	GetByFilter(ctx context.Context, filter domain.RentalFilter) ([]*domain.Rental, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus) error
}

// DepositRepository интерфейс репозитория депозитного ledger
type DepositRepository interface {
	Create(ctx context.Context, record *domain.DepositRecord) (*domain.DepositRecord, error)
	OutstandingAmount(ctx context.Context, rentalID int64) (int64, error)
	ListByRentalID(ctx context.Context, rentalID int64) ([]*domain.DepositRecord, error)
}

// ViolationRepository интерфейс репозитория violation
type ViolationRepository interface {
	Create(ctx context.Context, v *domain.Violation) (*domain.Violation, error)
	ListByRentalID(ctx context.Context, rentalID int64) ([]*domain.Violation, error)
}

// VehicleServiceClient интерфейс клиента для VehicleService
type VehicleServiceClient interface {
	UpdateStatus(ctx context.Context, vehicleID int64, status vehicleservice.VehicleStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
