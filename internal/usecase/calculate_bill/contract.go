package calculate_bill

import (
	"context"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/vehicleservice"
)

// RentalRepository интерфейс репозитория rental
type RentalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	UpdateStatus(ctx context.Context, id int64, status domain.RentalStatus) error
}

// ViolationRepository интерфейс репозитория violation
type ViolationRepository interface {
	SumByRentalID(ctx context.Context, rentalID int64) (int64, error)
}

// DepositRepository интерфейс репозитория депозитного ledger
type DepositRepository interface {
	OutstandingAmount(ctx context.Context, rentalID int64) (int64, error)
}

// BillRepository интерфейс репозитория снапшотов bill
type BillRepository interface {
	Create(ctx context.Context, b *domain.Bill) (*domain.Bill, error)
}

// VehicleServiceClient интерфейс клиента для VehicleService
type VehicleServiceClient interface {
	GetVehicle(ctx context.Context, vehicleID int64) (*vehicleservice.Vehicle, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
