package confirm_pickup

import (
	"context"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/internal/integrations/vehicleservice"
)

// RentalRepository интерфейс репозитория rental
type RentalRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	SetPickedUp(ctx context.Context, id int64, at time.Time) error
}

// CheckRepository интерфейс репозитория rental check
type CheckRepository interface {
	Create(ctx context.Context, check *domain.RentalCheck) (*domain.RentalCheck, error)
	ExistsByRentalAndType(ctx context.Context, rentalID int64, checkType domain.CheckType) (bool, error)
}

// EvidenceStoreClient интерфейс клиента хранилища evidence-файлов
type EvidenceStoreClient interface {
	Exists(ctx context.Context, ref string) (bool, error)
}

// VehicleServiceClient интерфейс клиента для VehicleService
type VehicleServiceClient interface {
	UpdateStatus(ctx context.Context, vehicleID int64, status vehicleservice.VehicleStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
