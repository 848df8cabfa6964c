package calculate_bill

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-RentalService/internal/integrations/vehicleservice"
)

// Фейки для маленьких потребительских интерфейсов

type fakeRentalRepo struct {
	rental        *domain.Rental
	getErr        error
	updatedStatus *domain.RentalStatus
}

func (f *fakeRentalRepo) GetByID(_ context.Context, _ int64) (*domain.Rental, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.rental
	return &copied, nil
}

func (f *fakeRentalRepo) UpdateStatus(_ context.Context, _ int64, status domain.RentalStatus) error {
	f.updatedStatus = &status
	return nil
}

type fakeViolationRepo struct {
	sum int64
}

func (f *fakeViolationRepo) SumByRentalID(_ context.Context, _ int64) (int64, error) {
	return f.sum, nil
}

type fakeDepositRepo struct {
	outstanding int64
}

func (f *fakeDepositRepo) OutstandingAmount(_ context.Context, _ int64) (int64, error) {
	return f.outstanding, nil
}

type fakeBillRepo struct {
	created []*domain.Bill
}

func (f *fakeBillRepo) Create(_ context.Context, b *domain.Bill) (*domain.Bill, error) {
	b.ID = int64(len(f.created) + 1)
	b.ComputedAt = time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC)
	f.created = append(f.created, b)
	return b, nil
}

type fakeVehicleClient struct {
	vehicle *vehicleservice.Vehicle
	err     error
}

func (f *fakeVehicleClient) GetVehicle(_ context.Context, _ int64) (*vehicleservice.Vehicle, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.vehicle, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func billableRental(status domain.RentalStatus) *domain.Rental {
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	ret := start.Add(2*time.Hour + 15*time.Minute)
	return &domain.Rental{
		ID:               1,
		RenterID:         10,
		VehicleID:        20,
		ScheduledStartAt: start,
		ActualStartAt:    &start,
		ActualReturnAt:   &ret,
		Status:           status,
	}
}

func newTestUseCase(
	rentals *fakeRentalRepo,
	violations *fakeViolationRepo,
	deposits *fakeDepositRepo,
	bills *fakeBillRepo,
	vehicles *fakeVehicleClient,
) *UseCase {
	return NewUseCase(rentals, violations, deposits, bills, vehicles, &fakeTxManager{}, 60, nopLogger{})
}

func TestExecute_WalkInWithViolation(t *testing.T) {
	// Аренда 2ч15м по тарифу 50000/ч округляется до 3 единиц,
	// плюс нарушение на 20000
	rentals := &fakeRentalRepo{rental: billableRental(domain.RentalStatusReturned)}
	violations := &fakeViolationRepo{sum: 20000}
	deposits := &fakeDepositRepo{}
	bills := &fakeBillRepo{}
	vehicles := &fakeVehicleClient{vehicle: &vehicleservice.Vehicle{ID: 20, RatePerHour: 50000}}

	uc := newTestUseCase(rentals, violations, deposits, bills, vehicles)

	resp, err := uc.Execute(context.Background(), &Request{RentalID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(3), resp.BilledUnits)
	assert.Equal(t, int64(150000), resp.BaseCharge)
	assert.Equal(t, int64(20000), resp.ViolationSubtotal)
	assert.Equal(t, int64(170000), resp.TotalDue)
	assert.Equal(t, int64(0), resp.RefundDue)
	assert.Equal(t, string(domain.RentalStatusWaitingForPayment), resp.Status)

	require.NotNil(t, rentals.updatedStatus)
	assert.Equal(t, domain.RentalStatusWaitingForPayment, *rentals.updatedStatus)
	assert.Len(t, bills.created, 1)
}

func TestExecute_DepositPaysTowardBill(t *testing.T) {
	rentals := &fakeRentalRepo{rental: billableRental(domain.RentalStatusReturned)}
	violations := &fakeViolationRepo{}
	deposits := &fakeDepositRepo{outstanding: 100000}
	bills := &fakeBillRepo{}
	vehicles := &fakeVehicleClient{vehicle: &vehicleservice.Vehicle{ID: 20, RatePerHour: 50000}}

	uc := newTestUseCase(rentals, violations, deposits, bills, vehicles)

	resp, err := uc.Execute(context.Background(), &Request{RentalID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(150000), resp.BaseCharge)
	assert.Equal(t, int64(100000), resp.DepositAdjustment)
	assert.Equal(t, int64(50000), resp.TotalDue)
	assert.Equal(t, int64(0), resp.RefundDue)
}

func TestExecute_DepositExceedsCharges(t *testing.T) {
	// Депозит больше начислений: итог к оплате нулевой, излишек - к возврату
	rental := billableRental(domain.RentalStatusReturned)
	ret := rental.ActualStartAt.Add(30 * time.Minute)
	rental.ActualReturnAt = &ret

	rentals := &fakeRentalRepo{rental: rental}
	violations := &fakeViolationRepo{}
	deposits := &fakeDepositRepo{outstanding: 80000}
	bills := &fakeBillRepo{}
	vehicles := &fakeVehicleClient{vehicle: &vehicleservice.Vehicle{ID: 20, RatePerHour: 50000}}

	uc := newTestUseCase(rentals, violations, deposits, bills, vehicles)

	resp, err := uc.Execute(context.Background(), &Request{RentalID: 1})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BilledUnits)
	assert.Equal(t, int64(50000), resp.BaseCharge)
	assert.Equal(t, int64(0), resp.TotalDue)
	assert.Equal(t, int64(30000), resp.RefundDue)
}

func TestExecute_BaseChargeScalesWithTime(t *testing.T) {
	// Базовая стоимость зависит от длительности, а не от числа единиц:
	// полчаса и сутки при одном часовом тарифе стоят по-разному
	tests := []struct {
		name        string
		duration    time.Duration
		unitMinutes int
		units       int64
		baseCharge  int64
	}{
		// 1 час получасовыми единицами - ровно часовой тариф, не двойной
		{"half-hour unit", time.Hour, 30, 2, 50000},
		// 2 неполных дня суточной единицей - 48 часов по тарифу
		{"daily unit", 47*time.Hour + 30*time.Minute, 1440, 2, 2400000},
		// 45 минут пятнадцатиминутными единицами - три четверти тарифа
		{"quarter-hour unit", 45 * time.Minute, 15, 3, 37500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rental := billableRental(domain.RentalStatusReturned)
			ret := rental.ActualStartAt.Add(tt.duration)
			rental.ActualReturnAt = &ret

			rentals := &fakeRentalRepo{rental: rental}
			bills := &fakeBillRepo{}
			vehicles := &fakeVehicleClient{vehicle: &vehicleservice.Vehicle{ID: 20, RatePerHour: 50000}}

			uc := NewUseCase(rentals, &fakeViolationRepo{}, &fakeDepositRepo{}, bills, vehicles, &fakeTxManager{}, 60, nopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{RentalID: 1, UnitMinutes: tt.unitMinutes})
			require.NoError(t, err)

			assert.Equal(t, tt.units, resp.BilledUnits)
			assert.Equal(t, tt.baseCharge, resp.BaseCharge)
			assert.Equal(t, int64(50000), resp.RatePerHour)
		})
	}
}

func TestExecute_BaseChargeRoundsUp(t *testing.T) {
	// 50001/ч за полчаса - 25000.5, неполная денежная единица округляется вверх
	rental := billableRental(domain.RentalStatusReturned)
	ret := rental.ActualStartAt.Add(20 * time.Minute)
	rental.ActualReturnAt = &ret

	rentals := &fakeRentalRepo{rental: rental}
	vehicles := &fakeVehicleClient{vehicle: &vehicleservice.Vehicle{ID: 20, RatePerHour: 50001}}

	uc := NewUseCase(rentals, &fakeViolationRepo{}, &fakeDepositRepo{}, &fakeBillRepo{}, vehicles, &fakeTxManager{}, 60, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RentalID: 1, UnitMinutes: 30})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.BilledUnits)
	assert.Equal(t, int64(25001), resp.BaseCharge)
}

func TestExecute_RecomputationIsIdempotent(t *testing.T) {
	// Одинаковое состояние ledger дает одинаковые суммы при повторном расчете
	rentals := &fakeRentalRepo{rental: billableRental(domain.RentalStatusWaitingForPayment)}
	violations := &fakeViolationRepo{sum: 20000}
	deposits := &fakeDepositRepo{}
	bills := &fakeBillRepo{}
	vehicles := &fakeVehicleClient{vehicle: &vehicleservice.Vehicle{ID: 20, RatePerHour: 50000}}

	uc := newTestUseCase(rentals, violations, deposits, bills, vehicles)

	first, err := uc.Execute(context.Background(), &Request{RentalID: 1})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{RentalID: 1})
	require.NoError(t, err)

	assert.Equal(t, first.TotalDue, second.TotalDue)
	assert.Equal(t, first.BilledUnits, second.BilledUnits)
	assert.Equal(t, first.ViolationSubtotal, second.ViolationSubtotal)

	// Каждый расчет добавляет новый снапшот
	assert.Len(t, bills.created, 2)
	// Статус уже waiting_for_payment, повторный перевод не выполняется
	assert.Nil(t, rentals.updatedStatus)
}

func TestExecute_NotBillable(t *testing.T) {
	rentals := &fakeRentalRepo{rental: billableRental(domain.RentalStatusInUse)}
	bills := &fakeBillRepo{}
	vehicles := &fakeVehicleClient{vehicle: &vehicleservice.Vehicle{ID: 20, RatePerHour: 50000}}

	uc := newTestUseCase(rentals, &fakeViolationRepo{}, &fakeDepositRepo{}, bills, vehicles)

	_, err := uc.Execute(context.Background(), &Request{RentalID: 1})
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, bills.created)
}

func TestExecute_RentalNotFound(t *testing.T) {
	rentals := &fakeRentalRepo{getErr: rentalRepo.ErrRentalNotFound}
	vehicles := &fakeVehicleClient{}

	uc := newTestUseCase(rentals, &fakeViolationRepo{}, &fakeDepositRepo{}, &fakeBillRepo{}, vehicles)

	_, err := uc.Execute(context.Background(), &Request{RentalID: 1})
	assert.ErrorIs(t, err, ErrRentalNotFound)
}

func TestExecute_InvalidUnitMinutes(t *testing.T) {
	uc := newTestUseCase(
		&fakeRentalRepo{rental: billableRental(domain.RentalStatusReturned)},
		&fakeViolationRepo{},
		&fakeDepositRepo{},
		&fakeBillRepo{},
		&fakeVehicleClient{vehicle: &vehicleservice.Vehicle{ID: 20, RatePerHour: 50000}},
	)

	_, err := uc.Execute(context.Background(), &Request{RentalID: 1, UnitMinutes: 100000})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBilledUnits(t *testing.T) {
	from := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		duration    time.Duration
		unitMinutes int
		expected    int64
	}{
		{"exact hours", 2 * time.Hour, 60, 2},
		{"partial unit rounds up", 2*time.Hour + 15*time.Minute, 60, 3},
		{"instant rental bills one unit", 0, 60, 1},
		{"sub-unit duration bills one unit", 5 * time.Minute, 60, 1},
		{"custom unit", 45 * time.Minute, 15, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, billedUnits(from, from.Add(tt.duration), tt.unitMinutes))
		})
	}
}
