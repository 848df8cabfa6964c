package rentals

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-RentalService/internal/integrations/vehicleservice"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

// Фейки для маленьких потребительских интерфейсов
// Депозитный ledger хранится в памяти, баланс считается как в репозитории

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

func (f *fakeRentalRepo) GetByFilter(_ context.Context, _ domain.RentalFilter) ([]*domain.Rental, error) {
	if f.rental == nil {
		return nil, nil
	}
	return []*domain.Rental{f.rental}, nil
}

func (f *fakeRentalRepo) UpdateStatus(_ context.Context, _ int64, status domain.RentalStatus) error {
	f.updatedStatus = &status
	return nil
}

type fakeDepositRepo struct {
	records []*domain.DepositRecord
}

func (f *fakeDepositRepo) Create(_ context.Context, record *domain.DepositRecord) (*domain.DepositRecord, error) {
	record.ID = int64(len(f.records) + 1)
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakeDepositRepo) OutstandingAmount(_ context.Context, _ int64) (int64, error) {
	var balance int64
	for _, r := range f.records {
		switch r.Direction {
		case domain.DepositHold:
			balance += r.Amount
		case domain.DepositReturn:
			balance -= r.Amount
		}
	}
	return balance, nil
}

func (f *fakeDepositRepo) ListByRentalID(_ context.Context, _ int64) ([]*domain.DepositRecord, error) {
	return f.records, nil
}

type fakeViolationRepo struct {
	violations []*domain.Violation
}

func (f *fakeViolationRepo) Create(_ context.Context, v *domain.Violation) (*domain.Violation, error) {
	v.ID = int64(len(f.violations) + 1)
	f.violations = append(f.violations, v)
	return v, nil
}

func (f *fakeViolationRepo) ListByRentalID(_ context.Context, _ int64) ([]*domain.Violation, error) {
	return f.violations, nil
}

type fakeVehicleClient struct {
	updatedStatus *vehicleservice.VehicleStatus
}

func (f *fakeVehicleClient) UpdateStatus(_ context.Context, _ int64, status vehicleservice.VehicleStatus) error {
	f.updatedStatus = &status
	return nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (f *fakeTxManager) DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func activeRental(status domain.RentalStatus) *domain.Rental {
	return &domain.Rental{
		ID:            1,
		RenterID:      10,
		VehicleID:     20,
		Status:        status,
		DepositAmount: 100000,
	}
}

func newTestService(rentals *fakeRentalRepo, deposits *fakeDepositRepo, violations *fakeViolationRepo, vehicles *fakeVehicleClient) *Service {
	return NewService(rentals, deposits, violations, vehicles, &fakeTxManager{}, nopLogger{})
}

func TestCancel_ReleasesVehicleAndSchedulesDepositReturn(t *testing.T) {
	rentals := &fakeRentalRepo{rental: activeRental(domain.RentalStatusInUse)}
	deposits := &fakeDepositRepo{}
	vehicles := &fakeVehicleClient{}

	svc := newTestService(rentals, deposits, &fakeViolationRepo{}, vehicles)

	// Сначала удерживаем депозит, затем отменяем
	_, err := svc.HoldDeposit(context.Background(), 1, &models.HoldDepositRequest{})
	require.NoError(t, err)

	resp, err := svc.Cancel(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, string(domain.RentalStatusCancelled), resp.Status)
	require.NotNil(t, rentals.updatedStatus)
	assert.Equal(t, domain.RentalStatusCancelled, *rentals.updatedStatus)

	// Отмена добавила возврат всей удержанной суммы
	balance, err := deposits.OutstandingAmount(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(0), balance)
	assert.Len(t, deposits.records, 2)

	require.NotNil(t, vehicles.updatedStatus)
	assert.Equal(t, vehicleservice.VehicleStatusAvailable, *vehicles.updatedStatus)
}

func TestCancel_WrongStatus(t *testing.T) {
	tests := []domain.RentalStatus{
		domain.RentalStatusReturned,
		domain.RentalStatusWaitingForPayment,
		domain.RentalStatusCancelled,
		domain.RentalStatusClosed,
	}

	for _, status := range tests {
		t.Run(string(status), func(t *testing.T) {
			rentals := &fakeRentalRepo{rental: activeRental(status)}
			vehicles := &fakeVehicleClient{}

			svc := newTestService(rentals, &fakeDepositRepo{}, &fakeViolationRepo{}, vehicles)

			_, err := svc.Cancel(context.Background(), 1)
			assert.ErrorIs(t, err, ErrInvalidTransition)
			assert.Nil(t, vehicles.updatedStatus)
		})
	}
}

func TestCancel_RentalNotFound(t *testing.T) {
	rentals := &fakeRentalRepo{getErr: rentalRepo.ErrRentalNotFound}

	svc := newTestService(rentals, &fakeDepositRepo{}, &fakeViolationRepo{}, &fakeVehicleClient{})

	_, err := svc.Cancel(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRentalNotFound)
}

func TestDeposit_RoundTrip(t *testing.T) {
	rentals := &fakeRentalRepo{rental: activeRental(domain.RentalStatusBooked)}
	deposits := &fakeDepositRepo{}

	svc := newTestService(rentals, deposits, &fakeViolationRepo{}, &fakeVehicleClient{})

	// amount = 0 берет сумму, согласованную при создании rental
	held, err := svc.HoldDeposit(context.Background(), 1, &models.HoldDepositRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(100000), held.OutstandingDeposit)

	returned, err := svc.ReturnDeposit(context.Background(), 1, &models.ReturnDepositRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), returned.OutstandingDeposit)

	// Ledger append-only: обе записи сохранены
	assert.Len(t, deposits.records, 2)
	assert.Equal(t, domain.DepositHold, deposits.records[0].Direction)
	assert.Equal(t, domain.DepositReturn, deposits.records[1].Direction)
}

func TestHoldDeposit_AlreadyHeld(t *testing.T) {
	rentals := &fakeRentalRepo{rental: activeRental(domain.RentalStatusBooked)}
	deposits := &fakeDepositRepo{}

	svc := newTestService(rentals, deposits, &fakeViolationRepo{}, &fakeVehicleClient{})

	_, err := svc.HoldDeposit(context.Background(), 1, &models.HoldDepositRequest{Amount: 50000})
	require.NoError(t, err)

	_, err = svc.HoldDeposit(context.Background(), 1, &models.HoldDepositRequest{Amount: 50000})
	assert.ErrorIs(t, err, ErrDepositAlreadyHeld)
	assert.Len(t, deposits.records, 1)
}

func TestHoldDeposit_TerminalRental(t *testing.T) {
	rentals := &fakeRentalRepo{rental: activeRental(domain.RentalStatusCancelled)}

	svc := newTestService(rentals, &fakeDepositRepo{}, &fakeViolationRepo{}, &fakeVehicleClient{})

	_, err := svc.HoldDeposit(context.Background(), 1, &models.HoldDepositRequest{Amount: 50000})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestReturnDeposit_NothingHeld(t *testing.T) {
	rentals := &fakeRentalRepo{rental: activeRental(domain.RentalStatusInUse)}

	svc := newTestService(rentals, &fakeDepositRepo{}, &fakeViolationRepo{}, &fakeVehicleClient{})

	_, err := svc.ReturnDeposit(context.Background(), 1, &models.ReturnDepositRequest{})
	assert.ErrorIs(t, err, ErrNoDepositHeld)
}

func TestReturnDeposit_Overreturn(t *testing.T) {
	rentals := &fakeRentalRepo{rental: activeRental(domain.RentalStatusInUse)}
	deposits := &fakeDepositRepo{}

	svc := newTestService(rentals, deposits, &fakeViolationRepo{}, &fakeVehicleClient{})

	_, err := svc.HoldDeposit(context.Background(), 1, &models.HoldDepositRequest{Amount: 50000})
	require.NoError(t, err)

	_, err = svc.ReturnDeposit(context.Background(), 1, &models.ReturnDepositRequest{Amount: 60000})
	assert.ErrorIs(t, err, ErrDepositOverreturn)
	assert.Len(t, deposits.records, 1)
}

func TestListDeposits_HistoryAndOutstanding(t *testing.T) {
	rentals := &fakeRentalRepo{rental: activeRental(domain.RentalStatusInUse)}
	deposits := &fakeDepositRepo{}

	svc := newTestService(rentals, deposits, &fakeViolationRepo{}, &fakeVehicleClient{})

	_, err := svc.HoldDeposit(context.Background(), 1, &models.HoldDepositRequest{Amount: 100000})
	require.NoError(t, err)
	_, err = svc.ReturnDeposit(context.Background(), 1, &models.ReturnDepositRequest{Amount: 40000})
	require.NoError(t, err)

	resp, err := svc.ListDeposits(context.Background(), 1)
	require.NoError(t, err)

	// История полная и в порядке добавления, остаток выведен из нее
	require.Len(t, resp.Records, 2)
	assert.Equal(t, string(domain.DepositHold), resp.Records[0].Direction)
	assert.Equal(t, string(domain.DepositReturn), resp.Records[1].Direction)
	assert.Equal(t, int64(60000), resp.Outstanding)
}

func TestListDeposits_RentalNotFound(t *testing.T) {
	svc := newTestService(
		&fakeRentalRepo{getErr: rentalRepo.ErrRentalNotFound},
		&fakeDepositRepo{},
		&fakeViolationRepo{},
		&fakeVehicleClient{},
	)

	_, err := svc.ListDeposits(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRentalNotFound)
}

func TestAddViolation_Success(t *testing.T) {
	rentals := &fakeRentalRepo{rental: activeRental(domain.RentalStatusInUse)}
	violations := &fakeViolationRepo{}

	svc := newTestService(rentals, &fakeDepositRepo{}, violations, &fakeVehicleClient{})

	resp, err := svc.AddViolation(context.Background(), &models.AddViolationRequest{
		RentalID:    1,
		Description: "превышение скорости",
		Amount:      20000,
		RecordedBy:  33,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, int64(20000), resp.Amount)
	require.Len(t, violations.violations, 1)
	assert.Equal(t, int64(33), violations.violations[0].RecordedBy)
}

func TestAddViolation_Validation(t *testing.T) {
	svc := newTestService(
		&fakeRentalRepo{rental: activeRental(domain.RentalStatusInUse)},
		&fakeDepositRepo{},
		&fakeViolationRepo{},
		&fakeVehicleClient{},
	)

	tests := []struct {
		name string
		req  *models.AddViolationRequest
	}{
		{"zero amount", &models.AddViolationRequest{RentalID: 1, Description: "x", Amount: 0, RecordedBy: 33}},
		{"negative amount", &models.AddViolationRequest{RentalID: 1, Description: "x", Amount: -100, RecordedBy: 33}},
		{"empty description", &models.AddViolationRequest{RentalID: 1, Amount: 100, RecordedBy: 33}},
		{"description too long", &models.AddViolationRequest{
			RentalID:    1,
			Description: strings.Repeat("a", domain.MaxViolationDescriptionLength+1),
			Amount:      100,
			RecordedBy:  33,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddViolation(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestAddViolation_TerminalRental(t *testing.T) {
	svc := newTestService(
		&fakeRentalRepo{rental: activeRental(domain.RentalStatusClosed)},
		&fakeDepositRepo{},
		&fakeViolationRepo{},
		&fakeVehicleClient{},
	)

	_, err := svc.AddViolation(context.Background(), &models.AddViolationRequest{
		RentalID:    1,
		Description: "повреждение",
		Amount:      100,
		RecordedBy:  33,
	})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestListViolations_OrderPreserved(t *testing.T) {
	rentals := &fakeRentalRepo{rental: activeRental(domain.RentalStatusInUse)}
	violations := &fakeViolationRepo{}

	svc := newTestService(rentals, &fakeDepositRepo{}, violations, &fakeVehicleClient{})

	for _, desc := range []string{"первое", "второе", "третье"} {
		_, err := svc.AddViolation(context.Background(), &models.AddViolationRequest{
			RentalID:    1,
			Description: desc,
			Amount:      100,
			RecordedBy:  33,
		})
		require.NoError(t, err)
	}

	resp, err := svc.ListViolations(context.Background(), 1)
	require.NoError(t, err)

	require.Len(t, resp.Violations, 3)
	assert.Equal(t, "первое", resp.Violations[0].Description)
	assert.Equal(t, "третье", resp.Violations[2].Description)
}

func TestListViolations_RentalNotFound(t *testing.T) {
	svc := newTestService(
		&fakeRentalRepo{getErr: rentalRepo.ErrRentalNotFound},
		&fakeDepositRepo{},
		&fakeViolationRepo{},
		&fakeVehicleClient{},
	)

	_, err := svc.ListViolations(context.Background(), 1)
	assert.ErrorIs(t, err, ErrRentalNotFound)
}
