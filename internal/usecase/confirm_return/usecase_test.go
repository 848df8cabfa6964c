package confirm_return

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	checkRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rentalcheck"
	"github.com/m04kA/SMC-RentalService/internal/integrations/vehicleservice"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

// Фейки для маленьких потребительских интерфейсов

type fakeRentalRepo struct {
	rental          *domain.Rental
	returnedAt      *time.Time
	stationReturnID *int64
}

func (f *fakeRentalRepo) GetByID(_ context.Context, _ int64) (*domain.Rental, error) {
	copied := *f.rental
	return &copied, nil
}

func (f *fakeRentalRepo) SetReturned(_ context.Context, _ int64, at time.Time, stationReturnID *int64) error {
	f.returnedAt = &at
	f.stationReturnID = stationReturnID
	return nil
}

type fakeCheckRepo struct {
	exists    bool
	created   *domain.RentalCheck
	createErr error
}

func (f *fakeCheckRepo) Create(_ context.Context, check *domain.RentalCheck) (*domain.RentalCheck, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	check.ID = 8
	f.created = check
	return check, nil
}

func (f *fakeCheckRepo) ExistsByRentalAndType(_ context.Context, _ int64, _ domain.CheckType) (bool, error) {
	return f.exists, nil
}

type fakeEvidenceClient struct {
	missing map[string]bool
}

func (f *fakeEvidenceClient) Exists(_ context.Context, ref string) (bool, error) {
	return !f.missing[ref], nil
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

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func inUseRental() *domain.Rental {
	start := time.Date(2025, 6, 1, 10, 20, 0, 0, time.UTC)
	return &domain.Rental{
		ID:               1,
		RenterID:         10,
		VehicleID:        20,
		ScheduledStartAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		ActualStartAt:    &start,
		Status:           domain.RentalStatusInUse,
	}
}

func returnRequest() *Request {
	return &Request{
		RentalID:        1,
		StationReturnID: ptr.Ptr(int64(4)),
		ConditionReport: "царапина на правом крыле",
		PhotoRef:        "photo-2",
		StaffSigRef:     "sig-staff-2",
		CustomerSigRef:  "sig-customer-2",
	}
}

func TestExecute_Success(t *testing.T) {
	rentals := &fakeRentalRepo{rental: inUseRental()}
	checks := &fakeCheckRepo{}
	vehicles := &fakeVehicleClient{}

	uc := NewUseCase(rentals, checks, &fakeEvidenceClient{}, vehicles, &fakeTxManager{}, nopLogger{})
	now := time.Date(2025, 6, 1, 12, 35, 0, 0, time.UTC)
	uc.timeProvider = &fakeTimeProvider{now: now}

	resp, err := uc.Execute(context.Background(), returnRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.RentalStatusReturned), resp.Status)
	assert.Equal(t, now, resp.ActualReturnAt)
	assert.Equal(t, int64(8), resp.CheckID)

	require.NotNil(t, rentals.returnedAt)
	assert.Equal(t, now, *rentals.returnedAt)
	require.NotNil(t, rentals.stationReturnID)
	assert.Equal(t, int64(4), *rentals.stationReturnID)

	require.NotNil(t, checks.created)
	assert.Equal(t, domain.CheckTypeReturn, checks.created.CheckType)

	require.NotNil(t, vehicles.updatedStatus)
	assert.Equal(t, vehicleservice.VehicleStatusAvailable, *vehicles.updatedStatus)
}

func TestExecute_WrongStatus(t *testing.T) {
	tests := []domain.RentalStatus{
		domain.RentalStatusBooked,
		domain.RentalStatusReturned,
		domain.RentalStatusCancelled,
		domain.RentalStatusClosed,
	}

	for _, status := range tests {
		t.Run(string(status), func(t *testing.T) {
			rental := inUseRental()
			rental.Status = status

			uc := NewUseCase(
				&fakeRentalRepo{rental: rental},
				&fakeCheckRepo{},
				&fakeEvidenceClient{},
				&fakeVehicleClient{},
				&fakeTxManager{},
				nopLogger{},
			)

			_, err := uc.Execute(context.Background(), returnRequest())
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestExecute_CheckAlreadyRecorded(t *testing.T) {
	t.Run("existing check found before insert", func(t *testing.T) {
		rentals := &fakeRentalRepo{rental: inUseRental()}
		checks := &fakeCheckRepo{exists: true}

		uc := NewUseCase(rentals, checks, &fakeEvidenceClient{}, &fakeVehicleClient{}, &fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), returnRequest())
		assert.ErrorIs(t, err, ErrCheckAlreadyRecorded)
		assert.Nil(t, checks.created)
		assert.Nil(t, rentals.returnedAt)
	})

	t.Run("concurrent insert loses on unique index", func(t *testing.T) {
		rentals := &fakeRentalRepo{rental: inUseRental()}
		checks := &fakeCheckRepo{createErr: checkRepo.ErrCheckAlreadyExists}

		uc := NewUseCase(rentals, checks, &fakeEvidenceClient{}, &fakeVehicleClient{}, &fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), returnRequest())
		assert.ErrorIs(t, err, ErrCheckAlreadyRecorded)
		assert.Nil(t, rentals.returnedAt)
	})
}

func TestExecute_EvidenceMissing(t *testing.T) {
	uc := NewUseCase(
		&fakeRentalRepo{rental: inUseRental()},
		&fakeCheckRepo{},
		&fakeEvidenceClient{missing: map[string]bool{"photo-2": true}},
		&fakeVehicleClient{},
		&fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), returnRequest())
	assert.ErrorIs(t, err, ErrEvidenceIncomplete)
}
