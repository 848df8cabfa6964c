package confirm_pickup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	checkRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rentalcheck"
	"github.com/m04kA/SMC-RentalService/internal/integrations/vehicleservice"
)

// Фейки для маленьких потребительских интерфейсов

type fakeRentalRepo struct {
	rental     *domain.Rental
	getErr     error
	pickedUpAt *time.Time
}

func (f *fakeRentalRepo) GetByID(_ context.Context, _ int64) (*domain.Rental, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	copied := *f.rental
	return &copied, nil
}

func (f *fakeRentalRepo) SetPickedUp(_ context.Context, _ int64, at time.Time) error {
	f.pickedUpAt = &at
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
	check.ID = 7
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

func bookedRental() *domain.Rental {
	return &domain.Rental{
		ID:               1,
		RenterID:         10,
		VehicleID:        20,
		ScheduledStartAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		Status:           domain.RentalStatusBooked,
	}
}

func pickupRequest() *Request {
	return &Request{
		RentalID:        1,
		ConditionReport: "без повреждений, бак полный",
		PhotoRef:        "photo-1",
		StaffSigRef:     "sig-staff-1",
		CustomerSigRef:  "sig-customer-1",
	}
}

func TestExecute_Success(t *testing.T) {
	rentals := &fakeRentalRepo{rental: bookedRental()}
	checks := &fakeCheckRepo{}
	vehicles := &fakeVehicleClient{}

	uc := NewUseCase(rentals, checks, &fakeEvidenceClient{}, vehicles, &fakeTxManager{}, nopLogger{})
	now := time.Date(2025, 6, 1, 10, 20, 0, 0, time.UTC)
	uc.timeProvider = &fakeTimeProvider{now: now}

	resp, err := uc.Execute(context.Background(), pickupRequest())
	require.NoError(t, err)

	assert.Equal(t, string(domain.RentalStatusInUse), resp.Status)
	assert.Equal(t, now, resp.ActualStartAt)
	assert.Equal(t, int64(7), resp.CheckID)

	require.NotNil(t, rentals.pickedUpAt)
	assert.Equal(t, now, *rentals.pickedUpAt)

	require.NotNil(t, checks.created)
	assert.Equal(t, domain.CheckTypePickup, checks.created.CheckType)

	require.NotNil(t, vehicles.updatedStatus)
	assert.Equal(t, vehicleservice.VehicleStatusRented, *vehicles.updatedStatus)
}

func TestExecute_EvidenceMissing(t *testing.T) {
	tests := []string{"photo-1", "sig-staff-1", "sig-customer-1"}

	for _, missingRef := range tests {
		t.Run(missingRef, func(t *testing.T) {
			checks := &fakeCheckRepo{}
			uc := NewUseCase(
				&fakeRentalRepo{rental: bookedRental()},
				checks,
				&fakeEvidenceClient{missing: map[string]bool{missingRef: true}},
				&fakeVehicleClient{},
				&fakeTxManager{},
				nopLogger{},
			)

			_, err := uc.Execute(context.Background(), pickupRequest())
			assert.ErrorIs(t, err, ErrEvidenceIncomplete)
			assert.Nil(t, checks.created)
		})
	}
}

func TestExecute_EmptyEvidenceRef(t *testing.T) {
	uc := NewUseCase(
		&fakeRentalRepo{rental: bookedRental()},
		&fakeCheckRepo{},
		&fakeEvidenceClient{},
		&fakeVehicleClient{},
		&fakeTxManager{},
		nopLogger{},
	)

	req := pickupRequest()
	req.StaffSigRef = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrEvidenceIncomplete)
}

func TestExecute_WrongStatus(t *testing.T) {
	tests := []domain.RentalStatus{
		domain.RentalStatusInUse,
		domain.RentalStatusReturned,
		domain.RentalStatusCancelled,
		domain.RentalStatusClosed,
	}

	for _, status := range tests {
		t.Run(string(status), func(t *testing.T) {
			rental := bookedRental()
			rental.Status = status

			uc := NewUseCase(
				&fakeRentalRepo{rental: rental},
				&fakeCheckRepo{},
				&fakeEvidenceClient{},
				&fakeVehicleClient{},
				&fakeTxManager{},
				nopLogger{},
			)

			_, err := uc.Execute(context.Background(), pickupRequest())
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestExecute_CheckAlreadyRecorded(t *testing.T) {
	t.Run("existing check found before insert", func(t *testing.T) {
		rentals := &fakeRentalRepo{rental: bookedRental()}
		checks := &fakeCheckRepo{exists: true}

		uc := NewUseCase(rentals, checks, &fakeEvidenceClient{}, &fakeVehicleClient{}, &fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), pickupRequest())
		assert.ErrorIs(t, err, ErrCheckAlreadyRecorded)
		assert.Nil(t, checks.created)
		assert.Nil(t, rentals.pickedUpAt)
	})

	t.Run("concurrent insert loses on unique index", func(t *testing.T) {
		rentals := &fakeRentalRepo{rental: bookedRental()}
		checks := &fakeCheckRepo{createErr: checkRepo.ErrCheckAlreadyExists}

		uc := NewUseCase(rentals, checks, &fakeEvidenceClient{}, &fakeVehicleClient{}, &fakeTxManager{}, nopLogger{})

		_, err := uc.Execute(context.Background(), pickupRequest())
		assert.ErrorIs(t, err, ErrCheckAlreadyRecorded)
		assert.Nil(t, rentals.pickedUpAt)
	})
}

func TestExecute_RentalNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeRentalRepo{getErr: rentalRepo.ErrRentalNotFound},
		&fakeCheckRepo{},
		&fakeEvidenceClient{},
		&fakeVehicleClient{},
		&fakeTxManager{},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), pickupRequest())
	assert.ErrorIs(t, err, ErrRentalNotFound)
}

func TestExecute_EmptyConditionReport(t *testing.T) {
	uc := NewUseCase(
		&fakeRentalRepo{rental: bookedRental()},
		&fakeCheckRepo{},
		&fakeEvidenceClient{},
		&fakeVehicleClient{},
		&fakeTxManager{},
		nopLogger{},
	)

	req := pickupRequest()
	req.ConditionReport = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
