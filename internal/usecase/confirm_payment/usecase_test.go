package confirm_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	billRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/bill"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
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

type fakeBillRepo struct {
	bill   *domain.Bill
	getErr error
}

func (f *fakeBillRepo) GetLatestByRentalID(_ context.Context, _ int64) (*domain.Bill, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.bill, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func latestBill() *domain.Bill {
	return &domain.Bill{
		ID:         3,
		RentalID:   1,
		TotalDue:   170000,
		RefundDue:  0,
		ComputedAt: time.Date(2025, 6, 1, 13, 0, 0, 0, time.UTC),
	}
}

func TestExecute_Success(t *testing.T) {
	rentals := &fakeRentalRepo{rental: &domain.Rental{ID: 1, Status: domain.RentalStatusWaitingForPayment}}
	bills := &fakeBillRepo{bill: latestBill()}

	uc := NewUseCase(rentals, bills, &fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{RentalID: 1})
	require.NoError(t, err)

	assert.Equal(t, string(domain.RentalStatusClosed), resp.Status)
	assert.Equal(t, int64(3), resp.BillID)
	assert.Equal(t, int64(170000), resp.TotalPaid)

	require.NotNil(t, rentals.updatedStatus)
	assert.Equal(t, domain.RentalStatusClosed, *rentals.updatedStatus)
}

func TestExecute_ReturnedWithoutBill(t *testing.T) {
	rentals := &fakeRentalRepo{rental: &domain.Rental{ID: 1, Status: domain.RentalStatusReturned}}
	bills := &fakeBillRepo{getErr: billRepo.ErrBillNotFound}

	uc := NewUseCase(rentals, bills, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RentalID: 1})
	assert.ErrorIs(t, err, ErrBillNotComputed)
	assert.Nil(t, rentals.updatedStatus)
}

func TestExecute_AlreadyClosed(t *testing.T) {
	rentals := &fakeRentalRepo{rental: &domain.Rental{ID: 1, Status: domain.RentalStatusClosed}}

	uc := NewUseCase(rentals, &fakeBillRepo{bill: latestBill()}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RentalID: 1})
	assert.ErrorIs(t, err, ErrAlreadyClosed)
}

func TestExecute_NotBillable(t *testing.T) {
	tests := []domain.RentalStatus{
		domain.RentalStatusBooked,
		domain.RentalStatusInUse,
		domain.RentalStatusCancelled,
	}

	for _, status := range tests {
		t.Run(string(status), func(t *testing.T) {
			rentals := &fakeRentalRepo{rental: &domain.Rental{ID: 1, Status: status}}

			uc := NewUseCase(rentals, &fakeBillRepo{bill: latestBill()}, &fakeTxManager{}, nopLogger{})

			_, err := uc.Execute(context.Background(), &Request{RentalID: 1})
			assert.ErrorIs(t, err, ErrInvalidTransition)
		})
	}
}

func TestExecute_RentalNotFound(t *testing.T) {
	rentals := &fakeRentalRepo{getErr: rentalRepo.ErrRentalNotFound}

	uc := NewUseCase(rentals, &fakeBillRepo{bill: latestBill()}, &fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{RentalID: 1})
	assert.ErrorIs(t, err, ErrRentalNotFound)
}
