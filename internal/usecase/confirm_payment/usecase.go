package confirm_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	billRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/bill"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
)

// UseCase use case для подтверждения оплаты и закрытия rental
// Сам платеж проводится внешней платежной системой; здесь фиксируется факт
type UseCase struct {
	rentalRepo RentalRepository
	billRepo   BillRepository
	txManager  TransactionManager
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rentalRepo RentalRepository,
	billRepo BillRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		rentalRepo: rentalRepo,
		billRepo:   billRepo,
		txManager:  txManager,
		logger:     logger,
	}
}

// Execute выполняет use case подтверждения оплаты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPayment: rental=%d", req.RentalID)

	if req.RentalID <= 0 {
		uc.logger.Warn("ConfirmPayment: invalid rentalID=%d", req.RentalID)
		return nil, fmt.Errorf("%w: rentalID must be positive", ErrInvalidInput)
	}

	var paid *domain.Bill

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Блокируем строку rental
		rental, err := uc.rentalRepo.GetByID(txCtx, req.RentalID)
		if err != nil {
			if errors.Is(err, rentalRepo.ErrRentalNotFound) {
				uc.logger.Warn("ConfirmPayment: rental id=%d not found", req.RentalID)
				return fmt.Errorf("%w: rental id=%d", ErrRentalNotFound, req.RentalID)
			}
			uc.logger.Error("ConfirmPayment: failed to get rental id=%d: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to get rental: %v", ErrInternal, err)
		}

		// 2. Повторное подтверждение отклоняется отдельной ошибкой
		if rental.Status == domain.RentalStatusClosed {
			uc.logger.Warn("ConfirmPayment: rental id=%d is already closed", req.RentalID)
			return fmt.Errorf("%w: rental id=%d", ErrAlreadyClosed, req.RentalID)
		}

		// 3. Закрытие допустимо только после возврата
		if !rental.IsBillable() {
			uc.logger.Warn("ConfirmPayment: rental id=%d status=%s", req.RentalID, rental.Status)
			return fmt.Errorf("%w: rental id=%d status=%s", ErrInvalidTransition, req.RentalID, rental.Status)
		}

		// 4. Оплата требует рассчитанного bill - актуален последний снапшот
		latest, err := uc.billRepo.GetLatestByRentalID(txCtx, req.RentalID)
		if err != nil {
			if errors.Is(err, billRepo.ErrBillNotFound) {
				uc.logger.Warn("ConfirmPayment: no bill computed for rental id=%d", req.RentalID)
				return fmt.Errorf("%w: rental id=%d", ErrBillNotComputed, req.RentalID)
			}
			uc.logger.Error("ConfirmPayment: failed to get bill for rental id=%d: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to get bill: %v", ErrInternal, err)
		}

		// 5. Закрываем rental
		if err := uc.rentalRepo.UpdateStatus(txCtx, req.RentalID, domain.RentalStatusClosed); err != nil {
			uc.logger.Error("ConfirmPayment: failed to close rental id=%d: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to close rental: %v", ErrInternal, err)
		}

		paid = latest
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("ConfirmPayment: rental id=%d closed, bill id=%d, total=%d", req.RentalID, paid.ID, paid.TotalDue)

	return &Response{
		RentalID:   req.RentalID,
		Status:     string(domain.RentalStatusClosed),
		BillID:     paid.ID,
		TotalPaid:  paid.TotalDue,
		RefundDue:  paid.RefundDue,
		ComputedAt: paid.ComputedAt,
	}, nil
}
