package confirm_pickup

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	checkRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rentalcheck"
	"github.com/m04kA/SMC-RentalService/internal/integrations/vehicleservice"
)

// UseCase use case для фиксации выдачи транспортного средства
// Переход booked -> in_use и создание pickup check атомарны
type UseCase struct {
	rentalRepo     RentalRepository
	checkRepo      CheckRepository
	evidenceClient EvidenceStoreClient
	vehicleClient  VehicleServiceClient
	txManager      TransactionManager
	timeProvider   TimeProvider
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rentalRepo RentalRepository,
	checkRepo CheckRepository,
	evidenceClient EvidenceStoreClient,
	vehicleClient VehicleServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		rentalRepo:     rentalRepo,
		checkRepo:      checkRepo,
		evidenceClient: evidenceClient,
		vehicleClient:  vehicleClient,
		txManager:      txManager,
		timeProvider:   &RealTimeProvider{},
		logger:         logger,
	}
}

// Execute выполняет use case фиксации выдачи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ConfirmPickup: rental=%d", req.RentalID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ConfirmPickup: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем читаемость всех трех evidence-файлов до открытия транзакции
	if err := uc.verifyEvidence(ctx, req); err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now()

	var (
		rental *domain.Rental
		check  *domain.RentalCheck
	)

	// 3. Переход статуса и создание check в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем строку rental
		locked, err := uc.rentalRepo.GetByID(txCtx, req.RentalID)
		if err != nil {
			if errors.Is(err, rentalRepo.ErrRentalNotFound) {
				uc.logger.Warn("ConfirmPickup: rental id=%d not found", req.RentalID)
				return fmt.Errorf("%w: rental id=%d", ErrRentalNotFound, req.RentalID)
			}
			uc.logger.Error("ConfirmPickup: failed to get rental id=%d: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to get rental: %v", ErrInternal, err)
		}

		// 3.2. Выдача допустима только из booked
		if !locked.CanConfirmPickup() {
			uc.logger.Warn("ConfirmPickup: rental id=%d status=%s", req.RentalID, locked.Status)
			return fmt.Errorf("%w: rental id=%d status=%s", ErrInvalidTransition, req.RentalID, locked.Status)
		}

		// 3.3. Повторная фиксация выдачи отклоняется до вставки
		exists, err := uc.checkRepo.ExistsByRentalAndType(txCtx, req.RentalID, domain.CheckTypePickup)
		if err != nil {
			uc.logger.Error("ConfirmPickup: failed to check existing pickup check for rental id=%d: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to check existing check: %v", ErrInternal, err)
		}
		if exists {
			uc.logger.Warn("ConfirmPickup: pickup check already exists for rental id=%d", req.RentalID)
			return fmt.Errorf("%w: rental id=%d", ErrCheckAlreadyRecorded, req.RentalID)
		}

		// 3.4. Создаем evidence-запись
		// Уникальный индекс (rental_id, check_type) защищает от дублей при гонке
		created, err := uc.checkRepo.Create(txCtx, &domain.RentalCheck{
			RentalID:        req.RentalID,
			CheckType:       domain.CheckTypePickup,
			ConditionReport: req.ConditionReport,
			PhotoRef:        req.PhotoRef,
			StaffSigRef:     req.StaffSigRef,
			CustomerSigRef:  req.CustomerSigRef,
		})
		if err != nil {
			if errors.Is(err, checkRepo.ErrCheckAlreadyExists) {
				uc.logger.Warn("ConfirmPickup: pickup check already exists for rental id=%d", req.RentalID)
				return fmt.Errorf("%w: rental id=%d", ErrCheckAlreadyRecorded, req.RentalID)
			}
			uc.logger.Error("ConfirmPickup: failed to create check for rental id=%d: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to create check: %v", ErrInternal, err)
		}

		// 3.5. Переводим rental в in_use с фиксацией фактического времени выдачи
		if err := uc.rentalRepo.SetPickedUp(txCtx, req.RentalID, now); err != nil {
			uc.logger.Error("ConfirmPickup: failed to set picked up for rental id=%d: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to update rental: %v", ErrInternal, err)
		}

		rental = locked
		check = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 4. Помечаем транспортное средство выданным после коммита
	// Неудача не откатывает выдачу - расхождение чинится синхронизацией статусов
	if err := uc.vehicleClient.UpdateStatus(ctx, rental.VehicleID, vehicleservice.VehicleStatusRented); err != nil {
		uc.logger.Warn("ConfirmPickup: failed to mark vehicle id=%d as rented: %v", rental.VehicleID, err)
	}

	uc.logger.Info("ConfirmPickup: rental id=%d picked up, check id=%d", req.RentalID, check.ID)

	return &Response{
		RentalID:      req.RentalID,
		Status:        string(domain.RentalStatusInUse),
		ActualStartAt: now,
		CheckID:       check.ID,
	}, nil
}

// verifyEvidence проверяет, что все три content reference читаемы в хранилище
func (uc *UseCase) verifyEvidence(ctx context.Context, req *Request) error {
	refs := map[string]string{
		"photoRef":       req.PhotoRef,
		"staffSigRef":    req.StaffSigRef,
		"customerSigRef": req.CustomerSigRef,
	}

	for name, ref := range refs {
		exists, err := uc.evidenceClient.Exists(ctx, ref)
		if err != nil {
			uc.logger.Error("ConfirmPickup: failed to verify %s=%s: %v", name, ref, err)
			return fmt.Errorf("%w: failed to verify evidence: %v", ErrInternal, err)
		}
		if !exists {
			uc.logger.Warn("ConfirmPickup: %s=%s is not readable", name, ref)
			return fmt.Errorf("%w: %s is not readable", ErrEvidenceIncomplete, name)
		}
	}

	return nil
}
