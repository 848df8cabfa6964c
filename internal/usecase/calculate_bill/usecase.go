package calculate_bill

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	vehicleClient "github.com/m04kA/SMC-RentalService/internal/integrations/vehicleservice"
)

// UseCase use case для расчета bill
// Расчет - чистая функция состояния ledger: одинаковое состояние дает
// одинаковые суммы. Каждый вызов пересчитывает с нуля и добавляет снапшот
type UseCase struct {
	rentalRepo       RentalRepository
	violationRepo    ViolationRepository
	depositRepo      DepositRepository
	billRepo         BillRepository
	vehicleClient    VehicleServiceClient
	txManager        TransactionManager
	defaultUnitMin   int
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
// defaultUnitMinutes - биллинговая единица из конфигурации (0 = часовая)
func NewUseCase(
	rentalRepo RentalRepository,
	violationRepo ViolationRepository,
	depositRepo DepositRepository,
	billRepo BillRepository,
	vehicleClient VehicleServiceClient,
	txManager TransactionManager,
	defaultUnitMinutes int,
	logger Logger,
) *UseCase {
	if defaultUnitMinutes <= 0 {
		defaultUnitMinutes = domain.DefaultBillingUnitMinutes
	}
	return &UseCase{
		rentalRepo:     rentalRepo,
		violationRepo:  violationRepo,
		depositRepo:    depositRepo,
		billRepo:       billRepo,
		vehicleClient:  vehicleClient,
		txManager:      txManager,
		defaultUnitMin: defaultUnitMinutes,
		logger:         logger,
	}
}

// Execute выполняет use case расчета bill
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CalculateBill: rental=%d, unitMinutes=%d", req.RentalID, req.UnitMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CalculateBill: validation failed: %v", err)
		return nil, err
	}

	unitMinutes := req.UnitMinutes
	if unitMinutes == 0 {
		unitMinutes = uc.defaultUnitMin
	}

	// 2. Читаем rental без блокировки, чтобы узнать транспортное средство
	// VehicleID после создания не меняется, тариф можно получить до транзакции
	preview, err := uc.rentalRepo.GetByID(ctx, req.RentalID)
	if err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			uc.logger.Warn("CalculateBill: rental id=%d not found", req.RentalID)
			return nil, fmt.Errorf("%w: rental id=%d", ErrRentalNotFound, req.RentalID)
		}
		uc.logger.Error("CalculateBill: failed to get rental id=%d: %v", req.RentalID, err)
		return nil, fmt.Errorf("%w: failed to get rental: %v", ErrInternal, err)
	}

	// 3. Получаем тариф транспортного средства
	vehicle, err := uc.vehicleClient.GetVehicle(ctx, preview.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleClient.ErrVehicleNotFound) {
			uc.logger.Warn("CalculateBill: vehicle id=%d not found", preview.VehicleID)
			return nil, fmt.Errorf("%w: vehicle id=%d", ErrVehicleNotFound, preview.VehicleID)
		}
		uc.logger.Error("CalculateBill: failed to get vehicle id=%d: %v", preview.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	var (
		result *domain.Bill
		status domain.RentalStatus
	)

	// 4. Пересчет по ledger и сохранение снапшота в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Блокируем строку rental и перепроверяем статус
		locked, err := uc.rentalRepo.GetByID(txCtx, req.RentalID)
		if err != nil {
			if errors.Is(err, rentalRepo.ErrRentalNotFound) {
				return fmt.Errorf("%w: rental id=%d", ErrRentalNotFound, req.RentalID)
			}
			uc.logger.Error("CalculateBill: failed to lock rental id=%d: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to get rental: %v", ErrInternal, err)
		}

		if !locked.IsBillable() {
			uc.logger.Warn("CalculateBill: rental id=%d status=%s", req.RentalID, locked.Status)
			return fmt.Errorf("%w: rental id=%d status=%s", ErrInvalidTransition, req.RentalID, locked.Status)
		}

		if locked.ActualReturnAt == nil {
			uc.logger.Error("CalculateBill: rental id=%d has no actual return time", req.RentalID)
			return fmt.Errorf("%w: rental id=%d has no actual return time", ErrInternal, req.RentalID)
		}

		// 4.2. Оплачиваемая длительность: от фактической выдачи (или запланированного
		// начала, если выдача не фиксировалась) до фактического возврата,
		// неполные единицы округляются вверх, минимум одна единица
		units := billedUnits(locked.EffectiveStartAt(), *locked.ActualReturnAt, unitMinutes)

		// 4.3. Начисления за violation
		violationSum, err := uc.violationRepo.SumByRentalID(txCtx, req.RentalID)
		if err != nil {
			uc.logger.Error("CalculateBill: failed to sum violations for rental id=%d: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to sum violations: %v", ErrInternal, err)
		}

		// 4.4. Удержанный депозит зачитывается в счет оплаты
		outstanding, err := uc.depositRepo.OutstandingAmount(txCtx, req.RentalID)
		if err != nil {
			uc.logger.Error("CalculateBill: failed to get outstanding deposit for rental id=%d: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to get outstanding deposit: %v", ErrInternal, err)
		}

		// Тариф часовой, единица может быть любой: оплачиваемые единицы
		// переводятся в минуты, неполная денежная единица округляется вверх
		billedMinutes := units * int64(unitMinutes)
		baseCharge := (vehicle.RatePerHour*billedMinutes + minutesPerHour - 1) / minutesPerHour
		gross := baseCharge + violationSum

		totalDue := gross - outstanding
		refundDue := int64(0)
		if totalDue < 0 {
			refundDue = -totalDue
			totalDue = 0
		}

		// 4.5. Сохраняем снапшот
		created, err := uc.billRepo.Create(txCtx, &domain.Bill{
			RentalID:          req.RentalID,
			BilledUnits:       units,
			RatePerHour:       vehicle.RatePerHour,
			BaseCharge:        baseCharge,
			ViolationSubtotal: violationSum,
			DepositAdjustment: outstanding,
			TotalDue:          totalDue,
			RefundDue:         refundDue,
		})
		if err != nil {
			uc.logger.Error("CalculateBill: failed to persist bill for rental id=%d: %v", req.RentalID, err)
			return fmt.Errorf("%w: failed to persist bill: %v", ErrInternal, err)
		}

		// 4.6. Первый расчет переводит rental в ожидание оплаты
		status = locked.Status
		if locked.Status == domain.RentalStatusReturned {
			if err := uc.rentalRepo.UpdateStatus(txCtx, req.RentalID, domain.RentalStatusWaitingForPayment); err != nil {
				uc.logger.Error("CalculateBill: failed to update status for rental id=%d: %v", req.RentalID, err)
				return fmt.Errorf("%w: failed to update rental status: %v", ErrInternal, err)
			}
			status = domain.RentalStatusWaitingForPayment
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CalculateBill: rental id=%d bill id=%d total=%d refund=%d",
		req.RentalID, result.ID, result.TotalDue, result.RefundDue)

	return &Response{
		BillID:            result.ID,
		RentalID:          result.RentalID,
		Status:            string(status),
		BilledUnits:       result.BilledUnits,
		RatePerHour:       result.RatePerHour,
		BaseCharge:        result.BaseCharge,
		ViolationSubtotal: result.ViolationSubtotal,
		DepositAdjustment: result.DepositAdjustment,
		TotalDue:          result.TotalDue,
		RefundDue:         result.RefundDue,
		ComputedAt:        result.ComputedAt,
	}, nil
}

const minutesPerHour = 60

// billedUnits считает количество оплачиваемых единиц между двумя моментами
// Неполная единица оплачивается целиком; минимум одна единица
func billedUnits(from, to time.Time, unitMinutes int) int64 {
	duration := to.Sub(from)
	if duration <= 0 {
		return domain.MinBilledUnits
	}

	unit := time.Duration(unitMinutes) * time.Minute
	units := int64(duration / unit)
	if duration%unit > 0 {
		units++
	}
	if units < domain.MinBilledUnits {
		units = domain.MinBilledUnits
	}

	return units
}
