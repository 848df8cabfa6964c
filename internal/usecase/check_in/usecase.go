package check_in

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	reservationRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/reservation"
	vehicleClient "github.com/m04kA/SMC-RentalService/internal/integrations/vehicleservice"
)

// UseCase use case для check-in: создание rental из reservation или walk-in
type UseCase struct {
	rentalRepo      RentalRepository
	reservationRepo ReservationRepository
	vehicleClient   VehicleServiceClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	rentalRepo RentalRepository,
	reservationRepo ReservationRepository,
	vehicleClient VehicleServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		rentalRepo:      rentalRepo,
		reservationRepo: reservationRepo,
		vehicleClient:   vehicleClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case check-in
// Использует сериализуемую транзакцию: проверка занятости транспортного средства
// и создание rental атомарны, два конкурентных check-in на одно средство не пройдут оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckIn: renter=%d, vehicle=%d, station=%d, reservation=%v",
		req.RenterID, req.VehicleID, req.StationPickupID, req.ReservationID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckIn: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование транспортного средства
	vehicle, err := uc.vehicleClient.GetVehicle(ctx, req.VehicleID)
	if err != nil {
		if errors.Is(err, vehicleClient.ErrVehicleNotFound) {
			uc.logger.Warn("CheckIn: vehicle id=%d not found", req.VehicleID)
			return nil, ErrVehicleNotFound
		}
		uc.logger.Error("CheckIn: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 3. Средство на обслуживании выдавать нельзя
	if vehicle.Status == vehicleClient.VehicleStatusMaintenance {
		uc.logger.Warn("CheckIn: vehicle id=%d is under maintenance", req.VehicleID)
		return nil, fmt.Errorf("%w: vehicle id=%d is under maintenance", ErrVehicleUnavailable, req.VehicleID)
	}

	// 4. Запланированное начало по умолчанию - текущее время
	scheduledStart := req.ScheduledStartAt
	if scheduledStart.IsZero() {
		scheduledStart = uc.timeProvider.Now()
	}

	var result *domain.Rental

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Если check-in по reservation, блокируем и валидируем ее
		if req.ReservationID != nil {
			res, err := uc.reservationRepo.GetByID(txCtx, *req.ReservationID)
			if err != nil {
				if errors.Is(err, reservationRepo.ErrReservationNotFound) {
					uc.logger.Warn("CheckIn: reservation id=%d not found", *req.ReservationID)
					return fmt.Errorf("%w: reservation id=%d", ErrReservationNotFound, *req.ReservationID)
				}
				uc.logger.Error("CheckIn: failed to get reservation id=%d: %v", *req.ReservationID, err)
				return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
			}

			if err := validateReservation(res, req); err != nil {
				uc.logger.Warn("CheckIn: reservation validation failed: %v", err)
				return err
			}
		}

		// 5.2. Проверяем, что транспортное средство не занято активным rental
		// Строка активного rental блокируется FOR UPDATE
		_, err := uc.rentalRepo.GetActiveByVehicleID(txCtx, req.VehicleID)
		if err == nil {
			uc.logger.Warn("CheckIn: vehicle id=%d is occupied by an active rental", req.VehicleID)
			return fmt.Errorf("%w: vehicle id=%d is occupied", ErrVehicleUnavailable, req.VehicleID)
		}
		if !errors.Is(err, rentalRepo.ErrRentalNotFound) {
			uc.logger.Error("CheckIn: failed to check vehicle id=%d occupancy: %v", req.VehicleID, err)
			return fmt.Errorf("%w: failed to check vehicle occupancy: %v", ErrInternal, err)
		}

		// 5.3. Создаем rental в статусе booked
		rental := &domain.Rental{
			RenterID:          req.RenterID,
			VehicleID:         req.VehicleID,
			StationPickupID:   req.StationPickupID,
			ReservationID:     req.ReservationID,
			ScheduledStartAt:  scheduledStart,
			ScheduledReturnAt: req.ScheduledReturnAt,
			Status:            domain.RentalStatusBooked,
			DepositAmount:     req.DepositAmount,
		}

		created, err := uc.rentalRepo.Create(txCtx, rental)
		if err != nil {
			uc.logger.Error("CheckIn: failed to create rental: %v", err)
			return fmt.Errorf("%w: failed to create rental: %v", ErrInternal, err)
		}

		// 5.4. Консумируем reservation обратной ссылкой на rental
		// Запись остается в таблице как audit trail
		if req.ReservationID != nil {
			if err := uc.reservationRepo.MarkConsumed(txCtx, *req.ReservationID, created.ID); err != nil {
				if errors.Is(err, reservationRepo.ErrAlreadyConsumed) {
					uc.logger.Warn("CheckIn: reservation id=%d already consumed", *req.ReservationID)
					return fmt.Errorf("%w: reservation id=%d already consumed",
						ErrInvalidReservationState, *req.ReservationID)
				}
				uc.logger.Error("CheckIn: failed to consume reservation id=%d: %v", *req.ReservationID, err)
				return fmt.Errorf("%w: failed to consume reservation: %v", ErrInternal, err)
			}
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CheckIn: successfully created rental id=%d for vehicle id=%d", result.ID, result.VehicleID)

	return &Response{
		ID:                result.ID,
		RenterID:          result.RenterID,
		VehicleID:         result.VehicleID,
		StationPickupID:   result.StationPickupID,
		ReservationID:     result.ReservationID,
		ScheduledStartAt:  result.ScheduledStartAt,
		ScheduledReturnAt: result.ScheduledReturnAt,
		Status:            string(result.Status),
		DepositAmount:     result.DepositAmount,
		CreatedAt:         result.CreatedAt,
		UpdatedAt:         result.UpdatedAt,
	}, nil
}
