package rentals

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	rentalRepo "github.com/m04kA/SMC-RentalService/internal/infra/storage/rental"
	"github.com/m04kA/SMC-RentalService/internal/integrations/vehicleservice"
	"github.com/m04kA/SMC-RentalService/internal/service/rentals/models"
)

// Service сервис для работы с rental: листинг, отмена, депозитный ledger, violation
// Все мутирующие операции выполняются в SERIALIZABLE транзакции с блокировкой
// строки rental - это критическая секция, сериализующая конкурентные операции
// над одним rental
type Service struct {
	rentalRepo    RentalRepository
	depositRepo   DepositRepository
	violationRepo ViolationRepository
	vehicleClient VehicleServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса rental
func NewService(
	rentalRepo RentalRepository,
	depositRepo DepositRepository,
	violationRepo ViolationRepository,
	vehicleClient VehicleServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		rentalRepo:    rentalRepo,
		depositRepo:   depositRepo,
		violationRepo: violationRepo,
		vehicleClient: vehicleClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// List получает список rental по фильтру
func (s *Service) List(ctx context.Context, req *models.ListRentalsRequest) (*models.RentalListResponse, error) {
	s.logger.Info("List: fetching rentals, renter=%v, vehicle=%v, status=%v",
		req.RenterID, req.VehicleID, req.Status)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	rentals, err := s.rentalRepo.GetByFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d rentals", len(rentals))
	return models.FromDomainRentalList(rentals), nil
}

// Cancel отменяет rental
// Допустимо только из booked и in_use. Удержанный депозит помечается к возврату
// записью в ledger в той же транзакции; фактический перевод денег - забота
// внешней платежной системы
func (s *Service) Cancel(ctx context.Context, rentalID int64) (*models.RentalResponse, error) {
	s.logger.Info("Cancel: cancelling rental id=%d", rentalID)

	var (
		cancelled   *domain.Rental
		outstanding int64
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		rental, err := s.getRentalLocked(txCtx, rentalID, "Cancel")
		if err != nil {
			return err
		}

		if !rental.CanBeCancelled() {
			s.logger.Warn("Cancel: rental id=%d cannot be cancelled, status=%s", rentalID, rental.Status)
			return fmt.Errorf("%w: rental id=%d status=%s", ErrInvalidTransition, rentalID, rental.Status)
		}

		held, err := s.depositRepo.OutstandingAmount(txCtx, rentalID)
		if err != nil {
			s.logger.Error("Cancel: failed to get outstanding deposit for rental id=%d: %v", rentalID, err)
			return fmt.Errorf("%w: Cancel - deposit ledger error: %v", ErrInternal, err)
		}

		// Удержанный депозит подлежит возврату при отмене
		if held > 0 {
			record := &domain.DepositRecord{
				RentalID:  rentalID,
				Direction: domain.DepositReturn,
				Amount:    held,
			}
			if _, err := s.depositRepo.Create(txCtx, record); err != nil {
				s.logger.Error("Cancel: failed to schedule deposit return for rental id=%d: %v", rentalID, err)
				return fmt.Errorf("%w: Cancel - deposit ledger error: %v", ErrInternal, err)
			}
			s.logger.Info("Cancel: scheduled deposit return of %d for rental id=%d", held, rentalID)
		}

		if err := s.rentalRepo.UpdateStatus(txCtx, rentalID, domain.RentalStatusCancelled); err != nil {
			s.logger.Error("Cancel: failed to update status for rental id=%d: %v", rentalID, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		rental.Status = domain.RentalStatusCancelled
		cancelled = rental
		outstanding = 0
		return nil
	})

	if err != nil {
		return nil, err
	}

	// Освобождаем транспортное средство после коммита
	// Неудача не откатывает отмену - расхождение чинится синхронизацией статусов
	if err := s.vehicleClient.UpdateStatus(ctx, cancelled.VehicleID, vehicleservice.VehicleStatusAvailable); err != nil {
		s.logger.Warn("Cancel: failed to release vehicle id=%d: %v", cancelled.VehicleID, err)
	}

	s.logger.Info("Cancel: successfully cancelled rental id=%d", rentalID)
	return models.FromDomainRental(cancelled, outstanding), nil
}

// HoldDeposit удерживает депозит по rental
// Инвариант: не больше одного активного hold на rental - повторный hold
// при ненулевом балансе отклоняется
// amount = 0 означает сумму, согласованную при check-in
func (s *Service) HoldDeposit(ctx context.Context, rentalID int64, req *models.HoldDepositRequest) (*models.RentalResponse, error) {
	s.logger.Info("HoldDeposit: holding deposit for rental id=%d, amount=%d", rentalID, req.Amount)

	if req.Amount < 0 {
		s.logger.Warn("HoldDeposit: negative amount=%d for rental id=%d", req.Amount, rentalID)
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	var (
		result      *domain.Rental
		outstanding int64
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		rental, err := s.getRentalLocked(txCtx, rentalID, "HoldDeposit")
		if err != nil {
			return err
		}

		if rental.IsTerminal() {
			s.logger.Warn("HoldDeposit: rental id=%d is terminal, status=%s", rentalID, rental.Status)
			return fmt.Errorf("%w: rental id=%d status=%s", ErrInvalidTransition, rentalID, rental.Status)
		}

		amount := req.Amount
		if amount == 0 {
			amount = rental.DepositAmount
		}
		if amount <= 0 {
			s.logger.Warn("HoldDeposit: no deposit amount for rental id=%d", rentalID)
			return fmt.Errorf("%w: deposit amount must be positive", ErrInvalidInput)
		}

		held, err := s.depositRepo.OutstandingAmount(txCtx, rentalID)
		if err != nil {
			s.logger.Error("HoldDeposit: failed to get outstanding deposit for rental id=%d: %v", rentalID, err)
			return fmt.Errorf("%w: HoldDeposit - deposit ledger error: %v", ErrInternal, err)
		}

		if held > 0 {
			s.logger.Warn("HoldDeposit: rental id=%d already has outstanding deposit=%d", rentalID, held)
			return fmt.Errorf("%w: rental id=%d outstanding=%d", ErrDepositAlreadyHeld, rentalID, held)
		}

		record := &domain.DepositRecord{
			RentalID:  rentalID,
			Direction: domain.DepositHold,
			Amount:    amount,
		}
		if _, err := s.depositRepo.Create(txCtx, record); err != nil {
			s.logger.Error("HoldDeposit: failed to append hold for rental id=%d: %v", rentalID, err)
			return fmt.Errorf("%w: HoldDeposit - deposit ledger error: %v", ErrInternal, err)
		}

		result = rental
		outstanding = amount
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("HoldDeposit: successfully held %d for rental id=%d", outstanding, rentalID)
	return models.FromDomainRental(result, outstanding), nil
}

// ReturnDeposit возвращает депозит по rental
// amount = 0 означает возврат всей удержанной суммы
// Баланс ledger никогда не уходит в минус
func (s *Service) ReturnDeposit(ctx context.Context, rentalID int64, req *models.ReturnDepositRequest) (*models.RentalResponse, error) {
	s.logger.Info("ReturnDeposit: returning deposit for rental id=%d, amount=%d", rentalID, req.Amount)

	if req.Amount < 0 {
		s.logger.Warn("ReturnDeposit: negative amount=%d for rental id=%d", req.Amount, rentalID)
		return nil, fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}

	var (
		result      *domain.Rental
		outstanding int64
	)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		rental, err := s.getRentalLocked(txCtx, rentalID, "ReturnDeposit")
		if err != nil {
			return err
		}

		held, err := s.depositRepo.OutstandingAmount(txCtx, rentalID)
		if err != nil {
			s.logger.Error("ReturnDeposit: failed to get outstanding deposit for rental id=%d: %v", rentalID, err)
			return fmt.Errorf("%w: ReturnDeposit - deposit ledger error: %v", ErrInternal, err)
		}

		if held <= 0 {
			s.logger.Warn("ReturnDeposit: no deposit held for rental id=%d", rentalID)
			return fmt.Errorf("%w: rental id=%d status=%s", ErrNoDepositHeld, rentalID, rental.Status)
		}

		amount := req.Amount
		if amount == 0 {
			amount = held
		}
		if amount > held {
			s.logger.Warn("ReturnDeposit: amount=%d exceeds outstanding=%d for rental id=%d", amount, held, rentalID)
			return fmt.Errorf("%w: rental id=%d amount=%d outstanding=%d", ErrDepositOverreturn, rentalID, amount, held)
		}

		record := &domain.DepositRecord{
			RentalID:  rentalID,
			Direction: domain.DepositReturn,
			Amount:    amount,
		}
		if _, err := s.depositRepo.Create(txCtx, record); err != nil {
			s.logger.Error("ReturnDeposit: failed to append return for rental id=%d: %v", rentalID, err)
			return fmt.Errorf("%w: ReturnDeposit - deposit ledger error: %v", ErrInternal, err)
		}

		result = rental
		outstanding = held - amount
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("ReturnDeposit: successfully returned deposit for rental id=%d, outstanding=%d", rentalID, outstanding)
	return models.FromDomainRental(result, outstanding), nil
}

// AddViolation добавляет violation к rental
// Сумма должна быть положительной; терминальные rental не принимают новые violation
func (s *Service) AddViolation(ctx context.Context, req *models.AddViolationRequest) (*models.ViolationResponse, error) {
	s.logger.Info("AddViolation: adding violation to rental id=%d, amount=%d, staff=%d",
		req.RentalID, req.Amount, req.RecordedBy)

	if req.Amount <= 0 {
		s.logger.Warn("AddViolation: non-positive amount=%d for rental id=%d", req.Amount, req.RentalID)
		return nil, fmt.Errorf("%w: amount must be positive", ErrInvalidInput)
	}
	if req.Description == "" {
		s.logger.Warn("AddViolation: empty description for rental id=%d", req.RentalID)
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	}
	if len(req.Description) > domain.MaxViolationDescriptionLength {
		s.logger.Warn("AddViolation: description too long for rental id=%d", req.RentalID)
		return nil, fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxViolationDescriptionLength)
	}

	var created *domain.Violation

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		rental, err := s.getRentalLocked(txCtx, req.RentalID, "AddViolation")
		if err != nil {
			return err
		}

		if rental.IsTerminal() {
			s.logger.Warn("AddViolation: rental id=%d is terminal, status=%s", req.RentalID, rental.Status)
			return fmt.Errorf("%w: rental id=%d status=%s", ErrInvalidTransition, req.RentalID, rental.Status)
		}

		v := &domain.Violation{
			RentalID:    req.RentalID,
			Description: req.Description,
			Amount:      req.Amount,
			RecordedBy:  req.RecordedBy,
		}
		created, err = s.violationRepo.Create(txCtx, v)
		if err != nil {
			s.logger.Error("AddViolation: failed to create violation for rental id=%d: %v", req.RentalID, err)
			return fmt.Errorf("%w: AddViolation - repository error: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("AddViolation: successfully added violation id=%d to rental id=%d", created.ID, req.RentalID)
	return models.FromDomainViolation(created), nil
}

// ListViolations возвращает все violation rental в порядке добавления
// Чтение выполняется в read-only транзакции для консистентного снимка
func (s *Service) ListViolations(ctx context.Context, rentalID int64) (*models.ViolationListResponse, error) {
	s.logger.Info("ListViolations: fetching violations for rental id=%d", rentalID)

	var violations []*domain.Violation

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		if _, err := s.rentalRepo.GetByID(txCtx, rentalID); err != nil {
			if errors.Is(err, rentalRepo.ErrRentalNotFound) {
				s.logger.Warn("ListViolations: rental id=%d not found", rentalID)
				return fmt.Errorf("%w: rental id=%d", ErrRentalNotFound, rentalID)
			}
			s.logger.Error("ListViolations: repository error for rental id=%d: %v", rentalID, err)
			return fmt.Errorf("%w: ListViolations - repository error: %v", ErrInternal, err)
		}

		list, err := s.violationRepo.ListByRentalID(txCtx, rentalID)
		if err != nil {
			s.logger.Error("ListViolations: failed to list violations for rental id=%d: %v", rentalID, err)
			return fmt.Errorf("%w: ListViolations - repository error: %v", ErrInternal, err)
		}

		violations = list
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("ListViolations: successfully fetched %d violations for rental id=%d", len(violations), rentalID)
	return models.FromDomainViolationList(violations), nil
}

// ListDeposits возвращает историю депозитных событий rental в порядке добавления
// Чтение выполняется в read-only транзакции для консистентного снимка
func (s *Service) ListDeposits(ctx context.Context, rentalID int64) (*models.DepositListResponse, error) {
	s.logger.Info("ListDeposits: fetching deposit history for rental id=%d", rentalID)

	var records []*domain.DepositRecord

	err := s.txManager.DoReadOnly(ctx, func(txCtx context.Context) error {
		if _, err := s.rentalRepo.GetByID(txCtx, rentalID); err != nil {
			if errors.Is(err, rentalRepo.ErrRentalNotFound) {
				s.logger.Warn("ListDeposits: rental id=%d not found", rentalID)
				return fmt.Errorf("%w: rental id=%d", ErrRentalNotFound, rentalID)
			}
			s.logger.Error("ListDeposits: repository error for rental id=%d: %v", rentalID, err)
			return fmt.Errorf("%w: ListDeposits - repository error: %v", ErrInternal, err)
		}

		list, err := s.depositRepo.ListByRentalID(txCtx, rentalID)
		if err != nil {
			s.logger.Error("ListDeposits: failed to list deposit records for rental id=%d: %v", rentalID, err)
			return fmt.Errorf("%w: ListDeposits - deposit ledger error: %v", ErrInternal, err)
		}

		records = list
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("ListDeposits: successfully fetched %d deposit records for rental id=%d", len(records), rentalID)
	return models.FromDomainDepositRecordList(records), nil
}

// getRentalLocked получает rental с блокировкой строки внутри транзакции
func (s *Service) getRentalLocked(ctx context.Context, rentalID int64, method string) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		if errors.Is(err, rentalRepo.ErrRentalNotFound) {
			s.logger.Warn("%s: rental id=%d not found", method, rentalID)
			return nil, fmt.Errorf("%w: rental id=%d", ErrRentalNotFound, rentalID)
		}
		s.logger.Error("%s: repository error for rental id=%d: %v", method, rentalID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return rental, nil
}
