package check_in

import (
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RenterID <= 0 {
		return fmt.Errorf("%w: renterID must be positive", ErrInvalidInput)
	}

	if req.VehicleID <= 0 {
		return fmt.Errorf("%w: vehicleID must be positive", ErrInvalidInput)
	}

	if req.StationPickupID <= 0 {
		return fmt.Errorf("%w: stationPickupID must be positive", ErrInvalidInput)
	}

	if req.ReservationID != nil && *req.ReservationID <= 0 {
		return fmt.Errorf("%w: reservationID must be positive", ErrInvalidInput)
	}

	if req.DepositAmount < 0 {
		return fmt.Errorf("%w: depositAmount must not be negative", ErrInvalidInput)
	}

	// Запланированный возврат не может предшествовать началу
	if req.ScheduledReturnAt != nil && !req.ScheduledStartAt.IsZero() &&
		req.ScheduledReturnAt.Before(req.ScheduledStartAt) {
		return fmt.Errorf("%w: scheduledReturnAt must not be before scheduledStartAt", ErrInvalidInput)
	}

	return nil
}

// validateReservation проверяет, что reservation можно консумировать этим запросом
func validateReservation(res *domain.Reservation, req *Request) error {
	if !res.CanBeConsumed() {
		return fmt.Errorf("%w: reservation id=%d status=%s consumed=%t",
			ErrInvalidReservationState, res.ID, res.Status, res.IsConsumed())
	}

	// Reservation должна принадлежать арендатору из запроса
	if res.RenterID != req.RenterID {
		return fmt.Errorf("%w: reservation id=%d belongs to another renter", ErrInvalidReservationState, res.ID)
	}

	// Если за reservation закреплено конкретное транспортное средство, оно должно совпадать
	if res.VehicleID != nil && *res.VehicleID != req.VehicleID {
		return fmt.Errorf("%w: reservation id=%d is bound to vehicle id=%d",
			ErrInvalidReservationState, res.ID, *res.VehicleID)
	}

	return nil
}
