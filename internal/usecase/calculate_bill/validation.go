package calculate_bill

import (
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RentalID <= 0 {
		return fmt.Errorf("%w: rentalID must be positive", ErrInvalidInput)
	}

	if req.UnitMinutes < 0 {
		return fmt.Errorf("%w: unitMinutes must not be negative", ErrInvalidInput)
	}

	if req.UnitMinutes != 0 &&
		(req.UnitMinutes < domain.MinBillingUnitMinutes || req.UnitMinutes > domain.MaxBillingUnitMinutes) {
		return fmt.Errorf("%w: unitMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinBillingUnitMinutes, domain.MaxBillingUnitMinutes)
	}

	return nil
}
