package confirm_return

import (
	"fmt"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RentalID <= 0 {
		return fmt.Errorf("%w: rentalID must be positive", ErrInvalidInput)
	}

	if req.StationReturnID != nil && *req.StationReturnID <= 0 {
		return fmt.Errorf("%w: stationReturnID must be positive", ErrInvalidInput)
	}

	if req.ConditionReport == "" {
		return fmt.Errorf("%w: conditionReport is required", ErrInvalidInput)
	}

	if len(req.ConditionReport) > domain.MaxConditionReportLength {
		return fmt.Errorf("%w: conditionReport exceeds %d characters", ErrInvalidInput, domain.MaxConditionReportLength)
	}

	if req.PhotoRef == "" || req.StaffSigRef == "" || req.CustomerSigRef == "" {
		return fmt.Errorf("%w: photoRef, staffSigRef and customerSigRef are required", ErrEvidenceIncomplete)
	}

	return nil
}
