package confirm_return

import (
	"time"

	confirmReturn "github.com/m04kA/SMC-RentalService/internal/usecase/confirm_return"
)

// ConfirmReturnRequest HTTP request model
// Ссылки на evidence получены заранее через POST /api/v1/staff/evidence
type ConfirmReturnRequest struct {
	RentalID        int64  `json:"rentalId"`
	StationReturnID *int64 `json:"stationReturnId,omitempty"`
	ConditionReport string `json:"conditionReport"`
	PhotoRef        string `json:"photoRef"`
	StaffSigRef     string `json:"staffSigRef"`
	CustomerSigRef  string `json:"customerSigRef"`
}

// ConfirmReturnResponse HTTP response model
type ConfirmReturnResponse struct {
	RentalID       int64     `json:"rentalId"`
	Status         string    `json:"status"`
	ActualReturnAt time.Time `json:"actualReturnAt"`
	CheckID        int64     `json:"checkId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmReturnRequest) ToUseCaseRequest() *confirmReturn.Request {
	return &confirmReturn.Request{
		RentalID:        r.RentalID,
		StationReturnID: r.StationReturnID,
		ConditionReport: r.ConditionReport,
		PhotoRef:        r.PhotoRef,
		StaffSigRef:     r.StaffSigRef,
		CustomerSigRef:  r.CustomerSigRef,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmReturn.Response) *ConfirmReturnResponse {
	return &ConfirmReturnResponse{
		RentalID:       resp.RentalID,
		Status:         resp.Status,
		ActualReturnAt: resp.ActualReturnAt,
		CheckID:        resp.CheckID,
	}
}
