package confirm_pickup

import (
	"time"

	confirmPickup "github.com/m04kA/SMC-RentalService/internal/usecase/confirm_pickup"
)

// ConfirmPickupRequest HTTP request model
// Ссылки на evidence получены заранее через POST /api/v1/staff/evidence
type ConfirmPickupRequest struct {
	RentalID        int64  `json:"rentalId"`
	ConditionReport string `json:"conditionReport"`
	PhotoRef        string `json:"photoRef"`
	StaffSigRef     string `json:"staffSigRef"`
	CustomerSigRef  string `json:"customerSigRef"`
}

// ConfirmPickupResponse HTTP response model
type ConfirmPickupResponse struct {
	RentalID      int64     `json:"rentalId"`
	Status        string    `json:"status"`
	ActualStartAt time.Time `json:"actualStartAt"`
	CheckID       int64     `json:"checkId"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ConfirmPickupRequest) ToUseCaseRequest() *confirmPickup.Request {
	return &confirmPickup.Request{
		RentalID:        r.RentalID,
		ConditionReport: r.ConditionReport,
		PhotoRef:        r.PhotoRef,
		StaffSigRef:     r.StaffSigRef,
		CustomerSigRef:  r.CustomerSigRef,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPickup.Response) *ConfirmPickupResponse {
	return &ConfirmPickupResponse{
		RentalID:      resp.RentalID,
		Status:        resp.Status,
		ActualStartAt: resp.ActualStartAt,
		CheckID:       resp.CheckID,
	}
}
