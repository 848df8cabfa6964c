package calculate_bill

import (
	"time"

	calculateBill "github.com/m04kA/SMC-RentalService/internal/usecase/calculate_bill"
)

// CalculateBillRequest HTTP request model
// unitMinutes = 0 или отсутствует означает единицу из конфигурации сервиса
type CalculateBillRequest struct {
	UnitMinutes int `json:"unitMinutes,omitempty"`
}

// BillResponse HTTP response model
type BillResponse struct {
	BillID            int64     `json:"billId"`
	RentalID          int64     `json:"rentalId"`
	Status            string    `json:"status"`
	BilledUnits       int64     `json:"billedUnits"`
	RatePerHour       int64     `json:"ratePerHour"`
	BaseCharge        int64     `json:"baseCharge"`
	ViolationSubtotal int64     `json:"violationSubtotal"`
	DepositAdjustment int64     `json:"depositAdjustment"`
	TotalDue          int64     `json:"totalDue"`
	RefundDue         int64     `json:"refundDue"`
	ComputedAt        time.Time `json:"computedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *calculateBill.Response) *BillResponse {
	return &BillResponse{
		BillID:            resp.BillID,
		RentalID:          resp.RentalID,
		Status:            resp.Status,
		BilledUnits:       resp.BilledUnits,
		RatePerHour:       resp.RatePerHour,
		BaseCharge:        resp.BaseCharge,
		ViolationSubtotal: resp.ViolationSubtotal,
		DepositAdjustment: resp.DepositAdjustment,
		TotalDue:          resp.TotalDue,
		RefundDue:         resp.RefundDue,
		ComputedAt:        resp.ComputedAt,
	}
}
