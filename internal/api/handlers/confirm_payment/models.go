package confirm_payment

import (
	"time"

	confirmPayment "github.com/m04kA/SMC-RentalService/internal/usecase/confirm_payment"
)

// ConfirmPaymentResponse HTTP response model
type ConfirmPaymentResponse struct {
	RentalID   int64     `json:"rentalId"`
	Status     string    `json:"status"`
	BillID     int64     `json:"billId"`
	TotalPaid  int64     `json:"totalPaid"`
	RefundDue  int64     `json:"refundDue"`
	ComputedAt time.Time `json:"computedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *confirmPayment.Response) *ConfirmPaymentResponse {
	return &ConfirmPaymentResponse{
		RentalID:   resp.RentalID,
		Status:     resp.Status,
		BillID:     resp.BillID,
		TotalPaid:  resp.TotalPaid,
		RefundDue:  resp.RefundDue,
		ComputedAt: resp.ComputedAt,
	}
}
