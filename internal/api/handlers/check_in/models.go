package check_in

import (
	"time"

	checkIn "github.com/m04kA/SMC-RentalService/internal/usecase/check_in"
)

// CheckInRequest HTTP request model
// reservationId = null означает walk-in
type CheckInRequest struct {
	ReservationID     *int64     `json:"reservationId,omitempty"`
	RenterID          int64      `json:"renterId"`
	VehicleID         int64      `json:"vehicleId"`
	StationPickupID   int64      `json:"stationPickupId"`
	ScheduledStartAt  *time.Time `json:"scheduledStartAt,omitempty"`
	ScheduledReturnAt *time.Time `json:"scheduledReturnAt,omitempty"`
	DepositAmount     int64      `json:"depositAmount"`
}

// RentalResponse HTTP response model
type RentalResponse struct {
	ID                int64      `json:"id"`
	RenterID          int64      `json:"renterId"`
	VehicleID         int64      `json:"vehicleId"`
	StationPickupID   int64      `json:"stationPickupId"`
	ReservationID     *int64     `json:"reservationId,omitempty"`
	ScheduledStartAt  time.Time  `json:"scheduledStartAt"`
	ScheduledReturnAt *time.Time `json:"scheduledReturnAt,omitempty"`
	Status            string     `json:"status"`
	DepositAmount     int64      `json:"depositAmount"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckInRequest) ToUseCaseRequest() *checkIn.Request {
	req := &checkIn.Request{
		ReservationID:     r.ReservationID,
		RenterID:          r.RenterID,
		VehicleID:         r.VehicleID,
		StationPickupID:   r.StationPickupID,
		ScheduledReturnAt: r.ScheduledReturnAt,
		DepositAmount:     r.DepositAmount,
	}

	if r.ScheduledStartAt != nil {
		req.ScheduledStartAt = *r.ScheduledStartAt
	}

	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkIn.Response) *RentalResponse {
	return &RentalResponse{
		ID:                resp.ID,
		RenterID:          resp.RenterID,
		VehicleID:         resp.VehicleID,
		StationPickupID:   resp.StationPickupID,
		ReservationID:     resp.ReservationID,
		ScheduledStartAt:  resp.ScheduledStartAt,
		ScheduledReturnAt: resp.ScheduledReturnAt,
		Status:            resp.Status,
		DepositAmount:     resp.DepositAmount,
		CreatedAt:         resp.CreatedAt,
		UpdatedAt:         resp.UpdatedAt,
	}
}
