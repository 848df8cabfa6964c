package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе rental
	ErrInvalidStatus = errors.New("invalid rental status")
)

// Request модели

// ListRentalsRequest запрос на получение списка rental
// Все поля опциональны; указанные комбинируются конъюнктивно
type ListRentalsRequest struct {
	RenterID        *int64     `json:"renterId,omitempty"`
	VehicleID       *int64     `json:"vehicleId,omitempty"`
	StationPickupID *int64     `json:"stationPickupId,omitempty"`
	StationReturnID *int64     `json:"stationReturnId,omitempty"`
	Status          *string    `json:"status,omitempty"`
	StartFrom       *time.Time `json:"startFrom,omitempty"`
	StartTo         *time.Time `json:"startTo,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListRentalsRequest) ToDomainFilter() (domain.RentalFilter, error) {
	filter := domain.RentalFilter{
		RenterID:        r.RenterID,
		VehicleID:       r.VehicleID,
		StationPickupID: r.StationPickupID,
		StationReturnID: r.StationReturnID,
		StartFrom:       r.StartFrom,
		StartTo:         r.StartTo,
	}

	if r.Status != nil {
		status, err := ToDomainRentalStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// HoldDepositRequest запрос на удержание депозита
// Amount = 0 означает сумму депозита, согласованную при check-in
type HoldDepositRequest struct {
	Amount int64 `json:"amount,omitempty"`
}

// ReturnDepositRequest запрос на возврат депозита
// Amount = 0 означает возврат всей удержанной суммы
type ReturnDepositRequest struct {
	Amount int64 `json:"amount,omitempty"`
}

// AddViolationRequest запрос на добавление violation
type AddViolationRequest struct {
	RentalID    int64  `json:"rentalId"`
	Description string `json:"description"`
	Amount      int64  `json:"amount"`
	RecordedBy  int64  `json:"-"` // ID сотрудника из контекста запроса
}

// Response модели

// RentalResponse ответ с данными rental
type RentalResponse struct {
	ID                int64      `json:"id"`
	RenterID          int64      `json:"renterId"`
	VehicleID         int64      `json:"vehicleId"`
	StationPickupID   int64      `json:"stationPickupId"`
	StationReturnID   *int64     `json:"stationReturnId,omitempty"`
	ReservationID     *int64     `json:"reservationId,omitempty"`
	ScheduledStartAt  time.Time  `json:"scheduledStartAt"`
	ScheduledReturnAt *time.Time `json:"scheduledReturnAt,omitempty"`
	ActualStartAt     *time.Time `json:"actualStartAt,omitempty"`
	ActualReturnAt    *time.Time `json:"actualReturnAt,omitempty"`
	Status            string     `json:"status"`
	DepositAmount     int64      `json:"depositAmount"`
	OutstandingDeposit int64     `json:"outstandingDeposit"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}

// RentalListResponse ответ со списком rental
type RentalListResponse struct {
	Rentals []RentalResponse `json:"rentals"`
}

// ViolationResponse ответ с данными violation
type ViolationResponse struct {
	ID          int64     `json:"id"`
	RentalID    int64     `json:"rentalId"`
	Description string    `json:"description"`
	Amount      int64     `json:"amount"`
	RecordedBy  int64     `json:"recordedBy"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ViolationListResponse ответ со списком violation
type ViolationListResponse struct {
	Violations []ViolationResponse `json:"violations"`
}

// DepositRecordResponse ответ с одним событием депозитного ledger
type DepositRecordResponse struct {
	ID        int64     `json:"id"`
	RentalID  int64     `json:"rentalId"`
	Direction string    `json:"direction"`
	Amount    int64     `json:"amount"`
	CreatedAt time.Time `json:"createdAt"`
}

// DepositListResponse ответ с историей депозитных событий rental
// Outstanding - текущий удержанный остаток, выведенный из истории
type DepositListResponse struct {
	Records     []DepositRecordResponse `json:"records"`
	Outstanding int64                   `json:"outstanding"`
}

// Методы конвертации

// FromDomainRental конвертирует domain модель в DTO
func FromDomainRental(r *domain.Rental, outstandingDeposit int64) *RentalResponse {
	if r == nil {
		return nil
	}

	return &RentalResponse{
		ID:                 r.ID,
		RenterID:           r.RenterID,
		VehicleID:          r.VehicleID,
		StationPickupID:    r.StationPickupID,
		StationReturnID:    r.StationReturnID,
		ReservationID:      r.ReservationID,
		ScheduledStartAt:   r.ScheduledStartAt,
		ScheduledReturnAt:  r.ScheduledReturnAt,
		ActualStartAt:      r.ActualStartAt,
		ActualReturnAt:     r.ActualReturnAt,
		Status:             string(r.Status),
		DepositAmount:      r.DepositAmount,
		OutstandingDeposit: outstandingDeposit,
		CreatedAt:          r.CreatedAt,
		UpdatedAt:          r.UpdatedAt,
	}
}

// FromDomainRentalList конвертирует список domain моделей в DTO
// Депозитный баланс в списке не раскрывается (он считается по запросу для одного rental)
func FromDomainRentalList(rentals []*domain.Rental) *RentalListResponse {
	resp := &RentalListResponse{
		Rentals: make([]RentalResponse, 0, len(rentals)),
	}

	for _, r := range rentals {
		if converted := FromDomainRental(r, 0); converted != nil {
			resp.Rentals = append(resp.Rentals, *converted)
		}
	}

	return resp
}

// FromDomainViolation конвертирует domain модель в DTO
func FromDomainViolation(v *domain.Violation) *ViolationResponse {
	if v == nil {
		return nil
	}

	return &ViolationResponse{
		ID:          v.ID,
		RentalID:    v.RentalID,
		Description: v.Description,
		Amount:      v.Amount,
		RecordedBy:  v.RecordedBy,
		CreatedAt:   v.CreatedAt,
	}
}

// FromDomainDepositRecordList конвертирует историю депозитных событий в DTO
// Остаток считается по той же схеме, что и в хранилище: hold минус return
func FromDomainDepositRecordList(records []*domain.DepositRecord) *DepositListResponse {
	resp := &DepositListResponse{
		Records: make([]DepositRecordResponse, 0, len(records)),
	}

	for _, record := range records {
		if record == nil {
			continue
		}

		resp.Records = append(resp.Records, DepositRecordResponse{
			ID:        record.ID,
			RentalID:  record.RentalID,
			Direction: string(record.Direction),
			Amount:    record.Amount,
			CreatedAt: record.CreatedAt,
		})

		switch record.Direction {
		case domain.DepositHold:
			resp.Outstanding += record.Amount
		case domain.DepositReturn:
			resp.Outstanding -= record.Amount
		}
	}

	return resp
}

// FromDomainViolationList конвертирует список domain моделей в DTO
func FromDomainViolationList(violations []*domain.Violation) *ViolationListResponse {
	resp := &ViolationListResponse{
		Violations: make([]ViolationResponse, 0, len(violations)),
	}

	for _, v := range violations {
		if converted := FromDomainViolation(v); converted != nil {
			resp.Violations = append(resp.Violations, *converted)
		}
	}

	return resp
}

// ToDomainRentalStatus конвертирует строку в domain.RentalStatus с валидацией
func ToDomainRentalStatus(status string) (domain.RentalStatus, error) {
	s := domain.RentalStatus(status)

	validStatuses := []domain.RentalStatus{
		domain.RentalStatusBooked,
		domain.RentalStatusInUse,
		domain.RentalStatusReturned,
		domain.RentalStatusWaitingForPayment,
		domain.RentalStatusCancelled,
		domain.RentalStatusClosed,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
