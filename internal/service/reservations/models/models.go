package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе reservation
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// ListReservationsRequest запрос на получение списка reservation
// Все поля опциональны; указанные комбинируются конъюнктивно
type ListReservationsRequest struct {
	RenterID  *int64     `json:"renterId,omitempty"`
	VehicleID *int64     `json:"vehicleId,omitempty"`
	Status    *string    `json:"status,omitempty"`
	StartFrom *time.Time `json:"startFrom,omitempty"`
	StartTo   *time.Time `json:"startTo,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		RenterID:  r.RenterID,
		VehicleID: r.VehicleID,
		StartFrom: r.StartFrom,
		StartTo:   r.StartTo,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// ReservationResponse ответ с данными reservation
type ReservationResponse struct {
	ID              int64     `json:"id"`
	RenterID        int64     `json:"renterId"`
	VehicleID       *int64    `json:"vehicleId,omitempty"`
	ReservedStartAt time.Time `json:"reservedStartAt"`
	ReservedEndAt   time.Time `json:"reservedEndAt"`
	InsuranceAmount *int64    `json:"insuranceAmount,omitempty"`
	Status          string    `json:"status"`
	RentalID        *int64    `json:"rentalId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком reservation
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	return &ReservationResponse{
		ID:              r.ID,
		RenterID:        r.RenterID,
		VehicleID:       r.VehicleID,
		ReservedStartAt: r.ReservedStartAt,
		ReservedEndAt:   r.ReservedEndAt,
		InsuranceAmount: r.InsuranceAmount,
		Status:          string(r.Status),
		RentalID:        r.RentalID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(reservations)),
	}

	for _, r := range reservations {
		if converted := FromDomainReservation(r); converted != nil {
			resp.Reservations = append(resp.Reservations, *converted)
		}
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	validStatuses := []domain.ReservationStatus{
		domain.ReservationStatusPending,
		domain.ReservationStatusConfirmed,
		domain.ReservationStatusCancelled,
		domain.ReservationStatusExpired,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
