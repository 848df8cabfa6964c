package domain

import "time"

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	ReservationStatusPending   ReservationStatus = "pending"
	ReservationStatusConfirmed ReservationStatus = "confirmed"
	ReservationStatusCancelled ReservationStatus = "cancelled"
	ReservationStatusExpired   ReservationStatus = "expired"
)

// Reservation represents a renter's advance intent to occupy a vehicle.
// A reservation is never deleted: when check-in happens it is consumed by
// setting RentalID, keeping the record as an audit trail.
type Reservation struct {
	ID              int64
	RenterID        int64
	VehicleID       *int64 // nil until a specific vehicle is assigned
	ReservedStartAt time.Time
	ReservedEndAt   time.Time
	InsuranceAmount *int64
	Status          ReservationStatus
	RentalID        *int64 // Set when the reservation is consumed by check-in

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsConsumed returns true if a rental was already created from this reservation
func (r *Reservation) IsConsumed() bool {
	return r.RentalID != nil
}

// CanBeConsumed returns true if check-in may bind this reservation
func (r *Reservation) CanBeConsumed() bool {
	return r.Status == ReservationStatusConfirmed && !r.IsConsumed()
}

// ReservationFilter фильтр для получения списка reservation
type ReservationFilter struct {
	RenterID  *int64             // Фильтр по арендатору (опционально)
	VehicleID *int64             // Фильтр по транспортному средству (опционально)
	Status    *ReservationStatus // Фильтр по статусу (опционально)
	StartFrom *time.Time         // Нижняя граница reserved_start_at (опционально)
	StartTo   *time.Time         // Верхняя граница reserved_start_at (опционально)
}
