package domain

import "time"

// RentalStatus represents the status of a rental
type RentalStatus string

const (
	RentalStatusBooked            RentalStatus = "booked"
	RentalStatusInUse             RentalStatus = "in_use"
	RentalStatusReturned          RentalStatus = "returned"
	RentalStatusWaitingForPayment RentalStatus = "waiting_for_payment"
	RentalStatusCancelled         RentalStatus = "cancelled"
	RentalStatusClosed            RentalStatus = "closed"
)

// Rental represents a vehicle in a renter's possession, from check-in to closure
type Rental struct {
	ID              int64
	RenterID        int64
	VehicleID       int64
	StationPickupID int64
	StationReturnID *int64
	ReservationID   *int64 // ID of the consumed reservation (nil for walk-ins)

	ScheduledStartAt  time.Time
	ScheduledReturnAt *time.Time
	ActualStartAt     *time.Time
	ActualReturnAt    *time.Time

	Status        RentalStatus
	DepositAmount int64 // Agreed deposit in whole currency units

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsTerminal returns true if the rental reached a terminal status
func (r *Rental) IsTerminal() bool {
	return r.Status.isOneOf(TerminalStatuses)
}

// IsVehicleOccupying returns true while the rental keeps the vehicle unavailable
func (r *Rental) IsVehicleOccupying() bool {
	return r.Status.isOneOf(VehicleOccupyingStatuses)
}

// CanConfirmPickup returns true if the pickup check may be recorded
func (r *Rental) CanConfirmPickup() bool {
	return r.Status == RentalStatusBooked
}

// CanConfirmReturn returns true if the return check may be recorded
func (r *Rental) CanConfirmReturn() bool {
	return r.Status == RentalStatusInUse
}

// CanBeCancelled returns true if the rental can still be cancelled
func (r *Rental) CanBeCancelled() bool {
	return r.Status == RentalStatusBooked || r.Status == RentalStatusInUse
}

// IsBillable returns true if a bill may be computed for the rental
func (r *Rental) IsBillable() bool {
	return r.Status.isOneOf(BillableStatuses)
}

func (s RentalStatus) isOneOf(statuses []RentalStatus) bool {
	for _, candidate := range statuses {
		if s == candidate {
			return true
		}
	}
	return false
}

// EffectiveStartAt returns the timestamp billing counts from:
// the actual pickup time, or the scheduled start if pickup was never recorded
func (r *Rental) EffectiveStartAt() time.Time {
	if r.ActualStartAt != nil {
		return *r.ActualStartAt
	}
	return r.ScheduledStartAt
}

// RentalFilter фильтр для получения списка rental
type RentalFilter struct {
	RenterID        *int64        // Фильтр по арендатору (опционально)
	VehicleID       *int64        // Фильтр по транспортному средству (опционально)
	StationPickupID *int64        // Фильтр по станции выдачи (опционально)
	StationReturnID *int64        // Фильтр по станции возврата (опционально)
	Status          *RentalStatus // Фильтр по статусу (опционально)
	StartFrom       *time.Time    // Нижняя граница запланированного начала (опционально)
	StartTo         *time.Time    // Верхняя граница запланированного начала (опционально)
}
