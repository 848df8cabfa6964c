package domain

import "time"

// CheckType distinguishes the two evidence snapshots of a rental
type CheckType string

const (
	CheckTypePickup CheckType = "pickup"
	CheckTypeReturn CheckType = "return"
)

// RentalCheck is an immutable evidence snapshot recorded at pickup or return.
// The three evidence fields are opaque content references issued by the
// evidence store; the core never interprets the bytes behind them.
// At most one check of each type exists per rental.
type RentalCheck struct {
	ID              int64
	RentalID        int64
	CheckType       CheckType
	ConditionReport string
	PhotoRef        string
	StaffSigRef     string
	CustomerSigRef  string
	CreatedAt       time.Time
}

// RequiredStatus returns the rental status required to record this check type
func (t CheckType) RequiredStatus() RentalStatus {
	if t == CheckTypePickup {
		return RentalStatusBooked
	}
	return RentalStatusInUse
}
