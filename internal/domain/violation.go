package domain

import "time"

// Violation is an extra staff-recorded charge against a rental
// (damage, traffic fine, late fee). Append-only.
type Violation struct {
	ID          int64
	RentalID    int64
	Description string
	Amount      int64
	RecordedBy  int64 // Staff ID
	CreatedAt   time.Time
}
