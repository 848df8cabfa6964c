package domain

import "time"

// Bill is a computed point-in-time snapshot of what a rental costs.
// It is derived from the ledgers (duration, violations, deposits) at
// calculation time and is not authoritative rental state. Deposit policy:
// the outstanding deposit pays toward the bill; when it exceeds the charges
// the excess is surfaced as RefundDue and TotalDue is zero.
type Bill struct {
	ID                int64
	RentalID          int64
	BilledUnits       int64
	RatePerHour       int64
	BaseCharge        int64
	ViolationSubtotal int64
	DepositAdjustment int64
	TotalDue          int64
	RefundDue         int64
	ComputedAt        time.Time
}
