package domain

import "time"

// DepositDirection marks a deposit ledger event as a hold or a return
type DepositDirection string

const (
	DepositHold   DepositDirection = "hold"
	DepositReturn DepositDirection = "return"
)

// DepositRecord is a single immutable deposit ledger event.
// A rental's deposit state is always derived from the full ledger
// (sum of holds minus sum of returns), never stored as a mutable field.
type DepositRecord struct {
	ID        int64
	RentalID  int64
	Direction DepositDirection
	Amount    int64
	CreatedAt time.Time
}
