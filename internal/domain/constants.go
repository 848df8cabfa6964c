package domain

import "time"

// Default billing values
const (
	DefaultBillingUnitMinutes = 60 // Bill by whole hours unless overridden
	MinBilledUnits            = 1  // Even an instant rental is billed one unit
)

// Business validation constants
const (
	MinBillingUnitMinutes         = 1
	MaxBillingUnitMinutes         = 1440 // 24 hours
	MaxConditionReportLength      = 2000
	MaxViolationDescriptionLength = 500
)

// Time format constants
const (
	TimestampFormat = time.RFC3339
)

// TerminalStatuses список терминальных статусов rental
// После них никакие мутации rental не допускаются
var TerminalStatuses = []RentalStatus{
	RentalStatusCancelled,
	RentalStatusClosed,
}

// VehicleOccupyingStatuses список статусов, при которых rental занимает транспортное средство
// Используется при проверке доступности на check-in
var VehicleOccupyingStatuses = []RentalStatus{
	RentalStatusBooked,
	RentalStatusInUse,
}

// BillableStatuses список статусов, при которых можно рассчитать bill
var BillableStatuses = []RentalStatus{
	RentalStatusReturned,
	RentalStatusWaitingForPayment,
}
