package calculate_bill

import "errors"

var (
	// ErrRentalNotFound возвращается, когда rental не найден
	ErrRentalNotFound = errors.New("calculate_bill: rental not found")

	// ErrInvalidTransition возвращается, когда rental еще не возвращен
	ErrInvalidTransition = errors.New("calculate_bill: rental is not billable")

	// ErrVehicleNotFound возвращается, когда транспортное средство не найдено
	ErrVehicleNotFound = errors.New("calculate_bill: vehicle not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("calculate_bill: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("calculate_bill: internal error")
)
