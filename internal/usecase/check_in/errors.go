package check_in

import "errors"

var (
	// ErrReservationNotFound возвращается, когда reservation не найдена
	ErrReservationNotFound = errors.New("check_in: reservation not found")

	// ErrInvalidReservationState возвращается, когда reservation нельзя консумировать
	// (не в статусе confirmed, уже привязана к rental или не соответствует запросу)
	ErrInvalidReservationState = errors.New("check_in: reservation is not in a consumable state")

	// ErrVehicleNotFound возвращается, когда транспортное средство не найдено
	ErrVehicleNotFound = errors.New("check_in: vehicle not found")

	// ErrVehicleUnavailable возвращается, когда транспортное средство занято другим rental
	ErrVehicleUnavailable = errors.New("check_in: vehicle is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("check_in: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("check_in: internal error")
)
